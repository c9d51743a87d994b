/*
DESCRIPTION
  index_test.go provides testing for functionality in index.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pv3

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func buildIndexEntry(frameOffsetUnits uint32, frameSizeUnits uint16, accumAudio uint64, audioFrameCount uint16, encodingQ uint8) []byte {
	buf := make([]byte, indexEntrySize)
	binary.BigEndian.PutUint32(buf[0:4], frameOffsetUnits)
	binary.BigEndian.PutUint16(buf[4:6], frameSizeUnits)
	buf[6] = byte(accumAudio >> 40)
	buf[7] = byte(accumAudio >> 32)
	buf[8] = byte(accumAudio >> 24)
	buf[9] = byte(accumAudio >> 16)
	buf[10] = byte(accumAudio >> 8)
	buf[11] = byte(accumAudio)
	binary.BigEndian.PutUint16(buf[12:14], audioFrameCount)
	buf[14] = encodingQ
	return buf
}

func TestReadIndexSingleEntry(t *testing.T) {
	buf := buildIndexEntry(1, 1, 1601, 1601, 70)

	entries, err := readIndex(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("readIndex returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].FrameOffset != 1<<indexOffsetShift {
		t.Errorf("FrameOffset = %d, want %d", entries[0].FrameOffset, 1<<indexOffsetShift)
	}
	if entries[0].FrameSize != 1<<indexOffsetShift {
		t.Errorf("FrameSize = %d, want %d", entries[0].FrameSize, 1<<indexOffsetShift)
	}
	if entries[0].AccumAudioFrameCount != 1601 {
		t.Errorf("AccumAudioFrameCount = %d, want 1601", entries[0].AccumAudioFrameCount)
	}
}

func TestReadIndexMultipleEntries(t *testing.T) {
	var buf []byte
	for i := 0; i < 5; i++ {
		buf = append(buf, buildIndexEntry(uint32(i), 1, uint64(i)*1601, 1601, 70)...)
	}

	entries, err := readIndex(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("readIndex returned error: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("len(entries) = %d, want 5", len(entries))
	}
	for i, e := range entries {
		if e.FrameOffset != int64(i)<<indexOffsetShift {
			t.Errorf("entries[%d].FrameOffset = %d, want %d", i, e.FrameOffset, int64(i)<<indexOffsetShift)
		}
	}
}

func TestReadIndexEmpty(t *testing.T) {
	entries, err := readIndex(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("readIndex returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("len(entries) = %d, want 0", len(entries))
	}
}

func TestLastAudioFrameCount(t *testing.T) {
	entries := []IndexEntry{
		{AccumAudioFrameCount: 0, AudioFrameCount: 1601},
		{AccumAudioFrameCount: 1601, AudioFrameCount: 1601},
	}
	if got := lastAudioFrameCount(entries); got != 3202 {
		t.Errorf("lastAudioFrameCount = %d, want 3202", got)
	}
	if got := lastAudioFrameCount(nil); got != 0 {
		t.Errorf("lastAudioFrameCount(nil) = %d, want 0", got)
	}
}

func TestSidecarPath(t *testing.T) {
	if got := SidecarPath("clip.dv"); got != "clip.dvi" {
		t.Errorf("SidecarPath(%q) = %q, want %q", "clip.dv", got, "clip.dvi")
	}
}
