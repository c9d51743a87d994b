/*
DESCRIPTION
  frame_test.go provides testing for functionality in frame.go.

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
	"io"
	"testing"
)

// buildFrameHeader assembles a valid 512-byte frame header for tests.
func buildFrameHeader(accumAudio uint64, audioFrameCount uint16, sampleRate uint32, darNum, darDen uint16, encodingQ uint8, sizes [4]uint32) []byte {
	buf := make([]byte, frameHeaderSize)

	// 48-bit accum_audio_frame_count as two 24-bit big-endian halves.
	buf[0] = byte(accumAudio >> 40)
	buf[1] = byte(accumAudio >> 32)
	buf[2] = byte(accumAudio >> 24)
	buf[3] = byte(accumAudio >> 16)
	buf[4] = byte(accumAudio >> 8)
	buf[5] = byte(accumAudio)

	binary.BigEndian.PutUint16(buf[6:8], audioFrameCount)
	binary.BigEndian.PutUint32(buf[8:12], sampleRate)

	dar := buf[256:]
	binary.BigEndian.PutUint16(dar[0:2], darNum)
	binary.BigEndian.PutUint16(dar[2:4], darDen)
	dar[4] = encodingQ

	sizeBytes := dar[128:]
	for i, s := range sizes {
		binary.BigEndian.PutUint32(sizeBytes[4*i:], s)
	}

	return buf
}

func TestReadFrameHeader(t *testing.T) {
	buf := buildFrameHeader(12345, 1601, 48000, 16, 9, 80, [4]uint32{1000, 2000, 3000, 4000})

	h, err := readFrameHeader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("readFrameHeader returned error: %v", err)
	}
	if h.accumAudioFrameCount != 12345 {
		t.Errorf("accumAudioFrameCount = %d, want 12345", h.accumAudioFrameCount)
	}
	if h.audioFrameCount != 1601 {
		t.Errorf("audioFrameCount = %d, want 1601", h.audioFrameCount)
	}
	if h.sampleRate != 48000 {
		t.Errorf("sampleRate = %d, want 48000", h.sampleRate)
	}
	if h.dar != (Rational{Num: 16, Den: 9}) {
		t.Errorf("dar = %+v, want {16 9}", h.dar)
	}
	if h.encodingQ != 80 {
		t.Errorf("encodingQ = %d, want 80", h.encodingQ)
	}
	if h.videoBlockSize != [4]uint32{1000, 2000, 3000, 4000} {
		t.Errorf("videoBlockSize = %v, want [1000 2000 3000 4000]", h.videoBlockSize)
	}
}

func TestReadFrameHeaderEOF(t *testing.T) {
	_, err := readFrameHeader(bytes.NewReader(nil))
	if err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestReadFrameHeaderTruncated(t *testing.T) {
	buf := buildFrameHeader(0, 0, 0, 0, 0, 0, [4]uint32{})

	_, err := readFrameHeader(bytes.NewReader(buf[:10]))
	if err == nil {
		t.Fatalf("expected an error for a truncated frame header")
	}
}
