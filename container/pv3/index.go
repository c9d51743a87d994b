/*
DESCRIPTION
  index.go reads the optional sidecar seek index that accompanies a
  PV3/PV4 stream. The index trades a linear scan for direct offset lookups
  during Seek and lets Demuxer report a frame count up front.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pv3

import (
	"encoding/binary"
	"fmt"
	"io"
)

// indexEntrySize is the fixed size, in bytes, of one sidecar index record.
const indexEntrySize = 16

// indexOffsetShift converts between the 4096-byte units an index entry
// stores and absolute byte offsets into the stream.
const indexOffsetShift = 12

// IndexEntry describes one frame's position and accumulated audio state,
// as recorded in the sidecar index file.
type IndexEntry struct {
	// FrameOffset is the frame's absolute byte offset into the stream.
	FrameOffset int64
	// FrameSize is the frame record's size in bytes, header included.
	FrameSize int64
	// AccumAudioFrameCount is the number of audio frames emitted by every
	// frame record before this one (this record's own audio frames are
	// not included; see AudioFrameCount).
	AccumAudioFrameCount uint64
	AudioFrameCount      uint16
	EncodingQ            uint8
}

// SidecarPath derives the sidecar index filename for a stream path by
// appending "i" (foo.dv -> foo.dvi), matching the convention the original
// encoder uses.
func SidecarPath(streamPath string) string {
	return streamPath + "i"
}

// readIndex reads every entry from a sidecar index stream. An empty or
// truncated trailing entry (fewer than indexEntrySize bytes remaining)
// ends the index without error, matching the original demuxer's tolerance
// for a file that isn't a whole number of records long.
func readIndex(r io.Reader) ([]IndexEntry, error) {
	var entries []IndexEntry
	buf := make([]byte, indexEntrySize)

	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("pv3: reading index entry %d: %w", len(entries), err)
		}

		e := IndexEntry{
			FrameOffset:          int64(binary.BigEndian.Uint32(buf[0:4])) << indexOffsetShift,
			FrameSize:            int64(binary.BigEndian.Uint16(buf[4:6])) << indexOffsetShift,
			AccumAudioFrameCount: readUint48(buf[6:12]),
			AudioFrameCount:      binary.BigEndian.Uint16(buf[12:14]),
			EncodingQ:            buf[14],
			// buf[15] is reserved.
		}
		entries = append(entries, e)
	}
}

// lastAudioFrameCount returns the total audio frame count recorded by the
// index's last entry, or 0 if the index is empty.
func lastAudioFrameCount(entries []IndexEntry) uint64 {
	if len(entries) == 0 {
		return 0
	}
	last := entries[len(entries)-1]
	return last.AccumAudioFrameCount + uint64(last.AudioFrameCount)
}
