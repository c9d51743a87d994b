/*
DESCRIPTION
  frame.go parses the 512-byte record that precedes each frame's audio and
  video blocks: accumulated and per-frame audio frame counts, the sample
  rate, the display aspect ratio, the encoding quality and the size of
  each video sub-bitstream.

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

// frameHeaderSize is the fixed size, in bytes, of every frame record's
// header.
const frameHeaderSize = 512

// Rational is a display aspect ratio numerator/denominator pair as stored
// in a frame header.
type Rational struct {
	Num, Den uint16
}

// frameHeader is the per-frame record header.
type frameHeader struct {
	accumAudioFrameCount uint64
	audioFrameCount      uint16
	sampleRate           uint32
	dar                  Rational
	encodingQ            uint8
	videoBlockSize       [4]uint32
}

// readFrameHeader reads the 512-byte frame record header from r. It
// returns io.EOF (unwrapped, for callers to check with errors.Is) when r is
// positioned exactly at end of stream, so Demuxer.ReadPacket can tell "no
// more frames" apart from a mid-record truncation.
func readFrameHeader(r io.Reader) (*frameHeader, error) {
	buf := make([]byte, frameHeaderSize)
	n, err := io.ReadFull(r, buf)
	if err == io.EOF && n == 0 {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("pv3: reading frame header: %w", err)
	}

	h := &frameHeader{
		accumAudioFrameCount: readUint48(buf[0:6]),
		audioFrameCount:      binary.BigEndian.Uint16(buf[6:8]),
		sampleRate:           binary.BigEndian.Uint32(buf[8:12]),
	}

	// buf[12:256] (244 bytes) is reserved.
	dar := buf[256:]
	h.dar = Rational{
		Num: binary.BigEndian.Uint16(dar[0:2]),
		Den: binary.BigEndian.Uint16(dar[2:4]),
	}
	h.encodingQ = dar[4]

	// dar[5:128] (123 bytes) is reserved.
	sizes := dar[128:]
	for i := 0; i < 4; i++ {
		h.videoBlockSize[i] = binary.BigEndian.Uint32(sizes[4*i:])
	}

	// sizes[16:128] (112 bytes) is reserved, already consumed above.

	return h, nil
}
