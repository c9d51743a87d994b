/*
DESCRIPTION
  header.go parses the 16384-byte PV3/PV4 file header: the stream's codec
  version, picture geometry, scanning mode and the luminance/chrominance
  quantization tables applied to every frame in the file.

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

// fileHeaderSize is the fixed size, in bytes, of the header at the start of
// every PV3/PV4 file. Frame records begin immediately after it.
const fileHeaderSize = 16384

// codecVersion is the only codec_version value this demuxer understands.
const codecVersion = 2

// FileHeader describes the fixed header at the start of a PV3/PV4 stream.
type FileHeader struct {
	Width, Height int
	Interlaced    bool
	LumQuants     [64]int16
	ChromQuants   [64]int16
}

// readFileHeader reads and validates the 16384-byte file header from r.
// r must be positioned at the very start of the stream.
func readFileHeader(r io.Reader) (*FileHeader, error) {
	buf := make([]byte, fileHeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("pv3: reading file header: %w", err)
	}

	if buf[0] != 'P' || buf[1] != 'V' || buf[2] != '3' {
		return nil, fmt.Errorf("%w: missing PV3 magic", ErrInvalidData)
	}

	if version := buf[3]; version != codecVersion {
		return nil, fmt.Errorf("%w: codec version %d", ErrUnsupported, version)
	}

	h := &FileHeader{
		Width:  int(buf[4]) * 16,
		Height: int(buf[5]) * 8,
	}

	flags := buf[6]
	h.Interlaced = flags&0x1 == 0

	// buf[7:256] (249 bytes) is reserved.
	quants := buf[256:]
	for i := 0; i < 64; i++ {
		h.LumQuants[i] = int16(binary.BigEndian.Uint16(quants[2*i:]))
	}
	for i := 0; i < 64; i++ {
		h.ChromQuants[i] = int16(binary.BigEndian.Uint16(quants[128+2*i:]))
	}

	// The remaining 15872 bytes up to fileHeaderSize are reserved and
	// already consumed by the ReadFull above.

	return h, nil
}
