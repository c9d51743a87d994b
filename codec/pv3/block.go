/*
DESCRIPTION
  block.go implements the DCT block decoder: DC/AC coefficient
  reconstruction per SMPTE 370M-2006, as performed by
  esdv_decode_dctblock in the reference decoder.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pv3

import (
	"fmt"

	"github.com/earthsoftdv/pv3/codec/pv3/bits"
	"github.com/earthsoftdv/pv3/codec/pv3/vlc"
)

// zigzagDirect is the standard 8x8 zig-zag scan order shared by JPEG- and
// MPEG-style block coding, mapping scan index to raster position.
var zigzagDirect = [64]uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// quantTable holds a 64-entry quantizer matrix reindexed into zig-zag scan
// order: values[i] is the quantizer for scan index i.
type quantTable struct {
	values [64]int16
}

// newQuantTable builds a quantTable from the raw raster-ordered matrix
// carried in the container header.
func newQuantTable(raw [64]int16) quantTable {
	var q quantTable
	for i := 0; i < 64; i++ {
		q.values[i] = raw[zigzagDirect[i]]
	}
	return q
}

// decodeDCTBlock reconstructs one dequantized, raster-ordered 8x8
// coefficient block from r, using quant for AC dequantization. The DC
// coefficient and AC-scale selector are read directly; AC coefficients are
// decoded via vlc.Decode until end-of-block.
func decodeDCTBlock(r *bits.Reader, quant quantTable) (*[64]int16, error) {
	dc, err := r.ReadSignedBits(9)
	if err != nil {
		return nil, fmt.Errorf("pv3: reading dc coefficient: %w", err)
	}
	q, err := r.ReadBits(1)
	if err != nil {
		return nil, fmt.Errorf("pv3: reading ac scale selector: %w", err)
	}
	acScale := uint(3 - int(q))

	var block [64]int16
	block[0] = int16((dc << 2) + 1024)

	i := 1
	for {
		sym, err := vlc.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("pv3: decoding ac coefficient %d: %w", i, err)
		}
		if sym.EOB {
			break
		}

		i += sym.Run
		if i >= 64 {
			return nil, fmt.Errorf("%w: run length overruns block at coefficient %d", ErrInvalidData, i)
		}

		block[zigzagDirect[i]] = int16((int32(sym.Level) * int32(quant.values[i])) >> acScale)
		i++
	}

	return &block, nil
}
