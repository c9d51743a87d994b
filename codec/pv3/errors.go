/*
DESCRIPTION
  errors.go defines the sentinel errors and the per-macroblock error type
  used across the block and frame decoders.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pv3 implements the PV3/PV4 DCT block and frame decoders: inverse
// quantization, a parallel macroblock walk across 2 or 4 independent
// sub-bitstreams, and the external collaborator interfaces a caller plugs
// in for IDCT, frame allocation, and worker dispatch.
package pv3

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the codec, following the taxonomy of
// terminal failures a caller cannot recover from mid-frame.
var (
	// ErrInvalidData indicates the bitstream does not conform to the
	// PV3/PV4 coding syntax.
	ErrInvalidData = errors.New("pv3: invalid data")

	// ErrUnsupported indicates a syntactically valid but unsupported
	// configuration.
	ErrUnsupported = errors.New("pv3: unsupported")
)

// BlockError reports a failure decoding a single macroblock. Unlike
// ErrInvalidData and ErrUnsupported, a BlockError does not abort the frame:
// the caller logs it and the decoder continues with the next macroblock, so
// a single corrupt block does not lose an entire picture.
type BlockError struct {
	Block int // sub-bitstream index the macroblock belonged to.
	MBX   int // macroblock column.
	MBY   int // macroblock row.
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("pv3: block %d macroblock (%d,%d): %v", e.Block, e.MBX, e.MBY, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }
