/*
DESCRIPTION
  macroblock.go implements the per-macroblock DCT-block placement geometry,
  generalized from esdv_decode_macroblock's lum_put/chrom_put tables across
  the progressive, interlaced-frame, interlaced-field, and
  interlaced-bottom-row submodes.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pv3

// placement holds the four luminance and four chrominance DCT-block
// placement offsets (in pixels, relative to the macroblock's top-left
// corner) for one macroblock submode, plus a row-stride multiplier applied
// when DCT blocks are interleaved across picture lines (field mode).
type placement struct {
	lumX, lumY     [4]int
	chromX, chromY [4]int
	strideShift    uint // 1 doubles the destination stride (field mode).
}

// progressivePlacement is used for every macroblock in a progressive
// frame, and for frame-mode macroblocks in an interlaced frame.
//
// Y0-Y3 layout:
//
//	[Y0] [Y2]
//	[Y1] [Y3]
//
// Cb0/Cb1 and Cr0/Cr1 each stack vertically.
var progressivePlacement = placement{
	lumX:   [4]int{0, 0, 8, 8},
	lumY:   [4]int{0, 8, 0, 8},
	chromX: [4]int{0, 0, 0, 0},
	chromY: [4]int{0, 8, 0, 8},
}

// fieldPlacement is used for interlaced macroblocks coded in field mode:
// the same X layout as progressive, but each block's second row pairs come
// from alternating picture lines (handled by doubling the output stride).
var fieldPlacement = placement{
	lumX:        [4]int{0, 0, 8, 8},
	lumY:        [4]int{0, 1, 0, 1},
	chromX:      [4]int{0, 0, 0, 0},
	chromY:      [4]int{0, 1, 0, 1},
	strideShift: 1,
}

// bottomRowPlacement is used for the final, partial-height row of macroblocks
// in an interlaced frame whose height is not a multiple of 16: each
// macroblock there spans 32x8 pixels instead of 16x16, and mb_x must be
// doubled by the caller before applying these offsets.
//
// Y0-Y3 layout:
//
//	[Y0] [Y2] [Y1] [Y3]
//
// Cr0/Cr1 and Cb0/Cb1 each sit side by side.
var bottomRowPlacement = placement{
	lumX:   [4]int{0, 16, 8, 24},
	lumY:   [4]int{0, 0, 0, 0},
	chromX: [4]int{0, 8, 0, 8},
	chromY: [4]int{0, 0, 0, 0},
}

// macroblockMode selects which placement table applies to a given
// macroblock.
type macroblockMode int

const (
	modeProgressive macroblockMode = iota
	modeInterlacedFrame
	modeInterlacedField
	modeInterlacedBottomRow
)

func placementFor(mode macroblockMode) placement {
	switch mode {
	case modeInterlacedField:
		return fieldPlacement
	case modeInterlacedBottomRow:
		return bottomRowPlacement
	default:
		return progressivePlacement
	}
}
