/*
DESCRIPTION
  frame.go implements the per-frame macroblock geometry and the parallel
  decode dispatch across 2 (progressive) or 4 (interlaced) independent
  sub-bitstreams, generalized from esdv_decode_init_context and
  esdv_decode_block_thread.

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

	"github.com/ausocean/utils/logging"
	"github.com/earthsoftdv/pv3/codec/pv3/bits"
)

// blockGeometry describes one sub-bitstream's share of a frame's
// macroblocks: how many it owns, and where its coarse raster walk hands
// off to the short final row of padding macroblocks (for heights not a
// multiple of 16 times the block count).
type blockGeometry struct {
	index          int
	nbMB           int
	nbMBPerLine    int
	mbPadX, mbPadY int
	mbBottomY      int // -1 if this block has no 32x8 bottom row.
}

// computeGeometry splits a width x height picture's macroblocks across
// nbBlocks independent sub-bitstreams, following the round-robin remainder
// assignment and padding-region bookkeeping of esdv_decode_init_context.
func computeGeometry(nbBlocks, width, height int) []blockGeometry {
	nbMBPerLine := width / 16
	nbMBTotal := (width * height) / (16 * 16)

	geom := make([]blockGeometry, nbBlocks)
	for i := range geom {
		geom[i] = blockGeometry{
			index:       i,
			nbMB:        nbMBTotal / nbBlocks,
			nbMBPerLine: nbMBPerLine,
			mbBottomY:   -1,
		}
	}

	switch nbMBTotal % nbBlocks {
	case 1:
		geom[1].nbMB++
	case 2:
		geom[1].nbMB++
		geom[3].nbMB++
	case 3:
		geom[1].nbMB++
		geom[2].nbMB++
		geom[3].nbMB++
	}

	if height%16 != 0 {
		geom[nbBlocks-1].mbBottomY = height / 16
	}

	mbPadStartY := (height / (16 * nbBlocks)) * nbBlocks
	nbMBPad := 0
	for i := range geom {
		if i == 0 {
			geom[i].mbPadX = 0
			geom[i].mbPadY = mbPadStartY
		} else {
			geom[i].mbPadX = nbMBPad % nbMBPerLine
			geom[i].mbPadY = nbMBPad/nbMBPerLine + mbPadStartY
		}
		nbMBPad += geom[i].nbMB - (mbPadStartY/nbBlocks)*nbMBPerLine
	}

	return geom
}

// FrameDecoder reconstructs one YUV 4:2:2 picture from its 2 or 4
// independent sub-bitstreams.
type FrameDecoder struct {
	Width, Height int
	Interlaced    bool

	LumQuant, ChromQuant quantTable

	IDCT      Idct8x8
	Pool      WorkerPool
	Allocator FrameAllocator
	Log       logging.Logger
}

// NewFrameDecoder builds a FrameDecoder for the given picture geometry and
// raw (raster-ordered, as stored in the container header) quantizer
// matrices.
func NewFrameDecoder(width, height int, interlaced bool, lumQuant, chromQuant [64]int16, idct Idct8x8, pool WorkerPool, log logging.Logger) *FrameDecoder {
	return &FrameDecoder{
		Width:      width,
		Height:     height,
		Interlaced: interlaced,
		LumQuant:   newQuantTable(lumQuant),
		ChromQuant: newQuantTable(chromQuant),
		IDCT:       idct,
		Pool:       pool,
		Log:        log,
	}
}

// nbBlocks returns how many independent sub-bitstreams a frame is split
// into: 4 for interlaced frames, 2 for progressive.
func (d *FrameDecoder) nbBlocks() int {
	if d.Interlaced {
		return 4
	}
	return 2
}

// DecodeFrame decodes blocks (one byte slice per independent sub-bitstream,
// in order) into pic. Per-macroblock failures are logged and do not abort
// the frame: DecodeFrame only returns an error for a condition that
// invalidates the whole frame (wrong block count, allocation failure from
// the worker pool itself).
func (d *FrameDecoder) DecodeFrame(blocks [][]byte, pic *Picture) error {
	nb := d.nbBlocks()
	if len(blocks) != nb {
		return fmt.Errorf("%w: frame has %d sub-bitstreams, want %d", ErrInvalidData, len(blocks), nb)
	}

	geom := computeGeometry(nb, d.Width, d.Height)

	tasks := make([]func() error, nb)
	for i := 0; i < nb; i++ {
		i := i
		tasks[i] = func() error {
			d.decodeBlockThread(bits.NewReader(blocks[i]), geom[i], pic)
			return nil
		}
	}

	return d.Pool.Run(tasks)
}

// DecodeFrameAlloc decodes blocks into a Picture obtained from d.Allocator
// (DefaultAllocator if unset), returning it for the caller to Release once
// done. Use this instead of DecodeFrame when the caller does not already
// manage its own Picture buffers.
func (d *FrameDecoder) DecodeFrameAlloc(blocks [][]byte) (*Picture, error) {
	alloc := d.Allocator
	if alloc == nil {
		alloc = DefaultAllocator{}
	}

	pic, err := alloc.Allocate(d.Width, d.Height)
	if err != nil {
		return nil, fmt.Errorf("pv3: allocating frame: %w", err)
	}

	if err := d.DecodeFrame(blocks, pic); err != nil {
		alloc.Release(pic)
		return nil, err
	}

	return pic, nil
}

// decodeBlockThread walks one sub-bitstream's macroblocks in raster order,
// switching to the padding region's one-row-high walk once it is reached,
// following esdv_decode_block_thread.
func (d *FrameDecoder) decodeBlockThread(r *bits.Reader, geom blockGeometry, pic *Picture) {
	mbX, mbY := 0, geom.index
	mbYStep := 2
	if d.Interlaced {
		mbYStep = 4
	}
	paddingStarted := false

	for mb := 0; mb < geom.nbMB; mb++ {
		if geom.index > 0 && !paddingStarted && geom.mbPadY <= mbY {
			paddingStarted = true
			mbYStep = 1
			mbY = geom.mbPadY
			mbX = geom.mbPadX
		}

		if err := d.decodeMacroblock(r, geom, mbX, mbY, pic); err != nil {
			be := &BlockError{Block: geom.index, MBX: mbX, MBY: mbY, Err: err}
			if d.Log != nil {
				d.Log.Warning("macroblock decode failed", "error", be.Error())
			}
		}

		mbX++
		if mbX == geom.nbMBPerLine {
			mbX = 0
			mbY += mbYStep
		}
	}
}

// decodeMacroblock decodes and places the four luminance and four
// chrominance DCT blocks making up one macroblock, following
// esdv_decode_macroblock.
func (d *FrameDecoder) decodeMacroblock(r *bits.Reader, geom blockGeometry, mbX, mbY int, pic *Picture) error {
	mode := modeProgressive
	if d.Interlaced {
		fieldBit, err := r.ReadBits(1)
		if err != nil {
			return fmt.Errorf("reading dct mode bit: %w", err)
		}
		switch {
		case fieldBit == 1:
			mode = modeInterlacedField
		case geom.mbBottomY == mbY:
			mode = modeInterlacedBottomRow
		default:
			mode = modeInterlacedFrame
		}
	}

	p := placementFor(mode)

	pixelX := mbX * 16
	if mode == modeInterlacedBottomRow {
		pixelX = mbX * 32
	}
	pixelY := mbY * 16

	yStride := pic.YStride << p.strideShift
	cStride := pic.CStride << p.strideShift

	for i := 0; i < 4; i++ {
		block, err := decodeDCTBlock(r, d.LumQuant)
		if err != nil {
			return fmt.Errorf("luminance block %d: %w", i, err)
		}
		off := (pixelX + p.lumX[i]) + (pixelY+p.lumY[i])*pic.YStride
		d.IDCT.IDCT(block, pic.Y[off:], yStride)
	}

	chromaX := pixelX / 2
	for i := 0; i < 4; i++ {
		block, err := decodeDCTBlock(r, d.ChromQuant)
		if err != nil {
			return fmt.Errorf("chrominance block %d: %w", i, err)
		}
		off := (chromaX + p.chromX[i]) + (pixelY+p.chromY[i])*pic.CStride
		plane := pic.Cr
		if i >= 2 {
			plane = pic.Cb
		}
		d.IDCT.IDCT(block, plane[off:], cStride)
	}

	return nil
}
