/*
DESCRIPTION
  interfaces.go defines the external collaborators the frame and block
  decoders depend on: the IDCT kernel, frame storage, and the fork/join
  worker pool used to decode a frame's independent sub-bitstreams
  concurrently. Concrete default implementations live in internal/idct and
  internal/workerpool; callers may supply their own.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pv3

// Idct8x8 performs the SMPTE 370M-2006 inverse DCT on a dequantized 8x8
// coefficient block and writes the result into dst at the given stride.
// It adds no pixel offset of its own: the +1024 DC bias that centres the
// output in the pixel range is already folded into the caller's DC
// coefficient.
type Idct8x8 interface {
	IDCT(coeff *[64]int16, dst []byte, stride int)
}

// Picture is a caller-allocated YUV 4:2:2 planar frame buffer. Strides are
// in bytes and may exceed the plane's natural width to allow alignment
// padding.
type Picture struct {
	Width, Height    int
	Y, Cb, Cr        []byte
	YStride, CStride int
}

// FrameAllocator supplies and reclaims Picture buffers so the frame decoder
// never allocates pixel storage itself.
type FrameAllocator interface {
	Allocate(width, height int) (*Picture, error)
	Release(*Picture)
}

// DefaultAllocator is the default FrameAllocator: every Allocate call backs
// the Picture with a fresh make(), and Release is a no-op, since ordinary
// garbage collection reclaims the planes once the caller drops its
// reference. A caller wanting to recycle buffers across frames (e.g. to
// avoid GC churn for a high frame rate) can supply its own pooling
// FrameAllocator instead.
type DefaultAllocator struct{}

// Allocate returns a Picture with 4:2:2 planes sized for width x height.
func (DefaultAllocator) Allocate(width, height int) (*Picture, error) {
	return &Picture{
		Width:   width,
		Height:  height,
		Y:       make([]byte, width*height),
		Cb:      make([]byte, (width/2)*height),
		Cr:      make([]byte, (width/2)*height),
		YStride: width,
		CStride: width / 2,
	}, nil
}

// Release is a no-op: DefaultAllocator does no pooling.
func (DefaultAllocator) Release(*Picture) {}

// WorkerPool runs a set of independent tasks to completion, returning the
// first non-nil error (if any) after every task has finished. The default
// implementation in internal/workerpool runs each task in its own
// goroutine and joins with a sync.WaitGroup; callers needing a bounded
// goroutine count may supply their own.
type WorkerPool interface {
	Run(tasks []func() error) error
}
