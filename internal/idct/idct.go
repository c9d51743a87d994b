/*
DESCRIPTION
  idct.go provides a reference implementation of the separable 8x8 inverse
  DCT defined by SMPTE 370M-2006, used as the default Idct8x8 collaborator
  when a caller does not supply its own (e.g. a SIMD kernel). The basis
  matrix is precomputed once; each block is reconstructed with a row pass
  followed by a column pass, in the style of the WebP decoder's separable
  transform passes.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package idct provides the default inverse-DCT implementation for the
// PV3/PV4 block decoder.
package idct

import "math"

// basis[u][x] is C(u) * cos((2x+1)u*pi/16), the separable 1-D IDCT kernel
// used for both the row and column passes, per the SMPTE 370M-2006 formula:
//
//	P(x,y) = sum_v sum_u Cv Cu C(u,v) cos((2x+1)u*pi/16) cos((2y+1)v*pi/16)
var basis [8][8]float64

func init() {
	for u := 0; u < 8; u++ {
		cu := 1.0
		if u == 0 {
			cu = 1.0 / math.Sqrt2
		}
		for x := 0; x < 8; x++ {
			basis[u][x] = cu * 0.5 * math.Cos(float64(2*x+1)*float64(u)*math.Pi/16)
		}
	}
}

// clip8b clamps v to the pixel range [0, 255].
func clip8b(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Default is the package's reference Idct8x8 implementation.
type Default struct{}

// IDCT performs the separable inverse DCT over coeff (a dequantized,
// raster-ordered 8x8 block whose DC term already carries the pixel-level
// bias the block decoder folds in via (dc<<2)+1024) and writes clipped
// pixel values into dst at stride.
func (Default) IDCT(coeff *[64]int16, dst []byte, stride int) {
	var tmp [8][8]float64

	// Row pass: for each output row y, inverse-transform along x.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			var sum float64
			for u := 0; u < 8; u++ {
				sum += basis[u][x] * float64(coeff[y*8+u])
			}
			tmp[y][x] = sum
		}
	}

	// Column pass: inverse-transform the row-pass output along y, then
	// clip and store.
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			var sum float64
			for v := 0; v < 8; v++ {
				sum += basis[v][y] * tmp[v][x]
			}
			dst[y*stride+x] = clip8b(int(math.Round(sum)))
		}
	}
}
