/*
DESCRIPTION
  wire.go holds small big-endian field readers shared by the file header,
  frame header and sidecar index parsers.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pv3

// readUint24 reads a 24-bit big-endian unsigned integer from the first
// three bytes of b.
func readUint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// readUint48 reads the accum_audio_frame_count field: two consecutive
// 24-bit big-endian reads combined as hi<<24 | lo. This is equivalent to
// treating the 6 bytes as one 48-bit big-endian integer.
func readUint48(b []byte) uint64 {
	hi := uint64(readUint24(b))
	lo := uint64(readUint24(b[3:]))
	return hi<<24 | lo
}
