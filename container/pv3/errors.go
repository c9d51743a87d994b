/*
DESCRIPTION
  errors.go defines the sentinel errors returned by the PV3/PV4 container
  demuxer.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pv3 implements a demuxer for the Earthsoft PV3/PV4 digital video
// container: the fixed file header, per-frame audio/video records, the
// optional sidecar seek index, and IEC 61937 non-PCM audio burst detection.
package pv3

import "errors"

var (
	// ErrInvalidData indicates the stream does not conform to the PV3/PV4
	// container syntax (bad magic, corrupt record).
	ErrInvalidData = errors.New("pv3: invalid data")

	// ErrUnsupported indicates a syntactically valid but unsupported
	// configuration: a codec version other than 2, an audio sample rate
	// above the supported maximum, or an IEC 61937 data type this
	// demuxer does not decode.
	ErrUnsupported = errors.New("pv3: unsupported")
)
