/*
DESCRIPTION
  decode.go implements the run/level symbol walk over the VLC trie, including
  the two escape forms and end-of-block detection, following
  esdv_decode_dctblock's VLC walk in the original decoder.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package vlc

import (
	"errors"
	"fmt"

	"github.com/earthsoftdv/pv3/codec/pv3/bits"
)

// ErrInvalidCode is returned when a bit sequence does not correspond to any
// trie path (a null child is reached before a leaf).
var ErrInvalidCode = errors.New("vlc: invalid code")

// codeWidth is the number of bits looked ahead per symbol: the 15-bit
// canonical code width plus one bit, so a sign bit following a short code
// is already available without a second peek.
const codeWidth = 15 + 1

// Symbol is one decoded (run, level) pair from an AC coefficient stream, or
// the end-of-block marker.
type Symbol struct {
	Run   int
	Level int
	EOB   bool
}

// Decode reads one VLC symbol from r, consuming exactly as many bits as the
// matched code requires (including any trailing sign bit or escape
// payload).
func Decode(r *bits.Reader) (Symbol, error) {
	root, err := tree()
	if err != nil {
		return Symbol{}, err
	}

	peek := r.PeekBits(codeWidth)
	mask := uint64(1) << uint(codeWidth-1)

	cur := root
	length := 0
	for {
		if peek&mask != 0 {
			cur = cur.one
		} else {
			cur = cur.zero
		}
		if cur == nil {
			return Symbol{}, fmt.Errorf("%w: bits=%#04x", ErrInvalidCode, peek)
		}
		mask >>= 1
		length++
		if cur.zero == nil && cur.one == nil {
			break
		}
	}

	var run, level int
	switch cur.bits {
	case 13:
		length = 13
		level = 0
		run = int((peek >> uint(codeWidth-13)) & 0x3f)
	case 15:
		length = 16
		run = 0
		magnitude := int((peek >> uint(codeWidth-16)) & 0x1ff)
		if magnitude&1 != 0 {
			level = -(magnitude >> 1)
		} else {
			level = magnitude >> 1
		}
	default:
		run = cur.run
		if cur.level != 0 {
			if peek&mask != 0 {
				level = -cur.level
			} else {
				level = cur.level
			}
			length++
		} else {
			level = cur.level
		}
	}

	if err := r.Skip(length); err != nil {
		return Symbol{}, fmt.Errorf("vlc: %w", err)
	}

	return Symbol{Run: run, Level: level, EOB: length == 4 && level == 0}, nil
}
