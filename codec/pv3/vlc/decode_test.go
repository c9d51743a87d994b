/*
DESCRIPTION
  decode_test.go provides testing for functionality in decode.go and tree.go.

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
	"strconv"
	"strings"
	"testing"

	"github.com/earthsoftdv/pv3/codec/pv3/bits"
)

// bitsFromString packs a string of '0'/'1' characters (MSB first) into
// bytes, right-padding the final byte with zero bits.
func bitsFromString(s string) []byte {
	s = strings.ReplaceAll(s, " ", "")
	n := (len(s) + 7) / 8
	buf := make([]byte, n)
	for i, c := range s {
		if c == '1' {
			buf[i/8] |= 1 << uint(7-i%8)
		}
	}
	return buf
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		bitstr  string
		want    Symbol
		wantLen int
	}{
		{
			name:    "short code positive level",
			bitstr:  "00" + "0" + "00000000000000",
			want:    Symbol{Run: 0, Level: 1, EOB: false},
			wantLen: 3,
		},
		{
			name:    "short code negative level",
			bitstr:  "00" + "1" + "00000000000000",
			want:    Symbol{Run: 0, Level: -1, EOB: false},
			wantLen: 3,
		},
		{
			name:    "end of block",
			bitstr:  "0110" + "000000000000",
			want:    Symbol{Run: 0, Level: 0, EOB: true},
			wantLen: 4,
		},
		{
			name:    "escape run zero, run=6",
			bitstr:  "1111110" + "000110",
			want:    Symbol{Run: 6, Level: 0, EOB: false},
			wantLen: 13,
		},
		{
			name:    "escape run zero, run=61",
			bitstr:  "1111110" + "111101",
			want:    Symbol{Run: 61, Level: 0, EOB: false},
			wantLen: 13,
		},
		{
			name:    "escape zero level, level=-23",
			bitstr:  "1111111" + "000101111",
			want:    Symbol{Run: 0, Level: -23, EOB: false},
			wantLen: 16,
		},
		{
			name:    "escape zero level, level=+23",
			bitstr:  "1111111" + "000101110",
			want:    Symbol{Run: 0, Level: 23, EOB: false},
			wantLen: 16,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := bits.NewReader(bitsFromString(test.bitstr))
			got, err := Decode(r)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if got != test.want {
				t.Errorf("Decode() = %+v, want %+v", got, test.want)
			}
			if r.BitsRead() != test.wantLen {
				t.Errorf("BitsRead() = %d, want %d", r.BitsRead(), test.wantLen)
			}
		})
	}
}

func TestDecodeTruncatedEscape(t *testing.T) {
	// A run-escape prefix with no payload bits following it: the trie walk
	// succeeds (the 7-bit prefix is itself a leaf), but consuming the
	// escape's 13-bit total length then runs past the end of the buffer.
	r := bits.NewReader(bitsFromString("1111110"))
	_, err := Decode(r)
	if err == nil {
		t.Fatalf("expected error for truncated escape code, got nil")
	}
}

func TestDecodeAllCanonicalEntries(t *testing.T) {
	seen := map[[2]int]bool{}
	for i := 0; i < nbVLC; i++ {
		bitsLen := int(vlcBits[i])
		if bitsLen == 13 || bitsLen == 15 {
			continue // escapes are exercised directly above.
		}
		run := int(vlcRun[i])
		level := int(vlcLevel[i])
		key := [2]int{run, level}
		if seen[key] {
			continue
		}
		seen[key] = true

		code := uint16(vlcCode[i])
		bitstr := strconv.FormatInt(int64(code), 2)
		for len(bitstr) < bitsLen {
			bitstr = "0" + bitstr
		}
		if level != 0 {
			bitstr += "0" // positive sign.
		}
		bitstr += strings.Repeat("0", 24)

		r := bits.NewReader(bitsFromString(bitstr))
		got, err := Decode(r)
		if err != nil {
			t.Fatalf("entry %d: Decode returned error: %v", i, err)
		}
		wantEOB := bitsLen == 4 && level == 0
		want := Symbol{Run: run, Level: level, EOB: wantEOB}
		if got != want {
			t.Errorf("entry %d: Decode() = %+v, want %+v", i, got, want)
		}
	}
}

func TestDecodeErrInvalidCodeIsSentinel(t *testing.T) {
	if !errors.Is(fmt.Errorf("wrap: %w", ErrInvalidCode), ErrInvalidCode) {
		t.Fatalf("ErrInvalidCode does not unwrap to itself through fmt.Errorf")
	}
}
