/*
DESCRIPTION
  tree.go builds the binary trie over the 378-entry VLC table once, lazily,
  behind a sync.Once, mirroring the guarded one-time table construction in
  the h.264 decoder's cavlc.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package vlc

import (
	"fmt"
	"sync"
)

// maxNodes bounds the trie: 89 canonical short codes plus one node for each
// of the two 7-bit escape prefixes, generously sized as in the original
// table (NB_VLC_USE).
const maxNodes = 190

// node is one trie node. A node with both children nil is a leaf and carries
// a decoded (run, level) pair, or one of the two escape markers in bits.
type node struct {
	zero, one *node
	level     int
	run       int
	bits      int // original code length; 13 and 15 mark the two escapes.
}

var (
	treeOnce sync.Once
	treeRoot *node
	treeErr  error
)

// tree returns the lazily-built trie root, building it on first use.
func tree() (*node, error) {
	treeOnce.Do(buildTree)
	return treeRoot, treeErr
}

func buildTree() {
	pool := make([]node, maxNodes)
	next := 1 // pool[0] is the root.
	root := &pool[0]

	var doneRun, doneLevel bool

	for i := 0; i < nbVLC; i++ {
		code := uint(vlcCode[i])
		bits := int(vlcBits[i])

		switch bits {
		case 13:
			// codeword (run, 0): leading 7 bits (1111110b) select this
			// escape, followed by 6 raw bits giving run in [6, 61].
			if doneRun {
				continue
			}
			bits = 7
			code = 0x7e
			doneRun = true
		case 15:
			// codeword (0, level): leading 7 bits (1111111b) select this
			// escape, followed by 8 raw magnitude bits and a sign bit.
			if doneLevel {
				continue
			}
			bits = 7
			code = 0x7f
			doneLevel = true
		}

		cur := root
		for l := bits - 1; ; l-- {
			bit := (code >> uint(l)) & 1
			if bit != 0 {
				if cur.one == nil {
					if next >= maxNodes {
						treeErr = fmt.Errorf("vlc: tree overflow building entry %d", i)
						return
					}
					cur.one = &pool[next]
					next++
				}
				cur = cur.one
			} else {
				if cur.zero == nil {
					if next >= maxNodes {
						treeErr = fmt.Errorf("vlc: tree overflow building entry %d", i)
						return
					}
					cur.zero = &pool[next]
					next++
				}
				cur = cur.zero
			}

			if l == 0 {
				cur.level = int(vlcLevel[i])
				cur.run = int(vlcRun[i])
				cur.bits = int(vlcBits[i])
				cur.zero = nil
				cur.one = nil
				break
			}
		}
	}

	treeRoot = root
}
