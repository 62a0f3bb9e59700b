// Copyright (c) 2026, the huffcodec authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// computeLengthCounts walks the stripped-down tree produced by buildTree and
// fills lenCounts[1..maxCodewordLen] with the number of codewords of each
// length, applying the length-limited constraint. The parent links in the
// high bits of a are overwritten with node depths; the low bits are
// preserved. rootIdx is the index of the root node in a.
//
// A parent always has a greater index than its children, so iterating the
// non-leaf nodes in reverse visits every parent before its children and one
// pass suffices to turn parent links into depths. The counts start from the
// assumption that both children of the root are leaves (two codewords of
// length 1); every non-leaf node visited then revokes one assumed leaf at
// its own depth and adds two assumed leaves one level deeper.
//
// When a depth would reach maxCodewordLen, the node is counted at the
// greatest shorter length that still has a codeword to give up. This is not
// the optimal way to build a length-limited code, just a cheap one; the
// resulting lengths are what the on-disk formats were produced with, so the
// borrow policy is fixed.
func computeLengthCounts(a []uint32, rootIdx int, lenCounts []uint32, maxCodewordLen int) {
	for i := range lenCounts {
		lenCounts[i] = 0
	}
	lenCounts[1] = 2

	// Root depth is 0.
	a[rootIdx] &= symbolMask

	for node := rootIdx - 1; node >= 0; node-- {
		parent := a[node] >> numSymbolBits
		parentDepth := a[parent] >> numSymbolBits
		depth := parentDepth + 1

		a[node] = a[node]&symbolMask | depth<<numSymbolBits

		length := int(depth)
		if length >= maxCodewordLen {
			length = maxCodewordLen
			for {
				length--
				if lenCounts[length] != 0 {
					break
				}
			}
		}

		// This node is not a leaf after all; its two children are
		// assumed to be leaves one level deeper.
		lenCounts[length]--
		lenCounts[length+1] += 2
	}
}
