// Copyright (c) 2026, the huffcodec authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// buildTree builds a stripped-down Huffman tree over the packed working
// array a, which must contain at least two entries whose high bits hold
// frequencies sorted in ascending order. Only the non-leaf nodes of the
// tree are produced, and only their parent links: on return the high bits
// of the first len(a)-1 entries hold the index of each node's parent, with
// entry len(a)-2 being the root. The low numSymbolBits bits of every entry
// are preserved untouched; they still hold the sorted symbol values, which
// have no relationship to the tree node occupying the same slot.
//
// No heap is needed. The untouched leaves (cursor i) are already in
// frequency order, and the non-leaf nodes are created in order of their
// combined frequency (cursor b), so the two lowest-frequency available
// items are always at the front of one of the two cursors. On a frequency
// tie the leaf is taken first; the adaptive coding formats rebuild this
// exact code on both sides from shared statistics, so the tie-break order
// is load-bearing and must not change.
func buildTree(a []uint32) {
	symCount := len(a)

	// i: next unvisited leaf, in ascending frequency order.
	// b: next parentless non-leaf, in ascending combined-frequency order;
	//    none exists while b == e.
	// e: next slot to allocate as a non-leaf.
	i, b, e := 0, 0, 0

	for {
		var m, n int

		// Pick the two lowest-frequency available entries.
		if i != symCount && (b == e || a[i]>>numSymbolBits <= a[b]>>numSymbolBits) {
			m = i
			i++
		} else {
			m = b
			b++
		}
		if i != symCount && (b == e || a[i]>>numSymbolBits <= a[b]>>numSymbolBits) {
			n = i
			i++
		} else {
			n = b
			b++
		}

		// Link both under a new non-leaf whose frequency is their sum.
		// Linking an entry taken via i sets a parent on what is still a
		// leaf slot, which is harmless: the slot is overwritten with a
		// non-leaf once e catches up to it.
		freqShifted := (a[m] &^ uint32(symbolMask)) + (a[n] &^ uint32(symbolMask))
		a[m] = a[m]&symbolMask | uint32(e)<<numSymbolBits
		a[n] = a[n]&symbolMask | uint32(e)<<numSymbolBits
		a[e] = a[e]&symbolMask | freqShifted
		e++

		if symCount-e <= 1 {
			// The one remaining entry is a leaf already linked to some
			// node; only the non-leaves matter from here on.
			return
		}
	}
}
