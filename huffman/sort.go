// Copyright (c) 2026, the huffcodec authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// sortSymbols sorts the symbols primarily by frequency and secondarily by
// symbol value, discarding symbols with zero frequency. The surviving
// symbols are written to symout as packed values (frequency in the high
// bits, symbol in the low bits), so comparing two packed values compares
// frequency first and symbol second. Zero-frequency symbols get their entry
// in lens set to 0 instead. Returns the number of symbols written to symout.
//
// Most frequencies tend to be low, so a counting sort over a limited number
// of buckets handles the bulk of the symbols; only the overflow bucket,
// which collects every frequency at or above the bucket count, needs a
// comparison sort.
func sortSymbols(freqs []uint32, lens []uint8, symout []uint32) int {
	numSyms := len(freqs)

	// About one counter per 4 symbols, rounded up to a multiple of 4.
	numCounters := ((numSyms+3)/4 + 3) &^ 3
	counters := make([]uint32, numCounters)

	for _, freq := range freqs {
		counters[min(int(freq), numCounters-1)]++
	}

	// Make the counters cumulative, ignoring the zero-th, which counted
	// symbols with zero frequency. As a side effect this computes the
	// number of used symbols.
	numUsed := 0
	for i := 1; i < numCounters; i++ {
		count := counters[i]
		counters[i] = uint32(numUsed)
		numUsed += int(count)
	}

	for sym, freq := range freqs {
		if freq != 0 {
			c := min(int(freq), numCounters-1)
			symout[counters[c]] = uint32(sym) | freq<<numSymbolBits
			counters[c]++
		} else {
			lens[sym] = 0
		}
	}

	// Only the overflow bucket is not yet ordered.
	heapsort(symout[counters[numCounters-2]:counters[numCounters-1]])

	return numUsed
}

// heapsort sorts a slice of packed values in ascending order, in place.
func heapsort(a []uint32) {
	for i := len(a)/2 - 1; i >= 0; i-- {
		siftDown(a, i, len(a))
	}
	for end := len(a) - 1; end >= 1; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, 0, end)
	}
}

func siftDown(a []uint32, root, end int) {
	v := a[root]
	for {
		child := root*2 + 1
		if child >= end {
			break
		}
		if child+1 < end && a[child+1] > a[child] {
			child++
		}
		if v >= a[child] {
			break
		}
		a[root] = a[child]
		root = child
	}
	a[root] = v
}
