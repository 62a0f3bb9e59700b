// Copyright (c) 2026, the huffcodec authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// CodeBuilder builds length-limited canonical Huffman codes. The zero value
// is ready to use. A builder retains its per-length scratch between calls,
// so reusing one across many code constructions avoids repeated allocation;
// a builder must not be used from multiple goroutines at once.
type CodeBuilder struct {
	lenCounts []uint32
	nextCodes []uint32
}

// Build constructs a canonical Huffman code for the alphabet 0..len(freqs)-1
// in which no codeword is longer than maxCodewordLen bits. The length of
// each symbol's codeword is written to lens, with 0 meaning the symbol had
// zero frequency and got no codeword, and the codewords themselves, right
// justified, are written to codewords. Both output slices must have
// len(freqs) entries.
//
// len(freqs) must be in [2, MaxSyms], and frequencies must fit in 32 -
// numSymbolBits bits. For the code to be complete when many symbols are
// used, 1<<maxCodewordLen should be at least len(freqs).
//
// The same frequencies always produce the same code: ties during tree
// construction are broken deterministically (see buildTree), which is what
// lets an encoder and a decoder derive identical codes from identical
// statistics without transmitting anything but the statistics.
func (b *CodeBuilder) Build(freqs []uint32, maxCodewordLen int, lens []uint8, codewords []uint32) {
	numSyms := len(freqs)
	if numSyms < 2 || numSyms > MaxSyms {
		panic("huffman: alphabet size out of range")
	}
	if maxCodewordLen < 1 || maxCodewordLen > 30 {
		panic("huffman: bad maximum codeword length")
	}

	// The working array shares storage with the codeword output.
	a := codewords[:numSyms]

	numUsed := sortSymbols(freqs, lens, a)

	if numUsed == 0 {
		// Empty code. sortSymbols already zeroed every length.
		return
	}

	if numUsed == 1 {
		// A single used symbol still needs a decodable code, and the
		// smallest complete code has two codewords. Pair the used
		// symbol with symbol 0 (or symbol 1 if the used symbol is 0);
		// the lesser symbol takes codeword 0 so the code is canonical.
		sym := int(a[0] & symbolMask)
		partner := sym
		if partner == 0 {
			partner = 1
		}
		codewords[0] = 0
		lens[0] = 1
		codewords[partner] = 1
		lens[partner] = 1
		return
	}

	buildTree(a[:numUsed])

	if cap(b.lenCounts) < maxCodewordLen+1 {
		b.lenCounts = make([]uint32, maxCodewordLen+1)
		b.nextCodes = make([]uint32, maxCodewordLen+1)
	} else {
		b.lenCounts = b.lenCounts[:maxCodewordLen+1]
		b.nextCodes = b.nextCodes[:maxCodewordLen+1]
	}

	computeLengthCounts(a[:numUsed], numUsed-2, b.lenCounts, maxCodewordLen)
	genCodewords(a, lens, b.lenCounts, b.nextCodes, maxCodewordLen)
}

// genCodewords converts per-length codeword counts into final per-symbol
// lengths and canonical codewords. On entry the low bits of a still hold
// the symbols sorted by (frequency, symbol value); on return a holds the
// codewords for the whole alphabet.
func genCodewords(a []uint32, lens []uint8, lenCounts, nextCodes []uint32, maxCodewordLen int) {
	// Longest codewords go to the least frequent symbols: hand out the
	// lengths in decreasing order along the sorted symbol order.
	i := 0
	for length := maxCodewordLen; length >= 1; length-- {
		for count := lenCounts[length]; count > 0; count-- {
			lens[a[i]&symbolMask] = uint8(length)
			i++
		}
	}

	// nextCodes[len] enumerates codewords of each length starting from the
	// lexicographically first. Assigning them in symbol order yields the
	// canonical code.
	nextCodes[0] = 0
	nextCodes[1] = 0
	for length := 2; length <= maxCodewordLen; length++ {
		nextCodes[length] = (nextCodes[length-1] + lenCounts[length-1]) << 1
	}

	for sym := range a {
		a[sym] = nextCodes[lens[sym]]
		nextCodes[lens[sym]]++
	}
}

// MakeCanonicalCode builds a length-limited canonical Huffman code for the
// alphabet 0..len(freqs)-1 and returns the per-symbol codeword lengths and
// codewords. Codeword entries for unused symbols are meaningless. See
// CodeBuilder.Build for the input constraints.
func MakeCanonicalCode(freqs []uint32, maxCodewordLen int) (lens []uint8, codewords []uint32) {
	lens = make([]uint8, len(freqs))
	codewords = make([]uint32, len(freqs))
	new(CodeBuilder).Build(freqs, maxCodewordLen, lens, codewords)
	return lens, codewords
}
