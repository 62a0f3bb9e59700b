// Copyright (c) 2026, the huffcodec authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman builds length-limited canonical Huffman codes from symbol
// frequencies and fast lookup tables for decoding bitstreams produced by
// such codes.
//
// The encode side works on a single array of packed 32-bit values shared
// with the codeword output. Each value carries a symbol in its low bits and
// a frequency (later a parent index, later a depth) in its high bits, which
// is what lets the sort, the tree construction, and the codeword generation
// all run in place without pointer-based tree nodes.
//
// The decode side consumes only codeword lengths. Codewords are never
// transmitted; they are regenerated from lengths by the canonical rule that
// a longer codeword never lexicographically precedes a shorter one and that
// codewords of equal length are ordered like their symbols.
package huffman

// Symbols occupy the low bits of each packed working value, so the alphabet
// size is capped by the number of bits reserved for them. Frequencies must
// fit in the remaining high bits (22 bits).
const (
	numSymbolBits = 10
	symbolMask    = 1<<numSymbolBits - 1

	// MaxSyms is the largest supported alphabet size.
	MaxSyms = 1 << numSymbolBits
)
