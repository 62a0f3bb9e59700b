// Copyright (c) 2026, the huffcodec authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "errors"

var (
	// ErrOverSubscribed reports codeword lengths that together claim more
	// than the whole codespace. The input is corrupt.
	ErrOverSubscribed = errors.New("huffman: oversubscribed code")

	// ErrIncomplete reports codeword lengths that leave part of the
	// codespace unclaimed while still naming at least one symbol. The
	// input is corrupt. An entirely empty set of lengths is not an error.
	ErrIncomplete = errors.New("huffman: incomplete code")
)

// Decode table entry layout. An entry either resolves a symbol directly or
// redirects to a subtable; the flag bit tells the two apart.
//
//	| Name                       | Bits  |
//	| -------------------------- | ----- |
//	| Length / subtable bits     | 0-7   |
//	| Symbol / subtable offset   | 8-30  |
//	| Subtable flag              | 31    |
//
// For a direct root entry the length is the full codeword length; for a
// subtable entry it is the codeword length minus tableBits, since the root
// lookup already accounted for tableBits of input.
const (
	entryLenBits = 8
	entryLenMask = 1<<entryLenBits - 1
	subtableFlag = 1 << 31
)

func makeEntry(symOrOffset, length uint32) uint32 {
	return symOrOffset<<entryLenBits | length
}

// DecodeTable is a two-level lookup structure for decoding symbols encoded
// with a canonical Huffman code. The first 1<<tableBits entries form the
// root table, indexed by the next tableBits bits of input; codewords longer
// than tableBits resolve through subtables appended after the root.
//
// A DecodeTable is immutable once built and safe for concurrent readers.
type DecodeTable struct {
	entries   []uint32
	tableBits int
}

// TableBits returns the number of input bits that index the root table.
func (t *DecodeTable) TableBits() int { return t.tableBits }

// BuildDecodeTable builds a decode table for the canonical Huffman code
// described by lens, which gives the codeword length of each symbol in the
// alphabet 0..len(lens)-1, 0 meaning the symbol has no codeword. Every
// length must be at most maxCodewordLen, and tableBits, the log2 size of
// the root table, must not exceed maxCodewordLen.
//
// The lengths typically come from untrusted input, so lengths that do not
// describe a valid prefix code are reported as ErrOverSubscribed or
// ErrIncomplete rather than trusted. An all-zero lens is accepted: the
// resulting table decodes anything to symbol 0 consuming no bits, which
// keeps a malformed stream harmless.
func BuildDecodeTable(lens []uint8, tableBits, maxCodewordLen int) (*DecodeTable, error) {
	numSyms := len(lens)
	if tableBits < 1 || tableBits > maxCodewordLen {
		panic("huffman: bad table bits")
	}

	lenCounts := make([]uint32, maxCodewordLen+1)
	for _, l := range lens {
		lenCounts[l]++
	}

	// A codeword of length n claims 1/2^n of the codespace. Walking the
	// lengths in ascending order, the remainder tracks how much codespace
	// is left, scaled so one length-n codeword costs 1 at step n.
	remainder := int32(1)
	for length := 1; length <= maxCodewordLen; length++ {
		remainder = remainder<<1 - int32(lenCounts[length])
		if remainder < 0 {
			return nil, ErrOverSubscribed
		}
	}

	t := &DecodeTable{tableBits: tableBits}

	if remainder != 0 {
		if remainder != 1<<maxCodewordLen {
			return nil, ErrIncomplete
		}
		// Empty code. A well-formed stream never consults the table,
		// but a corrupt one may; all-zero entries decode to symbol 0
		// consuming 0 bits, which is good enough.
		t.entries = make([]uint32, 1<<tableBits)
		return t, nil
	}

	// Sort the symbols by (codeword length, symbol value) using the
	// length counts as bucket offsets.
	offsets := make([]uint32, maxCodewordLen+1)
	for length := 0; length < maxCodewordLen; length++ {
		offsets[length+1] = offsets[length] + lenCounts[length]
	}
	sortedSyms := make([]uint16, numSyms)
	for sym, l := range lens {
		sortedSyms[offsets[l]] = uint16(sym)
		offsets[l]++
	}
	// offsets[0] ended up as the count of unused symbols, which is where
	// the used symbols start in sortedSyms.
	symIdx := int(offsets[0])

	// Fill the root table shortest codewords first. A codeword of length
	// l <= tableBits owns 1<<(tableBits-l) consecutive entries, every
	// root index it is a prefix of.
	entries := make([]uint32, 1<<tableBits)
	pos := 0
	codewordLen := 1
	for stores := 1 << (tableBits - 1); stores != 0; stores >>= 1 {
		endSymIdx := symIdx + int(lenCounts[codewordLen])
		for ; symIdx < endSymIdx; symIdx++ {
			entry := makeEntry(uint32(sortedSyms[symIdx]), uint32(codewordLen))
			for n := stores; n > 0; n-- {
				entries[pos] = entry
				pos++
			}
		}
		codewordLen++
	}

	if symIdx == numSyms {
		// No codeword was longer than tableBits.
		t.entries = entries
		return t, nil
	}

	// The remaining codewords need subtables. Walk them in the same
	// sorted order, tracking the codeword value itself; each distinct
	// tableBits-bit prefix opens a new subtable. Codewords arrive in
	// lexicographic order and each new prefix starts at a suffix of zero,
	// so the subtables fill strictly sequentially.
	codeword := pos << 1
	subtablePos := 0
	subtablePrefix := -1
	subtableBits := 0
	for {
		for lenCounts[codewordLen] == 0 {
			codewordLen++
			codeword <<= 1
		}

		prefix := codeword >> (codewordLen - tableBits)
		if prefix != subtablePrefix {
			subtablePrefix = prefix

			// A codeword exceeding tableBits by n needs a subtable of
			// at least 1<<n entries, and more if fewer than 1<<n
			// codewords of that length remain: bring in longer
			// codewords until the subtable fills exactly. The
			// completeness check above guarantees this terminates.
			subtableBits = codewordLen - tableBits
			remainder = 1 << subtableBits
			for {
				remainder -= int32(lenCounts[tableBits+subtableBits])
				if remainder <= 0 {
					break
				}
				subtableBits++
				remainder <<= 1
			}

			subtablePos = len(entries)
			entries = append(entries, make([]uint32, 1<<subtableBits)...)

			// Point the root entry at the new subtable.
			entries[subtablePrefix] = subtableFlag |
				makeEntry(uint32(subtablePos), uint32(subtableBits))
		}

		// The subtable is indexed by subtableBits further bits, of which
		// this codeword pins only its remaining codewordLen-tableBits;
		// the rest are free, so the codeword owns a run of entries.
		entry := makeEntry(uint32(sortedSyms[symIdx]), uint32(codewordLen-tableBits))
		for n := 1 << (subtableBits - (codewordLen - tableBits)); n > 0; n-- {
			entries[subtablePos] = entry
			subtablePos++
		}

		lenCounts[codewordLen]--
		codeword++
		symIdx++
		if symIdx == numSyms {
			break
		}
	}

	t.entries = entries
	return t, nil
}
