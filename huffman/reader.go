// Copyright (c) 2026, the huffcodec authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "github.com/32bitkid/bitreader"

// ReadSymbol decodes the next symbol from br, which must deliver the
// bitstream most-significant-bit first. It peeks TableBits bits to index
// the root table; a direct hit skips the codeword's length and returns the
// symbol, while a subtable entry costs a further peek of the subtable's bit
// width before the remainder of the codeword is skipped.
//
// Peeking can look past the final codeword of a stream, so the caller must
// ensure the reader can supply TableBits bits of lookahead beyond the last
// codeword, for example by zero-padding the underlying stream. Reader
// errors are returned as-is.
func (t *DecodeTable) ReadSymbol(br bitreader.BitReader) (int, error) {
	idx, err := br.Peek32(uint(t.tableBits))
	if err != nil {
		return 0, err
	}
	entry := t.entries[idx]
	if entry&subtableFlag == 0 {
		if err := br.Skip(uint(entry & entryLenMask)); err != nil {
			return 0, err
		}
		return int(entry >> entryLenBits), nil
	}

	// The root lookup consumed tableBits of the codeword; the subtable
	// resolves the rest.
	if err := br.Skip(uint(t.tableBits)); err != nil {
		return 0, err
	}
	subtablePos := (entry &^ subtableFlag) >> entryLenBits
	subtableBits := entry & entryLenMask
	idx, err = br.Peek32(uint(subtableBits))
	if err != nil {
		return 0, err
	}
	entry = t.entries[subtablePos+idx]
	if err := br.Skip(uint(entry & entryLenMask)); err != nil {
		return 0, err
	}
	return int(entry >> entryLenBits), nil
}
