// Copyright (c) 2026, the huffcodec authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"testing"

	"github.com/32bitkid/bitreader"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

// bitWriter packs codewords MSB-first into a byte buffer, the bit order
// ReadSymbol expects from its reader.
type bitWriter struct {
	buf  bytes.Buffer
	bits uint64
	n    uint
}

func (w *bitWriter) write(codeword uint32, length uint8) {
	w.bits = w.bits<<length | uint64(codeword)
	w.n += uint(length)
	for w.n >= 8 {
		w.n -= 8
		w.buf.WriteByte(byte(w.bits >> w.n))
	}
}

// finish flushes the final partial byte and appends zero padding so the
// decoder can always peek a full root index past the last codeword.
func (w *bitWriter) finish() []byte {
	if w.n > 0 {
		w.buf.WriteByte(byte(w.bits << (8 - w.n)))
		w.n = 0
	}
	w.buf.Write(make([]byte, 4))
	return w.buf.Bytes()
}

func TestBuildDecodeTableErrors(t *testing.T) {
	cases := []struct {
		name string
		lens []uint8
		err  error
	}{
		{"oversubscribed", []uint8{1, 1, 1}, ErrOverSubscribed},
		{"oversubscribed deep", []uint8{1, 2, 2, 2}, ErrOverSubscribed},
		{"incomplete", []uint8{1, 0, 0}, ErrIncomplete},
		{"incomplete deep", []uint8{1, 2, 0, 0}, ErrIncomplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildDecodeTable(tc.lens, 3, 8)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBuildDecodeTableEmpty(t *testing.T) {
	table, err := BuildDecodeTable([]uint8{0, 0, 0, 0}, 4, 8)
	require.NoError(t, err)

	// Whatever the input holds, an empty code decodes to symbol 0 without
	// consuming anything: the next real read still sees the first byte.
	br := bitreader.NewReader(bytes.NewReader([]byte{0xa5, 0xff}))
	for i := 0; i < 3; i++ {
		sym, err := table.ReadSymbol(br)
		require.NoError(t, err)
		require.Equal(t, 0, sym)
	}
	b, err := br.Read8(8)
	require.NoError(t, err)
	require.Equal(t, uint8(0xa5), b)
}

func TestDecodeTableSubtables(t *testing.T) {
	// Code {0: "0", 1: "10", 2: "110", 3: "111"} with a 2-bit root: the
	// prefix 11 cannot resolve directly and must redirect to a subtable.
	lens := []uint8{1, 2, 3, 3}
	table, err := BuildDecodeTable(lens, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, table.TableBits())
	require.Len(t, table.entries, 4+2)

	w := new(bitWriter)
	want := []int{3, 0, 2, 1, 0, 3}
	for _, sym := range want {
		w.write(mustCodeword(t, lens, sym), lens[sym])
	}

	br := bitreader.NewReader(bytes.NewReader(w.finish()))
	for _, sym := range want {
		got, err := table.ReadSymbol(br)
		require.NoError(t, err)
		require.Equal(t, sym, got)
	}
}

// mustCodeword regenerates the canonical codeword of one symbol from the
// length table alone.
func mustCodeword(t *testing.T, lens []uint8, sym int) uint32 {
	t.Helper()
	codeword := uint32(0)
	for length := uint8(1); length <= lens[sym]; length++ {
		if length > 1 {
			codeword <<= 1
		}
		for s, l := range lens {
			if l != length {
				continue
			}
			if length == lens[sym] && s == sym {
				return codeword
			}
			if length < lens[sym] || s < sym {
				codeword++
			}
		}
	}
	t.Fatalf("symbol %d has no codeword", sym)
	return 0
}

func TestRoundTrip(t *testing.T) {
	faker := gofakeit.New(7)

	builder := new(CodeBuilder)
	for trial := 0; trial < 50; trial++ {
		numSyms := faker.Number(2, 320)
		maxLen := 15
		tableBits := faker.Number(6, 11)
		freqs := make([]uint32, numSyms)
		for i := range freqs {
			if faker.Number(0, 2) > 0 {
				freqs[i] = uint32(faker.Number(1, 2000))
			}
		}

		lens := make([]uint8, numSyms)
		codewords := make([]uint32, numSyms)
		builder.Build(freqs, maxLen, lens, codewords)

		table, err := BuildDecodeTable(lens, tableBits, maxLen)
		require.NoError(t, err)

		// Feed every used symbol's codeword through the table and expect
		// the symbol back.
		w := new(bitWriter)
		var want []int
		for sym, l := range lens {
			if l == 0 {
				continue
			}
			w.write(codewords[sym], l)
			want = append(want, sym)
		}
		if want == nil {
			continue
		}

		br := bitreader.NewReader(bytes.NewReader(w.finish()))
		for _, sym := range want {
			got, err := table.ReadSymbol(br)
			require.NoError(t, err)
			require.Equal(t, sym, got, "trial %d: symbol mismatch", trial)
		}
	}
}

func TestRoundTripLongCodes(t *testing.T) {
	// A small root table under a deep code exercises subtable growth:
	// tableBits 4 with codewords up to 15 bits forces multi-level lookups
	// with expanded subtables.
	freqs := make([]uint32, 40)
	f := uint32(1)
	for i := range freqs {
		freqs[i] = f
		if i%3 == 2 {
			f *= 2
		}
	}
	lens, codewords := MakeCanonicalCode(freqs, 15)

	table, err := BuildDecodeTable(lens, 4, 15)
	require.NoError(t, err)

	w := new(bitWriter)
	for sym := range freqs {
		w.write(codewords[sym], lens[sym])
	}
	br := bitreader.NewReader(bytes.NewReader(w.finish()))
	for sym := range freqs {
		got, err := table.ReadSymbol(br)
		require.NoError(t, err)
		require.Equal(t, sym, got)
	}
}
