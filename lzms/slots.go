// Copyright (c) 2026, the huffcodec authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package lzms holds the LZMS slot-base tables shared between the
// compressor and the decompressor. Match offsets and lengths are coded as a
// slot symbol plus extra bits, and the table mapping slots to their base
// values is a fixed constant of the format, computed once at first use.
package lzms

import "sync"

const (
	// NumPositionSlots is the number of position (offset) slot symbols.
	NumPositionSlots = 799

	// NumLengthSlots is the number of length slot symbols.
	NumLengthSlots = 54
)

var (
	slotInit sync.Once

	// Indexed by slot; one extra entry holds a sentinel upper bound so
	// lookups need no length check.
	positionSlotBase [NumPositionSlots + 1]uint32
	lengthSlotBase   [NumLengthSlots + 1]uint32
)

// No explicit formula mapping slots to base values is known, but the delta
// between adjacent bases is an increasing power of 2, so the tables are
// stored as run lengths of each delta and expanded at startup.
var (
	positionSlotDeltaRunLens = [...]uint8{
		9, 0, 9, 7, 10, 15, 15, 20,
		20, 30, 33, 40, 42, 45, 60, 73,
		80, 85, 95, 105, 6,
	}

	lengthSlotDeltaRunLens = [...]uint8{
		27, 4, 6, 4, 5, 2, 1, 1,
		1, 1, 1, 0, 0, 0, 0, 0,
		1,
	}
)

func decodeDeltaRLE(slotBases []uint32, deltaRunLens []uint8) {
	delta := uint32(1)
	base := uint32(0)
	slot := 0
	for _, runLen := range deltaRunLens {
		for ; runLen > 0; runLen-- {
			base += delta
			slotBases[slot] = base
			slot++
		}
		delta <<= 1
	}
}

func computeSlotBases() {
	decodeDeltaRLE(positionSlotBase[:], positionSlotDeltaRunLens[:])
	positionSlotBase[NumPositionSlots] = 0x7fffffff

	decodeDeltaRLE(lengthSlotBase[:], lengthSlotDeltaRunLens[:])
	lengthSlotBase[NumLengthSlots] = 0x400108ab
}

func initSlotBases() {
	slotInit.Do(computeSlotBases)
}

func getSlot(value uint32, slotBases []uint32) int {
	slot := 0
	for slotBases[slot+1] <= value {
		slot++
	}
	return slot
}

// PositionSlot returns the slot whose range contains the match offset.
func PositionSlot(offset uint32) int {
	initSlotBases()
	return getSlot(offset, positionSlotBase[:])
}

// LengthSlot returns the slot whose range contains the match length.
func LengthSlot(length uint32) int {
	initSlotBases()
	return getSlot(length, lengthSlotBase[:])
}

// PositionSlotBase returns the lowest offset coded by the slot.
func PositionSlotBase(slot int) uint32 {
	initSlotBases()
	return positionSlotBase[slot]
}

// LengthSlotBase returns the lowest length coded by the slot.
func LengthSlotBase(slot int) uint32 {
	initSlotBases()
	return lengthSlotBase[slot]
}
