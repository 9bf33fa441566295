// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package charset summarizes the functions for mapping between
// key characters and subtrie slots.
//
// Only the characters of Alphabet have a slot. The slots are numbered
// from 1 to Width-1 in Alphabet order, slot 0 is reserved for the
// value stored under the empty remaining key.
package charset

import "sync"

// Alphabet lists all characters allowed in keys, in slot order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Width is the number of slots in a subtrie, one per allowed
// character plus the reserved terminal slot 0.
const Width = len(Alphabet) + 1

// TerminalSlot holds the value for the empty remaining key.
const TerminalSlot = 0

// slotTable maps a byte to its slot, 0 means no slot.
// Built exactly once on first use, never written afterwards.
var slotTable = sync.OnceValue(func() *[256]uint8 {
	tbl := new([256]uint8)
	for i := range len(Alphabet) {
		tbl[Alphabet[i]] = uint8(i + 1)
	}
	return tbl
})

// Slot returns the slot index for c and true,
// or 0 and false if c is not in the Alphabet.
func Slot(c byte) (uint8, bool) {
	s := slotTable()[c]
	return s, s != TerminalSlot
}

// Char is the inverse of Slot, it panics on the terminal slot
// or a slot out of range.
func Char(slot uint8) byte {
	if slot == TerminalSlot || int(slot) >= Width {
		panic("charset: no character for slot")
	}
	return Alphabet[slot-1]
}

// Split decomposes a non-empty key into its head character
// and the remaining suffix.
func Split(key string) (head byte, tail string) {
	return key[0], key[1:]
}

// Valid reports whether every byte of key has a slot.
// The empty key is valid.
func Valid(key string) bool {
	tbl := slotTable()
	for i := range len(key) {
		if tbl[key[i]] == TerminalSlot {
			return false
		}
	}
	return true
}
