package model

import (
	"strings"

	"github.com/wishedeom/hashtab/crt"
)

// SlotEmpty - State indicating a slot that has never held an entry
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a live entry
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot whose entry was removed (a tombstone)
const SlotDeleted uint8 = 2

// Slot - One position in the bucket table. State is the stored representation; what a
// probe loop should make of the slot depends on the active empty marker scheme and is
// answered by SlotStatus, never by reading State directly.
//
// Collisions counts how many probe sequences for other keys have had to skip over this
// slot while it was occupied.
type Slot struct {
	State      uint8
	Key        string
	Value      string
	Collisions int64
}

// SlotStatus - Returns the effective state of a slot under the given empty marker scheme,
// one of SlotEmpty, SlotDeleted or SlotOccupied.
//
// This is the single source of truth for "is this slot usable" across put, get, remove
// and resize. Under the Negative scheme a tombstone is stored as an occupied slot whose
// key carries a leading '-', which makes a real key starting with '-' indistinguishable
// from a removed one; that ambiguity is part of the scheme's contract.
func SlotStatus(slot Slot, emptyScheme int) uint8 {
	switch slot.State {
	case SlotEmpty:
		return SlotEmpty
	case SlotDeleted:
		return SlotDeleted
	default:
		if emptyScheme == crt.Negative && strings.HasPrefix(slot.Key, "-") {
			return SlotDeleted
		}
		return SlotOccupied
	}
}
