package hashtab

import (
	"fmt"

	"github.com/wishedeom/hashtab/crt"
	"github.com/wishedeom/hashtab/internal/model"
)

// maxExpandRetries - Number of times a put is allowed to expand the table after
// exhausting a probe sequence before giving up. Each retry grows capacity, so hitting
// this limit means the probe sequence itself is broken.
const maxExpandRetries = 8

// noSlot - Sentinel index for "no candidate slot found yet"
const noSlot int64 = -1

// Put - Inserts a key/value pair, or replaces the value if the key is already present.
//   - key is the entry's key
//   - value is the entry's value
//
// It returns:
//   - previous is the value the key held before the call, or the empty string
//   - existed is true if the key was already present and its value was replaced
//   - err is a standard error, if something went wrong
//
// A put can never fail because the table is full: if the probe sequence is exhausted
// without finding a usable slot the table expands and the put is retried.
func (H *HashTable) Put(key, value string) (previous string, existed bool, err error) {
	rawHash := H.hasher.HashKey(key)

	for attempt := 0; attempt < maxExpandRetries; attempt++ {
		var index int64
		var ok bool
		index, existed, ok = H.probeForPut(rawHash, key)
		if !ok {
			err = H.expand()
			if err != nil {
				err = fmt.Errorf("error while expanding table after exhausted probe sequence: %w", err)
				return
			}
			continue
		}

		slot := &H.slots[index]
		if existed {
			previous = slot.Value
			slot.Value = value
			return
		}

		*slot = model.Slot{State: model.SlotOccupied, Key: key, Value: value}
		H.elementCount++
		err = H.maybeRehash()

		return
	}

	err = crt.ProbingAlgorithm{}

	return
}

// Get - Returns the value stored under key.
//   - key is the entry's key
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type
//     crt.NoRecordFound is also returned
//   - err is either of type crt.NoRecordFound or a standard error
func (H *HashTable) Get(key string) (value string, err error) {
	index, err := H.probeForLookup(H.hasher.HashKey(key), key)
	if err != nil {
		return
	}

	value = H.slots[index].Value

	return
}

// Remove - Removes the entry stored under key and returns its value. The slot the entry
// occupied is converted according to the active empty marker scheme.
//   - key is the entry's key
//
// It returns:
//   - value is the value of the removed entry if found, if not found an error of type
//     crt.NoRecordFound is also returned
//   - err is of type crt.NoRecordFound if the key is absent, of type crt.InvalidState
//     for a removal from an empty table under the replace scheme, or a standard error
func (H *HashTable) Remove(key string) (value string, err error) {
	if H.emptyScheme == crt.Replace && H.IsEmpty() {
		err = crt.NewInvalidState("cannot remove from an empty hash table under the replace scheme")
		return
	}

	rawHash := H.hasher.HashKey(key)
	index, err := H.probeForLookup(rawHash, key)
	if err != nil {
		return
	}

	slot := &H.slots[index]
	value = slot.Value

	switch H.emptyScheme {
	case crt.Available:
		*slot = model.Slot{State: model.SlotDeleted}
	case crt.Negative:
		slot.Key = "-" + slot.Key
	case crt.Replace:
		*slot = model.Slot{}
	}
	H.elementCount--

	if H.emptyScheme == crt.Replace {
		H.backShift(rawHash, index)
	}

	err = H.maybeRehash()

	return
}

// probeForPut - Runs the collision resolution loop for an insert or update.
// The first tombstone seen is remembered so a removed slot can be reused, but the scan
// keeps going until an empty slot or a key match settles whether the key is already in
// the table.
//
// It returns:
//   - index is the slot to write to
//   - matched is true if the slot already holds the key
//   - ok is false if the probe sequence was exhausted without finding a usable slot
func (H *HashTable) probeForPut(rawHash int64, key string) (index int64, matched bool, ok bool) {
	H.resolver.Reset(rawHash)

	tombstone := noSlot
	iMax := H.size * probeFailsafeFactor

	seen := make([]bool, H.size)
	var distinct int64
	for i := int64(0); i < iMax; i++ {
		idx := H.compressor.Compress(H.resolver.NextHash())
		slot := &H.slots[idx]

		switch model.SlotStatus(*slot, H.emptyScheme) {
		case model.SlotEmpty:
			if tombstone != noSlot {
				return tombstone, false, true
			}
			return idx, false, true

		case model.SlotOccupied:
			if slot.Key == key {
				return idx, true, true
			}
			slot.Collisions++

		case model.SlotDeleted:
			if tombstone == noSlot {
				tombstone = idx
			}
		}

		// The compression works modulo a prime above the table size, so a probe
		// sequence can land on the same slot more than once; only distinct slots count
		// toward coverage. Once every slot has been inspected a key match is no longer
		// possible; settle for a tombstone if one was seen.
		if !seen[idx] {
			seen[idx] = true
			distinct++
		}
		if distinct >= H.size && tombstone != noSlot {
			return tombstone, false, true
		}
	}

	return noSlot, false, false
}

// probeForLookup - Runs the collision resolution loop for a get or remove. Tombstones
// are skipped so that removals do not break probe sequences for surviving keys; the scan
// stops at the first never-used slot, or once it has inspected as many distinct occupied
// slots as there are entries in the table. A slot revisited by the probe sequence is not
// counted again, since the bound is against the number of entries, not probes.
func (H *HashTable) probeForLookup(rawHash int64, key string) (index int64, err error) {
	H.resolver.Reset(rawHash)

	iMax := H.size * probeFailsafeFactor

	seen := make([]bool, H.size)
	var elementsSearched int64
	for i := int64(0); i < iMax && elementsSearched < H.elementCount; i++ {
		idx := H.compressor.Compress(H.resolver.NextHash())

		switch model.SlotStatus(H.slots[idx], H.emptyScheme) {
		case model.SlotEmpty:
			err = crt.NoRecordFound{}
			return

		case model.SlotOccupied:
			if H.slots[idx].Key == key {
				index = idx
				return
			}
			if !seen[idx] {
				seen[idx] = true
				elementsSearched++
			}
		}
	}

	err = crt.NoRecordFound{}

	return
}

// backShift - Repairs the gap left by a removal under the replace scheme. The removed
// entry's own probe sequence is replayed from the start; every occupied slot past the
// gap on that sequence is lifted and re-inserted, so no lookup along the sequence can be
// cut short by the cleared slot.
//
// Structural failures here are coding defects, not user errors, and panic.
func (H *HashTable) backShift(rawHash int64, gap int64) {
	H.resolver.Reset(rawHash)

	iMax := H.size * probeFailsafeFactor

	i := int64(0)
	for ; i < iMax; i++ {
		if H.compressor.Compress(H.resolver.NextHash()) == gap {
			break
		}
	}
	if i >= iMax {
		panic("hashtab: removed entry's probe sequence never reaches its own slot")
	}

	var lifted []model.Slot
	terminated := false
	for i++; i < iMax; i++ {
		idx := H.compressor.Compress(H.resolver.NextHash())
		if idx == gap {
			// The sequence has come full circle; every occupied slot on it has been
			// lifted, so the gap itself now terminates lookups correctly.
			terminated = true
			break
		}

		slot := H.slots[idx]
		if slot.State == model.SlotEmpty {
			terminated = true
			break
		}
		if slot.State == model.SlotOccupied {
			lifted = append(lifted, slot)
			H.slots[idx] = model.Slot{}
			H.elementCount--
		}
	}
	if !terminated {
		panic("hashtab: no terminating empty slot found during replace scheme rollback")
	}

	for _, slot := range lifted {
		if _, _, err := H.Put(slot.Key, slot.Value); err != nil {
			panic(fmt.Sprintf("hashtab: re-insert failed during replace scheme rollback: %s", err))
		}
	}
}

// maybeRehash - Expands the table if the load factor has reached the rehash threshold.
// Suppressed while a rebuild is filling a fresh table, since the target size there is
// already decided.
func (H *HashTable) maybeRehash() (err error) {
	if H.rehashing || H.LoadFactor() < H.rehashThreshold {
		return
	}

	return H.expand()
}

// expand - Grows the table by the configured expansion policy, keeping current schemes
func (H *HashTable) expand() (err error) {
	var newSize int64
	if H.expandByIncrement {
		newSize = H.size + H.expansionIncrement
	} else {
		newSize = int64(float64(H.size) * H.expansionFactor)
	}

	return H.resizeInternal(newSize, H.collisionScheme, H.emptyScheme)
}
