package hashtab

import (
	"fmt"

	"github.com/wishedeom/hashtab/crt"
	"github.com/wishedeom/hashtab/internal/model"
)

// Resize - Rebuilds the table at a new requested size, keeping the current schemes.
// The requested size is rounded up to the next prime and every live entry is re-inserted
// into the fresh table; tombstones are discarded and all derived state (compressor
// coefficients, collision resolver, collision statistics) is recomputed.
//   - newSize is the requested capacity and must be positive and at least the current
//     number of entries
//
// It returns an error of type crt.InvalidArgument if newSize is out of range.
func (H *HashTable) Resize(newSize int64) (err error) {
	return H.resizeInternal(newSize, H.collisionScheme, H.emptyScheme)
}

// ResizeWithSchemes - Rebuilds the table at a new requested size with new collision
// handling and empty marker schemes given as single character codes.
//   - newSize is the requested capacity and must be positive and at least the current
//     number of entries
//   - collisionCode is 'D' for double hashing or 'Q' for quadratic probing
//   - emptyCode is 'A' for available, 'N' for negative or 'R' for replace
//
// It returns an error of type crt.InvalidArgument if newSize is out of range or a code
// is not recognized.
func (H *HashTable) ResizeWithSchemes(newSize int64, collisionCode, emptyCode byte) (err error) {
	collisionScheme, err := crt.ParseCollisionScheme(collisionCode)
	if err != nil {
		return
	}
	emptyScheme, err := crt.ParseEmptyScheme(emptyCode)
	if err != nil {
		return
	}

	return H.resizeInternal(newSize, collisionScheme, emptyScheme)
}

// Reconfigure - Rebuilds the table at its current size with new schemes. This is the way
// to change the collision handling scheme on a populated table: the rebuild starts from
// an empty sibling, so the empty-table restriction of SetCollisionHandlingScheme does
// not apply.
//   - collisionCode is 'D' for double hashing or 'Q' for quadratic probing
//   - emptyCode is 'A' for available, 'N' for negative or 'R' for replace
//
// It returns an error of type crt.InvalidArgument if a code is not recognized.
func (H *HashTable) Reconfigure(collisionCode, emptyCode byte) (err error) {
	return H.ResizeWithSchemes(H.size, collisionCode, emptyCode)
}

// SetCollisionHandlingScheme - Switches the collision handling scheme in place.
// Probe sequences already laid down in a populated table would be unreadable under a
// different scheme, so the switch is only permitted while the table is empty.
//   - code is 'D' for double hashing or 'Q' for quadratic probing
//
// It returns an error of type crt.InvalidArgument if the code is not recognized, or of
// type crt.InvalidState if the table is not empty.
func (H *HashTable) SetCollisionHandlingScheme(code byte) (err error) {
	collisionScheme, err := crt.ParseCollisionScheme(code)
	if err != nil {
		return
	}

	if !H.IsEmpty() {
		err = crt.NewInvalidState("hash table must be empty to change the collision handling scheme")
		return
	}

	if collisionScheme == H.collisionScheme {
		return
	}

	resolver, err := newResolver(H.oracle, collisionScheme, H.size)
	if err != nil {
		return
	}

	H.collisionScheme = collisionScheme
	H.resolver = resolver

	return
}

// SetEmptyMarkerScheme - Switches the empty marker scheme, converting every slot that
// counts as formerly occupied under the old scheme into the equivalent representation
// under the new one. Switching to the available or negative scheme converts tombstones
// slot by slot; switching to the replace scheme has no tombstone representation to
// convert to, so the table is rebuilt in place, which discards tombstones and lays every
// probe sequence down afresh.
//   - code is 'A' for available, 'N' for negative or 'R' for replace
//
// It returns:
//   - changed is true if the scheme actually changed
//   - err is an error of type crt.InvalidArgument if the code is not recognized
func (H *HashTable) SetEmptyMarkerScheme(code byte) (changed bool, err error) {
	emptyScheme, err := crt.ParseEmptyScheme(code)
	if err != nil {
		return
	}

	if emptyScheme == H.emptyScheme {
		return
	}

	if emptyScheme == crt.Replace {
		err = H.resizeInternal(H.size, H.collisionScheme, emptyScheme)
		if err != nil {
			return
		}
		changed = true
		return
	}

	oldScheme := H.emptyScheme
	for i := range H.slots {
		if model.SlotStatus(H.slots[i], oldScheme) != model.SlotDeleted {
			continue
		}

		switch emptyScheme {
		case crt.Available:
			H.slots[i] = model.Slot{State: model.SlotDeleted}
		case crt.Negative:
			// An available tombstone has no key left to negate; the bare marker
			// character stands in for it.
			key := H.slots[i].Key
			if key == "" {
				key = "-"
			}
			H.slots[i] = model.Slot{State: model.SlotOccupied, Key: key}
		}
	}

	H.emptyScheme = emptyScheme
	changed = true

	return
}

// resizeInternal - Validates the requested size, builds a fresh table state and installs
// it. The fresh state is fully constructed before anything on the receiver changes, so a
// failed resize leaves the table untouched.
func (H *HashTable) resizeInternal(newSize int64, collisionScheme, emptyScheme int) (err error) {
	if newSize < 1 {
		err = crt.NewInvalidArgument("new size must be a positive integer")
		return
	}
	if newSize < H.elementCount {
		err = crt.NewInvalidArgument(fmt.Sprintf("new size %d is below the current number of entries %d", newSize, H.elementCount))
		return
	}

	rebuilt, err := H.rebuild(newSize, collisionScheme, emptyScheme)
	if err != nil {
		err = fmt.Errorf("error while rebuilding table for resize: %w", err)
		return
	}

	H.install(rebuilt)

	return
}

// rebuild - Builds a brand-new table at the requested size and schemes and fills it with
// every live entry of the receiver. The threshold-triggered rehash is suppressed while
// filling; a probe-exhausted insert still grows the fresh table, so the rebuild always
// terminates with every entry placed.
func (H *HashTable) rebuild(newSize int64, collisionScheme, emptyScheme int) (fresh *HashTable, err error) {
	fresh, err = NewHashTableWithConfig(Config{
		InitialSize:        newSize,
		CollisionScheme:    collisionScheme,
		EmptyScheme:        emptyScheme,
		RehashThreshold:    H.rehashThreshold,
		ExpandByIncrement:  H.expandByIncrement,
		ExpansionFactor:    H.expansionFactor,
		ExpansionIncrement: H.expansionIncrement,
		Hasher:             H.hasher,
		Oracle:             H.oracle,
	})
	if err != nil {
		return
	}

	fresh.rehashing = true
	defer func() { fresh.rehashing = false }()

	for i := range H.slots {
		if model.SlotStatus(H.slots[i], H.emptyScheme) != model.SlotOccupied {
			continue
		}
		_, _, err = fresh.Put(H.slots[i].Key, H.slots[i].Value)
		if err != nil {
			fresh = nil
			return
		}
	}

	return
}

// install - Atomically swaps the receiver's state for the rebuilt table's state.
// Expansion policy, threshold, hasher and oracle are shared already; everything derived
// from the size or the schemes comes from the rebuilt table.
func (H *HashTable) install(rebuilt *HashTable) {
	H.slots = rebuilt.slots
	H.size = rebuilt.size
	H.elementCount = rebuilt.elementCount
	H.collisionScheme = rebuilt.collisionScheme
	H.emptyScheme = rebuilt.emptyScheme
	H.compressor = rebuilt.compressor
	H.resolver = rebuilt.resolver
}
