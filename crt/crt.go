package crt

// DoubleHashing - Collision handling scheme where the probe step is derived from a secondary
// hash function modulo the largest prime below the table size
const DoubleHashing int = 1

// QuadraticProbing - Collision handling scheme where the probe offset grows with the square
// of the probe counter
const QuadraticProbing int = 2

// Available - Empty marker scheme where a removed slot is replaced by an explicit
// "available" marker
const Available int = 1

// Negative - Empty marker scheme where a removed slot keeps its entry but the key is
// rewritten with a leading '-'. A real key starting with '-' is indistinguishable from a
// removed one under this scheme, so such keys must not be used with it.
const Negative int = 2

// Replace - Empty marker scheme where a removed slot is cleared back to never-used and the
// gap is repaired by pulling back entries further along the removed entry's probe sequence
const Replace int = 3

// ParseCollisionScheme - Translates a single character collision handling scheme code to
// its internal constant.
//   - code is 'D' (or 'd') for double hashing, 'Q' (or 'q') for quadratic probing
//
// It returns an error of type InvalidArgument if the code is not recognized.
func ParseCollisionScheme(code byte) (scheme int, err error) {
	switch code {
	case 'D', 'd':
		scheme = DoubleHashing
	case 'Q', 'q':
		scheme = QuadraticProbing
	default:
		err = InvalidArgument{msg: "collision handling scheme code must be 'D' or 'Q'"}
	}

	return
}

// ParseEmptyScheme - Translates a single character empty marker scheme code to its
// internal constant.
//   - code is 'A' (or 'a') for available, 'N' (or 'n') for negative, 'R' (or 'r') for replace
//
// It returns an error of type InvalidArgument if the code is not recognized.
func ParseEmptyScheme(code byte) (scheme int, err error) {
	switch code {
	case 'A', 'a':
		scheme = Available
	case 'N', 'n':
		scheme = Negative
	case 'R', 'r':
		scheme = Replace
	default:
		err = InvalidArgument{msg: "empty marker scheme code must be 'A', 'N' or 'R'"}
	}

	return
}

// CollisionSchemeName - Returns a readable name for a collision handling scheme constant
func CollisionSchemeName(scheme int) string {
	switch scheme {
	case DoubleHashing:
		return "DoubleHashing"
	case QuadraticProbing:
		return "QuadraticProbing"
	default:
		return "Unknown"
	}
}

// EmptySchemeName - Returns a readable name for an empty marker scheme constant
func EmptySchemeName(scheme int) string {
	switch scheme {
	case Available:
		return "Available"
	case Negative:
		return "Negative"
	case Replace:
		return "Replace"
	default:
		return "Unknown"
	}
}
