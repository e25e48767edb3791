package probe

import (
	"github.com/wishedeom/hashtab/crt"
	"github.com/wishedeom/hashtab/internal/prime"
)

// DoubleHasher - Double hashing collision resolution. The probe step is a secondary hash
// q - (rawHash mod q) with q the largest prime strictly below the table size, which keeps
// the step nonzero and below the table size.
type DoubleHasher struct {
	state
	q int64
}

// NewDoubleHasher - Returns a pointer to a new DoubleHasher instance bound to a table size.
//   - oracle is the shared prime oracle
//   - tableSize is the size of the associated hash table and must be at least 3 so that a
//     prime below it exists
//
// It returns an error of type crt.InvalidArgument if no prime strictly below tableSize
// exists.
func NewDoubleHasher(oracle *prime.Oracle, tableSize int64) (hasher *DoubleHasher, err error) {
	if tableSize < 3 {
		err = crt.NewInvalidArgument("double hashing requires a table size of at least 3")
		return
	}

	q, err := oracle.NextSmallest(tableSize - 1)
	if err != nil {
		return
	}

	hasher = &DoubleHasher{q: q}

	return
}

// secondaryHash - The per-key probe step, in [1, q]
func (D *DoubleHasher) secondaryHash() int64 {
	return D.q - flooredMod(D.rawHash, D.q)
}

// NextHash - Returns the next candidate hash value and advances the probe counter
func (D *DoubleHasher) NextHash() int64 {
	hashCode := D.rawHash + D.counter*D.secondaryHash()
	D.counter++

	return hashCode
}

// Scheme - Returns the crt collision handling scheme constant
func (D *DoubleHasher) Scheme() int {
	return crt.DoubleHashing
}
