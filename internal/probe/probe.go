package probe

import (
	"github.com/wishedeom/hashtab/crt"
)

// Resolver - Interface for the collision handling schemes. A resolver is reset with the
// raw hash of the key being operated on and then asked for successive candidate hash
// values; the table compresses each candidate into a bucket index and decides when to
// stop probing.
type Resolver interface {
	// Reset - Sets the raw hash for a new probe sequence and zeroes the probe counter
	Reset(rawHash int64)

	// NextHash - Returns the next candidate hash value and advances the probe counter
	NextHash() int64

	// Scheme - Returns the crt collision handling scheme constant of the implementation
	Scheme() int
}

// state - Probe state shared by all resolver implementations
type state struct {
	rawHash int64
	counter int64
}

// Reset - Sets the raw hash for a new probe sequence and zeroes the probe counter
func (S *state) Reset(rawHash int64) {
	S.rawHash = rawHash
	S.counter = 0
}

// NextHashN - Applies NextHash the given number of times and returns only the last
// candidate. Used when a probe sequence has to be replayed up to a known position, such
// as during empty marker scheme rollback scans.
//   - repetitions must be a positive integer
//
// It returns an error of type crt.InvalidArgument if repetitions is less than one.
func NextHashN(r Resolver, repetitions int) (hashCode int64, err error) {
	if repetitions < 1 {
		err = crt.NewInvalidArgument("number of repetitions must be a positive integer")
		return
	}

	for i := 0; i < repetitions; i++ {
		hashCode = r.NextHash()
	}

	return
}

// flooredMod - Mathematical modulus, non-negative for any a when m > 0
func flooredMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
