package probe

import "github.com/wishedeom/hashtab/crt"

// defaultLinearCoefficient - Default c1 in the quadratic probe polynomial
const defaultLinearCoefficient int64 = 0

// defaultQuadraticCoefficient - Default c2 in the quadratic probe polynomial
const defaultQuadraticCoefficient int64 = 1

// QuadraticProbe - Quadratic probing collision resolution. Candidate hashes follow
// rawHash + c1*i + c2*i² for probe counter i, independent of the table size.
type QuadraticProbe struct {
	state
	c1 int64
	c2 int64
}

// NewQuadraticProbe - Returns a pointer to a new QuadraticProbe instance with the default
// coefficients c1 = 0, c2 = 1
func NewQuadraticProbe() *QuadraticProbe {
	return NewQuadraticProbeWithCoefficients(defaultLinearCoefficient, defaultQuadraticCoefficient)
}

// NewQuadraticProbeWithCoefficients - Returns a pointer to a new QuadraticProbe instance
// with explicit linear and quadratic coefficients
func NewQuadraticProbeWithCoefficients(c1, c2 int64) *QuadraticProbe {
	return &QuadraticProbe{c1: c1, c2: c2}
}

// NextHash - Returns the next candidate hash value and advances the probe counter
func (Q *QuadraticProbe) NextHash() int64 {
	hashCode := Q.rawHash + Q.c1*Q.counter + Q.c2*Q.counter*Q.counter
	Q.counter++

	return hashCode
}

// Scheme - Returns the crt collision handling scheme constant
func (Q *QuadraticProbe) Scheme() int {
	return crt.QuadraticProbing
}
