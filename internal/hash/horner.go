package hash

// hashBase - Base of the hash polynomial. 33, 37, 39 and 41 are the classic choices for
// text keys; the value is fixed since changing it changes every hash code.
const hashBase int64 = 33

// MaxHashLength - Upper bound on the number of characters fed into the polynomial.
// Very long keys pay a flat cost instead of a linear one, at the price of more collisions
// between keys sharing a long prefix.
const MaxHashLength = 512

// Horner - The default key hashing algorithm. It evaluates the hash polynomial over the
// key's bytes using Horner's rule, starting from the last character so that
// code = key[0] + base*(key[1] + base*(key[2] + ...)).
type Horner struct{}

// NewHorner - Returns a pointer to a new Horner instance
func NewHorner() *Horner {
	return &Horner{}
}

// HashKey - Given key it generates a deterministic raw hash code.
// Overflow wraps, so long keys can produce negative codes; the compressor deals in
// arbitrary integers so that is fine.
func (H *Horner) HashKey(key string) int64 {
	last := len(key) - 1
	if last >= MaxHashLength {
		last = MaxHashLength - 1
	}

	var code int64
	for i := last; i >= 0; i-- {
		code = int64(key[i]) + code*hashBase
	}

	return code
}
