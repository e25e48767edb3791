package hash

import "github.com/cespare/xxhash/v2"

// XX - Alternative key hashing algorithm backed by xxhash. It spreads keys far better
// than the polynomial hash for adversarial or highly regular key sets, at the price of
// not being reproducible by hand in tests.
type XX struct{}

// NewXX - Returns a pointer to a new XX instance
func NewXX() *XX {
	return &XX{}
}

// HashKey - Given key it generates a deterministic raw hash code
func (X *XX) HashKey(key string) int64 {
	return int64(xxhash.Sum64String(key))
}
