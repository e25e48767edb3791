package hashfunc

// KeyHasher - Interface that permits an implementation using the HashTable to supply a
// custom key hashing algorithm suited for its particular distribution of keys.
//
// The raw hash code it produces is not a bucket index; the table compresses it into the
// current bucket range itself, so implementations are free to use the full int64 range
// (negative values included).
type KeyHasher interface {
	// HashKey - Given key it generates a deterministic raw hash code.
	// The function must be pure: equal keys always produce equal hash codes.
	HashKey(key string) int64
}
