package hashtab

import (
	"fmt"

	"github.com/wishedeom/hashtab/crt"
	"github.com/wishedeom/hashtab/hashfunc"
	"github.com/wishedeom/hashtab/internal/compress"
	"github.com/wishedeom/hashtab/internal/hash"
	"github.com/wishedeom/hashtab/internal/model"
	"github.com/wishedeom/hashtab/internal/prime"
	"github.com/wishedeom/hashtab/internal/probe"
)

// DefaultSize - Requested capacity used when the Config leaves InitialSize zero
const DefaultSize int64 = 100

// DefaultRehashThreshold - Load factor at which the table expands
const DefaultRehashThreshold float64 = 0.75

// DefaultExpansionFactor - Growth factor applied when expanding by factor
const DefaultExpansionFactor float64 = 2.0

// DefaultExpansionIncrement - Growth step applied when expanding by increment
const DefaultExpansionIncrement int64 = 10

// minTableSize - Smallest usable table size; below 3 no secondary prime q < N exists for
// double hashing
const minTableSize int64 = 3

// probeFailsafeFactor - Probe loops give up after size*probeFailsafeFactor iterations to
// avoid spinning forever on a misbehaving probe sequence
const probeFailsafeFactor int64 = 10

// Config - Configuration for a new hash table. The zero value of every field selects a
// default, so Config{} is a valid table of size 100 with double hashing, the available
// empty marker scheme, a 0.75 rehash threshold and doubling expansion.
//   - InitialSize is the requested capacity; it is rounded up to the next prime
//   - CollisionScheme is crt.DoubleHashing or crt.QuadraticProbing
//   - EmptyScheme is crt.Available, crt.Negative or crt.Replace
//   - RehashThreshold is the load factor in (0, 1] that triggers expansion
//   - ExpandByIncrement switches the expansion policy from multiplying by
//     ExpansionFactor to adding ExpansionIncrement
//   - Hasher is an optional custom key hashing algorithm following the
//     hashfunc.KeyHasher interface
//   - Oracle is an optional shared prime oracle; supplying one lets several tables reuse
//     the same memoized primes
type Config struct {
	InitialSize        int64
	CollisionScheme    int
	EmptyScheme        int
	RehashThreshold    float64
	ExpandByIncrement  bool
	ExpansionFactor    float64
	ExpansionIncrement int64
	Hasher             hashfunc.KeyHasher
	Oracle             *prime.Oracle
}

// HashTable - An in-memory open addressing hash table from string keys to string values.
// The table size is always prime, every entry lives directly in the slot array, and
// collisions are resolved by probing with one of the interchangeable collision handling
// schemes. Deletion is mediated by the active empty marker scheme so that probe
// sequences for surviving keys stay intact.
//
// A HashTable has exactly one logical owner at a time; it is not safe for concurrent use.
type HashTable struct {
	slots              []model.Slot
	size               int64
	elementCount       int64
	collisionScheme    int
	emptyScheme        int
	rehashThreshold    float64
	expandByIncrement  bool
	expansionFactor    float64
	expansionIncrement int64
	hasher             hashfunc.KeyHasher
	oracle             *prime.Oracle
	compressor         *compress.Compressor
	resolver           probe.Resolver
	rehashing          bool
}

// NewHashTable - Returns a pointer to a new HashTable with the given requested capacity
// and default settings for everything else.
//   - initialSize is the requested capacity; it is rounded up to the next prime
//
// It returns an error of type crt.InvalidArgument if initialSize is negative.
func NewHashTable(initialSize int64) (table *HashTable, err error) {
	return NewHashTableWithConfig(Config{InitialSize: initialSize})
}

// NewHashTableWithConfig - Returns a pointer to a new HashTable built from a Config.
// It returns an error of type crt.InvalidArgument if any configured value is out of
// range.
func NewHashTableWithConfig(conf Config) (table *HashTable, err error) {
	if conf.InitialSize < 0 {
		err = crt.NewInvalidArgument("initial size must not be negative")
		return
	}
	if conf.InitialSize == 0 {
		conf.InitialSize = DefaultSize
	}

	if conf.CollisionScheme == 0 {
		conf.CollisionScheme = crt.DoubleHashing
	}
	if conf.CollisionScheme != crt.DoubleHashing && conf.CollisionScheme != crt.QuadraticProbing {
		err = crt.NewInvalidArgument("unknown collision handling scheme")
		return
	}

	if conf.EmptyScheme == 0 {
		conf.EmptyScheme = crt.Available
	}
	if conf.EmptyScheme != crt.Available && conf.EmptyScheme != crt.Negative && conf.EmptyScheme != crt.Replace {
		err = crt.NewInvalidArgument("unknown empty marker scheme")
		return
	}

	if conf.RehashThreshold == 0 {
		conf.RehashThreshold = DefaultRehashThreshold
	}
	if conf.RehashThreshold < 0 || conf.RehashThreshold > 1 {
		err = crt.NewInvalidArgument("rehash threshold must be in (0, 1]")
		return
	}

	if conf.ExpansionFactor == 0 {
		conf.ExpansionFactor = DefaultExpansionFactor
	}
	if conf.ExpansionFactor <= 1 {
		err = crt.NewInvalidArgument("expansion factor must be greater than 1")
		return
	}

	if conf.ExpansionIncrement == 0 {
		conf.ExpansionIncrement = DefaultExpansionIncrement
	}
	if conf.ExpansionIncrement <= 1 {
		err = crt.NewInvalidArgument("expansion increment must be greater than 1")
		return
	}

	if conf.Hasher == nil {
		conf.Hasher = hash.NewHorner()
	}
	if conf.Oracle == nil {
		conf.Oracle = prime.NewOracle()
	}

	requested := conf.InitialSize
	if requested < minTableSize {
		requested = minTableSize
	}
	size, err := conf.Oracle.NextLargest(requested)
	if err != nil {
		return
	}

	compressor, err := compress.NewCompressor(conf.Oracle, size)
	if err != nil {
		return
	}

	resolver, err := newResolver(conf.Oracle, conf.CollisionScheme, size)
	if err != nil {
		return
	}

	table = &HashTable{
		slots:              make([]model.Slot, size),
		size:               size,
		elementCount:       0,
		collisionScheme:    conf.CollisionScheme,
		emptyScheme:        conf.EmptyScheme,
		rehashThreshold:    conf.RehashThreshold,
		expandByIncrement:  conf.ExpandByIncrement,
		expansionFactor:    conf.ExpansionFactor,
		expansionIncrement: conf.ExpansionIncrement,
		hasher:             conf.Hasher,
		oracle:             conf.Oracle,
		compressor:         compressor,
		resolver:           resolver,
	}

	return
}

// newResolver - Builds the collision resolver for a scheme and table size
func newResolver(oracle *prime.Oracle, collisionScheme int, tableSize int64) (resolver probe.Resolver, err error) {
	switch collisionScheme {
	case crt.DoubleHashing:
		resolver, err = probe.NewDoubleHasher(oracle, tableSize)
	case crt.QuadraticProbing:
		resolver = probe.NewQuadraticProbe()
	default:
		err = crt.NewInvalidArgument(fmt.Sprintf("unknown collision handling scheme %d", collisionScheme))
	}

	return
}

// Size - Returns the current table size (number of slots, always prime)
func (H *HashTable) Size() int64 {
	return H.size
}

// Count - Returns the number of live entries in the table
func (H *HashTable) Count() int64 {
	return H.elementCount
}

// IsEmpty - Returns true if the table holds no live entries
func (H *HashTable) IsEmpty() bool {
	return H.elementCount == 0
}

// LoadFactor - Returns the ratio of live entries to table size
func (H *HashTable) LoadFactor() float64 {
	return float64(H.elementCount) / float64(H.size)
}

// CollisionHandlingScheme - Returns the active collision handling scheme constant
func (H *HashTable) CollisionHandlingScheme() int {
	return H.collisionScheme
}

// EmptyMarkerScheme - Returns the active empty marker scheme constant
func (H *HashTable) EmptyMarkerScheme() int {
	return H.emptyScheme
}
