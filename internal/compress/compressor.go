package compress

import (
	"fmt"
	"math/rand"

	"github.com/wishedeom/hashtab/crt"
	"github.com/wishedeom/hashtab/internal/prime"
)

// Compressor - Maps an arbitrary raw hash code into a bucket index in [0, tableSize)
// using the universal hashing affine transform ((a*h + b) mod p) mod tableSize, where p
// is the smallest prime strictly greater than the table size.
//
// A Compressor is bound to one table size; resizing the table means building a new one,
// since both p and the coefficient ranges change with the size.
type Compressor struct {
	tableSize int64
	p         int64
	a         int64
	b         int64
}

// NewCompressor - Returns a pointer to a new Compressor instance with coefficients
// chosen pseudo-randomly in their permitted ranges, a in [1, p-1] and b in [0, p-1].
//   - oracle is the shared prime oracle
//   - tableSize is the size of the associated hash table and must be positive
//
// It returns an error of type crt.InvalidArgument if tableSize is not positive.
func NewCompressor(oracle *prime.Oracle, tableSize int64) (compressor *Compressor, err error) {
	if tableSize <= 0 {
		err = crt.NewInvalidArgument("size of associated hash table must be a positive integer")
		return
	}

	p, err := oracle.NextLargest(tableSize + 1)
	if err != nil {
		return
	}

	compressor = &Compressor{
		tableSize: tableSize,
		p:         p,
		a:         rand.Int63n(p-1) + 1,
		b:         rand.Int63n(p),
	}

	return
}

// NewCompressorWithCoefficients - Returns a pointer to a new Compressor instance with
// explicitly supplied coefficients, which makes the compression fully deterministic for
// testing.
//   - oracle is the shared prime oracle
//   - tableSize is the size of the associated hash table and must be positive
//   - a is the pre-modulus multiplier and must be in [1, p-1]
//   - b is the pre-modulus adder and must be in [0, p-1]
//
// It returns an error of type crt.InvalidArgument if any parameter is out of range.
func NewCompressorWithCoefficients(oracle *prime.Oracle, tableSize, a, b int64) (compressor *Compressor, err error) {
	if tableSize <= 0 {
		err = crt.NewInvalidArgument("size of associated hash table must be a positive integer")
		return
	}

	p, err := oracle.NextLargest(tableSize + 1)
	if err != nil {
		return
	}

	if a <= 0 || a > p-1 {
		err = crt.NewInvalidArgument(fmt.Sprintf("compression multiplier must be in [1, %d] for table size %d", p-1, tableSize))
		return
	}
	if b < 0 || b > p-1 {
		err = crt.NewInvalidArgument(fmt.Sprintf("compression adder must be in [0, %d] for table size %d", p-1, tableSize))
		return
	}

	compressor = &Compressor{tableSize: tableSize, p: p, a: a, b: b}

	return
}

// Compress - Maps a raw hash code to a bucket index, always in [0, tableSize).
// The intermediate modulus is floored rather than truncated so negative hash codes land
// in range too.
func (C *Compressor) Compress(hashCode int64) int64 {
	r := (C.a*hashCode + C.b) % C.p
	if r < 0 {
		r += C.p
	}

	return r % C.tableSize
}

// TableSize - Returns the table size the compressor was built for
func (C *Compressor) TableSize() int64 {
	return C.tableSize
}
