package prime

import (
	"fmt"
	"sort"

	"github.com/wishedeom/hashtab/crt"
)

// firstPrime - The seed of the incremental prime cache
const firstPrime int64 = 2

// Oracle - Incrementally generates primes on demand and memoizes every prime discovered
// so far, so repeated queries over the same range cost nothing after the first.
//
// An Oracle is created once and shared by reference; it only ever grows. It is not safe
// for concurrent use, which matches the single-owner model of the hash table it serves.
type Oracle struct {
	primes []int64
}

// NewOracle - Returns a pointer to a new Oracle instance with an empty cache
func NewOracle() *Oracle {
	return &Oracle{primes: make([]int64, 0, 16)}
}

// NextLargest - Returns the smallest prime greater than or equal to n.
//   - n is the lower bound for the search and must be non-negative
//
// It returns an error of type crt.InvalidArgument if n is negative.
func (O *Oracle) NextLargest(n int64) (p int64, err error) {
	if n < 0 {
		err = crt.NewInvalidArgument("prime oracle queries require a non-negative bound")
		return
	}

	O.generate(n)

	idx := sort.Search(len(O.primes), func(i int) bool { return O.primes[i] >= n })
	p = O.primes[idx]

	return
}

// NextSmallest - Returns the largest prime less than or equal to n.
//   - n is the upper bound for the search
//
// It returns an error of type crt.InvalidArgument if n is negative or if no prime exists
// at or below n (i.e. n < 2).
func (O *Oracle) NextSmallest(n int64) (p int64, err error) {
	if n < 0 {
		err = crt.NewInvalidArgument("prime oracle queries require a non-negative bound")
		return
	}
	if n < firstPrime {
		err = crt.NewInvalidArgument(fmt.Sprintf("no prime exists at or below %d", n))
		return
	}

	O.generate(n)

	idx := sort.Search(len(O.primes), func(i int) bool { return O.primes[i] > n })
	p = O.primes[idx-1]

	return
}

// generate - Extends the cache until it contains a prime strictly greater than n, which
// guarantees both query directions can be answered by searching the cache
func (O *Oracle) generate(n int64) {
	for len(O.primes) == 0 || O.primes[len(O.primes)-1] <= n {
		O.addNextPrime()
	}
}

// addNextPrime - Appends the next prime after the last cached one
func (O *Oracle) addNextPrime() {
	if len(O.primes) == 0 {
		O.primes = append(O.primes, firstPrime)
		return
	}

	candidate := O.primes[len(O.primes)-1] + 1
	for !O.isPrime(candidate) {
		candidate++
	}

	O.primes = append(O.primes, candidate)
}

// isPrime - Trial division against cached primes. All primes below the candidate are
// already cached, so checking divisors with p*p <= n is sufficient.
func (O *Oracle) isPrime(n int64) bool {
	for _, p := range O.primes {
		if p*p > n {
			break
		}
		if n%p == 0 {
			return false
		}
	}

	return true
}
