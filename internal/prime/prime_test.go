//go:build unit

package prime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wishedeom/hashtab/crt"
)

type TestCasePrime struct {
	n        int64
	expected int64
}

func TestOracle_NextLargest(t *testing.T) {
	t.Run("returns the smallest prime at or above n", func(t *testing.T) {
		// Prepare
		tests := []TestCasePrime{
			{n: 0, expected: 2},
			{n: 1, expected: 2},
			{n: 2, expected: 2},
			{n: 3, expected: 3},
			{n: 4, expected: 5},
			{n: 10, expected: 11},
			{n: 11, expected: 11},
			{n: 12, expected: 13},
			{n: 14, expected: 17},
			{n: 100, expected: 101},
			{n: 7907, expected: 7907},
			{n: 7908, expected: 7919},
		}
		oracle := NewOracle()

		for _, test := range tests {
			t.Run(fmt.Sprintf("finds next largest prime for %d", test.n), func(t *testing.T) {
				// Execute
				p, err := oracle.NextLargest(test.n)

				// Check
				assert.NoError(t, err, "queries next largest prime")
				assert.Equal(t, test.expected, p, "prime is correct")
			})
		}
	})

	t.Run("rejects a negative bound", func(t *testing.T) {
		// Prepare
		oracle := NewOracle()

		// Execute
		_, err := oracle.NextLargest(-1)

		// Check
		assert.ErrorIs(t, err, crt.InvalidArgument{}, "negative bound rejected")
	})
}

func TestOracle_NextSmallest(t *testing.T) {
	t.Run("returns the largest prime at or below n", func(t *testing.T) {
		// Prepare
		tests := []TestCasePrime{
			{n: 2, expected: 2},
			{n: 3, expected: 3},
			{n: 4, expected: 3},
			{n: 10, expected: 7},
			{n: 11, expected: 11},
			{n: 12, expected: 11},
			{n: 100, expected: 97},
			{n: 7918, expected: 7907},
		}
		oracle := NewOracle()

		for _, test := range tests {
			t.Run(fmt.Sprintf("finds next smallest prime for %d", test.n), func(t *testing.T) {
				// Execute
				p, err := oracle.NextSmallest(test.n)

				// Check
				assert.NoError(t, err, "queries next smallest prime")
				assert.Equal(t, test.expected, p, "prime is correct")
			})
		}
	})

	t.Run("rejects bounds below the first prime", func(t *testing.T) {
		// Prepare
		oracle := NewOracle()

		// Execute
		_, errZero := oracle.NextSmallest(0)
		_, errOne := oracle.NextSmallest(1)
		_, errNegative := oracle.NextSmallest(-5)

		// Check
		assert.ErrorIs(t, errZero, crt.InvalidArgument{}, "no prime at or below 0")
		assert.ErrorIs(t, errOne, crt.InvalidArgument{}, "no prime at or below 1")
		assert.ErrorIs(t, errNegative, crt.InvalidArgument{}, "negative bound rejected")
	})
}

func TestOracle_Memoization(t *testing.T) {
	t.Run("cache grows monotonically and is reused across queries", func(t *testing.T) {
		// Prepare
		oracle := NewOracle()

		// Execute
		_, err := oracle.NextLargest(1000)
		assert.NoError(t, err, "first query generates primes")
		cached := len(oracle.primes)

		_, err = oracle.NextSmallest(500)
		assert.NoError(t, err, "second query inside cached range")
		cachedAfter := len(oracle.primes)

		// Check
		assert.Greater(t, cached, 0, "cache got populated")
		assert.Equal(t, cached, cachedAfter, "query inside cached range generates nothing new")

		for i := 1; i < len(oracle.primes); i++ {
			if oracle.primes[i] <= oracle.primes[i-1] {
				assert.Fail(t, "cache is strictly increasing")
			}
		}
	})
}
