//go:build integration

package hashtab

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashTable_Stat(t *testing.T) {
	t.Run("reports zeroes for an empty table", func(t *testing.T) {
		// Prepare
		table, err := NewHashTable(10)
		assert.NoError(t, err, "creates table")

		// Execute
		stats := table.Stat()

		// Check
		assert.Equal(t, int64(11), stats.Size, "size reported")
		assert.Zero(t, stats.Elements, "no elements")
		assert.Zero(t, stats.LoadFactor, "load factor zero")
		assert.Zero(t, stats.TotalCollisions, "no collisions")
		assert.Zero(t, stats.CollidedEntries, "no collided entries")
		assert.Zero(t, stats.AverageCollisions, "average defined as zero")
		assert.Zero(t, stats.MaxCollisions, "max defined as zero")
		assert.Zero(t, stats.CollisionRate, "rate defined as zero")
	})

	t.Run("keeps the aggregate figures consistent", func(t *testing.T) {
		// Prepare
		table, err := NewHashTable(50)
		assert.NoError(t, err, "creates table")
		for i := 0; i < 30; i++ {
			_, _, err = table.Put(fmt.Sprintf("key%02d", i), "value")
			assert.NoError(t, err, "puts key")
		}

		// Execute
		stats := table.Stat()

		// Check
		assert.Equal(t, table.Count(), stats.Elements, "element count reported")
		assert.Equal(t, table.Size(), stats.Size, "size reported")
		assert.InDelta(t, table.LoadFactor(), stats.LoadFactor, 1e-12, "load factor reported")
		assert.LessOrEqual(t, stats.MaxCollisions, stats.TotalCollisions, "max bounded by total")
		assert.LessOrEqual(t, stats.CollidedEntries, stats.Elements, "collided entries bounded by elements")
		assert.InDelta(t, float64(stats.TotalCollisions)/float64(stats.Elements), stats.CollisionRate, 1e-12,
			"rate is total over elements")
		if stats.CollidedEntries > 0 {
			assert.InDelta(t, float64(stats.TotalCollisions)/float64(stats.CollidedEntries), stats.AverageCollisions,
				1e-12, "average is total over collided entries")
		} else {
			assert.Zero(t, stats.AverageCollisions, "average defined as zero")
		}
	})

	t.Run("counts collisions for keys that probe past each other", func(t *testing.T) {
		// Prepare: plenty of inserts into a small fixed table guarantees collisions
		table, err := NewHashTableWithConfig(Config{InitialSize: 20, RehashThreshold: 1})
		assert.NoError(t, err, "creates table")
		for i := 0; i < 20; i++ {
			_, _, err = table.Put(fmt.Sprintf("key%02d", i), "value")
			assert.NoError(t, err, "puts key")
		}

		// Execute
		stats := table.Stat()

		// Check
		assert.Positive(t, stats.TotalCollisions, "a near-full table has collisions")
		assert.Positive(t, stats.CollidedEntries, "some entries were probed past")
		assert.Positive(t, stats.MaxCollisions, "max tracks the worst entry")
	})
}

func TestHashTable_ResetStatistics(t *testing.T) {
	t.Run("zeroes every collision counter", func(t *testing.T) {
		// Prepare
		table, err := NewHashTableWithConfig(Config{InitialSize: 20, RehashThreshold: 1})
		assert.NoError(t, err, "creates table")
		for i := 0; i < 20; i++ {
			_, _, err = table.Put(fmt.Sprintf("key%02d", i), "value")
			assert.NoError(t, err, "puts key")
		}
		assert.Positive(t, table.Stat().TotalCollisions, "collisions recorded before reset")

		// Execute
		table.ResetStatistics()

		// Check
		stats := table.Stat()
		assert.Zero(t, stats.TotalCollisions, "counters zeroed")
		assert.Zero(t, stats.CollidedEntries, "no collided entries remain")
		assert.Zero(t, stats.MaxCollisions, "max zeroed")
		assert.Equal(t, int64(20), stats.Elements, "contents untouched")
	})
}

func TestHashTable_PrintStatistics(t *testing.T) {
	t.Run("emits every figure", func(t *testing.T) {
		// Prepare
		table, err := NewHashTable(10)
		assert.NoError(t, err, "creates table")
		_, _, err = table.Put("k", "v")
		assert.NoError(t, err, "puts key")

		// Execute
		var sb strings.Builder
		err = table.PrintStatistics(&sb)

		// Check
		assert.NoError(t, err, "prints statistics")
		out := sb.String()
		assert.Contains(t, out, "Hash table statistics", "header present")
		assert.Contains(t, out, "size:                11", "size reported")
		assert.Contains(t, out, "elements:            1", "element count reported")
		assert.Contains(t, out, "total collisions:", "collision figures present")
		assert.Contains(t, out, "collision rate:", "rate present")
	})
}
