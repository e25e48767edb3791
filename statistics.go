package hashtab

import (
	"fmt"
	"io"

	"github.com/wishedeom/hashtab/crt"
	"github.com/wishedeom/hashtab/internal/model"
)

// Statistics - Aggregated collision statistics over all live entries.
//   - TotalCollisions is the sum of every entry's collision counter
//   - CollidedEntries is the number of entries with at least one collision
//   - AverageCollisions is the average counter over collided entries, 0 if none collided
//   - MaxCollisions is the largest single-entry collision counter
//   - CollisionRate is TotalCollisions divided by the number of entries, 0 if the table
//     is empty
type Statistics struct {
	Elements          int64   `json:"elements"`
	Size              int64   `json:"size"`
	LoadFactor        float64 `json:"loadFactor"`
	TotalCollisions   int64   `json:"totalCollisions"`
	CollidedEntries   int64   `json:"collidedEntries"`
	AverageCollisions float64 `json:"averageCollisions"`
	MaxCollisions     int64   `json:"maxCollisions"`
	CollisionRate     float64 `json:"collisionRate"`
}

// Stat - Walks every slot and aggregates the live entries' collision counters into a
// Statistics struct. Read-only; the table is not modified.
func (H *HashTable) Stat() (stats Statistics) {
	stats.Elements = H.elementCount
	stats.Size = H.size
	stats.LoadFactor = H.LoadFactor()

	for i := range H.slots {
		if model.SlotStatus(H.slots[i], H.emptyScheme) != model.SlotOccupied {
			continue
		}

		c := H.slots[i].Collisions
		stats.TotalCollisions += c
		if c > 0 {
			stats.CollidedEntries++
		}
		if c > stats.MaxCollisions {
			stats.MaxCollisions = c
		}
	}

	if stats.CollidedEntries > 0 {
		stats.AverageCollisions = float64(stats.TotalCollisions) / float64(stats.CollidedEntries)
	}
	if stats.Elements > 0 {
		stats.CollisionRate = float64(stats.TotalCollisions) / float64(stats.Elements)
	}

	return
}

// ResetStatistics - Zeroes every entry's collision counter without touching table
// contents
func (H *HashTable) ResetStatistics() {
	for i := range H.slots {
		H.slots[i].Collisions = 0
	}
}

// PrintStatistics - Emits the aggregated collision statistics as human-readable text.
//   - w is the destination writer
func (H *HashTable) PrintStatistics(w io.Writer) (err error) {
	stats := H.Stat()

	_, err = fmt.Fprintf(w,
		"Hash table statistics\n"+
			"  size:                %d\n"+
			"  elements:            %d\n"+
			"  load factor:         %.3f\n"+
			"  total collisions:    %d\n"+
			"  collided entries:    %d\n"+
			"  average collisions:  %.3f\n"+
			"  max collisions:      %d\n"+
			"  collision rate:      %.3f\n",
		stats.Size, stats.Elements, stats.LoadFactor, stats.TotalCollisions,
		stats.CollidedEntries, stats.AverageCollisions, stats.MaxCollisions,
		stats.CollisionRate)

	return
}

// Display - Dumps every slot's state as one human-readable line per slot.
//   - w is the destination writer
func (H *HashTable) Display(w io.Writer) (err error) {
	for i := range H.slots {
		switch model.SlotStatus(H.slots[i], H.emptyScheme) {
		case model.SlotEmpty:
			_, err = fmt.Fprintf(w, "%6d: never used\n", i)
		case model.SlotDeleted:
			if H.emptyScheme == crt.Negative {
				_, err = fmt.Fprintf(w, "%6d: formerly occupied (%s)\n", i, H.slots[i].Key)
			} else {
				_, err = fmt.Fprintf(w, "%6d: formerly occupied\n", i)
			}
		case model.SlotOccupied:
			_, err = fmt.Fprintf(w, "%6d: (%s, %s)\n", i, H.slots[i].Key, H.slots[i].Value)
		}
		if err != nil {
			return
		}
	}

	return
}
