package measure

import (
	"github.com/dolthub/swiss"
)

// DefaultCapacity is sized for the few hundred stations a typical input has.
const DefaultCapacity = 512

// Table maps station names to their statistics. A Table is not safe for
// concurrent use; it is owned by exactly one goroutine at a time. Keys are
// always private copies, so a Table never references the input it was built
// from.
type Table struct {
	m *swiss.Map[string, *Stats]
}

// NewTable returns an empty table, preallocated for capacity keys.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{m: swiss.NewMap[string, *Stats](uint32(capacity))}
}

// Add folds a single observation for key into the table.
func (t *Table) Add(key []byte, v float64) {
	if s, ok := t.m.Get(bytesToString(key)); ok {
		s.Add(v)
		return
	}
	t.m.Put(string(key), NewStats(v))
}

// Get returns a copy of the statistics for key.
func (t *Table) Get(key string) (Stats, bool) {
	s, ok := t.m.Get(key)
	if !ok {
		return Stats{}, false
	}
	return *s, true
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return t.m.Count()
}

// Merge folds o into t and returns t. Entries taken over from o are copied,
// o itself is left untouched. Merge is associative and commutative up to
// floating point summation order.
func (t *Table) Merge(o *Table) *Table {
	if o == nil {
		return t
	}
	o.m.Iter(func(k string, v *Stats) bool {
		if s, ok := t.m.Get(k); ok {
			s.Merge(v)
		} else {
			c := *v
			t.m.Put(k, &c)
		}
		return false
	})
	return t
}

// Snapshot returns a read-only copy of the table as a plain map.
func (t *Table) Snapshot() map[string]Stats {
	snap := make(map[string]Stats, t.m.Count())
	t.m.Iter(func(k string, v *Stats) bool {
		snap[k] = *v
		return false
	})
	return snap
}
