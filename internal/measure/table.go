package measure

import "github.com/cespare/xxhash"

// room for 10000 stations below the growth threshold
const defaultTableSlots = 1 << 15

type entry struct {
	hash uint64
	name string // empty marks a free slot, station names are never empty
	Stats
}

// Table is a worker-local aggregation table. It is an open addressing hash
// table with linear probing, so a lookup by raw line bytes does not allocate.
// A Table must not be shared between goroutines.
type Table struct {
	slots []entry
	mask  uint64
	n     int
}

func NewTable() *Table {
	return newTableSlots(defaultTableSlots)
}

// newTableSlots panics unless slots is a power of two.
func newTableSlots(slots int) *Table {
	if slots <= 0 || slots&(slots-1) != 0 {
		panic("measure: table size must be a power of two")
	}
	return &Table{
		slots: make([]entry, slots),
		mask:  uint64(slots - 1),
	}
}

// Add records temperature v for station name.
func (t *Table) Add(name []byte, v int) {
	h := xxhash.Sum64(name)
	for i := h & t.mask; ; i = (i + 1) & t.mask {
		e := &t.slots[i]
		if e.name == "" {
			e.hash = h
			e.name = string(name)
			e.Stats = newStats(v)
			t.inserted()
			return
		}
		if e.hash == h && e.name == string(name) {
			e.Add(v)
			return
		}
	}
}

func (t *Table) inserted() {
	t.n++
	if t.n*2 > len(t.slots) {
		t.grow()
	}
}

func (t *Table) grow() {
	old := t.slots
	t.slots = make([]entry, 2*len(old))
	t.mask = uint64(len(t.slots) - 1)
	for _, e := range old {
		if e.name == "" {
			continue
		}
		i := e.hash & t.mask
		for t.slots[i].name != "" {
			i = (i + 1) & t.mask
		}
		t.slots[i] = e
	}
}

// Get returns the statistics for a station.
func (t *Table) Get(name string) (Stats, bool) {
	h := xxhash.Sum64String(name)
	for i := h & t.mask; ; i = (i + 1) & t.mask {
		e := &t.slots[i]
		if e.name == "" {
			return Stats{}, false
		}
		if e.hash == h && e.name == name {
			return e.Stats, true
		}
	}
}

// Len returns the number of distinct stations.
func (t *Table) Len() int { return t.n }

// Each calls fn for every station in unspecified order.
func (t *Table) Each(fn func(name string, s *Stats)) {
	for i := range t.slots {
		if e := &t.slots[i]; e.name != "" {
			fn(e.name, &e.Stats)
		}
	}
}
