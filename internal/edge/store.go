// Package edge implements the multi-map edge store of spec.md §3/§4.5:
// id -> ordered sequence of successor ids, preserving insertion order and
// allowing duplicates.
package edge

// Store maps a node id to its ordered, possibly-duplicated successor list.
type Store struct {
	succ map[int][]int
}

// New returns an empty Store.
func New() *Store {
	return &Store{succ: make(map[int][]int)}
}

// Add appends dst to src's successor list, preserving call order. The
// sentinel src==0 ("no real predecessor yet", spec.md §4.3) is suppressed.
func (s *Store) Add(src, dst int) {
	if src == 0 {
		return
	}
	s.succ[src] = append(s.succ[src], dst)
}

// Successors returns the ordered successor list for id, or nil if absent.
// The returned slice must not be mutated by callers.
func (s *Store) Successors(id int) []int {
	return s.succ[id]
}

// Keys returns every source id with at least one recorded successor, in no
// particular order.
func (s *Store) Keys() []int {
	keys := make([]int, 0, len(s.succ))
	for k := range s.succ {
		keys = append(keys, k)
	}
	return keys
}

// Len reports the number of distinct source ids holding edges.
func (s *Store) Len() int { return len(s.succ) }

// Merge unions every given store's successor lists into a new Store, by concatenation
// (no dedup, per spec.md §4.5). Associative and commutative in its effect
// on reachability even though result ordering is not commutative.
func Merge(stores ...*Store) *Store {
	out := New()
	for _, st := range stores {
		if st == nil {
			continue
		}
		for src, dsts := range st.succ {
			out.succ[src] = append(out.succ[src], dsts...)
		}
	}
	return out
}
