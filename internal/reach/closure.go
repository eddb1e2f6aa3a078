// Package reach computes the Datalog-style transitive closure of an
// edge.Store (spec.md §4.6) and answers reaches(a, b) membership queries.
package reach

import "github.com/viant/reachgraph/internal/edge"

// Closure is the materialized reachability relation: for every source id,
// the set of ids transitively reachable from it.
type Closure struct {
	sets map[int]map[int]struct{}
}

// Build computes the transitive closure of store via fixpoint evaluation:
// each source's reachable set is grown by unioning in the reachable sets of
// its members, and every source is revisited on each round until a full
// round adds nothing.
func Build(store *edge.Store) *Closure {
	sets := make(map[int]map[int]struct{}, store.Len())
	for _, k := range store.Keys() {
		s := make(map[int]struct{})
		for _, d := range store.Successors(k) {
			s[d] = struct{}{}
		}
		sets[k] = s
	}

	changed := true
	for changed {
		changed = false
		for _, succs := range sets {
			// gather everything reachable through one more hop via a direct
			// successor's own reachable set, without mutating succs while
			// ranging over it.
			var additions []int
			for mid := range succs {
				for d := range sets[mid] {
					if _, ok := succs[d]; !ok {
						additions = append(additions, d)
					}
				}
			}
			for _, d := range additions {
				succs[d] = struct{}{}
				changed = true
			}
		}
	}

	return &Closure{sets: sets}
}

// Reaches reports whether b is transitively reachable from a.
func (c *Closure) Reaches(a, b int) bool {
	succs, ok := c.sets[a]
	if !ok {
		return false
	}
	_, ok = succs[b]
	return ok
}

// Successors returns the full set of ids reachable from a, or nil if a has
// none. The returned map must not be mutated by callers.
func (c *Closure) Successors(a int) map[int]struct{} {
	return c.sets[a]
}
