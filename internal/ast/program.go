package ast

// Program pairs source text with its parsed root ASTNode and origin path.
// Immutable once built; owns its AST exclusively (spec.md §5).
type Program struct {
	Source string
	Root   *ASTNode
	Path   string
}

// ProgramSet is an ordered sequence of Programs with monotonically
// non-overlapping id ranges: program k's ids all exceed program k-1's
// maximum id (spec.md §3, §4.2).
type ProgramSet struct {
	Programs []*Program
}

// NewProgramSet assembles a ProgramSet from already-built Programs. Callers
// (internal/javasitter) are responsible for threading the id counter across
// builds; this constructor does not check the invariant.
func NewProgramSet(programs ...*Program) *ProgramSet {
	return &ProgramSet{Programs: programs}
}

// GetNodeByID scans programs in order and returns the first hit together
// with the owning file path. Since id ranges are disjoint across programs,
// at most one program can contain a given id.
func (s *ProgramSet) GetNodeByID(id int) (*ASTNode, string, bool) {
	for _, p := range s.Programs {
		if p.Root == nil {
			continue
		}
		if id < p.Root.ID || id > p.Root.ChildrenUntil {
			continue
		}
		if n, ok := GetNodeByID(p.Root, id); ok {
			return n, p.Path, true
		}
	}
	return nil, "", false
}

// MaxID returns the highest id assigned across every program in the set, or
// -1 if the set is empty. Used by callers that append further programs and
// need to continue the counter.
func (s *ProgramSet) MaxID() int {
	max := -1
	for _, p := range s.Programs {
		if p.Root != nil && p.Root.ChildrenUntil > max {
			max = p.Root.ChildrenUntil
		}
	}
	return max
}
