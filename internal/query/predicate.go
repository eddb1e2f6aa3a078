// Package query resolves node predicates against a ProgramSet and reports
// which (source, target) pairs satisfy a flow's reachability (spec.md §4.7,
// §6).
package query

import (
	"fmt"
	"regexp"

	"github.com/viant/reachgraph/internal/ast"
)

// Predicate is a conjunction of optional clauses: a node-kind match and a
// regex match against the node's source slice. A nil clause matches
// anything.
type Predicate struct {
	Kind *ast.Kind
	Code *regexp.Regexp
}

// Match reports whether n satisfies every non-nil clause.
func (p Predicate) Match(n *ast.ASTNode) bool {
	if p.Kind != nil && n.Kind != *p.Kind {
		return false
	}
	if p.Code != nil && !p.Code.MatchString(n.Code) {
		return false
	}
	return true
}

// Flow names two predicate entries by the config name they were declared
// under (§6: `flows: [{from, to}]`).
type Flow struct {
	From string
	To   string
}

// Hit is one reported (source, target) pair: the flow names that produced
// it plus the file/line location of each endpoint, per the §6 report
// format.
type Hit struct {
	From, To                       string
	SourceID, TargetID              int
	SourceFile, TargetFile          string
	SourceLineStart, SourceLineEnd int
	TargetLineStart, TargetLineEnd int
}

// ErrUnknownNode is returned when a flow references a nodes entry that was
// never declared (spec.md §7, a configuration error).
type ErrUnknownNode struct{ Name string }

func (e *ErrUnknownNode) Error() string {
	return fmt.Sprintf("query: flow references unknown node %q", e.Name)
}
