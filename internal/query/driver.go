package query

import (
	"github.com/viant/reachgraph/internal/ast"
	"github.com/viant/reachgraph/internal/reach"
)

// Driver resolves node predicates against a ProgramSet and evaluates flows
// over a materialized reach.Closure.
type Driver struct {
	set     *ast.ProgramSet
	closure *reach.Closure
}

// NewDriver returns a Driver bound to set and closure. Both are treated as
// read-only for the Driver's lifetime.
func NewDriver(set *ast.ProgramSet, closure *reach.Closure) *Driver {
	return &Driver{set: set, closure: closure}
}

// Resolve returns the ids of every node across the set matching pred, in
// program order then pre-order within each program.
func (d *Driver) Resolve(pred Predicate) []int {
	var ids []int
	for _, p := range d.set.Programs {
		if p.Root == nil {
			continue
		}
		var walk func(n *ast.ASTNode)
		walk = func(n *ast.ASTNode) {
			if pred.Match(n) {
				ids = append(ids, n.ID)
			}
			for _, c := range n.Children {
				walk(c)
			}
		}
		walk(p.Root)
	}
	return ids
}

// Run resolves every predicate named by nodes, then for each flow
// enumerates (source, target) pairs from the corresponding predicate sets
// and emits a Hit whenever the closure holds reaches(source, target)
// (spec.md §4.7). A flow naming an undeclared node is a configuration
// error (§7); a predicate resolving to an empty set yields zero hits for
// that flow, not an error.
func (d *Driver) Run(nodes map[string]Predicate, flows []Flow) ([]Hit, error) {
	resolved := make(map[string][]int, len(nodes))
	for name, pred := range nodes {
		resolved[name] = d.Resolve(pred)
	}

	var hits []Hit
	for _, flow := range flows {
		sources, ok := resolved[flow.From]
		if !ok {
			return nil, &ErrUnknownNode{Name: flow.From}
		}
		targets, ok := resolved[flow.To]
		if !ok {
			return nil, &ErrUnknownNode{Name: flow.To}
		}
		for _, src := range sources {
			for _, tgt := range targets {
				if !d.closure.Reaches(src, tgt) {
					continue
				}
				hit, ok := d.buildHit(flow, src, tgt)
				if !ok {
					continue
				}
				hits = append(hits, hit)
			}
		}
	}
	return hits, nil
}

func (d *Driver) buildHit(flow Flow, src, tgt int) (Hit, bool) {
	srcNode, srcPath, ok := d.set.GetNodeByID(src)
	if !ok {
		return Hit{}, false
	}
	tgtNode, tgtPath, ok := d.set.GetNodeByID(tgt)
	if !ok {
		return Hit{}, false
	}
	return Hit{
		From:            flow.From,
		To:              flow.To,
		SourceID:        src,
		TargetID:        tgt,
		SourceFile:      srcPath,
		TargetFile:      tgtPath,
		SourceLineStart: srcNode.LineStart,
		SourceLineEnd:   srcNode.LineEnd,
		TargetLineStart: tgtNode.LineStart,
		TargetLineEnd:   tgtNode.LineEnd,
	}, true
}
