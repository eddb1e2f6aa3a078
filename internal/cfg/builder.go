// Package cfg builds intra-procedural control-flow edges for a single
// function body, per spec.md §4.3. Construction is a two-pass walk over
// the pre-order id range spanned by the function:
//
//   - Pass 1 links sequential statements to a single "current successor"
//     set (prev), recursing into nested blocks with a fresh prev, and
//     records a single after-successor for every compound statement head.
//   - Pass 2 reinterprets that after-successor as the join point and
//     reroutes entries/exits for If/While/For/Do bodies, Switch cases and
//     Try/catch blocks.
//
// This mirrors the teacher's own two-pass, no-postdominator style of local
// reasoning (see analyzer/node.go's single-pass walk, generalized here into
// the two explicit passes the spec calls for), and preserves the
// deliberately imprecise handling of Break/Return documented in spec.md §9.
package cfg

import (
	"github.com/viant/reachgraph/internal/ast"
	"github.com/viant/reachgraph/internal/edge"
)

// entrySentinel is the "no real predecessor yet" marker (spec.md §4.3);
// edges from it are suppressed by edge.Store.Add.
const entrySentinel = 0

// Build constructs the CFG edge store for the MethodDeclaration rooted at
// method. It is safe to call once per function body; the returned store is
// frozen by convention (callers should not mutate it after merging).
func Build(method *ast.ASTNode) *edge.Store {
	store := edge.New()
	body := firstBlock(method)
	if body == nil {
		return store
	}
	linearize(body, store)
	expandBranches(body, store)
	return store
}

// firstBlock returns the method's first Block child (the function body),
// or nil if the method has no body (abstract/interface methods).
func firstBlock(method *ast.ASTNode) *ast.ASTNode {
	for _, c := range method.Children {
		if c.Kind == ast.Block {
			return c
		}
	}
	return nil
}

// linearize is pass 1: walk block's direct children in order, threading
// prev. Whenever a child is itself Block/SwitchBlock, recurse into it with
// a fresh prev (it contributes no successor to the enclosing sequence).
// Whenever a sequential statement's own subtree contains further nested
// Block/SwitchBlock nodes (an If's then/else body, a loop body, a try's
// blocks), those are discovered and linearized independently via
// discoverBlocks — this is the tree-recursive equivalent of the spec's flat
// id-range walk reaching those nested ids before the next sibling.
func linearize(block *ast.ASTNode, store *edge.Store) {
	prev := []int{entrySentinel}
	for _, n := range block.Children {
		switch {
		case ast.IsBlockLike(n.Kind):
			linearize(n, store)
		case n.Kind == ast.Break:
			linkSequential(n, &prev, store)
			discoverBlocks(n, store)
			prev = nil
		case n.Kind == ast.Return:
			saved := prev
			linkSequential(n, &prev, store)
			discoverBlocks(n, store)
			prev = saved
			// prev intentionally left intact: dead code following a return
			// stays linked to the return's predecessors (spec.md §9).
		case ast.IsSequential(n.Kind):
			linkSequential(n, &prev, store)
			discoverBlocks(n, store)
		default:
			// Continue/Throw/Unknown/etc.: ignored as a linkage target, but
			// may still contain nested blocks (e.g. a lambda body).
			discoverBlocks(n, store)
		}
	}
}

func linkSequential(n *ast.ASTNode, prev *[]int, store *edge.Store) {
	for _, p := range *prev {
		if p > 0 {
			store.Add(p, n.ID)
		}
	}
	*prev = []int{n.ID}
}

// discoverBlocks finds every Block/SwitchBlock descendant of n (not
// including n itself), without descending further once one is found —
// linearize handles that block's own interior. This is how pass 1 reaches
// an If's then/else bodies, a loop's body, or a try's blocks even though
// they are not direct children of the block currently being linearized.
func discoverBlocks(n *ast.ASTNode, store *edge.Store) {
	for _, c := range n.Children {
		if ast.IsBlockLike(c.Kind) {
			linearize(c, store)
			continue
		}
		discoverBlocks(c, store)
	}
}

// expandBranches is pass 2: walk the same range again, rerouting compound
// statement entries/exits using the after-successor pass 1 recorded on the
// statement head. Mirrors linearize's structure: nested compounds reached
// through a statement's subtree (rather than as direct block children) are
// found via expandWithin.
func expandBranches(block *ast.ASTNode, store *edge.Store) {
	for _, n := range block.Children {
		switch n.Kind {
		case ast.Block, ast.SwitchBlock:
			expandBranches(n, store)
		case ast.If, ast.While, ast.For, ast.Do:
			expandIfWhileForDo(n, store)
			expandWithin(n, store)
		case ast.Switch:
			expandSwitch(n, store)
			expandWithin(n, store)
		case ast.Try, ast.TryWithResource:
			expandTry(n, store)
			expandWithin(n, store)
		default:
			expandWithin(n, store)
		}
	}
}

// expandWithin finds Block/SwitchBlock descendants of n and recursively
// expands the compound statements nested inside them.
func expandWithin(n *ast.ASTNode, store *edge.Store) {
	for _, c := range n.Children {
		if ast.IsBlockLike(c.Kind) {
			expandBranches(c, store)
		} else {
			expandWithin(c, store)
		}
	}
}

// afterSuccessor returns the single successor pass 1 recorded for head
// (the "node to return to after the branch"), or 0 if head has none.
func afterSuccessor(head *ast.ASTNode, store *edge.Store) int {
	succs := store.Successors(head.ID)
	if len(succs) == 0 {
		return 0
	}
	return succs[len(succs)-1]
}

// expandIfWhileForDo wires every Block child of head: enter at the block's
// first statement, and rejoin at head's after-successor from the block's
// last statement (loop back-edge / after-branch join), per spec.md §4.3.
func expandIfWhileForDo(head *ast.ASTNode, store *edge.Store) {
	after := afterSuccessor(head, store)
	for _, blk := range ast.GetBlocks(head) {
		blkNode, ok := findChildByID(head, blk)
		if !ok {
			continue
		}
		stmts := ast.GetStatements(blkNode)
		if len(stmts) == 0 {
			continue
		}
		store.Add(head.ID, stmts[0])
		last := stmts[len(stmts)-1]
		if after != 0 {
			store.Add(last, after)
		}
	}
}

// expandSwitch wires the switch head to the first statement following each
// SwitchLabel inside the switch's first block child.
func expandSwitch(head *ast.ASTNode, store *edge.Store) {
	var blk *ast.ASTNode
	for _, c := range head.Children {
		if ast.IsBlockLike(c.Kind) {
			blk = c
			break
		}
	}
	if blk == nil {
		return
	}
	for i, c := range blk.Children {
		if c.Kind != ast.SwitchLabel {
			continue
		}
		if first := firstStatementAfter(blk, i); first != 0 {
			store.Add(head.ID, first)
		}
	}
}

// firstStatementAfter returns the id of the first value-carrying statement
// among blk's children strictly after index i, or 0 if none.
func firstStatementAfter(blk *ast.ASTNode, i int) int {
	for j := i + 1; j < len(blk.Children); j++ {
		c := blk.Children[j]
		if ast.IsStatement(c.Kind) {
			return c.ID
		}
	}
	return 0
}

// expandTry links the try head to the first statement of the try's own
// blocks and every catch clause's blocks, joining each block's last
// statement back to the try head's after-successor.
func expandTry(head *ast.ASTNode, store *edge.Store) {
	after := afterSuccessor(head, store)

	var blocks []*ast.ASTNode
	for _, c := range head.Children {
		if ast.IsBlockLike(c.Kind) {
			blocks = append(blocks, c)
		}
		if c.Kind == ast.CatchClause {
			for _, cc := range c.Children {
				if ast.IsBlockLike(cc.Kind) {
					blocks = append(blocks, cc)
				}
			}
		}
	}

	for _, blk := range blocks {
		stmts := ast.GetStatements(blk)
		if len(stmts) == 0 {
			continue
		}
		store.Add(head.ID, stmts[0])
		if after != 0 {
			store.Add(stmts[len(stmts)-1], after)
		}
	}
}

func findChildByID(n *ast.ASTNode, id int) (*ast.ASTNode, bool) {
	for _, c := range n.Children {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}
