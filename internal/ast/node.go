package ast

import "fmt"

// CacheMin and CacheMax bound the subtree-size band that eagerly builds an
// id->node cache (spec.md §4.1). They are package constants: every tree uses
// the same band, and ASTNode has no per-node threshold fields.
const (
	CacheMin = 800
	CacheMax = 100000
)

// ASTNode is immutable after construction. Child order is significant.
type ASTNode struct {
	ID             int
	Kind           Kind
	Code           string
	LineStart      int
	LineEnd        int
	Children       []*ASTNode
	ChildrenUntil  int
	cache          map[int]*ASTNode
}

// New constructs a node and, if its subtree falls in the cache band,
// eagerly populates an id->node lookup table covering it.
func New(id int, kind Kind, code string, lineStart, lineEnd int, children []*ASTNode) *ASTNode {
	n := &ASTNode{
		ID:        id,
		Kind:      kind,
		Code:      code,
		LineStart: lineStart,
		LineEnd:   lineEnd,
		Children:  children,
	}
	n.ChildrenUntil = id
	for _, c := range children {
		if c.ChildrenUntil > n.ChildrenUntil {
			n.ChildrenUntil = c.ChildrenUntil
		}
	}
	span := n.ChildrenUntil - n.ID
	if span > CacheMin && span < CacheMax {
		n.buildCache()
	}
	return n
}

func (n *ASTNode) buildCache() {
	n.cache = make(map[int]*ASTNode, n.ChildrenUntil-n.ID+1)
	var fill func(*ASTNode)
	fill = func(x *ASTNode) {
		n.cache[x.ID] = x
		for _, c := range x.Children {
			fill(c)
		}
	}
	fill(n)
}

// GetNodeByID walks the subtree rooted at n looking for id, pruning any
// subtree whose id exceeds the target (ids increase pre-order so such a
// subtree cannot contain it). Uses the cache when present.
func GetNodeByID(n *ASTNode, id int) (*ASTNode, bool) {
	if n == nil {
		return nil, false
	}
	if n.cache != nil {
		if hit, ok := n.cache[id]; ok {
			return hit, true
		}
		return nil, false
	}
	if id < n.ID || id > n.ChildrenUntil {
		return nil, false
	}
	if n.ID == id {
		return n, true
	}
	for _, c := range n.Children {
		if id > c.ChildrenUntil {
			continue
		}
		if id < c.ID {
			break
		}
		if hit, ok := GetNodeByID(c, id); ok {
			return hit, true
		}
	}
	return nil, false
}

// GetStatements returns, in child order, the ids of direct children whose
// kind is one of the "value-carrying" statement kinds (spec.md §4.1).
func GetStatements(n *ASTNode) []int {
	var ids []int
	for _, c := range n.Children {
		if IsStatement(c.Kind) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// GetBlocks returns the ids of direct children of kind Block or SwitchBlock.
func GetBlocks(n *ASTNode) []int {
	var ids []int
	for _, c := range n.Children {
		if IsBlockLike(c.Kind) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (n *ASTNode) String() string {
	return fmt.Sprintf("#%d %s [%d:%d] until=%d", n.ID, n.Kind, n.LineStart, n.LineEnd, n.ChildrenUntil)
}
