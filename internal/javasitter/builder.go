// Package javasitter adapts github.com/smacker/go-tree-sitter's Java
// grammar into the node-kind-indexed AST substrate internal/ast expects.
// It is the concrete implementation of the "parser contract" spec.md §6
// leaves abstract.
package javasitter

import (
	"bytes"
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/viant/reachgraph/internal/ast"
)

// Builder assembles an ast.ProgramSet from Java source files, threading a
// single pre-order id counter across every Program it builds (spec.md §4.2).
type Builder struct {
	parser  *sitter.Parser
	nextID  int
}

// NewBuilder returns a Builder ready to parse Java source.
func NewBuilder() *Builder {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())
	return &Builder{parser: p}
}

// Build parses src into a new Program, continuing the id counter from the
// previous program's maximum id (spec.md §4.2's Program::new_list
// threading). It does not add the Program to any set; BuildAll does that.
func (b *Builder) Build(ctx context.Context, path string, src []byte) (*ast.Program, error) {
	tree, err := b.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("javasitter: parse %s: %w", path, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("javasitter: parse %s: no tree produced", path)
	}
	root := b.convert(tree.RootNode(), src)
	return &ast.Program{Source: string(src), Root: root, Path: path}, nil
}

// BuildAll parses every (path, src) pair in order into a single ProgramSet.
// A parse failure on one file is recorded via onError (if non-nil) and that
// file is skipped, matching spec.md §7's "skip with a warning" guidance
// rather than aborting the whole run.
func (b *Builder) BuildAll(ctx context.Context, sources []Source, onError func(path string, err error)) *ast.ProgramSet {
	set := &ast.ProgramSet{}
	for _, s := range sources {
		p, err := b.Build(ctx, s.Path, s.Content)
		if err != nil {
			if onError != nil {
				onError(s.Path, err)
			}
			continue
		}
		set.Programs = append(set.Programs, p)
	}
	return set
}

// Source is a single file handed to BuildAll.
type Source struct {
	Path    string
	Content []byte
}

// convert walks a *sitter.Node tree pre-order, assigning ids from b.nextID
// and computing line numbers per spec.md §4.2 (newline counting, not the
// tree-sitter row, so behavior is independent of the grammar's own point
// tracking and matches "line_start is the count of newline bytes before the
// start offset plus one").
func (b *Builder) convert(n *sitter.Node, src []byte) *ast.ASTNode {
	id := b.nextID
	b.nextID++

	children := make([]*ast.ASTNode, 0, n.ChildCount())
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		children = append(children, b.convert(c, src))
	}

	start, end := int(n.StartByte()), int(n.EndByte())
	lineStart := 1 + bytes.Count(src[:start], []byte{'\n'})
	lineEnd := lineStart + bytes.Count(src[start:end], []byte{'\n'})

	code := string(src[start:end])
	kind := KindOf(n.Type())

	node := ast.New(id, kind, code, lineStart, lineEnd, children)
	// convert assigned ids to every descendant before returning, so
	// ChildrenUntil seen by New (computed from children already built)
	// is correct; nothing further to patch here since children were
	// built depth-first before this node.
	return node
}
