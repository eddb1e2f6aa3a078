package query_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/reachgraph/internal/ast"
	"github.com/viant/reachgraph/internal/edge"
	"github.com/viant/reachgraph/internal/query"
	"github.com/viant/reachgraph/internal/reach"
)

func program() *ast.Program {
	parseCall := ast.New(3, ast.MethodInvocation, "parseInt(s)", 2, 2, nil)
	stmt1 := ast.New(2, ast.Expression, "int v = parseInt(s);", 2, 2, []*ast.ASTNode{parseCall})
	stmt2 := ast.New(4, ast.Expression, "showMessageDialog(v);", 3, 3, nil)
	root := ast.New(1, ast.Root, "", 1, 4, []*ast.ASTNode{stmt1, stmt2})
	return &ast.Program{Root: root, Path: "Foo.java"}
}

func TestDriver_ResolveMatchesKindAndCode(t *testing.T) {
	p := program()
	set := &ast.ProgramSet{Programs: []*ast.Program{p}}
	store := edge.New()
	closure := reach.Build(store)
	d := query.NewDriver(set, closure)

	kind := ast.Expression
	ids := d.Resolve(query.Predicate{Kind: &kind})
	assert.ElementsMatch(t, []int{2, 4}, ids)

	ids = d.Resolve(query.Predicate{Code: regexp.MustCompile("showMessageDialog")})
	assert.Equal(t, []int{4}, ids)
}

func TestDriver_RunEmitsHitWhenReachable(t *testing.T) {
	p := program()
	set := &ast.ProgramSet{Programs: []*ast.Program{p}}
	store := edge.New()
	store.Add(2, 4)
	closure := reach.Build(store)
	d := query.NewDriver(set, closure)

	exprKind := ast.Expression
	nodes := map[string]query.Predicate{
		"src": {Kind: &exprKind, Code: regexp.MustCompile("parseInt")},
		"dst": {Kind: &exprKind, Code: regexp.MustCompile("showMessageDialog")},
	}
	hits, err := d.Run(nodes, []query.Flow{{From: "src", To: "dst"}})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 2, hits[0].SourceID)
	assert.Equal(t, 4, hits[0].TargetID)
	assert.Equal(t, "Foo.java", hits[0].SourceFile)
}

func TestDriver_RunUnknownNodeIsConfigError(t *testing.T) {
	p := program()
	set := &ast.ProgramSet{Programs: []*ast.Program{p}}
	closure := reach.Build(edge.New())
	d := query.NewDriver(set, closure)

	_, err := d.Run(map[string]query.Predicate{}, []query.Flow{{From: "missing", To: "also-missing"}})
	require.Error(t, err)
	var unknown *query.ErrUnknownNode
	assert.ErrorAs(t, err, &unknown)
}

func TestDriver_RunEmptyPredicateYieldsZeroHitsNotError(t *testing.T) {
	p := program()
	set := &ast.ProgramSet{Programs: []*ast.Program{p}}
	closure := reach.Build(edge.New())
	d := query.NewDriver(set, closure)

	never := regexp.MustCompile("nope-does-not-exist")
	nodes := map[string]query.Predicate{
		"src": {Code: never},
		"dst": {Code: never},
	}
	hits, err := d.Run(nodes, []query.Flow{{From: "src", To: "dst"}})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestFormat_FourLineBlock(t *testing.T) {
	var buf bytes.Buffer
	hit := query.Hit{
		From: "source", To: "target",
		SourceFile: "Foo.java", SourceLineStart: 2, SourceLineEnd: 2,
		TargetFile: "Foo.java", TargetLineStart: 3, TargetLineEnd: 3,
	}
	require.NoError(t, query.Format(&buf, hit))
	want := "\"source\" reaches \"target\"\n" +
		"Source Foo.java 2:2\n" +
		"Target Foo.java 3:3\n" +
		"____________________________________\n"
	assert.Equal(t, want, buf.String())
}

func TestFormatAll_AppendsHitCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, query.FormatAll(&buf, nil))
	assert.Equal(t, "0 hits\n", buf.String())
}
