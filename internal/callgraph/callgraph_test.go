package callgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/reachgraph/internal/ast"
	"github.com/viant/reachgraph/internal/callgraph"
)

// idgen/nb mirror internal/cfg's builder-thunk test pattern: every
// constructor allocates its own id before building children, preserving the
// pre-order invariant a real parser guarantees.
type idgen struct{ n int }

func (g *idgen) next() int {
	g.n++
	return g.n
}

type nb func(*idgen) *ast.ASTNode

func leaf(kind ast.Kind, code string) nb {
	return func(g *idgen) *ast.ASTNode { return ast.New(g.next(), kind, code, 1, 1, nil) }
}

func compound(kind ast.Kind, code string, children ...nb) nb {
	return func(g *idgen) *ast.ASTNode {
		id := g.next()
		built := make([]*ast.ASTNode, 0, len(children))
		for _, c := range children {
			built = append(built, c(g))
		}
		return ast.New(id, kind, code, 1, 1, built)
	}
}

func block(children ...nb) nb { return compound(ast.Block, "{...}", children...) }

func classBody(children ...nb) nb { return compound(ast.ClassBody, "{...}", children...) }

func method(sig string, body nb) nb { return compound(ast.MethodDeclaration, sig, body) }

func class(sig string, body nb) nb { return compound(ast.ClassDeclaration, sig, body) }

// callStmt builds an Expression statement wrapping the MethodInvocation a
// real parser would nest beneath it, since call-site discovery looks for
// MethodInvocation nodes and attributes them to their nearest enclosing
// statement ancestor, not to the statement's own textual content.
func callStmt(invocation string) nb {
	return compound(ast.Expression, invocation+";", leaf(ast.MethodInvocation, invocation))
}

func program(path string, root nb) *ast.Program {
	g := &idgen{}
	return &ast.Program{Root: root(g), Path: path}
}

func TestBuild_IntraClassCall(t *testing.T) {
	var callSite, calleeFirst int

	callerBody := block(
		func(g *idgen) *ast.ASTNode {
			n := callStmt("this.helper()")(g)
			callSite = n.ID
			return n
		},
	)
	calleeBody := block(
		func(g *idgen) *ast.ASTNode {
			n := leaf(ast.Expression, "doWork();")(g)
			calleeFirst = n.ID
			return n
		},
	)
	cls := class("class Foo {",
		classBody(
			method("void caller() {", callerBody),
			method("void helper() {", calleeBody),
		),
	)
	p := program("Foo.java", cls)

	set := &ast.ProgramSet{Programs: []*ast.Program{p}}
	store := callgraph.Build(set)

	assert.Contains(t, store.Successors(callSite), calleeFirst)
}

func TestBuild_CrossFileCallRequiresNoImportForPhase1(t *testing.T) {
	var callSite, calleeFirst int

	callerBody := block(
		func(g *idgen) *ast.ASTNode {
			n := callStmt("remote.process()")(g)
			callSite = n.ID
			return n
		},
	)
	callerProg := program("Caller.java", class("class Caller {",
		classBody(method("void run() {", callerBody)),
	))

	calleeBody := block(
		func(g *idgen) *ast.ASTNode {
			n := leaf(ast.Expression, "doProcess();")(g)
			calleeFirst = n.ID
			return n
		},
	)
	// continue the id counter so the two programs' id ranges stay disjoint,
	// as they would in a real ProgramSet.
	calleeGen := &idgen{n: callerProg.Root.ChildrenUntil}
	calleeProg := &ast.Program{Path: "Remote.java", Root: class("class Remote {",
		classBody(method("void process() {", calleeBody)),
	)(calleeGen)}

	set := &ast.ProgramSet{Programs: []*ast.Program{callerProg, calleeProg}}
	store := callgraph.Build(set)

	// phase 1 links by name alone, with no import present at all.
	assert.Contains(t, store.Successors(callSite), calleeFirst)
}

func TestBuild_ReturnEdgeLinksCalleeBackToCallSite(t *testing.T) {
	var callSite, calleeEntry int

	callerBody := block(
		func(g *idgen) *ast.ASTNode {
			n := callStmt("helper()")(g)
			callSite = n.ID
			return n
		},
	)
	helperMethod := method("void helper() {", block(
		func(g *idgen) *ast.ASTNode {
			n := leaf(ast.Expression, "x=1;")(g)
			calleeEntry = n.ID
			return n
		},
	))
	cls := class("class Foo {",
		classBody(
			method("void caller() {", callerBody),
			helperMethod,
		),
	)
	p := program("Foo.java", cls)

	set := &ast.ProgramSet{Programs: []*ast.Program{p}}
	store := callgraph.Build(set)

	assert.Contains(t, store.Successors(calleeEntry), callSite)
}

func TestBuild_ImportFilteredOverlayAttributesSameClassAsUnfiltered(t *testing.T) {
	var callSite, calleeFirst int

	callerBody := block(
		func(g *idgen) *ast.ASTNode {
			n := callStmt("helper()")(g)
			callSite = n.ID
			return n
		},
	)
	calleeBody := block(
		func(g *idgen) *ast.ASTNode {
			n := leaf(ast.Expression, "doWork();")(g)
			calleeFirst = n.ID
			return n
		},
	)
	cls := class("class Foo {",
		classBody(
			method("void caller() {", callerBody),
			method("void helper() {", calleeBody),
		),
	)
	p := program("Foo.java", cls)

	set := &ast.ProgramSet{Programs: []*ast.Program{p}}
	store := callgraph.Build(set)

	// same-file class is always attributable, with or without an import, so
	// the overlay re-emits the edge rather than dropping it.
	occurrences := 0
	for _, s := range store.Successors(callSite) {
		if s == calleeFirst {
			occurrences++
		}
	}
	assert.Equal(t, 2, occurrences)
}

func TestBuild_NoInvocationsProducesOnlyAnchorEdges(t *testing.T) {
	body := block(leaf(ast.Expression, "x=1;"))
	var defining int
	m := func(g *idgen) *ast.ASTNode {
		n := method("void m() {", body)(g)
		defining = n.ID
		return n
	}
	cls := class("class Foo {", classBody(m))
	p := program("Foo.java", cls)

	set := &ast.ProgramSet{Programs: []*ast.Program{p}}
	idx := callgraph.BuildIndex(p)
	assert.Len(t, idx.Classes, 1)
	fn := idx.Classes[0].Functions["m"]
	assert.NotNil(t, fn)

	store := callgraph.Build(set)
	assert.Equal(t, []int{fn.FirstStatementID}, store.Successors(defining))
}
