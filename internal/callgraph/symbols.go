// Package callgraph builds inter-procedural call edges across a ProgramSet
// (spec.md §4.4), using a lightweight name-only symbol table: no type
// resolution, no virtual dispatch, import-filtered overlay only.
package callgraph

import (
	"regexp"
	"strings"

	"github.com/viant/reachgraph/internal/ast"
)

// Function is a callee candidate: a named method with a resolved body entry.
type Function struct {
	Name             string
	DefiningNodeID   int
	FirstStatementID int
	LastStatementID  int
}

// Class groups the functions declared in one ClassDeclaration.
type Class struct {
	Name           string
	DefiningNodeID int
	Functions      map[string]*Function
}

// Import is the last dotted segment of an `import X.Y.Z;` declaration.
type Import struct {
	Name string
}

// ProgramIndex indexes one parsed Java file's classes and imports.
type ProgramIndex struct {
	Path    string
	Classes []*Class
	Imports []Import
}

var (
	classNameRe  = regexp.MustCompile(`\bclass\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	importNameRe = regexp.MustCompile(`^\s*import\s+(?:static\s+)?([A-Za-z0-9_$.]+?)\s*;\s*$`)
)

// extractClassName implements spec.md §4.4: the identifier token following
// the `class` keyword up to `{`, stripping extends/implements clauses. A
// ClassDeclaration's Code slice spans its whole ClassBody as well, but the
// first `class` keyword in it is the declaration's own, so taking the first
// identifier after it is sufficient.
func extractClassName(code string) string {
	m := classNameRe.FindStringSubmatch(code)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractMethodName implements spec.md §4.4: the last dotted segment of the
// token immediately preceding the first `(` in the node's source slice.
func extractMethodName(code string) string {
	idx := strings.IndexByte(code, '(')
	if idx < 0 {
		return ""
	}
	head := strings.TrimSpace(code[:idx])
	fields := strings.Fields(head)
	if len(fields) == 0 {
		return ""
	}
	token := fields[len(fields)-1]
	if dot := strings.LastIndexByte(token, '.'); dot >= 0 {
		token = token[dot+1:]
	}
	return token
}

// extractImportName implements spec.md §3: the last dotted segment of an
// `import X.Y.Z;` declaration with the trailing semicolon stripped.
func extractImportName(code string) (string, bool) {
	m := importNameRe.FindStringSubmatch(code)
	if m == nil {
		return "", false
	}
	path := m[1]
	if strings.HasSuffix(path, "*") {
		path = strings.TrimSuffix(path, ".*")
	}
	if dot := strings.LastIndexByte(path, '.'); dot >= 0 {
		return path[dot+1:], true
	}
	return path, true
}

// BuildIndex walks one Program top-level, extracting its class/function
// symbol table and import list (spec.md §4.4 "symbol table construction").
func BuildIndex(p *ast.Program) *ProgramIndex {
	idx := &ProgramIndex{Path: p.Path}
	if p.Root == nil {
		return idx
	}
	var walk func(n *ast.ASTNode)
	walk = func(n *ast.ASTNode) {
		switch n.Kind {
		case ast.ImportDeclaration:
			if name, ok := extractImportName(n.Code); ok {
				idx.Imports = append(idx.Imports, Import{Name: name})
			}
			return
		case ast.ClassDeclaration:
			if cls := buildClass(n); cls != nil {
				idx.Classes = append(idx.Classes, cls)
			}
			// classes may nest further classes; keep descending.
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(p.Root)
	return idx
}

func buildClass(n *ast.ASTNode) *Class {
	name := extractClassName(n.Code)
	if name == "" {
		return nil
	}
	cls := &Class{Name: name, DefiningNodeID: n.ID, Functions: map[string]*Function{}}
	var body *ast.ASTNode
	for _, c := range n.Children {
		if c.Kind == ast.ClassBody {
			body = c
			break
		}
	}
	if body == nil {
		return cls
	}
	for _, m := range body.Children {
		if m.Kind != ast.MethodDeclaration {
			continue
		}
		fn := buildFunction(m)
		if fn != nil {
			cls.Functions[fn.Name] = fn
		}
	}
	return cls
}

func buildFunction(m *ast.ASTNode) *Function {
	name := extractMethodName(m.Code)
	if name == "" {
		return nil
	}
	var body *ast.ASTNode
	for _, c := range m.Children {
		if c.Kind == ast.Block {
			body = c
			break
		}
	}
	if body == nil {
		return nil // empty/absent body: skipped per spec.md §3
	}
	stmts := ast.GetStatements(body)
	if len(stmts) == 0 {
		return nil
	}
	return &Function{
		Name:             name,
		DefiningNodeID:   m.ID,
		FirstStatementID: stmts[0],
		LastStatementID:  stmts[len(stmts)-1],
	}
}
