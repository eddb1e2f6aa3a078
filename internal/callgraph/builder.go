package callgraph

import (
	"strings"

	"github.com/viant/reachgraph/internal/ast"
	"github.com/viant/reachgraph/internal/edge"
)

// callSite is one MethodInvocation found inside a function body, paired with
// the nearest enclosing value-carrying statement it belongs to, as tracked by
// findCallSites while it descends the tree.
type callSite struct {
	calleeName           string
	enclosingStatementID int
}

// Build resolves call edges across every program in set, per spec.md §4.4's
// two-phase scheme:
//
//   - phase 1 links call-site -> callee-entry and callee-entry -> call-site
//     (the "return" edge) by name only, across the whole set, ignoring
//     imports;
//   - phase 2 re-emits the same edges for call sites whose callee class is
//     declared in the caller's own file or named in the caller file's
//     import list, an overlay that strengthens
//     attribution without removing phase 1's broader linking.
//
// Every function's definingNode -> firstStatement anchor edge is emitted
// once, independent of any call resolution.
func Build(set *ast.ProgramSet) *edge.Store {
	store := edge.New()

	indices := make([]*ProgramIndex, len(set.Programs))
	for i, p := range set.Programs {
		indices[i] = BuildIndex(p)
	}

	// global name -> functions, used by phase 1 (no import filter).
	byName := map[string][]*Function{}
	for _, idx := range indices {
		for _, cls := range idx.Classes {
			for _, fn := range cls.Functions {
				store.Add(fn.DefiningNodeID, fn.FirstStatementID)
				byName[fn.Name] = append(byName[fn.Name], fn)
			}
		}
	}

	for pi, p := range set.Programs {
		idx := indices[pi]
		sites := findCallSites(p.Root)

		imported := map[string]bool{}
		for _, im := range idx.Imports {
			imported[im.Name] = true
		}
		localClasses := map[string]bool{}
		for _, cls := range idx.Classes {
			localClasses[cls.Name] = true
		}

		for _, cs := range sites {
			if cs.enclosingStatementID == 0 {
				continue
			}
			candidates := byName[cs.calleeName]
			for _, fn := range candidates {
				// phase 1: unfiltered linking.
				store.Add(cs.enclosingStatementID, fn.FirstStatementID)
				store.Add(fn.FirstStatementID, cs.enclosingStatementID)
			}
		}

		// phase 2: import-filtered overlay. A candidate is attributable if
		// its declaring class is local to the file or named in its imports;
		// re-emit those edges to strengthen attribution.
		for _, cs := range sites {
			if cs.enclosingStatementID == 0 {
				continue
			}
			for _, fn := range byName[cs.calleeName] {
				owner := ownerClassName(indices, fn)
				if owner == "" {
					continue
				}
				if !localClasses[owner] && !imported[owner] {
					continue
				}
				store.Add(cs.enclosingStatementID, fn.FirstStatementID)
				store.Add(fn.FirstStatementID, cs.enclosingStatementID)
			}
		}
	}

	return store
}

func ownerClassName(indices []*ProgramIndex, fn *Function) string {
	for _, idx := range indices {
		for _, cls := range idx.Classes {
			if f, ok := cls.Functions[fn.Name]; ok && f.DefiningNodeID == fn.DefiningNodeID {
				return cls.Name
			}
		}
	}
	return ""
}

// findCallSites walks root looking for MethodInvocation nodes, tracking the
// nearest enclosing value-carrying statement as it descends.
func findCallSites(root *ast.ASTNode) []callSite {
	if root == nil {
		return nil
	}
	var sites []callSite
	var walk func(n *ast.ASTNode, enclosing int)
	walk = func(n *ast.ASTNode, enclosing int) {
		next := enclosing
		if ast.IsStatement(n.Kind) {
			next = n.ID
		}
		if n.Kind == ast.MethodInvocation {
			if name := calleeNameOf(n.Code); name != "" {
				sites = append(sites, callSite{calleeName: name, enclosingStatementID: enclosing})
			}
		}
		for _, c := range n.Children {
			walk(c, next)
		}
	}
	walk(root, 0)
	return sites
}

// calleeNameOf extracts the invoked method's name: the last dotted segment
// of the token immediately preceding the invocation's argument list.
func calleeNameOf(code string) string {
	idx := strings.IndexByte(code, '(')
	if idx < 0 {
		return ""
	}
	head := strings.TrimSpace(code[:idx])
	if head == "" {
		return ""
	}
	if dot := strings.LastIndexByte(head, '.'); dot >= 0 {
		head = head[dot+1:]
	}
	if sp := strings.LastIndexAny(head, " \t\n"); sp >= 0 {
		head = head[sp+1:]
	}
	return head
}
