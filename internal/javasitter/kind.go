package javasitter

import "github.com/viant/reachgraph/internal/ast"

// kindByType maps a tree-sitter-java grammar node type name to our closed
// ast.Kind enumeration (spec.md §6). Synonyms (e.g. enhanced_for_statement)
// collapse onto the same Kind the spec names; any type not present here
// maps to ast.Unknown.
var kindByType = map[string]ast.Kind{
	"program":                   ast.Root,
	"package_declaration":       ast.PackageDeclaration,
	"import_declaration":        ast.ImportDeclaration,
	"class_declaration":         ast.ClassDeclaration,
	"class_body":                ast.ClassBody,
	"method_declaration":        ast.MethodDeclaration,
	"constructor_declaration":   ast.MethodDeclaration,
	"block":                     ast.Block,
	"switch_block":              ast.SwitchBlock,
	"switch_block_statement_group": ast.SwitchBlock,
	"switch_label":              ast.SwitchLabel,
	"switch_rule":               ast.SwitchLabel,
	"catch_clause":              ast.CatchClause,
	"method_invocation":         ast.MethodInvocation,

	"if_statement":                  ast.If,
	"while_statement":                ast.While,
	"do_statement":                   ast.Do,
	"for_statement":                  ast.For,
	"enhanced_for_statement":         ast.For, // synonym, spec.md §6
	"assert_statement":               ast.Assert,
	"expression_statement":           ast.Expression,
	"local_variable_declaration":     ast.LocalVariableDeclaration,
	// try_with_resources_statement intentionally maps to Try, not
	// TryWithResource: the mapping table never emits TryWithResource (see
	// spec.md §9 open question); CFG construction treats both identically.
	"try_with_resources_statement": ast.Try,
	"try_statement":                ast.Try,
	"synchronized_statement":         ast.Synchronized,
	"yield_statement":                ast.Yield,
	"switch_statement":               ast.Switch,
	"switch_expression":              ast.Switch,
	"break_statement":                ast.Break,
	"continue_statement":             ast.Continue,
	"return_statement":               ast.Return,
	"throw_statement":                ast.Throw,
}

// KindOf maps a tree-sitter grammar type name to ast.Kind. Unrecognized
// names map to ast.Unknown, never an error (spec.md §6).
func KindOf(sitterType string) ast.Kind {
	if k, ok := kindByType[sitterType]; ok {
		return k
	}
	return ast.Unknown
}
