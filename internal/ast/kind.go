package ast

// Kind identifies an AST node's semantic role. It is string-backed so that
// debug dumps and fixtures read as names rather than magic numbers.
type Kind string

const (
	Root                     Kind = "Root"
	PackageDeclaration       Kind = "PackageDeclaration"
	ImportDeclaration        Kind = "ImportDeclaration"
	ClassDeclaration         Kind = "ClassDeclaration"
	ClassBody                Kind = "ClassBody"
	MethodDeclaration        Kind = "MethodDeclaration"
	Block                    Kind = "Block"
	SwitchBlock              Kind = "SwitchBlock"
	SwitchLabel              Kind = "SwitchLabel"
	CatchClause              Kind = "CatchClause"
	MethodInvocation         Kind = "MethodInvocation"
	Unknown                  Kind = "Unknown"

	// Statement kinds (see spec.md §3).
	If                       Kind = "If"
	While                    Kind = "While"
	Do                       Kind = "Do"
	For                      Kind = "For"
	Assert                   Kind = "Assert"
	Expression               Kind = "Expression"
	LocalVariableDeclaration Kind = "LocalVariableDeclaration"
	TryWithResource          Kind = "TryWithResource"
	Try                      Kind = "Try"
	Synchronized             Kind = "Synchronized"
	Yield                    Kind = "Yield"
	Switch                   Kind = "Switch"
	Break                    Kind = "Break"
	Continue                 Kind = "Continue"
	Return                   Kind = "Return"
	Throw                    Kind = "Throw"
)

// sequentialStatements is the set of kinds pass 1 of the CFG builder links
// linearly (spec.md §4.3).
var sequentialStatements = map[Kind]bool{
	If:                       true,
	While:                    true,
	Do:                       true,
	For:                      true,
	Assert:                   true,
	Expression:                true,
	LocalVariableDeclaration: true,
	TryWithResource:          true,
	Try:                      true,
	Synchronized:             true,
	Yield:                    true,
	Switch:                   true,
}

// IsSequential reports whether k is one of the "sequential statement" kinds
// that pass 1 of the CFG builder links via prev/successor chaining.
func IsSequential(k Kind) bool { return sequentialStatements[k] }

// blockBodyStatements is the set of kinds get_statements() returns,
// excluding Break/Continue/Throw per spec.md §4.1.
var blockBodyStatements = map[Kind]bool{
	If: true, While: true, Do: true, For: true, Assert: true,
	Expression: true, LocalVariableDeclaration: true, TryWithResource: true,
	Try: true, Synchronized: true, Yield: true, Switch: true,
	Return: true,
}

// IsStatement reports whether k belongs to the "value-carrying" statement
// set enumerated by get_statements (spec.md §4.1).
func IsStatement(k Kind) bool { return blockBodyStatements[k] }

// IsBlockLike reports whether k is a Block or SwitchBlock, the kinds
// get_blocks() selects.
func IsBlockLike(k Kind) bool { return k == Block || k == SwitchBlock }
