package ast

type NodeType int

const (
	// High-level constructs
	MODULE NodeType = iota
	FUNC_DECL
	BLOCK

	// Statements
	VAR_DECL

	// Expressions
	VAR_GET
	INT_LIT

	// Types
	TYPE_NAME
)

var nodeTypeNames = [...]string{
	MODULE:    "MODULE",
	FUNC_DECL: "FUNC_DECL",
	BLOCK:     "BLOCK",
	VAR_DECL:  "VAR_DECL",
	VAR_GET:   "VAR_GET",
	INT_LIT:   "INT_LIT",
	TYPE_NAME: "TYPE_NAME",
}

func (n NodeType) String() string {
	if n < 0 || int(n) >= len(nodeTypeNames) {
		return "UNKNOWN"
	}
	return nodeTypeNames[n]
}
