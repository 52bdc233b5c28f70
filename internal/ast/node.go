// Package ast declares the syntax-tree shapes the parser will build
// from the token stream. The declarations are inert: the parser that
// populates them is a separate stage and consumes tokens through the
// tokenizer's Peek/Next protocol.
package ast

// Node is implemented by every syntax-tree variant. NodeStart and
// NodeEnd are half-open rune offsets into the source text, matching
// token spans.
type Node interface {
	NodeType() NodeType
	NodeStart() int
	NodeEnd() int
}

// Module is the root of one source file.
type Module struct {
	Name  string
	Decls []Decl
	Start int
	End   int
}

// FuncDecl is a top-level function declaration.
type FuncDecl struct {
	Name   string
	Return *TypeName
	Body   *Block
	Start  int
	End    int
}

// Block is a curly-brace statement sequence.
type Block struct {
	Stmts []Stmt
	Start int
	End   int
}

// VarDecl declares a variable with an explicit type and initializer.
type VarDecl struct {
	Name  string
	Type  *TypeName
	Value Expr
	Start int
	End   int
}

// VarGet reads a previously declared variable.
type VarGet struct {
	Name  string
	Start int
	End   int
}

// IntLit is an unsigned decimal integer literal.
type IntLit struct {
	Raw   string
	Value int64
	Start int
	End   int
}

// TypeName references a type by name.
type TypeName struct {
	Name  string
	Start int
	End   int
}

func (m *Module) NodeType() NodeType { return MODULE }
func (m *Module) NodeStart() int     { return m.Start }
func (m *Module) NodeEnd() int       { return m.End }

func (f *FuncDecl) NodeType() NodeType { return FUNC_DECL }
func (f *FuncDecl) NodeStart() int     { return f.Start }
func (f *FuncDecl) NodeEnd() int       { return f.End }

func (b *Block) NodeType() NodeType { return BLOCK }
func (b *Block) NodeStart() int     { return b.Start }
func (b *Block) NodeEnd() int       { return b.End }

func (v *VarDecl) NodeType() NodeType { return VAR_DECL }
func (v *VarDecl) NodeStart() int     { return v.Start }
func (v *VarDecl) NodeEnd() int       { return v.End }

func (v *VarGet) NodeType() NodeType { return VAR_GET }
func (v *VarGet) NodeStart() int     { return v.Start }
func (v *VarGet) NodeEnd() int       { return v.End }

func (i *IntLit) NodeType() NodeType { return INT_LIT }
func (i *IntLit) NodeStart() int     { return i.Start }
func (i *IntLit) NodeEnd() int       { return i.End }

func (t *TypeName) NodeType() NodeType { return TYPE_NAME }
func (t *TypeName) NodeStart() int     { return t.Start }
func (t *TypeName) NodeEnd() int       { return t.End }
