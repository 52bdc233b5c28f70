package ast

type Decl interface {
	Node
	isDecl()
}

func (*FuncDecl) isDecl() {}

type Stmt interface {
	Node
	isStmt()
}

func (*VarDecl) isStmt() {}

func (*Block) isStmt() {}
