package ast

type Expr interface {
	Node
	isExpr()
}

func (*VarGet) isExpr() {}

func (*IntLit) isExpr() {}
