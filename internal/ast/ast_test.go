package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryNode_StringIsInfix(t *testing.T) {
	n := NewBinary(OpAdd, &NumNode{Val: 1}, &NumNode{Val: 2})
	assert.Equal(t, "(1 + 2)", n.String())
}

func TestBinaryOp_StringCoversEveryOperator(t *testing.T) {
	cases := map[BinaryOp]string{
		OpAssign: "=",
		OpEq:     "==",
		OpNe:     "!=",
		OpLt:     "<",
		OpLe:     "<=",
		OpAdd:    "+",
		OpSub:    "-",
		OpMul:    "*",
		OpDiv:    "/",
	}
	for op, want := range cases {
		assert.Equal(t, want, op.String())
	}
}

func TestLVarNode_StringIncludesOffset(t *testing.T) {
	n := &LVarNode{Name: "x", Offset: 8}
	assert.Equal(t, "x@8", n.String())
}

func TestNodeInterfaceIsSatisfiedByEveryExprKind(t *testing.T) {
	var nodes []Node = []Node{
		&NumNode{},
		&LVarNode{},
		&FuncNode{Call: &FunctionCall{}},
		&BinaryNode{Lhs: &NumNode{}, Rhs: &NumNode{}},
	}
	assert.Len(t, nodes, 4)
}

func TestStmtInterfaceIsSatisfiedByEveryStmtKind(t *testing.T) {
	var stmts []Stmt = []Stmt{
		&ExprStmt{},
		&ReturnStmt{},
		&IfStmt{},
		&WhileStmt{},
		&ForStmt{},
		&CompoundStmt{},
	}
	assert.Len(t, stmts, 6)
}
