// Package script models the small scripting language that lifegen targets:
// integer scalars, let/assignment, print(...), if … then … end and
// while … do … end.
//
// Pipeline: AST → Fprint → program text, and back again with Lex → Parse.
package script

import (
	"fmt"
	"strconv"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// Literal is an integer constant.
//
//	let x = 0
//	        ^  Literal{Value: 0}
type Literal struct {
	Value int
}

func (*Literal) exprNode()        {}
func (l *Literal) String() string { return strconv.Itoa(l.Value) }

// VarRef is a read of a named variable.
type VarRef struct {
	Name string
}

func (*VarRef) exprNode()        {}
func (v *VarRef) String() string { return v.Name }

// BinaryExpr represents Left Op Right for + - < >.
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.Symbol(), b.Right)
}

// LogicalExpr represents Left and Right.
type LogicalExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*LogicalExpr) exprNode() {}
func (l *LogicalExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left, l.Op.Symbol(), l.Right)
}

//  Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	stmtNode()
	String() string
}

// LetDecl represents  let name = expr
type LetDecl struct {
	Name string
	Init Expr
}

func (*LetDecl) stmtNode() {}
func (d *LetDecl) String() string {
	return fmt.Sprintf("LetDecl(%s = %s)", d.Name, d.Init)
}

// Assignment represents  name = expr
type Assignment struct {
	Name  string
	Value Expr
}

func (*Assignment) stmtNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s = %s)", a.Name, a.Value)
}

// CallStmt represents a builtin call used as a statement, e.g. print(x).
type CallStmt struct {
	Name string
	Args []Expr
}

func (*CallStmt) stmtNode() {}
func (c *CallStmt) String() string {
	return fmt.Sprintf("CallStmt(%s, args=%v)", c.Name, c.Args)
}

// IfStmt represents  if cond then body end
type IfStmt struct {
	Condition Expr
	Body      []Stmt
}

func (*IfStmt) stmtNode() {}
func (s *IfStmt) String() string {
	return fmt.Sprintf("IfStmt(%s, len=%d)", s.Condition, len(s.Body))
}

// WhileStmt represents  while cond do body end
type WhileStmt struct {
	Condition Expr
	Body      []Stmt
}

func (*WhileStmt) stmtNode() {}
func (s *WhileStmt) String() string {
	return fmt.Sprintf("WhileStmt(%s, len=%d)", s.Condition, len(s.Body))
}

//  Constructors used by generators

// Int returns a literal node.
func Int(v int) *Literal { return &Literal{Value: v} }

// Var returns a variable reference node.
func Var(name string) *VarRef { return &VarRef{Name: name} }

// Bin returns a binary expression node.
func Bin(op TokenType, left, right Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

// And returns left and right.
func And(left, right Expr) *LogicalExpr {
	return &LogicalExpr{Op: AND, Left: left, Right: right}
}

// Sum folds terms into a left-associative + chain. An empty term list yields nil.
func Sum(terms ...Expr) Expr {
	if len(terms) == 0 {
		return nil
	}
	acc := terms[0]
	for _, t := range terms[1:] {
		acc = Bin(PLUS, acc, t)
	}
	return acc
}
