package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const indentUnit = "    "

// Printer writes an AST as program text. The first write error is latched:
// once set, every later write is a no-op and the error is returned from Flush.
type Printer struct {
	w     *bufio.Writer
	n     int64
	err   error
	depth int
}

// NewPrinter returns a Printer that buffers output to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

func (p *Printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	n, err := fmt.Fprintf(p.w, strings.Repeat(indentUnit, p.depth)+format+"\n", args...)
	p.n += int64(n)
	p.err = err
}

// Stmts prints each statement at the current indentation.
func (p *Printer) Stmts(stmts []Stmt) {
	for _, s := range stmts {
		p.Stmt(s)
	}
}

// Stmt prints a single statement, recursing into bodies.
func (p *Printer) Stmt(s Stmt) {
	switch n := s.(type) {
	case *LetDecl:
		p.line("let %s = %s", n.Name, ExprString(n.Init))
	case *Assignment:
		p.line("%s = %s", n.Name, ExprString(n.Value))
	case *CallStmt:
		if len(n.Args) > 1 {
			p.fail(fmt.Errorf("%s: builtins take at most one argument, got %d", n.Name, len(n.Args)))
			return
		}
		arg := ""
		if len(n.Args) == 1 {
			arg = ExprString(n.Args[0])
		}
		p.line("%s(%s)", n.Name, arg)
	case *IfStmt:
		p.line("if %s then", ExprString(n.Condition))
		p.block(n.Body)
		p.line("end")
	case *WhileStmt:
		p.line("while %s do", ExprString(n.Condition))
		p.block(n.Body)
		p.line("end")
	default:
		p.fail(fmt.Errorf("cannot print statement %T", s))
	}
}

func (p *Printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Printer) block(body []Stmt) {
	p.depth++
	p.Stmts(body)
	p.depth--
}

// Flush writes any buffered text and returns the byte count and first error.
func (p *Printer) Flush() (int64, error) {
	if p.err == nil {
		p.err = p.w.Flush()
	}
	return p.n, p.err
}

// Fprint prints prog to w and returns the number of bytes written.
func Fprint(w io.Writer, prog []Stmt) (int64, error) {
	p := NewPrinter(w)
	p.Stmts(prog)
	return p.Flush()
}

// Format returns prog as program text.
func Format(prog []Stmt) string {
	var sb strings.Builder
	// strings.Builder never fails; only malformed nodes can.
	if _, err := Fprint(&sb, prog); err != nil {
		return sb.String() + "<" + err.Error() + ">"
	}
	return sb.String()
}

// precedence ranks operators; higher binds tighter.
func precedence(op TokenType) int {
	switch op {
	case AND:
		return 1
	case LESS, GREATER:
		return 2
	case PLUS, MINUS:
		return 3
	}
	return 4
}

func exprPrec(e Expr) int {
	switch n := e.(type) {
	case *BinaryExpr:
		return precedence(n.Op)
	case *LogicalExpr:
		return precedence(n.Op)
	}
	return 4
}

// ExprString renders e in source syntax. Operators are left-associative, so a
// right operand of equal precedence is parenthesised.
func ExprString(e Expr) string {
	switch n := e.(type) {
	case *BinaryExpr:
		return infix(n.Op, n.Left, n.Right)
	case *LogicalExpr:
		return infix(n.Op, n.Left, n.Right)
	case nil:
		return ""
	}
	return e.String()
}

func infix(op TokenType, left, right Expr) string {
	prec := precedence(op)
	l := ExprString(left)
	if exprPrec(left) < prec {
		l = "(" + l + ")"
	}
	r := ExprString(right)
	if exprPrec(right) <= prec {
		r = "(" + r + ")"
	}
	return l + " " + op.Symbol() + " " + r
}
