package script

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestExprString(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{Int(0), "0"},
		{Var("value"), "value"},
		{Sum(Var("a"), Var("b"), Int(0)), "a + b + 0"},
		{Bin(MINUS, Var("a"), Bin(MINUS, Var("b"), Var("c"))), "a - (b - c)"},
		{And(Bin(LESS, Var("v"), Int(2)), Bin(GREATER, Var("v"), Int(0))), "v < 2 and v > 0"},
		{Bin(LESS, Bin(PLUS, Var("x"), Int(1)), Int(10)), "x + 1 < 10"},
		{Bin(PLUS, And(Var("a"), Var("b")), Int(1)), "(a and b) + 1"},
	}
	for _, tc := range tests {
		if got := ExprString(tc.expr); got != tc.want {
			t.Errorf("ExprString(%s) = %q; want %q", tc.expr, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	prog := []Stmt{
		&LetDecl{Name: "x", Init: Int(0)},
		&WhileStmt{
			Condition: Bin(LESS, Var("x"), Int(10)),
			Body: []Stmt{
				&CallStmt{Name: "print", Args: []Expr{Var("x")}},
				&IfStmt{
					Condition: Bin(GREATER, Var("x"), Int(3)),
					Body:      []Stmt{&Assignment{Name: "y", Value: Int(1)}},
				},
				&Assignment{Name: "x", Value: Bin(PLUS, Var("x"), Int(1))},
			},
		},
	}
	want := strings.Join([]string{
		"let x = 0",
		"while x < 10 do",
		"    print(x)",
		"    if x > 3 then",
		"        y = 1",
		"    end",
		"    x = x + 1",
		"end",
		"",
	}, "\n")
	got := Format(prog)
	if got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}

	if back := parseSource(t, got); !reflect.DeepEqual(back, prog) {
		t.Errorf("round trip mismatch:\n%v\n%v", back, prog)
	}
}

type badStmt struct{}

func (badStmt) stmtNode()      {}
func (badStmt) String() string { return "bad" }

func TestFprint_Errors(t *testing.T) {
	var sb strings.Builder
	if _, err := Fprint(&sb, []Stmt{badStmt{}}); err == nil {
		t.Error("expected error for unknown statement")
	}
	two := &CallStmt{Name: "print", Args: []Expr{Int(1), Int(2)}}
	if _, err := Fprint(&sb, []Stmt{two}); err == nil {
		t.Error("expected error for two-argument call")
	}
}

type brokenWriter struct{}

var errClosed = errors.New("closed")

func (brokenWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestFprint_WriteErrorLatched(t *testing.T) {
	n, err := Fprint(brokenWriter{}, []Stmt{&LetDecl{Name: "x", Init: Int(0)}})
	if !errors.Is(err, errClosed) {
		t.Fatalf("got %v, want %v", err, errClosed)
	}
	if n != int64(len("let x = 0\n")) {
		t.Errorf("n = %d (bytes accepted by the buffer)", n)
	}
}
