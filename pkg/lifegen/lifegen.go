// Package lifegen generates a script-language program that runs Conway's Game
// of Life on the 81-cell board from package grid.
//
// The target language has no arrays or functions, so every cell is a pair of
// scalars (current and future state) and every neighbour count is unrolled
// into a sum of variables. The program is built as a script AST and printed.
package lifegen

import (
	"fmt"
	"io"

	"golgen/pkg/grid"
	"golgen/pkg/script"
)

const (
	Generations = 10

	CounterVar   = "x"
	ValueVar     = "value"
	CellPrefix   = "position"
	FuturePrefix = "future" + CellPrefix

	printBuiltin = "print"
)

// Rule maps a neighbour count, held in ValueVar, to the cell's next state.
type Rule struct {
	Name string
	When script.Expr
	Next int
}

// Rules are applied in order, each as its own if block reading the same
// ValueVar. Exactly one neighbour kills a cell but zero leaves it unchanged.
var Rules = []Rule{
	{
		Name: "isolation",
		When: script.And(
			script.Bin(script.LESS, script.Var(ValueVar), script.Int(2)),
			script.Bin(script.GREATER, script.Var(ValueVar), script.Int(0)),
		),
		Next: 0,
	},
	{
		Name: "survival",
		When: script.And(
			script.Bin(script.LESS, script.Var(ValueVar), script.Int(4)),
			script.Bin(script.GREATER, script.Var(ValueVar), script.Int(1)),
		),
		Next: 1,
	},
	{
		Name: "overcrowding",
		When: script.Bin(script.GREATER, script.Var(ValueVar), script.Int(3)),
		Next: 0,
	},
}

// CellVar names the current-state scalar of cell i.
func CellVar(i int) string { return fmt.Sprintf("%s%d", CellPrefix, i) }

// FutureVar names the next-generation scalar of cell i.
func FutureVar(i int) string { return fmt.Sprintf("%s%d", FuturePrefix, i) }

func marker() script.Stmt {
	return &script.CallStmt{Name: printBuiltin, Args: []script.Expr{script.Var(CounterVar)}}
}

func let(name string, v int) script.Stmt {
	return &script.LetDecl{Name: name, Init: script.Int(v)}
}

func assign(name string, e script.Expr) script.Stmt {
	return &script.Assignment{Name: name, Value: e}
}

// Build returns the complete program.
func Build() []script.Stmt {
	prog := []script.Stmt{
		let(CounterVar, 0),
		let(ValueVar, 0),
		marker(),
	}
	for i := 0; i < grid.Cells; i++ {
		prog = append(prog, let(CellVar(i), 0))
	}
	prog = append(prog, marker())
	for i := 0; i < grid.Cells; i++ {
		prog = append(prog, let(FutureVar(i), 0))
	}
	return append(prog, GenerationLoop())
}

// GenerationLoop returns the while loop that advances the board Generations times.
func GenerationLoop() *script.WhileStmt {
	body := []script.Stmt{marker()}
	for c := grid.MaxIndex; c >= 0; c-- {
		body = append(body, CellUpdate(c)...)
	}
	body = append(body, marker())
	body = append(body, Swap()...)
	body = append(body,
		assign(CounterVar, script.Bin(script.PLUS, script.Var(CounterVar), script.Int(1))),
		marker(),
	)
	return &script.WhileStmt{
		Condition: script.Bin(script.LESS, script.Var(CounterVar), script.Int(Generations)),
		Body:      body,
	}
}

// CellUpdate returns the marker, neighbour-sum assignment and rule blocks for cell c.
func CellUpdate(c int) []script.Stmt {
	out := []script.Stmt{marker(), assign(ValueVar, NeighborSum(c))}
	for _, r := range Rules {
		out = append(out, &script.IfStmt{
			Condition: r.When,
			Body:      []script.Stmt{assign(FutureVar(c), script.Int(r.Next))},
		})
	}
	return out
}

// NeighborSum returns n1 + n2 + … + 0 over c's in-range neighbours. The
// trailing 0 keeps the expression valid when there are none.
func NeighborSum(c int) script.Expr {
	var terms []script.Expr
	for _, n := range grid.Neighbors(c) {
		terms = append(terms, script.Var(CellVar(n)))
	}
	return script.Sum(append(terms, script.Int(0))...)
}

// Swap copies every future-state scalar back into its current-state scalar,
// in ascending cell order.
func Swap() []script.Stmt {
	out := make([]script.Stmt, 0, grid.Cells)
	for i := 0; i < grid.Cells; i++ {
		out = append(out, assign(CellVar(i), script.Var(FutureVar(i))))
	}
	return out
}

// Emit writes the program text to w and returns the number of bytes written.
func Emit(w io.Writer) (int64, error) {
	n, err := script.Fprint(w, Build())
	if err != nil {
		return n, fmt.Errorf("emit program: %w", err)
	}
	return n, nil
}
