package main

import (
	"fmt"
	"os"
	"strings"

	"golgen/pkg/grid"
	"golgen/pkg/lifegen"
	"golgen/pkg/script"
)

func main() {
	prog := lifegen.Build()
	src := script.Format(prog)

	fmt.Println("Generated Program")
	fmt.Print(src)
	fmt.Println()

	// Lex
	tokens, err := script.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		os.Exit(1)
	}
	fmt.Printf("Tokens (%d)\n\n", len(tokens))

	// Parse
	stmts, err := script.Parse(tokens, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}
	fmt.Printf("AST (%d top-level statements)\n", len(stmts))
	for _, s := range stmts {
		fmt.Println(" ", s)
	}
	fmt.Println()

	fmt.Println("Neighbours")
	for c := 0; c < grid.Cells; c++ {
		x, y := grid.GetGridCoords(c, grid.Width)
		var refs []string
		for _, n := range grid.Neighbors(c) {
			nx, ny := grid.GetGridCoords(n, grid.Width)
			refs = append(refs, fmt.Sprintf("%d(%d,%d)", n, nx, ny))
		}
		fmt.Printf("  %2d (%d,%d): %s\n", c, x, y, strings.Join(refs, " "))
	}
}
