package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golgen/pkg/lifegen"
	"golgen/pkg/utils"
)

const defaultOutput = "gameOfLife.tom"

func main() {
	outPath := flag.String("out", defaultOutput, `output program path ("-" for stdout)`)
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	n, written, err := generate(*outPath, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}
	if written != "" {
		fmt.Printf("generated %d bytes -> %s\n", n, written)
	}
}

// generate writes the program to outPath, or to stdout when outPath is "-".
// It returns the byte count and the resolved path ("" for stdout).
func generate(outPath string, stdout io.Writer) (int64, string, error) {
	if outPath == "-" {
		n, err := lifegen.Emit(stdout)
		return n, "", err
	}

	fullPath, err := utils.PrepareOutput(outPath)
	if err != nil {
		return 0, "", err
	}
	n, err := lifegen.WriteFile(fullPath)
	if err != nil {
		return 0, "", fmt.Errorf("write %q: %w", fullPath, err)
	}
	return n, fullPath, nil
}
