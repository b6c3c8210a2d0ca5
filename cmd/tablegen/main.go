package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"chess-tables/codegen"
)

func main() {
	set := flag.String("set", "full", "Table set: full (ranks, files, rook/bishop rays, knight masks) or reduced (ranks and files only)")
	qualifier := flag.String("qualifier", "const", "Declaration qualifier on emitted lines: const or static")
	out := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	tableSet, err := codegen.ParseSet(*set)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.PrintDefaults()
		os.Exit(2)
	}
	q, err := codegen.ParseQualifier(*qualifier)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*out, tableSet, q); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out string, set codegen.Set, q codegen.Qualifier) error {
	w := io.Writer(os.Stdout)
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return codegen.Emit(w, set, q)
}
