package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/fivemoreminix/culebra/pkg/lexer"
)

// runCheck reports every bad character in the given files (or stdin) on
// stderr, and fails if there was any.
func runCheck(args []string, stdin io.Reader, stderr io.Writer) error {
	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{""}
	}

	var count int
	for _, path := range paths {
		name, src, err := readSource(path, stdin)
		if err != nil {
			return err
		}
		diags := lexer.Check(name, src)
		if err := lexer.WriteDiagnostics(stderr, diags); err != nil {
			return err
		}
		count += len(diags)
	}

	if count > 0 {
		return fmt.Errorf("found %d bad character(s)", count)
	}
	return nil
}
