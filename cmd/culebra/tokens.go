package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fivemoreminix/culebra/pkg/lexer"
)

func runTokens(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("tokens", flag.ContinueOnError)
	whitespace := flags.Bool("ws", false, "include whitespace tokens")
	repl := flags.Bool("repl", false, "tokenize lines typed interactively until \"exit\"")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *repl {
		return tokensREPL(stdin, stdout, *whitespace)
	}

	name, src, err := readSource(flags.Arg(0), stdin)
	if err != nil {
		return err
	}
	return writeTokens(stdout, lexer.New(name, src), *whitespace, true)
}

// writeTokens prints one token per line as `line:col KIND "text"`.
func writeTokens(w io.Writer, t *lexer.Tokenizer, whitespace, eof bool) error {
	bw := bufio.NewWriter(w)
	t.Each(func(tok lexer.Token) bool {
		if (tok.Kind == lexer.Whitespace && !whitespace) || (tok.Kind == lexer.EOF && !eof) {
			return true
		}
		fmt.Fprintln(bw, tok)
		return true
	})
	return bw.Flush()
}

func tokensREPL(stdin io.Reader, stdout io.Writer, whitespace bool) error {
	fmt.Fprintln(stdout, "Culebra lexer. Type 'exit' or press Ctrl+D to quit.")

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, ">>> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			break
		}

		line := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			fmt.Fprintln(stdout, "Goodbye!")
			return nil
		}
		if err := writeTokens(stdout, lexer.New("<repl>", []byte(line)), whitespace, false); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
