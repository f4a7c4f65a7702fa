// Command culebra is a set of tools around the Culebra lexer: a highlighted
// terminal viewer, a token dump, a checker for bad characters, and an
// exporter to chroma formats.
package main

import (
	"fmt"
	"os"
)

const usage = `Usage: culebra <command> [arguments]

Commands:
  view FILE...                      open files in a highlighted terminal viewer
  tokens [-ws] [-repl] [FILE]       print the tokens of FILE (or stdin)
  check [FILE...]                   report bad characters, failing if any are found
  highlight [-f fmt] [-s style] [FILE]
                                    render FILE (or stdin) with a chroma formatter
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "view":
		err = runView(os.Args[2:])
	case "tokens":
		err = runTokens(os.Args[2:], os.Stdin, os.Stdout)
	case "check":
		err = runCheck(os.Args[2:], os.Stdin, os.Stderr)
	case "highlight":
		err = runHighlight(os.Args[2:], os.Stdin, os.Stdout)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "culebra %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}
