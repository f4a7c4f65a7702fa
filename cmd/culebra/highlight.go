package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fivemoreminix/culebra/pkg/export"
)

func runHighlight(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("highlight", flag.ContinueOnError)
	formatter := flags.String("f", "terminal256", "chroma formatter name")
	style := flags.String("s", "monokai", "chroma style name")
	list := flags.Bool("list", false, "list formatter and style names")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *list {
		fmt.Fprintf(stdout, "formatters: %s\nstyles: %s\n",
			strings.Join(export.Formatters(), " "), strings.Join(export.Styles(), " "))
		return nil
	}

	_, src, err := readSource(flags.Arg(0), stdin)
	if err != nil {
		return err
	}
	return export.Format(stdout, src, *formatter, *style)
}
