package main

import (
	"fmt"
	"io"
	"os"
)

// readSource reads the file named by path, or all of stdin when path is
// empty. The returned name identifies the source in token positions.
func readSource(path string, stdin io.Reader) (name string, src []byte, err error) {
	if path == "" {
		src, err = io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "<stdin>", src, nil
	}

	src, err = os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading source: %w", err)
	}
	return path, src, nil
}
