package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		fails    bool
	}{
		{"clean", "def f(x):\n    return x\n", "", false},
		{
			"unterminated string",
			"x = \"abc\ny = 1\n",
			"<stdin>:1:5: bad character \"\\\"abc\"\nx = \"abc\n    ^\n",
			true,
		},
		{
			"invalid utf-8",
			"ok = 1\n  \xfe\n",
			"<stdin>:2:3: bad character \"\\xfe\"\n  \xfe\n  ^\n",
			true,
		},
		{
			"unterminated triple string",
			"s = \"\"\"doc\nmore",
			"<stdin>:1:5: bad character \"\\\"\\\"\\\"doc\\nmore\"\ns = \"\"\"doc\n    ^\n",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			err := runCheck(nil, strings.NewReader(tt.input), &stderr)
			if (err != nil) != tt.fails {
				t.Errorf("expected failure %v, got %v", tt.fails, err)
			}
			if stderr.String() != tt.expected {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.expected, stderr.String())
			}
		})
	}
}

func TestRunCheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.cul")
	bad := filepath.Join(dir, "bad.cul")
	if err := os.WriteFile(good, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("y = @\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	err := runCheck([]string{good, bad}, strings.NewReader(""), &stderr)
	if err == nil || err.Error() != "found 1 bad character(s)" {
		t.Errorf("unexpected error %v", err)
	}
	if want := bad + ":1:5: bad character \"@\"\n"; !strings.HasPrefix(stderr.String(), want) {
		t.Errorf("expected output to start with %q, got %q", want, stderr.String())
	}
}
