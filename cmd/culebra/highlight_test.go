package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunHighlightHTML(t *testing.T) {
	var out bytes.Buffer
	if err := runHighlight([]string{"-f", "html", "-s", "github"}, strings.NewReader("while true:\n    x = 1\n"), &out); err != nil {
		t.Fatalf("runHighlight: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "<pre") || !strings.Contains(got, "while") {
		t.Errorf("expected HTML output, got:\n%s", got)
	}
}

func TestRunHighlightList(t *testing.T) {
	var out bytes.Buffer
	if err := runHighlight([]string{"-list"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("runHighlight: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "html") || !strings.Contains(got, "monokai") {
		t.Errorf("expected formatter and style names, got:\n%s", got)
	}
}
