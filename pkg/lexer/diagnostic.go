package lexer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// A Diagnostic reports one BadCharacter token together with the source line
// it starts on.
type Diagnostic struct {
	Pos    Position
	Token  Token
	Source string // The line holding the token, without its line break
}

func (d Diagnostic) Message() string {
	return fmt.Sprintf("bad character %q", d.Token.Text)
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%v: %s", d.Pos, d.Message())
}

// Caret returns a line with a '^' under the token's column. Tabs before the
// column are kept so the caret lines up however wide the terminal draws them.
func (d Diagnostic) Caret() string {
	var sb strings.Builder
	var col int
	for _, r := range d.Source {
		if col >= d.Pos.Col-1 {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		col++
	}
	sb.WriteByte('^')
	return sb.String()
}

// NewDiagnostic describes tok, which must have been scanned from src.
func NewDiagnostic(name string, src []byte, tok Token) Diagnostic {
	return Diagnostic{
		Pos:    Position{Name: name, Line: tok.Line, Col: tok.Col},
		Token:  tok,
		Source: sourceLine(src, tok.Start),
	}
}

// Check tokenizes src and returns a Diagnostic for every BadCharacter token,
// in source order. A nil result means src is lexically valid.
func Check(name string, src []byte) []Diagnostic {
	var diags []Diagnostic
	New(name, src).Each(func(tok Token) bool {
		if tok.Kind == BadCharacter {
			diags = append(diags, NewDiagnostic(name, src, tok))
		}
		return true
	})
	return diags
}

// WriteDiagnostics prints each diagnostic as its message, the source line, and
// a caret under the offending column.
func WriteDiagnostics(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", d.Error(), d.Source, d.Caret()); err != nil {
			return err
		}
	}
	return nil
}

// sourceLine returns the line of src containing offset, with the line
// terminator stripped.
func sourceLine(src []byte, offset int) string {
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := len(src)
	if i := bytes.IndexByte(src[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	return string(bytes.TrimSuffix(src[start:end], []byte{'\r'}))
}
