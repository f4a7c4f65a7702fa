package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"

	"github.com/fivemoreminix/culebra/pkg/lexer"
)

func TestTokenType(t *testing.T) {
	tests := []struct {
		kind     lexer.Kind
		text     string
		expected chroma.TokenType
	}{
		{lexer.Keyword, "if", chroma.Keyword},
		{lexer.Keyword, "def", chroma.KeywordDeclaration},
		{lexer.Keyword, "true", chroma.KeywordConstant},
		{lexer.Keyword, "not", chroma.OperatorWord},
		{lexer.Identifier, "x", chroma.Name},
		{lexer.Number, "10", chroma.LiteralNumberInteger},
		{lexer.Number, "3.14", chroma.LiteralNumberFloat},
		{lexer.String, `"s"`, chroma.LiteralStringDouble},
		{lexer.String, `'s'`, chroma.LiteralStringSingle},
		{lexer.String, `"""s"""`, chroma.LiteralStringDoc},
		{lexer.Operator, "==", chroma.Operator},
		{lexer.Operator, "(", chroma.Punctuation},
		{lexer.Comment, "# c", chroma.CommentSingle},
		{lexer.Whitespace, " ", chroma.TextWhitespace},
		{lexer.BadCharacter, "$", chroma.Error},
	}
	for _, tt := range tests {
		if got := TokenType(lexer.Token{Kind: tt.kind, Text: tt.text}); got != tt.expected {
			t.Errorf("TokenType(%v %q): expected %v, got %v", tt.kind, tt.text, tt.expected, got)
		}
	}
}

func TestIteratorIsLossless(t *testing.T) {
	src := "def f(x):\n    return x * 2.5 # scale\n'open"

	var sb strings.Builder
	var count int
	it := Iterator([]byte(src))
	for tok := it(); tok != chroma.EOF; tok = it() {
		sb.WriteString(tok.Value)
		count++
	}
	if sb.String() != src {
		t.Errorf("expected %q, got %q", src, sb.String())
	}
	if expected := len(lexer.Tokenize([]byte(src))) - 1; count != expected {
		t.Errorf("expected %d tokens, got %d", expected, count)
	}
}

func TestFormatHTML(t *testing.T) {
	var out bytes.Buffer
	if err := Format(&out, []byte("if x:\n\treturn 'y'\n"), "html", "monokai"); err != nil {
		t.Fatalf("Format: %v", err)
	}
	html := out.String()
	for _, want := range []string{"<pre", "if", "return", "&#39;y&#39;"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q:\n%s", want, html)
		}
	}
}

func TestFormatFallback(t *testing.T) {
	var out bytes.Buffer
	src := "x = 1 # one\n"
	if err := Format(&out, []byte(src), "no-such-formatter", "no-such-style"); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out.String() != src { // The fallback formatter writes plain text
		t.Errorf("expected %q, got %q", src, out.String())
	}
	if len(Formatters()) == 0 || len(Styles()) == 0 {
		t.Errorf("expected chroma to register formatters and styles")
	}
}
