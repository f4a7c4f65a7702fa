// Package export renders Culebra source through chroma formatters, so that
// any output chroma supports (ANSI terminals, HTML, SVG, ...) can show Culebra
// highlighting.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/fivemoreminix/culebra/pkg/lexer"
)

// TokenType maps a Culebra token onto the closest chroma token type.
func TokenType(tok lexer.Token) chroma.TokenType {
	switch tok.Kind {
	case lexer.Keyword:
		switch tok.Text {
		case "true", "false":
			return chroma.KeywordConstant
		case "and", "or", "not":
			return chroma.OperatorWord
		case "def":
			return chroma.KeywordDeclaration
		}
		return chroma.Keyword
	case lexer.Identifier:
		return chroma.Name
	case lexer.Number:
		if strings.Contains(tok.Text, ".") {
			return chroma.LiteralNumberFloat
		}
		return chroma.LiteralNumberInteger
	case lexer.String:
		switch {
		case strings.HasPrefix(tok.Text, `"""`):
			return chroma.LiteralStringDoc
		case strings.HasPrefix(tok.Text, "'"):
			return chroma.LiteralStringSingle
		}
		return chroma.LiteralStringDouble
	case lexer.Operator:
		if strings.ContainsAny(tok.Text, "(){}[],:;") {
			return chroma.Punctuation
		}
		return chroma.Operator
	case lexer.Comment:
		return chroma.CommentSingle
	case lexer.Whitespace:
		return chroma.TextWhitespace
	case lexer.BadCharacter:
		return chroma.Error
	case lexer.EOF:
		return chroma.EOFType
	}
	return chroma.Text
}

// Iterator lazily tokenizes src and yields chroma tokens, ending with
// chroma.EOF.
func Iterator(src []byte) chroma.Iterator {
	t := lexer.New("", src)
	return func() chroma.Token {
		tok := t.Next()
		if tok.Kind == lexer.EOF {
			return chroma.EOF
		}
		return chroma.Token{Type: TokenType(tok), Value: tok.Text}
	}
}

// Format writes src to w using the named chroma formatter and style. Unknown
// names fall back to chroma's defaults.
func Format(w io.Writer, src []byte, formatter, style string) error {
	f := formatters.Get(formatter)
	s := styles.Get(style)
	if err := f.Format(w, s, Iterator(src)); err != nil {
		return fmt.Errorf("formatting with %q: %w", formatter, err)
	}
	return nil
}

// Formatters lists the formatter names Format accepts.
func Formatters() []string {
	return formatters.Names()
}

// Styles lists the style names Format accepts.
func Styles() []string {
	return styles.Names()
}
