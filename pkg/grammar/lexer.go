// Package grammar lets participle grammars parse Culebra source. Lexing is
// done by the Culebra tokenizer; this package only translates its tokens.
package grammar

import (
	"fmt"
	"io"

	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/fivemoreminix/culebra/pkg/lexer"
)

// Lexer is a participle lexer definition producing the token types Whitespace,
// Comment, Keyword, Ident, Number, String and Operator. A bad character stops
// lexing with a lexer.Diagnostic error.
var Lexer plex.Definition = definition{}

var symbols = map[string]plex.TokenType{
	"EOF":          plex.EOF,
	"Whitespace":   TokenType(lexer.Whitespace),
	"Comment":      TokenType(lexer.Comment),
	"Keyword":      TokenType(lexer.Keyword),
	"Ident":        TokenType(lexer.Identifier),
	"Number":       TokenType(lexer.Number),
	"String":       TokenType(lexer.String),
	"Operator":     TokenType(lexer.Operator),
	"BadCharacter": TokenType(lexer.BadCharacter),
}

// TokenType returns the participle token type for a kind.
func TokenType(k lexer.Kind) plex.TokenType {
	if k == lexer.EOF {
		return plex.EOF
	}
	return plex.TokenType(k)
}

type definition struct{}

func (definition) Symbols() map[string]plex.TokenType {
	return symbols
}

func (d definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return d.LexBytes(filename, src)
}

func (definition) LexBytes(filename string, src []byte) (plex.Lexer, error) {
	return &tokenStream{src: src, t: lexer.New(filename, src)}, nil
}

func (d definition) LexString(filename string, src string) (plex.Lexer, error) {
	return d.LexBytes(filename, []byte(src))
}

type tokenStream struct {
	src []byte
	t   *lexer.Tokenizer
}

func (s *tokenStream) Next() (plex.Token, error) {
	tok := s.t.Next()
	if tok.Kind == lexer.BadCharacter {
		return plex.Token{}, lexer.NewDiagnostic(s.t.Name, s.src, tok)
	}
	return plex.Token{
		Type:  TokenType(tok.Kind),
		Value: tok.Text,
		Pos: plex.Position{
			Filename: s.t.Name,
			Offset:   tok.Start,
			Line:     tok.Line,
			Column:   tok.Col,
		},
	}, nil
}
