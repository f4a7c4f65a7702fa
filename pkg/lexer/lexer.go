// Package lexer converts Culebra source text into a lossless stream of
// classified tokens. Whitespace and comments are kept as tokens, so that
// concatenating the Text of every token reproduces the input exactly.
//
// The Tokenizer never fails. Input it cannot classify, including unterminated
// strings and invalid UTF-8, becomes BadCharacter tokens and scanning goes on.
package lexer

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

var tripleQuote = []byte(`"""`)

// A Tokenizer scans a single source buffer from left to right. It holds only
// its cursor; the buffer is never written to. A Tokenizer must not be shared
// between goroutines, but any number of Tokenizers may read the same buffer.
type Tokenizer struct {
	Name string // Source identifier used in positions; may be empty

	src  []byte
	pos  int // Byte offset of the next token
	line int
	col  int
}

// New returns a Tokenizer positioned at the start of src.
func New(name string, src []byte) *Tokenizer {
	t := &Tokenizer{Name: name, src: src}
	t.Reset()
	return t
}

// Tokenize scans all of src eagerly. The returned slice always ends with an
// EOF token, so an empty src yields exactly one token.
func Tokenize(src []byte) []Token {
	t := New("", src)
	tokens := make([]Token, 0, len(src)/4+1)
	t.Each(func(tok Token) bool {
		tokens = append(tokens, tok)
		return true
	})
	return tokens
}

// Reset rewinds the Tokenizer to the start of its buffer. The scan that
// follows produces the same tokens as the first one.
func (t *Tokenizer) Reset() {
	t.pos = 0
	t.line, t.col = 1, 1
}

// Position returns where the next token will start.
func (t *Tokenizer) Position() Position {
	return Position{Name: t.Name, Line: t.line, Col: t.col}
}

// Each calls fn with every remaining token, EOF included, until fn returns
// false. Stopping early leaves the Tokenizer where it was after the last token.
func (t *Tokenizer) Each(fn func(Token) bool) {
	for {
		tok := t.Next()
		if !fn(tok) || tok.Kind == EOF {
			return
		}
	}
}

// Next scans and returns the next token. At the end of the buffer it returns a
// zero-length EOF token, and keeps returning it on every further call.
func (t *Tokenizer) Next() Token {
	if t.pos >= len(t.src) {
		end := len(t.src)
		return Token{Kind: EOF, Start: end, End: end, Line: t.line, Col: t.col}
	}

	start, line, col := t.pos, t.line, t.col
	kind := t.scan()
	text := t.src[start:t.pos]
	t.advance(text)

	return Token{
		Kind:  kind,
		Text:  string(text),
		Start: start,
		End:   t.pos,
		Line:  line,
		Col:   col,
	}
}

// scan moves pos past exactly one token and returns its kind. It always
// consumes at least one byte.
func (t *Tokenizer) scan() Kind {
	rest := t.src[t.pos:]
	r, size := utf8.DecodeRune(rest)

	switch {
	case r == utf8.RuneError && size == 1:
		t.pos++
		return BadCharacter
	case isSpace(r):
		t.pos++
		for t.pos < len(t.src) && isSpace(rune(t.src[t.pos])) {
			t.pos++
		}
		return Whitespace
	case r == '#':
		for t.pos < len(t.src) && !isLineEnd(t.src[t.pos]) {
			t.pos++
		}
		return Comment
	case r == '_' || unicode.IsLetter(r):
		return t.scanWord()
	case isDigit(r):
		return t.scanNumber()
	case r == '"' || r == '\'':
		return t.scanString(byte(r))
	}

	for _, op := range Operators {
		if len(rest) >= len(op) && string(rest[:len(op)]) == op {
			t.pos += len(op)
			return Operator
		}
	}

	t.pos += size
	return BadCharacter
}

func (t *Tokenizer) scanWord() Kind {
	start := t.pos
	for t.pos < len(t.src) {
		r, size := utf8.DecodeRune(t.src[t.pos:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		t.pos += size
	}
	if IsKeyword(string(t.src[start:t.pos])) {
		return Keyword
	}
	return Identifier
}

// scanNumber accepts digits with at most one fractional part. A point must be
// followed by a digit to belong to the number; otherwise it is left for the
// next token, so "3." is a Number and an Operator.
func (t *Tokenizer) scanNumber() Kind {
	t.skipDigits()
	if t.pos+1 < len(t.src) && t.src[t.pos] == '.' && isDigit(rune(t.src[t.pos+1])) {
		t.pos++
		t.skipDigits()
	}
	return Number
}

func (t *Tokenizer) skipDigits() {
	for t.pos < len(t.src) && isDigit(rune(t.src[t.pos])) {
		t.pos++
	}
}

// scanString reads a quoted literal. A backslash escapes the byte after it.
// Single-line strings stop at the end of the line; if no closing quote was
// found by then, the run up to the line break is a BadCharacter token.
func (t *Tokenizer) scanString(quote byte) Kind {
	if quote == '"' && bytes.HasPrefix(t.src[t.pos:], tripleQuote) {
		return t.scanTripleString()
	}

	t.pos++ // Opening quote
	for t.pos < len(t.src) {
		c := t.src[t.pos]
		switch {
		case c == quote:
			t.pos++
			return String
		case isLineEnd(c):
			return BadCharacter
		case c == '\\':
			t.pos++
			if t.pos < len(t.src) && !isLineEnd(t.src[t.pos]) {
				t.pos++
			}
		default:
			t.pos++
		}
	}
	return BadCharacter
}

// scanTripleString reads a """-delimited literal, which may span lines. An
// unterminated one runs to the end of the buffer.
func (t *Tokenizer) scanTripleString() Kind {
	t.pos += len(tripleQuote)
	idx := bytes.Index(t.src[t.pos:], tripleQuote)
	if idx < 0 {
		t.pos = len(t.src)
		return BadCharacter
	}
	t.pos += idx + len(tripleQuote)
	return String
}

// advance moves line and col past text.
func (t *Tokenizer) advance(text []byte) {
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		if r == '\n' {
			t.line++
			t.col = 1
		} else {
			t.col++
		}
		text = text[size:]
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isLineEnd(c byte) bool {
	return c == '\n' || c == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
