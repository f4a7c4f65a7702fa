package lexer

import "fmt"

// A Kind is the category of a Token. The set of kinds is closed; consumers
// should switch on it rather than compare names.
type Kind uint8

const (
	EOF Kind = iota
	Whitespace
	Comment
	Keyword
	Identifier
	Number
	String
	Operator
	BadCharacter // Unrecognized rune, invalid UTF-8, or unterminated string
)

var kindNames = [...]string{
	EOF:          "EOF",
	Whitespace:   "WHITESPACE",
	Comment:      "COMMENT",
	Keyword:      "KEYWORD",
	Identifier:   "IDENTIFIER",
	Number:       "NUMBER",
	String:       "STRING",
	Operator:     "OPERATOR",
	BadCharacter: "BAD_CHARACTER",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsTrivia reports whether tokens of this kind carry no meaning for a parser.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// A Token is a classified substring of the source. Start and End are byte
// offsets forming the half-open range [Start, End). Line and Col are where the
// token starts; both start from one, and Col counts runes, not bytes.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
	Line  int
	Col   int
}

// Len returns the number of bytes the token spans.
func (t Token) Len() int {
	return t.End - t.Start
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %v %q", t.Line, t.Col, t.Kind, t.Text)
}

// A Position names a place in a named source, for diagnostics.
type Position struct {
	Name string // Source identifier, usually a file path. May be empty.
	Line int
	Col  int
}

func (p Position) String() string {
	if p.Name == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Col)
}

var keywords = map[string]struct{}{
	"if":     {},
	"elif":   {},
	"else":   {},
	"while":  {},
	"for":    {},
	"def":    {},
	"return": {},
	"true":   {},
	"false":  {},
	"and":    {},
	"or":     {},
	"not":    {},
}

// IsKeyword reports whether s is exactly one of the reserved words.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// Operators lists every operator lexeme, longest first.
var Operators = []string{
	"==", "!=", "<=", ">=",
	"+", "-", "*", "/", "%", "=", "<", ">",
	"(", ")", "{", "}", "[", "]", ",", ":", ";", ".",
}
