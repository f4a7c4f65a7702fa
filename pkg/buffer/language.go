package buffer

import (
	"path/filepath"
	"strings"

	"github.com/fivemoreminix/culebra/pkg/lexer"
)

type Syntax uint8

const (
	Default Syntax = iota
	Column         // Not necessarily a Syntax; useful for Colorscheming editor column
	Keyword
	String
	Special
	Number
	Operator
	Comment
	Error
)

// A Language knows which files it applies to and how to classify tokens. A
// nil Classify means the language is not highlighted at all.
type Language struct {
	Name      string
	Filetypes []string // .culebra, .cul, etc.

	// Classify returns the Syntax for a token, or false for tokens that are
	// drawn in the Default style.
	Classify func(lexer.Token) (Syntax, bool)
}

// Culebra highlights through the Culebra lexer.
var Culebra = &Language{
	Name:      "Culebra",
	Filetypes: []string{".culebra", ".cul"},
	Classify:  classifyCulebra,
}

// PlainText is used for any file no other language claims.
var PlainText = &Language{
	Name: "Plain Text",
}

var languages = []*Language{Culebra}

func classifyCulebra(tok lexer.Token) (Syntax, bool) {
	switch tok.Kind {
	case lexer.Keyword:
		if tok.Text == "true" || tok.Text == "false" {
			return Special, true
		}
		return Keyword, true
	case lexer.String:
		return String, true
	case lexer.Number:
		return Number, true
	case lexer.Operator:
		return Operator, true
	case lexer.Comment:
		return Comment, true
	case lexer.BadCharacter:
		return Error, true
	case lexer.Identifier, lexer.Whitespace, lexer.EOF:
		return Default, false
	}
	return Default, false
}

// LanguageForPath picks a language by the file extension of path, falling
// back to PlainText.
func LanguageForPath(path string) *Language {
	ext := strings.ToLower(filepath.Ext(path))
	for _, lang := range languages {
		for _, ft := range lang.Filetypes {
			if ext == ft {
				return lang
			}
		}
	}
	return PlainText
}
