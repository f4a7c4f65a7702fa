package buffer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fivemoreminix/culebra/pkg/lexer"
	"github.com/gdamore/tcell/v2"
)

type Colorscheme map[Syntax]tcell.Style

// Gets the tcell.Style from the Colorscheme map for the given Syntax.
// If the Syntax cannot be found in the map, either the `Default` Syntax
// is used, or `tcell.DefaultStyle` is returned if the Default is not assigned.
func (c *Colorscheme) GetStyle(s Syntax) tcell.Style {
	if c != nil {
		if val, ok := (*c)[s]; ok {
			return val
		} else if s != Default {
			if val, ok := (*c)[Default]; ok {
				return val
			}
		}
	}

	return tcell.StyleDefault
}

// DefaultColorscheme uses only the first 16 colors present in most terminals.
var DefaultColorscheme = Colorscheme{
	Default:  tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	Column:   tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	Comment:  tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	String:   tcell.Style{}.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack),
	Keyword:  tcell.Style{}.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack).Bold(true),
	Number:   tcell.Style{}.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack),
	Operator: tcell.Style{}.Foreground(tcell.ColorTeal).Background(tcell.ColorBlack),
	Special:  tcell.Style{}.Foreground(tcell.ColorPurple).Background(tcell.ColorBlack),
	Error:    tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Underline(true),
}

// A Match colors the runes Col through EndCol, inclusive, of one line.
type Match struct {
	Col    int
	EndCol int
	Syntax Syntax
}

// A Highlighter can answer how to color any part of a provided Buffer. It
// tokenizes the buffer with the lexer and turns each token its Language
// classifies into a Match. Tokens spanning several lines yield one Match per
// line.
type Highlighter struct {
	Buffer      Buffer
	Language    *Language
	Colorscheme *Colorscheme

	tokens      []lexer.Token // nil when stale
	lineMatches [][]Match     // A nil line is invalidated
}

func NewHighlighter(buffer Buffer, lang *Language, colorscheme *Colorscheme) *Highlighter {
	return &Highlighter{
		Buffer:      buffer,
		Language:    lang,
		Colorscheme: colorscheme,
		lineMatches: make([][]Match, buffer.Lines()),
	}
}

// Tokens returns the tokens of the last scan, scanning the buffer if needed.
func (h *Highlighter) Tokens() []lexer.Token {
	if h.tokens == nil {
		h.tokens = lexer.Tokenize(h.Buffer.Bytes())
	}
	return h.tokens
}

// UpdateLines forces the highlighting matches for lines between startLine to
// endLine, inclusively, to be updated. It is more efficient to mark lines as
// invalidated when changes occur and call UpdateInvalidatedLines(...).
func (h *Highlighter) UpdateLines(startLine, endLine int) {
	if lines := h.Buffer.Lines(); len(h.lineMatches) < lines {
		h.lineMatches = append(h.lineMatches, make([][]Match, lines-len(h.lineMatches))...)
	} else {
		h.lineMatches = h.lineMatches[:lines]
	}
	endLine = min(endLine, len(h.lineMatches)-1)
	if startLine < 0 {
		startLine = 0
	}

	for i := startLine; i <= endLine; i++ {
		if h.lineMatches[i] != nil {
			h.lineMatches[i] = h.lineMatches[i][:0]
		} else {
			h.lineMatches[i] = make([]Match, 0)
		}
	}

	if h.Language == nil || h.Language.Classify == nil {
		return
	}

	for _, tok := range h.Tokens() {
		first := tok.Line - 1
		last := first + strings.Count(tok.Text, "\n")
		if last < startLine {
			continue
		}
		if first > endLine {
			break
		}

		syntax, ok := h.Language.Classify(tok)
		if !ok {
			continue
		}

		line, col := first, tok.Col-1
		for _, segment := range strings.Split(tok.Text, "\n") {
			segment = strings.TrimSuffix(segment, "\r")
			if n := utf8.RuneCountInString(segment); n > 0 && line >= startLine && line <= endLine {
				h.lineMatches[line] = append(h.lineMatches[line], Match{col, col + n - 1, syntax})
			}
			line, col = line+1, 0
		}
	}
}

// UpdateInvalidatedLines only updates the highlighting for lines that are invalidated
// between lines startLine and endLine, inclusively.
func (h *Highlighter) UpdateInvalidatedLines(startLine, endLine int) {
	startLine = max(startLine, 0)
	endLine = min(endLine, len(h.lineMatches)-1)

	// Narrow the range to the first and last invalidated lines within it
	for startLine <= endLine && h.lineMatches[startLine] != nil {
		startLine++
	}
	for endLine >= startLine && h.lineMatches[endLine] != nil {
		endLine--
	}

	if startLine > endLine {
		return // Do nothing; no invalidated lines
	}

	h.UpdateLines(startLine, endLine)
}

func (h *Highlighter) HasInvalidatedLines(startLine, endLine int) bool {
	for i := startLine; i <= endLine && i < len(h.lineMatches); i++ {
		if h.lineMatches[i] == nil {
			return true
		}
	}
	return false
}

// InvalidateLines marks lines to be rehighlighted. The token cache is dropped
// too, because a change on one line can reclassify text on the lines after it.
func (h *Highlighter) InvalidateLines(startLine, endLine int) {
	for i := max(startLine, 0); i <= endLine && i < len(h.lineMatches); i++ {
		h.lineMatches[i] = nil
	}
	h.tokens = nil
}

// GetLineMatches returns the matches of a line, ordered by column.
func (h *Highlighter) GetLineMatches(line int) []Match {
	if line < 0 || line >= len(h.lineMatches) {
		return nil
	}
	return h.lineMatches[line]
}

func (h *Highlighter) GetStyle(match Match) tcell.Style {
	return h.Colorscheme.GetStyle(match.Syntax)
}

// TokenAt returns the token covering the rune at line, col. Past the last
// rune of the buffer it returns the EOF token.
func (h *Highlighter) TokenAt(line, col int) lexer.Token {
	tokens := h.Tokens()
	line, col = h.Buffer.ClampLineCol(line, col)
	pos := h.Buffer.LineColToPos(line, col)

	i := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].End > pos
	})
	if i >= len(tokens) {
		return tokens[len(tokens)-1]
	}
	return tokens[i]
}
