// Package scanner supplies sequential tokens from one line of input,
// with exactly one token of pushback.
//
// A line is first split on whitespace; each field is then broken into
// word tokens (letter/digit runs), relational-operator tokens (runs of
// '<', '>', '=', '!'), and single punctuation characters. A field-leading
// ':' keeps its following word attached, so ":define" arrives as one
// token. With PreserveSpaces the whitespace runs between fields are
// reported as tokens too.
package scanner

import "unicode"

// EOF is returned by Read once the line is exhausted.
const EOF = ""

// SpaceOption controls whether whitespace runs are skipped or reported
// as tokens in their own right.
type SpaceOption int

const (
	IgnoreSpaces SpaceOption = iota
	PreserveSpaces
)

// Scanner is a two-state cursor over the tokens of a line: the next
// unread position, plus an optional single saved token. The REPL reuses
// one Scanner across lines via SetInput.
type Scanner struct {
	tokens []string
	pos    int

	saved    string
	hasSaved bool

	spaces SpaceOption
}

func New() *Scanner {
	return &Scanner{spaces: IgnoreSpaces}
}

// SetSpaceOption configures whitespace handling for subsequent SetInput
// calls. The interpreter always runs with IgnoreSpaces.
func (s *Scanner) SetSpaceOption(opt SpaceOption) {
	s.spaces = opt
}

// SetInput replaces the scanned line and clears any saved token.
func (s *Scanner) SetInput(line string) {
	s.tokens = tokenize(line, s.spaces == PreserveSpaces)
	s.pos = 0
	s.saved = ""
	s.hasSaved = false
}

// Read returns the saved token if one is pending, otherwise the next
// token of the line, otherwise EOF.
func (s *Scanner) Read() string {
	if s.hasSaved {
		s.hasSaved = false
		tok := s.saved
		s.saved = ""
		return tok
	}
	if s.pos >= len(s.tokens) {
		return EOF
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// Save stores tok to be returned by the next Read. The pushback slot
// holds exactly one token; saving while one is pending violates the
// caller contract.
func (s *Scanner) Save(tok string) {
	if tok == EOF {
		return
	}
	if s.hasSaved {
		panic("scanner: Save called with a token already pending")
	}
	s.saved = tok
	s.hasSaved = true
}

// More reports whether Read would return a real token.
func (s *Scanner) More() bool {
	return s.hasSaved || s.pos < len(s.tokens)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isRelationRune covers the characters that merge into relational
// operator tokens such as "<=", "==" and "!=". A lone '=' is produced
// by the same rule.
func isRelationRune(r rune) bool {
	return r == '<' || r == '>' || r == '=' || r == '!'
}

func tokenize(line string, preserveSpaces bool) []string {
	var out []string
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			start := i
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			if preserveSpaces {
				out = append(out, string(runes[start:i]))
			}
		case r == ':' && (i == 0 || unicode.IsSpace(runes[i-1])):
			start := i
			i++
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			out = append(out, string(runes[start:i]))
		case isWordRune(r):
			start := i
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			out = append(out, string(runes[start:i]))
		case isRelationRune(r):
			start := i
			for i < len(runes) && isRelationRune(runes[i]) {
				i++
			}
			out = append(out, string(runes[start:i]))
		default:
			out = append(out, string(r))
			i++
		}
	}
	return out
}
