package wordusage

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// possessive matches 's (ascii or right single quote), the word boundary is checked by stripPossessive
	possessive = regexp.MustCompile(`['’]s`)
	hyphens    = strings.NewReplacer("-", " ")
)
// Token is a single lowercase word and its position in the cleaned token sequence
type Token struct {
	Word     string
	Position int
}

// Tokenize normalizes raw text into an ordered sequence of word tokens.
//
// Steps (order matters):
//  1. hyphens become spaces so compounds split into separate words
//  2. trailing possessive 's is stripped
//  3. everything except ascii letters and whitespace is removed
//  4. text is lowercased
//  5. text is split on whitespace
//
// Accented letters are removed rather than folded ex: café -> caf
func Tokenize(text string) []Token {
	words := Words(text)
	tokens := make([]Token, 0, len(words))
	for i, w := range words {
		tokens = append(tokens, Token{Word: w, Position: i})
	}
	return tokens
}

// Words returns only the words of Tokenize in order
func Words(text string) []string {
	if text == "" {
		return nil
	}
	text = hyphens.Replace(text)
	text = stripPossessive(text)
	text = strings.Map(keepLetterOrSpace, text)
	return strings.FieldsFunc(strings.ToLower(text), isSpace)
}

// stripPossessive removes every 's not followed by a word rune.
// Unicode letters and digits count as word runes ex: neighbour'sé is kept
func stripPossessive(text string) string {
	matches := possessive.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, m := range matches {
		if next, _ := utf8.DecodeRuneInString(text[m[1]:]); m[1] < len(text) && isWordRune(next) {
			continue
		}
		sb.WriteString(text[last:m[0]])
		last = m[1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSpace reports whitespace including the ascii separators 0x1c-0x1f
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// keepLetterOrSpace drops runes that are neither ascii letters nor whitespace
func keepLetterOrSpace(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return r
	case isSpace(r):
		return r
	}
	return -1
}
