package wordusage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	testcases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "round trip", input: "Well-known neighbour's café", expected: []string{"well", "known", "neighbour", "caf"}},
		{name: "right single quote possessive", input: "It’s Holmes's", expected: []string{"it", "holmes"}},
		{name: "hyphen splits compounds", input: "cat's-paw", expected: []string{"cat", "paw"}},
		{name: "mid word apostrophe s kept", input: "Holmes'sx", expected: []string{"holmessx"}},
		{name: "possessive before accented letter kept", input: "neighbour'sé", expected: []string{"neighbours"}},
		{name: "possessive before digit kept", input: "cat's9 dog's_", expected: []string{"cats", "dogs"}},
		{name: "contractions merge", input: "don't rock'n'roll", expected: []string{"dont", "rocknroll"}},
		{name: "uppercase possessive untouched", input: "JONES'S", expected: []string{"joness"}},
		{name: "digits and punctuation", input: "3 cats, 42 dogs!", expected: []string{"cats", "dogs"}},
		{name: "accents removed", input: "naïve Zoë", expected: []string{"nave", "zo"}},
		{name: "whitespace variants", input: "one\ttwo\nthree four", expected: []string{"one", "two", "three", "four"}},
		{name: "ascii separators split", input: "a\x1cb\x1fc", expected: []string{"a", "b", "c"}},
		{name: "double hyphen", input: "well--known", expected: []string{"well", "known"}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Words(tc.input))
		})
	}
}

func TestWordsEmpty(t *testing.T) {
	require.Empty(t, Words(""))
	require.Empty(t, Words("123 --- ... 42"))
	require.Empty(t, Words("é ü ß"))
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize("The 1st cat - the cat!")
	expected := []Token{
		{Word: "the", Position: 0},
		{Word: "st", Position: 1},
		{Word: "cat", Position: 2},
		{Word: "the", Position: 3},
		{Word: "cat", Position: 4},
	}
	require.Equal(t, expected, tokens)
	require.Empty(t, Tokenize(""))
}
