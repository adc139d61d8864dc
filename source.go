package wordusage

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en"

// FrequencySource returns the general-language frequency of a word.
// 0 means the word is unknown to the source
type FrequencySource interface {
	Frequency(word, language string) float64
}

// FrequencyFunc adapts an ordinary function to a FrequencySource
type FrequencyFunc func(word, language string) float64

// Frequency calls f(word, language)
func (f FrequencyFunc) Frequency(word, language string) float64 {
	return f(word, language)
}

// FixedFrequencies is an in-memory source for a single language,
// mostly useful for tests and small custom word lists
type FixedFrequencies map[string]float64

// Frequency returns frequency of word regardless of language
func (f FixedFrequencies) Frequency(word, _ string) float64 {
	return f[word]
}

// Corpora dispatches lookups to the corpus of the requested language
type Corpora map[string]*Corpus

// Frequency returns frequency of word in corpus of language or 0
// if no corpus is loaded for language
func (c Corpora) Frequency(word, language string) float64 {
	corpus, ok := c[language]
	if !ok {
		return 0
	}
	return corpus.Frequency(word, language)
}

// Close releases all loaded corpora
func (c Corpora) Close() {
	for _, corpus := range c {
		corpus.Close()
	}
}

// lookupFor binds source to a language
func lookupFor(source FrequencySource, language string) func(string) float64 {
	return func(word string) float64 {
		return source.Frequency(word, language)
	}
}
