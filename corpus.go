package wordusage

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/projectdiscovery/wordusage/internal/store"
)

// MaxInMemoryCorpusSize (default : 100 MB)
var MaxInMemoryCorpusSize int64 = 100 * 1024 * 1024

// maxLineSize of a single corpus entry
const maxLineSize = 1024 * 1024

// Corpus is a reference frequency list of a single language.
//
// Lines are `word<sep>value` where sep is whitespace, tab or comma.
// Blank lines and lines starting with '#' are skipped. When every value
// is <= 1 values are used as frequencies as-is, otherwise they are taken
// as raw counts and normalized by their sum
type Corpus struct {
	Language string
	backend  store.Backend
	// scale normalizes stored values to frequencies
	scale float64
}

// LoadCorpus reads a corpus of language from a frequency list file
func LoadCorpus(path, language string) (*Corpus, error) {
	if !fileutil.FileExists(path) {
		return nil, newError(ErrNotFound, path, errorutil.NewWithTag("corpus", "reference corpus does not exist"))
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, newError(ErrIO, path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(ErrIO, path, err)
	}
	defer f.Close()

	c, err := NewCorpus(f, language, info.Size())
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Path = path
			return nil, e
		}
		return nil, newError(ErrConfig, path, err)
	}
	gologger.Verbose().Msgf("loaded %v words of language %v from %v", c.Len(), language, path)
	return c, nil
}

// NewCorpus parses a frequency list from r. sizeHint is the expected number
// of bytes and selects the storage backend (use 0 if unknown)
func NewCorpus(r io.Reader, language string, sizeHint int64) (*Corpus, error) {
	if language == "" {
		language = DefaultLanguage
	}
	backend, err := store.New(sizeHint, MaxInMemoryCorpusSize)
	if err != nil {
		return nil, newError(ErrIO, "", err)
	}
	c := &Corpus{Language: language, backend: backend, scale: 1}

	var sum, maxValue float64
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, value, err := parseCorpusLine(line)
		if err != nil {
			backend.Cleanup()
			return nil, newError(ErrConfig, "", errorutil.NewWithErr(err).Msgf("line %v", lineNo))
		}
		if err := backend.Add(word, value); err != nil {
			backend.Cleanup()
			return nil, newError(ErrIO, "", err)
		}
		sum += value
		if value > maxValue {
			maxValue = value
		}
	}
	if err := scanner.Err(); err != nil {
		backend.Cleanup()
		return nil, newError(ErrIO, "", err)
	}
	if maxValue > 1 && sum > 0 {
		// raw counts
		c.scale = 1 / sum
	}
	return c, nil
}

// NewCorpusFromMap returns an in-memory corpus with given frequencies
func NewCorpusFromMap(language string, frequencies map[string]float64) *Corpus {
	backend := store.NewMapBackend()
	for k, v := range frequencies {
		_ = backend.Add(strings.ToLower(k), v)
	}
	return &Corpus{Language: language, backend: backend, scale: 1}
}

func parseCorpusLine(line string) (string, float64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return "", 0, errorutil.NewWithTag("corpus", "expected `word value` got %q", line)
	}
	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", 0, errorutil.NewWithTag("corpus", "invalid value %q for word %q", fields[1], fields[0])
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return "", 0, errorutil.NewWithTag("corpus", "invalid value %q for word %q", fields[1], fields[0])
	}
	return strings.ToLower(fields[0]), value, nil
}

// Frequency returns frequency of word in corpus or 0 if the word is
// unknown or language is not the language of the corpus
func (c *Corpus) Frequency(word, language string) float64 {
	if language != "" && language != c.Language {
		return 0
	}
	return c.Lookup(word)
}

// Lookup returns frequency of word in corpus or 0 if unknown
func (c *Corpus) Lookup(word string) float64 {
	v, _ := c.backend.Get(word)
	return v * c.scale
}

// Len returns number of distinct words in corpus
func (c *Corpus) Len() int {
	return c.backend.Len()
}

// Close releases storage held by corpus
func (c *Corpus) Close() {
	c.backend.Cleanup()
}
