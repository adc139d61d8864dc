package wordusage

import (
	"bufio"
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bbalet/stopwords"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Format of a written report
type Format int

const (
	// FormatPlain writes one `word value` line per word
	FormatPlain Format = iota
	// FormatCSV writes a table with relative frequency, minimum gap and count
	FormatCSV
)

func (f Format) String() string {
	if f == FormatCSV {
		return "csv"
	}
	return "plain"
}

// ParseFormat parses a format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "txt", "text":
		return FormatPlain, nil
	case "csv", "tabular":
		return FormatCSV, nil
	}
	return FormatPlain, errorutil.NewWithTag("format", "unsupported output format %q (must be 'plain' or 'csv')", name)
}

// FormatForPath returns FormatCSV for .csv paths and FormatPlain otherwise
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatPlain
}

// UnknownLabel is written in place of a value for words unknown to the corpus
const UnknownLabel = "possibly misspelled or unknown"

// CSVHeader is the first row of tabular reports
var CSVHeader = []string{"Word", "Relative Frequency", "Minimum Gap", "Count"}

// Templates are plain format line templates. Available
// placeholders are {{word}}, {{value}}, {{count}} and {{gap}}
type Templates struct {
	Common    string `yaml:"common,omitempty"`
	Singleton string `yaml:"singleton,omitempty"`
	Unknown   string `yaml:"unknown,omitempty"`
}

// DefaultTemplates reproduce the classic plain format
var DefaultTemplates = Templates{
	Common:    "{{word}} {{value}}",
	Singleton: "{{word}} ({{value}})",
	Unknown:   "{{word}} (" + UnknownLabel + ")",
}

// withDefaults fills empty templates
func (t Templates) withDefaults() Templates {
	if t.Common == "" {
		t.Common = DefaultTemplates.Common
	}
	if t.Singleton == "" {
		t.Singleton = DefaultTemplates.Singleton
	}
	if t.Unknown == "" {
		t.Unknown = DefaultTemplates.Unknown
	}
	return t
}

// Validate checks all templates are well formed
func (t Templates) Validate() error {
	for _, v := range []string{t.Common, t.Singleton, t.Unknown} {
		if err := validateTemplate(v); err != nil {
			return errorutil.NewWithErr(err).Msgf("invalid template %q", v)
		}
	}
	return nil
}

// WriterOptions control how a report is rendered
type WriterOptions struct {
	// Templates of plain format lines (empty fields use DefaultTemplates)
	Templates Templates
	// ExcludeStopwords omits stop words of Language from output
	ExcludeStopwords bool
	Language         string
}

// WriteReport serializes report to w in format
func WriteReport(w io.Writer, report *Report, format Format, opts *WriterOptions) error {
	if opts == nil {
		opts = &WriterOptions{}
	}
	entries := report.Entries()
	if opts.ExcludeStopwords {
		entries = withoutStopwords(entries, opts.Language)
	}
	switch format {
	case FormatCSV:
		return writeCSV(w, entries)
	default:
		return writePlain(w, entries, opts.Templates.withDefaults())
	}
}

func writePlain(w io.Writer, entries []*WordStat, templates Templates) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		var template string
		switch e.Class {
		case ClassCommon:
			template = templates.Common
		case ClassSingleton:
			template = templates.Singleton
		default:
			template = templates.Unknown
		}
		if _, err := bw.WriteString(Replace(template, lineVars(e)) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func lineVars(e *WordStat) map[string]interface{} {
	vars := map[string]interface{}{
		"word":  e.Word,
		"count": e.Count,
		"value": DisplayValue(e),
		"gap":   "",
	}
	if e.HasGap() {
		vars["gap"] = e.MinGap
	}
	return vars
}

func writeCSV(w io.Writer, entries []*WordStat) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, e := range entries {
		var row []string
		switch e.Class {
		case ClassCommon:
			row = []string{e.Word, DisplayValue(e), strconv.Itoa(e.MinGap), strconv.Itoa(e.Count)}
		case ClassSingleton:
			row = []string{e.Word, DisplayValue(e), "", "1"}
		default:
			row = []string{e.Word, UnknownLabel, "", ""}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DisplayValue returns the value written for a word: relative frequency with
// 6 decimals for common words, the reference frequency in shortest notation
// (ex: 1.62e-08) for singletons and UnknownLabel for unknown words
func DisplayValue(e *WordStat) string {
	switch e.Class {
	case ClassCommon:
		return strconv.FormatFloat(e.RelativeFrequency, 'f', 6, 64)
	case ClassSingleton:
		return strconv.FormatFloat(e.ReferenceFrequency, 'g', -1, 64)
	}
	return UnknownLabel
}

// withoutStopwords drops stop words of language from entries
func withoutStopwords(entries []*WordStat, language string) []*WordStat {
	if language == "" {
		language = DefaultLanguage
	}
	filtered := make([]*WordStat, 0, len(entries))
	for _, e := range entries {
		if !IsStopword(e.Word, language) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// IsStopword returns true if word is a stop word of language
func IsStopword(word, language string) bool {
	cleaned := strings.TrimSpace(stopwords.CleanString(word, language, false))
	return cleaned == "" || cleaned != word
}
