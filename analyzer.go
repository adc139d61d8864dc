package wordusage

import (
	"bytes"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Analyzer Options
type Options struct {
	// Source of general-language word frequencies
	Source FrequencySource
	// Language passed to Source (default: en)
	Language string
	// Encoding of input documents (default: utf-8)
	Encoding string
	// Templates of plain format lines (empty fields use DefaultTemplates)
	Templates Templates
	// ExcludeStopwords omits stop words from written reports
	ExcludeStopwords bool
}

// Analyzer compares word usage of documents with a reference corpus
type Analyzer struct {
	Options *Options
}

// New creates and returns new analyzer instance from options
func New(opts *Options) (*Analyzer, error) {
	if opts == nil || opts.Source == nil {
		return nil, newError(ErrConfig, "", errorutil.NewWithTag("wordusage", "no reference frequency source provided"))
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.Encoding == "" {
		opts.Encoding = DefaultEncoding
	}
	if !ValidEncoding(opts.Encoding) {
		return nil, newError(ErrConfig, "", errorutil.NewWithTag("wordusage", "unsupported encoding %v", opts.Encoding))
	}
	opts.Templates = opts.Templates.withDefaults()
	if err := opts.Templates.Validate(); err != nil {
		return nil, newError(ErrConfig, "", err)
	}
	return &Analyzer{Options: opts}, nil
}

// Analyze tokenizes text and ranks its words
func (a *Analyzer) Analyze(text string) *Report {
	tokens := Tokenize(text)
	report := Rank(tokens, lookupFor(a.Options.Source, a.Options.Language))
	gologger.Verbose().Msgf("ranked %v tokens: %v common, %v singletons, %v unknown", report.TotalTokens, len(report.Common), len(report.Singletons), len(report.Unknown))
	return report
}

// AnalyzeFile reads document at path and ranks its words
func (a *Analyzer) AnalyzeFile(path string) (*Report, error) {
	text, err := ReadDocument(path, a.Options.Encoding)
	if err != nil {
		return nil, err
	}
	return a.Analyze(text), nil
}

// Write serializes report to w in format
func (a *Analyzer) Write(w io.Writer, report *Report, format Format) error {
	if w == nil {
		return errorutil.NewWithTag("wordusage", "writer destination cannot be nil")
	}
	return WriteReport(w, report, format, &WriterOptions{
		Templates:        a.Options.Templates,
		ExcludeStopwords: a.Options.ExcludeStopwords,
		Language:         a.Options.Language,
	})
}

// Run analyzes the document at inputPath and writes the report to outputPath
// (`-` for stdout). The report is rendered completely before outputPath
// is touched so failures never leave partial output behind
func (a *Analyzer) Run(inputPath, outputPath string, format Format) (*Report, error) {
	report, err := a.AnalyzeFile(inputPath)
	if err != nil {
		return nil, err
	}
	var buff bytes.Buffer
	if err := a.Write(&buff, report, format); err != nil {
		return nil, newError(ErrIO, outputPath, err)
	}
	if outputPath == "-" {
		if _, err := os.Stdout.Write(buff.Bytes()); err != nil {
			return nil, newError(ErrIO, outputPath, err)
		}
		return report, nil
	}
	if err := os.WriteFile(outputPath, buff.Bytes(), 0644); err != nil {
		return nil, newError(ErrIO, outputPath, err)
	}
	return report, nil
}

// Run analyzes the document at inputPath using source and writes the
// report in format to outputPath
func Run(inputPath, outputPath string, format Format, source FrequencySource) error {
	a, err := New(&Options{Source: source})
	if err != nil {
		return err
	}
	_, err = a.Run(inputPath, outputPath, format)
	return err
}
