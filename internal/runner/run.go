package runner

import (
	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	"github.com/projectdiscovery/wordusage"
)

// Runner executes a single wordusage run
type Runner struct {
	options *Options
	config  wordusage.Config
}

// New resolves configuration of a run. Precedence is flags,
// then -wc config, then the per-user default config
func New(options *Options) (*Runner, error) {
	loadDefaultConfig(options.defaultConfig)
	cfg := wordusage.DefaultConfig
	if options.WordusageConfig != "" {
		fileCfg, err := wordusage.NewConfig(options.WordusageConfig)
		if err != nil {
			return nil, err
		}
		cfg = mergeConfig(cfg, *fileCfg)
	}
	cfg = mergeConfig(cfg, wordusage.Config{
		Language:         options.Language,
		Encoding:         options.Encoding,
		Format:           options.Format,
		ExcludeStopwords: options.ExcludeStopwords,
	})
	if options.Corpus != "" {
		cfg.Corpora[cfg.Language] = options.Corpus
	}
	if cfg.Corpora[cfg.Language] == "" {
		return nil, &wordusage.Error{
			Kind: wordusage.ErrConfig,
			Err:  errorutil.NewWithTag("wordusage", "no reference corpus configured for language %v (use -corpus)", cfg.Language),
		}
	}
	return &Runner{options: options, config: cfg}, nil
}

// format returns configured format or the one implied by output path
func (r *Runner) format() (wordusage.Format, error) {
	if r.config.Format == "" {
		return wordusage.FormatForPath(r.options.Output), nil
	}
	return wordusage.ParseFormat(r.config.Format)
}

// Run analyzes input and writes the report to output
func (r *Runner) Run() error {
	format, err := r.format()
	if err != nil {
		return &wordusage.Error{Kind: wordusage.ErrConfig, Err: err}
	}
	// only the corpus of the configured language is needed
	cfg := r.config
	cfg.Corpora = map[string]string{cfg.Language: r.config.Corpora[cfg.Language]}
	corpora, err := cfg.LoadCorpora()
	if err != nil {
		return err
	}
	defer corpora.Close()

	analyzer, err := wordusage.New(&wordusage.Options{
		Source:           corpora,
		Language:         cfg.Language,
		Encoding:         cfg.Encoding,
		Templates:        cfg.Templates,
		ExcludeStopwords: cfg.ExcludeStopwords,
	})
	if err != nil {
		return err
	}
	report, err := analyzer.Run(r.options.Input, r.options.Output, format)
	if err != nil {
		return err
	}
	if r.options.Stats {
		s := report.Summarize()
		gologger.Info().Msgf("Tokens: %v, distinct words: %v (common: %v, singletons: %v, unknown: %v)", s.TotalTokens, s.DistinctWords, s.Common, s.Singletons, s.Unknown)
		if s.Common > 0 {
			gologger.Info().Msgf("Relative frequency of common words: mean %.6f, median %.6f, max %.6f", s.MeanRelative, s.MedianRelative, s.MaxRelative)
		}
	}
	gologger.Info().Msgf("Processing completed. Output written to: %v", r.options.Output)
	return nil
}
