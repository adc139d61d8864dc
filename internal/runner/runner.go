package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	"github.com/projectdiscovery/wordusage"
)

const usage = "Usage: wordusage [flags] <input_file> <output_file>"

type Options struct {
	Input            string // path of document to analyze (- for stdin)
	Output           string // path of report to write (- for stdout)
	Corpus           string // reference frequency list of Language
	Language         string
	Encoding         string
	Format           string
	Config           string
	WordusageConfig  string
	ExcludeStopwords bool
	Stats            bool
	Verbose          bool
	Silent           bool
	// internal/unexported fields
	defaultConfig string
}

// ParseFlags parses command line flags and positional arguments.
// A wordusage.ErrUsage error is returned if positional arguments
// are not exactly <input_file> <output_file>
func ParseFlags() (*Options, error) {
	return ParseArgs(os.Args[1:]...)
}

// ParseArgs is ParseFlags over given arguments
func ParseArgs(args ...string) (*Options, error) {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compares word usage of a text with general-language word frequencies.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Corpus, "corpus", "c", "", "reference word frequency list of language (word value per line)"),
		flagSet.StringVarP(&opts.Language, "lang", "l", "", "language of input text and reference corpus (default en)"),
		flagSet.StringVarP(&opts.Encoding, "encoding", "e", "", "input text encoding (utf-8, latin1, windows-1252)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Format, "format", "f", "", "output format (plain, csv) (default from output extension)"),
		flagSet.BoolVarP(&opts.ExcludeStopwords, "exclude-stopwords", "es", false, "omit stop words from the report"),
		flagSet.BoolVar(&opts.Stats, "stats", false, "display report summary"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display errors only"),
		flagSet.CallbackVar(printVersion, "version", "display wordusage version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `wordusage cli config file (default '$HOME/.config/wordusage/config.yaml')`),
		flagSet.StringVar(&opts.WordusageConfig, "wc", "", `wordusage config file with corpora and templates (default '$HOME/.config/wordusage/config_`+version+`.yaml')`),
	)

	if err := flagSet.Parse(args...); err != nil {
		return nil, errorutil.NewWithErr(err).Msgf("could not read flags")
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if !opts.Silent {
		showBanner()
	}

	input, output, err := positionalArgs(flagSet.CommandLine.Args())
	if err != nil {
		return nil, err
	}
	opts.Input, opts.Output = input, output
	opts.defaultConfig = defaultConfigPath()
	return opts, nil
}

// positionalArgs returns input and output paths
func positionalArgs(args []string) (string, string, error) {
	if len(args) != 2 {
		return "", "", &wordusage.Error{
			Kind: wordusage.ErrUsage,
			Err:  errorutil.NewWithTag("wordusage", "expected 2 arguments got %v", len(args)),
		}
	}
	return args[0], args[1], nil
}

// PrintUsage prints the usage line
func PrintUsage() {
	gologger.Print().Msgf("%s\n", usage)
	gologger.Print().Msgf("Use -h to list all flags.\n")
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
