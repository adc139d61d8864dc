package wordusage

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the wordusage yaml config
type Config struct {
	// Language of the document and of the reference corpus to use
	Language string `yaml:"language"`
	// Corpora maps a language to the path of its frequency list
	Corpora  map[string]string `yaml:"corpora"`
	Encoding string            `yaml:"encoding"`
	// Format of the report, empty selects it from the output file extension
	Format           string    `yaml:"format"`
	ExcludeStopwords bool      `yaml:"exclude-stopwords"`
	Templates        Templates `yaml:"templates"`
}

// DefaultConfig is used when no config file is given
var DefaultConfig = Config{
	Language:  DefaultLanguage,
	Corpora:   map[string]string{},
	Encoding:  DefaultEncoding,
	Templates: DefaultTemplates,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, newError(ErrConfig, filePath, err)
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, newError(ErrConfig, filePath, err)
	}
	return &cfg, nil
}

// Save writes config to filePath as yaml
func (c *Config) Save(filePath string) error {
	bin, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// Generate Sample creates a sample yaml file with default/sample values
func GenerateSample(filePath string) error {
	cfg := DefaultConfig
	cfg.Corpora = map[string]string{
		DefaultLanguage: "/path/to/en-frequencies.txt",
	}
	return cfg.Save(filePath)
}

// LoadCorpora loads the frequency list of every configured language
func (c *Config) LoadCorpora() (Corpora, error) {
	corpora := Corpora{}
	for language, path := range c.Corpora {
		if path == "" {
			continue
		}
		corpus, err := LoadCorpus(path, language)
		if err != nil {
			corpora.Close()
			return nil, err
		}
		corpora[language] = corpus
	}
	return corpora, nil
}
