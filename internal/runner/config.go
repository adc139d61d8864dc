package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/projectdiscovery/wordusage"
	"gopkg.in/yaml.v3"
)

// defaultConfigPath returns path of the per-user wordusage config
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, fmt.Sprintf(".config/wordusage/config_%v.yaml", version))
}

// loadDefaultConfig loads the per-user config into wordusage.DefaultConfig
// and creates it with default values if it does not exist
func loadDefaultConfig(path string) {
	if path == "" {
		return
	}
	if fileutil.FileExists(path) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(path); err == nil {
			var cfg wordusage.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx != nil {
				gologger.Warning().Msgf("ignoring invalid default config %v: %v", path, errx)
				return
			}
			wordusage.DefaultConfig = mergeConfig(wordusage.DefaultConfig, cfg)
			return
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		gologger.Verbose().Msgf("failed to create config dir for %v got: %v", path, err)
		return
	}
	if err := wordusage.DefaultConfig.Save(path); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", path, err)
	}
}

// mergeConfig returns base with every non-empty field of override applied
func mergeConfig(base, override wordusage.Config) wordusage.Config {
	merged := base
	if override.Language != "" {
		merged.Language = override.Language
	}
	if override.Encoding != "" {
		merged.Encoding = override.Encoding
	}
	if override.Format != "" {
		merged.Format = override.Format
	}
	if override.ExcludeStopwords {
		merged.ExcludeStopwords = true
	}
	if override.Templates.Common != "" {
		merged.Templates.Common = override.Templates.Common
	}
	if override.Templates.Singleton != "" {
		merged.Templates.Singleton = override.Templates.Singleton
	}
	if override.Templates.Unknown != "" {
		merged.Templates.Unknown = override.Templates.Unknown
	}
	merged.Corpora = map[string]string{}
	for k, v := range base.Corpora {
		merged.Corpora[k] = v
	}
	for k, v := range override.Corpora {
		merged.Corpora[k] = v
	}
	return merged
}
