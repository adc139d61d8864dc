package wordusage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, GenerateSample(path))

	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.Equal(t, DefaultLanguage, cfg.Language)
	require.Equal(t, DefaultTemplates, cfg.Templates)
	require.Contains(t, cfg.Corpora, DefaultLanguage)
}

func TestNewConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := NewConfig(filepath.Join(dir, "missing.yaml"))
	require.True(t, errors.Is(err, ErrConfig))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.Nil(t, os.WriteFile(invalid, []byte("corpora: [unclosed"), 0644))
	_, err = NewConfig(invalid)
	require.True(t, errors.Is(err, ErrConfig))
}

func TestConfigLoadCorpora(t *testing.T) {
	dir := t.TempDir()
	en := filepath.Join(dir, "en.txt")
	require.Nil(t, os.WriteFile(en, []byte("the 0.05\n"), 0644))

	cfg := &Config{Corpora: map[string]string{"en": en, "fr": ""}}
	corpora, err := cfg.LoadCorpora()
	require.Nil(t, err)
	defer corpora.Close()
	require.Len(t, corpora, 1)
	require.Equal(t, 0.05, corpora.Frequency("the", "en"))

	cfg.Corpora["de"] = filepath.Join(dir, "missing.txt")
	_, err = cfg.LoadCorpora()
	require.True(t, errors.Is(err, ErrNotFound))
}
