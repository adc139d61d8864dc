package wordusage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.Nil(t, os.WriteFile(path, []byte("\xEF\xBB\xBFWell-known neighbour's café"), 0644))

	text, err := ReadDocument(path, "")
	require.Nil(t, err)
	require.Equal(t, "Well-known neighbour's café", text)
}

func TestReadDocumentErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadDocument(filepath.Join(dir, "missing.txt"), "")
	require.True(t, errors.Is(err, ErrNotFound))
	require.Equal(t, ErrNotFound, KindOf(err))

	invalid := filepath.Join(dir, "latin1.txt")
	require.Nil(t, os.WriteFile(invalid, []byte("caf\xe9"), 0644))
	_, err = ReadDocument(invalid, "utf-8")
	require.True(t, errors.Is(err, ErrEncoding))
	require.Contains(t, err.Error(), invalid)

	_, err = ReadDocument(dir, "")
	require.True(t, errors.Is(err, ErrIO))
}

func TestReadDocumentLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	require.Nil(t, os.WriteFile(path, []byte("caf\xe9 na\xefve"), 0644))

	text, err := ReadDocument(path, "latin1")
	require.Nil(t, err)
	require.Equal(t, "café naïve", text)

	_, err = ReadDocument(path, "ebcdic")
	require.True(t, errors.Is(err, ErrEncoding))
}

func TestReadDocumentHTML(t *testing.T) {
	doc := `<html><head><title>League</title><style>p { color: red }</style>
<script>var x = "ignored";</script></head>
<body><p>The <b>Red</b>-Headed</p><p>League &amp; co</p></body></html>`
	path := filepath.Join(t.TempDir(), "doc.html")
	require.Nil(t, os.WriteFile(path, []byte(doc), 0644))

	text, err := ReadDocument(path, "")
	require.Nil(t, err)
	require.Equal(t, []string{"league", "the", "red", "headed", "league", "co"}, Words(text))
}

func TestReadDocumentFrom(t *testing.T) {
	text, err := ReadDocumentFrom(strings.NewReader("<p>one</p><p>two</p>"), "", true)
	require.Nil(t, err)
	require.Equal(t, []string{"one", "two"}, Words(text))

	text, err = ReadDocumentFrom(strings.NewReader("<p>one</p>"), "", false)
	require.Nil(t, err)
	require.Equal(t, "<p>one</p>", text)
}

func TestValidEncoding(t *testing.T) {
	for _, v := range []string{"", "utf-8", "UTF8", "latin1", "Windows-1252"} {
		require.True(t, ValidEncoding(v), v)
	}
	require.False(t, ValidEncoding("utf-16"))
}
