package wordusage

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// DefaultEncoding of input documents
const DefaultEncoding = "utf-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// supported single byte encodings besides utf-8
var encodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso8859-1":    charmap.ISO8859_1,
	"latin9":       charmap.ISO8859_15,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// ValidEncoding returns true if name is a supported input encoding
func ValidEncoding(name string) bool {
	name = strings.ToLower(name)
	if name == "" || name == "utf-8" || name == "utf8" {
		return true
	}
	_, ok := encodings[name]
	return ok
}

// ReadDocument reads the full document at path and decodes it to text.
// `-` reads from stdin. .html and .htm files are reduced to their text content
func ReadDocument(path, enc string) (string, error) {
	if path == "-" {
		if !fileutil.HasStdin() {
			return "", newError(ErrNotFound, path, errorutil.NewWithTag("input", "no input found on stdin"))
		}
		return ReadDocumentFrom(os.Stdin, enc, false)
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newError(ErrNotFound, path, err)
		}
		return "", newError(ErrIO, path, err)
	}
	text, err := decode(bin, enc, isHTML(path))
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Path = path
		}
		return "", err
	}
	return text, nil
}

// ReadDocumentFrom reads the full document from r and decodes it to text
func ReadDocumentFrom(r io.Reader, enc string, htmlInput bool) (string, error) {
	bin, err := io.ReadAll(r)
	if err != nil {
		return "", newError(ErrIO, "", err)
	}
	return decode(bin, enc, htmlInput)
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

func decode(bin []byte, enc string, htmlInput bool) (string, error) {
	enc = strings.ToLower(enc)
	switch enc {
	case "", "utf-8", "utf8":
		bin = bytes.TrimPrefix(bin, utf8BOM)
		if !utf8.Valid(bin) {
			return "", newError(ErrEncoding, "", errorutil.NewWithTag("input", "input is not valid utf-8 text"))
		}
	default:
		e, ok := encodings[enc]
		if !ok {
			return "", newError(ErrEncoding, "", errorutil.NewWithTag("input", "unsupported encoding %v", enc))
		}
		decoded, err := e.NewDecoder().Bytes(bin)
		if err != nil {
			return "", newError(ErrEncoding, "", err)
		}
		bin = decoded
	}
	if htmlInput {
		return extractText(bytes.NewReader(bin))
	}
	return string(bin), nil
}

// extractText returns text content of a html document, skipping
// script and style elements
func extractText(r io.Reader) (string, error) {
	var sb strings.Builder
	z := html.NewTokenizer(r)
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", newError(ErrEncoding, "", errorutil.NewWithErr(err).Msgf("failed to parse html"))
			}
			return sb.String(), nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if isSkipped(name) {
				skip++
			}
			if !isInline(name) {
				// block tags separate words ex: <p>one</p><p>two</p>
				sb.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isSkipped(name) && skip > 0 {
				skip--
			}
			if !isInline(name) {
				sb.WriteByte(' ')
			}
		case html.SelfClosingTagToken:
			sb.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

func isSkipped(tag []byte) bool {
	switch string(tag) {
	case "script", "style", "noscript", "template":
		return true
	}
	return false
}

func isInline(tag []byte) bool {
	switch string(tag) {
	case "a", "abbr", "b", "cite", "code", "em", "i", "mark", "small", "span", "strong", "sub", "sup", "u":
		return true
	}
	return false
}
