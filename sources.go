package guessx

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/projectdiscovery/guessx/dictionary"
	fileutil "github.com/projectdiscovery/utils/file"
)

//go:embed data/*.txt
var embeddedData embed.FS

// embeddedDictionaries lists the bundled word lists in load order, a
// dictionary spanning several files ranks them in the given order
var embeddedDictionaries = []struct {
	name  string
	kind  dictionary.Kind
	files []string
}{
	{"passwords", dictionary.KindPasswords, []string{"top_200_2023_passwords", "other_common_passwords"}},
	{"english_wikipedia", dictionary.KindWords, []string{"english_words", "eff_unranked"}},
	{"darkweb", dictionary.KindPasswords, []string{"darkweb"}},
	{"richelieu_french", dictionary.KindPasswords, []string{"richelieu_french"}},
	{"unkown_azul", dictionary.KindPasswords, []string{"unkown_azul"}},
	{"female_names", dictionary.KindNames, []string{"female_names"}},
	{"male_names", dictionary.KindNames, []string{"male_names"}},
	{"surnames", dictionary.KindNames, []string{"surnames"}},
	{"us_tv_and_film", dictionary.KindWords, []string{"us_tv_and_film"}},
}

// Source is a named, lazily opened input of the engine: a word list for
// dictionaries or a YAML definition for keyboards
type Source struct {
	Name string
	// Kind only applies to dictionaries, empty means generic
	Kind dictionary.Kind
	Open func() (io.ReadCloser, error)
}

// BytesSource serves an in-memory buffer
func BytesSource(name string, kind dictionary.Kind, bin []byte) Source {
	return Source{
		Name: name,
		Kind: kind,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(bin)), nil
		},
	}
}

// FileSource serves a file from disk
func FileSource(name string, kind dictionary.Kind, filePath string) Source {
	return Source{
		Name: name,
		Kind: kind,
		Open: func() (io.ReadCloser, error) {
			if !fileutil.FileExists(filePath) {
				return nil, fmt.Errorf("file %v does not exist", filePath)
			}
			return os.Open(filePath)
		},
	}
}

// ParseSource parses a `name=path` flag value, a bare path is named after
// the file
func ParseSource(value string, kind dictionary.Kind) Source {
	name, filePath, ok := strings.Cut(value, "=")
	if !ok {
		filePath = value
		base := path.Base(strings.ReplaceAll(value, "\\", "/"))
		name = strings.TrimSuffix(strings.TrimSuffix(base, ".gz"), path.Ext(strings.TrimSuffix(base, ".gz")))
	}
	return FileSource(name, kind, filePath)
}

// ConcatSource serves plain text parts one after the other as a single list,
// ranks of a later part follow the last rank of the previous one
func ConcatSource(name string, kind dictionary.Kind, parts ...Source) Source {
	return Source{
		Name: name,
		Kind: kind,
		Open: func() (io.ReadCloser, error) {
			readers := make([]io.Reader, 0, 2*len(parts))
			closers := make([]io.Closer, 0, len(parts))
			closeAll := func() {
				for _, c := range closers {
					_ = c.Close()
				}
			}
			for _, part := range parts {
				if part.Open == nil {
					closeAll()
					return nil, fmt.Errorf("part %v has no opener", part.Name)
				}
				rc, err := part.Open()
				if err != nil {
					closeAll()
					return nil, fmt.Errorf("part %v: %w", part.Name, err)
				}
				// a part without trailing newline must not merge into the next one
				readers = append(readers, rc, strings.NewReader("\n"))
				closers = append(closers, rc)
			}
			return &multiReadCloser{Reader: io.MultiReader(readers...), closers: closers}, nil
		},
	}
}

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// EmbeddedSources returns the bundled frequency lists
func EmbeddedSources() []Source {
	sources := make([]Source, 0, len(embeddedDictionaries))
	for _, v := range embeddedDictionaries {
		parts := make([]Source, 0, len(v.files))
		for _, file := range v.files {
			file := file
			parts = append(parts, Source{
				Name: file,
				Open: func() (io.ReadCloser, error) {
					return embeddedData.Open("data/" + file + ".txt")
				},
			})
		}
		if len(parts) == 1 {
			parts[0].Name, parts[0].Kind = v.name, v.kind
			sources = append(sources, parts[0])
			continue
		}
		sources = append(sources, ConcatSource(v.name, v.kind, parts...))
	}
	return sources
}
