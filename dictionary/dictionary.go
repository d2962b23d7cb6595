// Package dictionary loads ranked word lists and answers rank lookups.
package dictionary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/projectdiscovery/gologger"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrLoad is returned when a word list source is unreadable or malformed
	ErrLoad = errors.New("dictionary: load error")
	// ErrUnknownDictionary is returned by lookups against a name the store does not hold
	ErrUnknownDictionary = errors.New("dictionary: unknown dictionary")
)

// Kind tells what a dictionary contains, feedback messages depend on it
type Kind string

const (
	KindPasswords  Kind = "passwords"
	KindWords      Kind = "words"
	KindNames      Kind = "names"
	KindUserInputs Kind = "user-inputs"
	KindGeneric    Kind = "generic"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Dictionary is an immutable ranked word list.
// Rank 1 is the most common word.
type Dictionary struct {
	Name   string
	Kind   Kind
	ranks  map[string]int
	prefix *trie
	maxLen int
}

// Load parses a newline-delimited word list. Words are lower-cased and
// ranked by their first position; gzip compressed sources are accepted.
func Load(name string, r io.Reader) (*Dictionary, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %v: nil source", ErrLoad, name)
	}
	bin, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrLoad, name, err)
	}
	if bytes.HasPrefix(bin, gzipMagic) {
		gz, err := gzip.NewReader(bytes.NewReader(bin))
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %v", ErrLoad, name, err)
		}
		bin, err = io.ReadAll(gz)
		_ = gz.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %v", ErrLoad, name, err)
		}
	}
	if err := validateText(bin); err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrLoad, name, err)
	}

	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(bin))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrLoad, name, err)
	}
	d := FromList(name, words)
	if d.Len() == 0 {
		return nil, fmt.Errorf("%w: %v: no words found", ErrLoad, name)
	}
	return d, nil
}

// FromList builds a dictionary from words already in memory, ranked by order
func FromList(name string, words []string) *Dictionary {
	d := &Dictionary{
		Name:   name,
		Kind:   KindGeneric,
		ranks:  make(map[string]int, len(words)),
		prefix: newTrie(),
	}
	duplicates := 0
	for _, line := range words {
		word := Normalize(line)
		if word == "" {
			continue
		}
		if _, ok := d.ranks[word]; ok {
			duplicates++
			continue
		}
		d.ranks[word] = len(d.ranks) + 1
		d.prefix.insert(word, d.ranks[word])
		if l := utf8.RuneCountInString(word); l > d.maxLen {
			d.maxLen = l
		}
	}
	if duplicates > 0 {
		gologger.Verbose().Msgf("%v duplicate words found in %v, keeping first rank", duplicates, name)
	}
	return d
}

// WithKind returns d after setting its kind
func (d *Dictionary) WithKind(kind Kind) *Dictionary {
	if kind != "" {
		d.Kind = kind
	}
	return d
}

// Rank returns the rank of an already lower-cased word
func (d *Dictionary) Rank(word string) (int, bool) {
	rank, ok := d.ranks[word]
	return rank, ok
}

// Len returns the number of ranked words
func (d *Dictionary) Len() int {
	return len(d.ranks)
}

// Prefixes calls fn for every word that is a prefix of the lower-cased runes
func (d *Dictionary) Prefixes(runes []rune, fn func(length, rank int)) {
	d.prefix.walk(runes, fn)
}

// MaxLen is the rune length of the longest word, substrings longer than
// this can never match
func (d *Dictionary) MaxLen() int {
	return d.maxLen
}

// Normalize trims, NFC-normalizes and lower-cases a word the way it is stored
func Normalize(word string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(word)))
}

// validateText rejects binary input: invalid utf-8 or control bytes
func validateText(bin []byte) error {
	if !utf8.Valid(bin) {
		return errors.New("source is not valid utf-8 text")
	}
	for i, b := range bin {
		if b < 0x20 && b != '\n' && b != '\r' && b != '\t' {
			return fmt.Errorf("unexpected control byte 0x%02x at offset %d", b, i)
		}
		if b == 0x7f {
			return fmt.Errorf("unexpected control byte 0x7f at offset %d", i)
		}
	}
	return nil
}
