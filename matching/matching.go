// Package matching runs the pattern detectors over every substring of a password.
//
// Detectors are independent of each other: none of them sees the output of
// another, so they may run concurrently. Their results are pooled and sorted
// by position and registration order before the optimal parse.
package matching

import (
	"unicode"

	"github.com/projectdiscovery/guessx/dictionary"
	"github.com/projectdiscovery/guessx/keyboard"
	"github.com/projectdiscovery/guessx/match"
	"github.com/projectdiscovery/guessx/scoring"
	"golang.org/x/sync/errgroup"
)

// Options of the matcher
type Options struct {
	Dictionaries *dictionary.Store
	Keyboards    *keyboard.Set
	Estimator    *scoring.Estimator
	// MaxL33tSubs caps the substitution variants tried per password
	MaxL33tSubs int
	// SequenceMaxDelta is the largest code point step of a sequence
	SequenceMaxDelta int
	// DateMinYear and DateMaxYear bound four digit years of date matches
	DateMinYear int
	DateMaxYear int
	// ParallelThreshold is the password length from which detectors run
	// concurrently, 0 disables it
	ParallelThreshold int
}

// input is what every detector reads for one password
type input struct {
	password []rune
	lower    []rune
	dicts    []*dictionary.Dictionary
}

type detector struct {
	name  string
	match func(m *Matcher, in *input) []*match.Match
}

// detectors in registration order, the index is the match Order.
// Filled in init since repeatMatch recurses through omnimatch.
var detectors []detector

func init() {
	detectors = []detector{
		{"dictionary", (*Matcher).dictionaryMatch},
		{"reverse-dictionary", (*Matcher).reverseDictionaryMatch},
		{"l33t", (*Matcher).l33tMatch},
		{"spatial", (*Matcher).spatialMatch},
		{"repeat", (*Matcher).repeatMatch},
		{"sequence", (*Matcher).sequenceMatch},
		{"regex", (*Matcher).regexMatch},
		{"date", (*Matcher).dateMatch},
	}
}

// Detectors returns the detector names in registration order
func Detectors() []string {
	names := make([]string, 0, len(detectors))
	for _, d := range detectors {
		names = append(names, d.name)
	}
	return names
}

// Matcher runs all detectors. It is read-only and safe for concurrent use.
type Matcher struct {
	options *Options
	dicts   []*dictionary.Dictionary
	layouts []*keyboard.Layout
}

// New creates a matcher, zero options get the defaults
func New(opts *Options) *Matcher {
	o := *opts
	if o.SequenceMaxDelta <= 0 {
		o.SequenceMaxDelta = 5
	}
	if o.DateMinYear <= 0 {
		o.DateMinYear = 1000
	}
	if o.DateMaxYear <= 0 {
		o.DateMaxYear = 2050
	}
	if o.MaxL33tSubs < 0 {
		o.MaxL33tSubs = 0
	}
	if o.Dictionaries == nil {
		o.Dictionaries = dictionary.NewStore()
	}
	if o.Keyboards == nil {
		o.Keyboards = keyboard.NewSet()
	}
	if o.Estimator == nil {
		o.Estimator = scoring.NewEstimator(scoring.DefaultParams(), o.Keyboards)
	}
	return &Matcher{
		options: &o,
		dicts:   o.Dictionaries.All(),
		layouts: o.Keyboards.All(),
	}
}

// Omnimatch returns the candidate matches of every detector, sorted.
// extra dictionaries are matched for this call only.
func (m *Matcher) Omnimatch(password []rune, extra ...*dictionary.Dictionary) []*match.Match {
	dicts := m.dicts
	if len(extra) > 0 {
		dicts = append(append([]*dictionary.Dictionary(nil), m.dicts...), extra...)
	}
	return m.omnimatch(newInput(password, dicts))
}

func newInput(password []rune, dicts []*dictionary.Dictionary) *input {
	lower := make([]rune, len(password))
	for i, r := range password {
		lower[i] = unicode.ToLower(r)
	}
	return &input{password: password, lower: lower, dicts: dicts}
}

func (m *Matcher) omnimatch(in *input) []*match.Match {
	results := make([][]*match.Match, len(detectors))
	if m.options.ParallelThreshold > 0 && len(in.password) >= m.options.ParallelThreshold {
		var g errgroup.Group
		for idx := range detectors {
			idx := idx
			g.Go(func() error {
				results[idx] = detectors[idx].match(m, in)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for idx := range detectors {
			results[idx] = detectors[idx].match(m, in)
		}
	}

	var all []*match.Match
	for idx, found := range results {
		for _, v := range found {
			v.Order = idx
			all = append(all, v)
		}
	}
	match.Sort(all)
	return all
}

// MostGuessable matches and parses a password in one go
func (m *Matcher) MostGuessable(password []rune, extra ...*dictionary.Dictionary) *scoring.Parse {
	return m.options.Estimator.MostGuessable(password, m.Omnimatch(password, extra...))
}
