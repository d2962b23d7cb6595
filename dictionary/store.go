package dictionary

import (
	"fmt"
)

// Hit is the result of a successful lookup
type Hit struct {
	Rank int
	// Sub holds the substitutions applied before the lookup, nil for exact hits
	Sub map[rune]rune
}

// Store indexes dictionaries by name. It is read-only once built.
type Store struct {
	dicts map[string]*Dictionary
	names []string
}

// NewStore creates a store, later dictionaries replace earlier ones with the same name
func NewStore(dicts ...*Dictionary) *Store {
	s := &Store{dicts: make(map[string]*Dictionary, len(dicts))}
	for _, d := range dicts {
		if d == nil {
			continue
		}
		if _, ok := s.dicts[d.Name]; !ok {
			s.names = append(s.names, d.Name)
		}
		s.dicts[d.Name] = d
	}
	return s
}

// Names returns dictionary names in registration order
func (s *Store) Names() []string {
	return append([]string(nil), s.names...)
}

// Get returns a dictionary by name
func (s *Store) Get(name string) (*Dictionary, error) {
	d, ok := s.dicts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDictionary, name)
	}
	return d, nil
}

// All returns dictionaries in registration order
func (s *Store) All() []*Dictionary {
	out := make([]*Dictionary, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.dicts[name])
	}
	return out
}

// Lookup does a case-insensitive exact lookup, a nil hit means absent
func (s *Store) Lookup(name, word string) (*Hit, error) {
	d, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	if rank, ok := d.Rank(Normalize(word)); ok {
		return &Hit{Rank: rank}, nil
	}
	return nil, nil
}

// LookupL33t undoes up to limit substitution variants of candidate and returns
// the best ranked hit. Only variants that actually substitute something count.
func (s *Store) LookupL33t(name, candidate string, limit int) (*Hit, error) {
	d, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	runes := []rune(Normalize(candidate))
	var best *Hit
	EnumerateSubs(runes, limit, func(sub map[rune]rune) bool {
		translated := Translate(runes, sub)
		rank, ok := d.Rank(translated)
		if !ok {
			return true
		}
		if best == nil || rank < best.Rank {
			best = &Hit{Rank: rank, Sub: sub}
		}
		return true
	})
	return best, nil
}
