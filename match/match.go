// Package match holds the pattern model shared by the matchers and the scorer.
//
// A Match is a closed variant: Kind selects which payload pointer is set.
// Bruteforce matches carry no payload.
package match

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind is the pattern kind of a match
type Kind string

const (
	Dictionary Kind = "dictionary"
	Spatial    Kind = "spatial"
	Repeat     Kind = "repeat"
	Sequence   Kind = "sequence"
	Regex      Kind = "regex"
	Date       Kind = "date"
	Bruteforce Kind = "bruteforce"
)

// Match is a detected pattern over the runes I..J (inclusive) of a password
type Match struct {
	Kind  Kind   `json:"pattern"`
	I     int    `json:"i"`
	J     int    `json:"j"`
	Token string `json:"token"`
	// Guesses is filled by the estimator, zero means not estimated yet
	Guesses      float64 `json:"guesses"`
	GuessesLog10 float64 `json:"guesses_log10"`
	// Order is the registration order of the detector that emitted the match,
	// bruteforce matches always use BruteforceOrder
	Order int `json:"-"`

	Dictionary *DictionaryData `json:"dictionary,omitempty"`
	Spatial    *SpatialData    `json:"spatial,omitempty"`
	Repeat     *RepeatData     `json:"repeat,omitempty"`
	Sequence   *SequenceData   `json:"sequence,omitempty"`
	Regex      *RegexData      `json:"regex,omitempty"`
	Date       *DateData       `json:"date,omitempty"`
}

// BruteforceOrder sorts bruteforce after every registered detector
const BruteforceOrder = 1 << 16

type DictionaryData struct {
	MatchedWord    string `json:"matched_word"`
	Rank           int    `json:"rank"`
	DictionaryName string `json:"dictionary_name"`
	Reversed       bool   `json:"reversed"`
	L33t           bool   `json:"l33t"`
	// Sub maps each substituted character in the token to the letter it stands for
	Sub map[rune]rune `json:"-"`
	// BaseGuesses is the rank, UppercaseVariations and L33tVariations the multipliers
	BaseGuesses         float64 `json:"base_guesses"`
	UppercaseVariations float64 `json:"uppercase_variations"`
	L33tVariations      float64 `json:"l33t_variations"`
}

// MarshalJSON writes Sub as `sub`, a map of substituted to original letter
func (d *DictionaryData) MarshalJSON() ([]byte, error) {
	type alias DictionaryData
	out := struct {
		*alias
		Sub map[string]string `json:"sub,omitempty"`
	}{alias: (*alias)(d)}
	if len(d.Sub) > 0 {
		out.Sub = make(map[string]string, len(d.Sub))
		for k, v := range d.Sub {
			out.Sub[string(k)] = string(v)
		}
	}
	return json.Marshal(out)
}

type SpatialData struct {
	Graph        string `json:"graph"`
	Turns        int    `json:"turns"`
	ShiftedCount int    `json:"shifted_count"`
}

type RepeatData struct {
	BaseToken   string   `json:"base_token"`
	BaseGuesses float64  `json:"base_guesses"`
	BaseMatches []*Match `json:"base_matches"`
	RepeatCount int      `json:"repeat_count"`
}

type SequenceData struct {
	Name      string `json:"sequence_name"`
	Space     int    `json:"sequence_space"`
	Ascending bool   `json:"ascending"`
}

type RegexData struct {
	Name string `json:"regex_name"`
}

type DateData struct {
	Separator string `json:"separator"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
}

// Len returns the number of runes covered by the match
func (m *Match) Len() int {
	return m.J - m.I + 1
}

// SubDisplay renders the l33t substitutions as "4 -> a, 0 -> o"
func (m *Match) SubDisplay() string {
	if m.Dictionary == nil || len(m.Dictionary.Sub) == 0 {
		return ""
	}
	keys := make([]rune, 0, len(m.Dictionary.Sub))
	for k := range m.Dictionary.Sub {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
	out := ""
	for idx, k := range keys {
		if idx > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%c -> %c", k, m.Dictionary.Sub[k])
	}
	return out
}

func (m *Match) String() string {
	return fmt.Sprintf("%s[%d:%d] %q (%.0f)", m.Kind, m.I, m.J, m.Token, m.Guesses)
}

// Sort orders matches by start, end and then registration order.
// The sort is stable so matches of one detector keep their emission order.
func Sort(matches []*Match) {
	sort.SliceStable(matches, func(a, b int) bool {
		x, y := matches[a], matches[b]
		if x.I != y.I {
			return x.I < y.I
		}
		if x.J != y.J {
			return x.J < y.J
		}
		return x.Order < y.Order
	})
}
