package guessx

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/projectdiscovery/guessx/match"
)

// Result is the strength estimate of one password
type Result struct {
	Password     string  `json:"password"`
	Guesses      float64 `json:"guesses"`
	GuessesLog10 float64 `json:"guesses_log10"`
	// Score is 0 (too guessable) to 4 (very unguessable)
	Score int `json:"score"`
	// Sequence is the minimum-guesses parse, it covers every rune once in order
	Sequence   []*match.Match `json:"sequence"`
	CrackTimes []CrackTime    `json:"crack_times"`
	Feedback   *Feedback      `json:"feedback"`
	// Truncated is set when only the allowed prefix was estimated
	Truncated bool `json:"truncated,omitempty"`
}

// JSON returns the result as a single line of json
func (r *Result) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// Patterns returns the kinds of the parse, ex: `spatial+sequence`
func (r *Result) Patterns() string {
	kinds := make([]string, 0, len(r.Sequence))
	for _, m := range r.Sequence {
		kinds = append(kinds, string(m.Kind))
	}
	return strings.Join(kinds, "+")
}

// String is the plain text line of the cli
func (r *Result) String() string {
	line := fmt.Sprintf("%v [score:%d] [guesses:10^%.2f] [%v]", r.Password, r.Score, r.GuessesLog10, r.Patterns())
	if r.Feedback != nil && r.Feedback.Warning != "" {
		line += " [" + r.Feedback.Warning + "]"
	}
	return line
}
