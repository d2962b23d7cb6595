package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/projectdiscovery/guessx/keyboard"
	"github.com/projectdiscovery/guessx/match"
)

type layoutStats struct {
	startingPositions float64
	averageDegree     float64
}

// Estimator assigns guesses to matches. It is read-only after creation and
// safe for concurrent use.
type Estimator struct {
	params        Params
	referenceYear int
	layouts       map[string]layoutStats
}

// NewEstimator creates an estimator for the given layouts. The reference
// year is fixed here so repeated estimates stay identical.
func NewEstimator(params Params, layouts *keyboard.Set) *Estimator {
	e := &Estimator{
		params:        params,
		referenceYear: params.referenceYear(),
		layouts:       map[string]layoutStats{},
	}
	if layouts != nil {
		for _, l := range layouts.All() {
			e.layouts[l.Name] = layoutStats{
				startingPositions: float64(l.StartingPositions()),
				averageDegree:     l.AverageDegree(),
			}
		}
	}
	return e
}

// ReferenceYear returns the year date guesses are measured from
func (e *Estimator) ReferenceYear() int {
	return e.referenceYear
}

// Estimate fills m.Guesses for a match inside a password of passwordLen runes.
// Matches shorter than the password get the sub-match minimum.
func (e *Estimator) Estimate(m *match.Match, passwordLen int) float64 {
	if m.Guesses > 0 {
		return m.Guesses
	}
	minGuesses := 1.0
	if m.Len() < passwordLen {
		if m.Len() == 1 {
			minGuesses = e.params.MinSubmatchSingleChar
		} else {
			minGuesses = e.params.MinSubmatchMultiChar
		}
	}
	guesses := clamp(math.Max(e.guesses(m), minGuesses))
	m.Guesses = guesses
	m.GuessesLog10 = math.Log10(guesses)
	return guesses
}

func (e *Estimator) guesses(m *match.Match) float64 {
	switch m.Kind {
	case match.Bruteforce:
		return e.bruteforceGuesses(m)
	case match.Dictionary:
		return e.dictionaryGuesses(m)
	case match.Spatial:
		return e.spatialGuesses(m)
	case match.Repeat:
		return m.Repeat.BaseGuesses * float64(m.Repeat.RepeatCount)
	case match.Sequence:
		return e.sequenceGuesses(m)
	case match.Regex:
		return e.regexGuesses(m)
	case match.Date:
		return e.dateGuesses(m)
	}
	panic(fmt.Sprintf("scoring: unknown match kind %q", m.Kind))
}

func (e *Estimator) bruteforceGuesses(m *match.Match) float64 {
	guesses := clamp(math.Pow(e.params.BruteforceCardinality, float64(m.Len())))
	// never below the sub-match minimum of a token this long
	minGuesses := e.params.MinSubmatchMultiChar + 1
	if m.Len() == 1 {
		minGuesses = e.params.MinSubmatchSingleChar + 1
	}
	return math.Max(guesses, minGuesses)
}

func (e *Estimator) dictionaryGuesses(m *match.Match) float64 {
	d := m.Dictionary
	d.BaseGuesses = float64(d.Rank)
	d.UppercaseVariations = e.uppercaseVariations(m.Token)
	d.L33tVariations = e.l33tVariations(m)
	reversed := 1.0
	if d.Reversed {
		reversed = e.params.ReversedFactor
	}
	return d.BaseGuesses * d.UppercaseVariations * d.L33tVariations * reversed
}

func (e *Estimator) uppercaseVariations(word string) float64 {
	runes := []rune(word)
	upper, lower := 0, 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		} else if unicode.IsLower(r) {
			lower++
		}
	}
	if upper == 0 {
		return 1
	}
	// a capitalized first letter, a capitalized last letter or all caps
	startUpper := len(runes) > 1 && unicode.IsUpper(runes[0]) && upper == 1
	endUpper := len(runes) > 1 && unicode.IsUpper(runes[len(runes)-1]) && upper == 1
	if startUpper || endUpper || lower == 0 {
		return e.params.CaseOneSidedFactor
	}
	variations := 0.0
	for i := 1; i <= min(upper, lower); i++ {
		variations += nCk(upper+lower, i)
	}
	return variations
}

func (e *Estimator) l33tVariations(m *match.Match) float64 {
	if !m.Dictionary.L33t {
		return 1
	}
	variations := 1.0
	chars := []rune(strings.ToLower(m.Token))
	for subbed, unsubbed := range m.Dictionary.Sub {
		s, u := 0, 0
		for _, c := range chars {
			switch c {
			case subbed:
				s++
			case unsubbed:
				u++
			}
		}
		if s == 0 || u == 0 {
			variations *= e.params.L33tOneSidedFactor
			continue
		}
		possibilities := 0.0
		for i := 1; i <= min(u, s); i++ {
			possibilities += nCk(u+s, i)
		}
		variations *= possibilities
	}
	return variations
}

func (e *Estimator) spatialGuesses(m *match.Match) float64 {
	stats, ok := e.layouts[m.Spatial.Graph]
	if !ok {
		panic(fmt.Sprintf("scoring: spatial match on unknown layout %q", m.Spatial.Graph))
	}
	length := m.Len()
	turns := m.Spatial.Turns
	guesses := 0.0
	for i := 2; i <= length; i++ {
		possibleTurns := min(turns, i-1)
		for j := 1; j <= possibleTurns; j++ {
			guesses += nCk(i-1, j-1) * stats.startingPositions * math.Pow(stats.averageDegree, float64(j))
		}
	}
	if shifted := m.Spatial.ShiftedCount; shifted > 0 {
		unshifted := length - shifted
		if unshifted == 0 {
			guesses *= e.params.ShiftOneSidedFactor
		} else {
			variations := 0.0
			for i := 1; i <= min(shifted, unshifted); i++ {
				variations += nCk(shifted+unshifted, i)
			}
			guesses *= variations
		}
	}
	return guesses
}

func (e *Estimator) sequenceGuesses(m *match.Match) float64 {
	first := []rune(m.Token)[0]
	var base float64
	switch {
	case strings.ContainsRune("aAzZ019", first):
		base = e.params.SequenceObviousBase
	case first >= '0' && first <= '9':
		base = e.params.SequenceDigitsBase
	default:
		base = e.params.SequenceDefaultBase
	}
	if !m.Sequence.Ascending {
		base *= e.params.SequenceDescendingFactor
	}
	return base * float64(m.Len())
}

func (e *Estimator) regexGuesses(m *match.Match) float64 {
	switch m.Regex.Name {
	case "recent_year":
		year, err := strconv.Atoi(m.Token)
		if err != nil {
			return e.params.MinYearSpace
		}
		return e.yearSpace(year)
	}
	return e.bruteforceGuesses(m)
}

func (e *Estimator) dateGuesses(m *match.Match) float64 {
	guesses := e.yearSpace(m.Date.Year) * e.params.DaysPerYear
	if m.Date.Separator != "" {
		guesses *= e.params.DateSeparatorFactor
	}
	return guesses
}

func (e *Estimator) yearSpace(year int) float64 {
	space := math.Abs(float64(year - e.referenceYear))
	return math.Max(space, e.params.MinYearSpace)
}

// nCk is the binomial coefficient as a float
func nCk(n, k int) float64 {
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	r := 1.0
	for d := 1; d <= k; d++ {
		r *= float64(n)
		r /= float64(d)
		n--
	}
	return r
}

func clamp(guesses float64) float64 {
	if math.IsInf(guesses, 1) || guesses > math.MaxFloat64 {
		return math.MaxFloat64
	}
	if math.IsNaN(guesses) || guesses < 1 {
		return 1
	}
	return guesses
}
