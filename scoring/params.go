// Package scoring estimates guesses per match and finds the minimum-guesses
// parse of a password.
package scoring

import "time"

// Params is the calibration table of the estimator. Defaults are the
// published estimator constants.
type Params struct {
	BruteforceCardinality    float64 `yaml:"bruteforce-cardinality" validate:"gt=1"`
	MinSubmatchSingleChar    float64 `yaml:"min-submatch-single-char" validate:"gte=1"`
	MinSubmatchMultiChar     float64 `yaml:"min-submatch-multi-char" validate:"gte=1"`
	MinYearSpace             float64 `yaml:"min-year-space" validate:"gte=1"`
	DaysPerYear              float64 `yaml:"days-per-year" validate:"gte=1"`
	DateSeparatorFactor      float64 `yaml:"date-separator-factor" validate:"gte=1"`
	ReversedFactor           float64 `yaml:"reversed-factor" validate:"gte=1"`
	CaseOneSidedFactor       float64 `yaml:"case-one-sided-factor" validate:"gte=1"`
	L33tOneSidedFactor       float64 `yaml:"l33t-one-sided-factor" validate:"gte=1"`
	ShiftOneSidedFactor      float64 `yaml:"shift-one-sided-factor" validate:"gte=1"`
	SequenceObviousBase      float64 `yaml:"sequence-obvious-base" validate:"gte=1"`
	SequenceDigitsBase       float64 `yaml:"sequence-digits-base" validate:"gte=1"`
	SequenceDefaultBase      float64 `yaml:"sequence-default-base" validate:"gte=1"`
	SequenceDescendingFactor float64 `yaml:"sequence-descending-factor" validate:"gte=1"`
	// ReferenceYear anchors date and year guesses, 0 means the current year
	ReferenceYear int `yaml:"reference-year" validate:"gte=0"`
}

// DefaultParams returns the default calibration
func DefaultParams() Params {
	return Params{
		BruteforceCardinality:    10,
		MinSubmatchSingleChar:    10,
		MinSubmatchMultiChar:     50,
		MinYearSpace:             20,
		DaysPerYear:              365,
		DateSeparatorFactor:      4,
		ReversedFactor:           2,
		CaseOneSidedFactor:       2,
		L33tOneSidedFactor:       2,
		ShiftOneSidedFactor:      2,
		SequenceObviousBase:      4,
		SequenceDigitsBase:       10,
		SequenceDefaultBase:      26,
		SequenceDescendingFactor: 2,
	}
}

func (p Params) referenceYear() int {
	if p.ReferenceYear > 0 {
		return p.ReferenceYear
	}
	return time.Now().Year()
}

// Thresholds are the guess counts separating scores: guesses below
// Thresholds[i] score i, anything above the last one scores len(Thresholds)
type Thresholds []float64

// DefaultThresholds returns 1e3, 1e6, 1e8 and 1e10
func DefaultThresholds() Thresholds {
	return Thresholds{1e3, 1e6, 1e8, 1e10}
}

// Score buckets guesses into 0..len(t)
func (t Thresholds) Score(guesses float64) int {
	for i, limit := range t {
		if guesses < limit {
			return i
		}
	}
	return len(t)
}
