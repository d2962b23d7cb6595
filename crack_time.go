package guessx

import (
	"fmt"
	"math"
)

// CrackTime is the time an attack scenario needs to exhaust the guesses
type CrackTime struct {
	Scenario string  `json:"scenario"`
	Seconds  float64 `json:"seconds"`
	Display  string  `json:"display"`
}

const (
	minute  = 60.0
	hour    = minute * 60
	day     = hour * 24
	month   = day * 31
	year    = month * 12
	century = year * 100
)

// crackTimes converts guesses into seconds for every configured scenario
func crackTimes(guesses float64, rates []CrackRate) []CrackTime {
	out := make([]CrackTime, 0, len(rates))
	for _, r := range rates {
		seconds := guesses / r.PerSecond
		out = append(out, CrackTime{
			Scenario: r.Name,
			Seconds:  seconds,
			Display:  DisplayTime(seconds),
		})
	}
	return out
}

// DisplayTime renders seconds in the largest fitting unit
func DisplayTime(seconds float64) string {
	unit := func(value float64, name string) string {
		base := math.Round(value)
		if base != 1 {
			name += "s"
		}
		return fmt.Sprintf("%.0f %v", base, name)
	}
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		return unit(seconds, "second")
	case seconds < hour:
		return unit(seconds/minute, "minute")
	case seconds < day:
		return unit(seconds/hour, "hour")
	case seconds < month:
		return unit(seconds/day, "day")
	case seconds < year:
		return unit(seconds/month, "month")
	case seconds < century:
		return unit(seconds/year, "year")
	}
	return "centuries"
}
