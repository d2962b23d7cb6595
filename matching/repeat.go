package matching

import (
	"github.com/projectdiscovery/guessx/match"
)

// repeatMatch finds a unit repeated at least twice. At each position both the
// longest unit (greedy) and the shortest unit (lazy) are tried and the longer
// overall run wins; the base token is the shortest unit that tiles it.
// Base guesses come from a full estimate of the base token.
func (m *Matcher) repeatMatch(in *input) []*match.Match {
	var results []*match.Match
	password := in.password
	n := len(password)
	for last := 0; last < n; {
		start, greedy, lazy := findRepeat(password, last)
		if start < 0 {
			break
		}
		var token, base []rune
		if greedy.length() > lazy.length() {
			token = password[start : start+greedy.length()]
			base = token[:minimalPeriod(token)]
		} else {
			token = password[start : start+lazy.length()]
			base = token[:lazy.unit]
		}
		parse := m.options.Estimator.MostGuessable(base, m.omnimatch(newInput(base, in.dicts)))
		results = append(results, &match.Match{
			Kind:  match.Repeat,
			I:     start,
			J:     start + len(token) - 1,
			Token: string(token),
			Repeat: &match.RepeatData{
				BaseToken:   string(base),
				BaseGuesses: parse.Guesses,
				BaseMatches: parse.Sequence,
				RepeatCount: len(token) / len(base),
			},
		})
		last = start + len(token)
	}
	return results
}

type repeatRun struct {
	unit   int
	copies int
}

func (r repeatRun) length() int {
	return r.unit * r.copies
}

// findRepeat returns the first position at or after from where some unit
// repeats, with the greedy and lazy runs found there
func findRepeat(password []rune, from int) (int, repeatRun, repeatRun) {
	n := len(password)
	for p := from; p < n; p++ {
		var greedy, lazy repeatRun
		for unit := (n - p) / 2; unit >= 1; unit-- {
			if c := copies(password, p, unit); c >= 2 {
				greedy = repeatRun{unit: unit, copies: c}
				break
			}
		}
		if greedy.unit == 0 {
			continue
		}
		for unit := 1; unit <= greedy.unit; unit++ {
			if c := copies(password, p, unit); c >= 2 {
				lazy = repeatRun{unit: unit, copies: c}
				break
			}
		}
		return p, greedy, lazy
	}
	return -1, repeatRun{}, repeatRun{}
}

// copies counts consecutive occurrences of password[p:p+unit] starting at p
func copies(password []rune, p, unit int) int {
	count := 1
	for next := p + unit; next+unit <= len(password); next += unit {
		if !equalRunes(password[p:p+unit], password[next:next+unit]) {
			break
		}
		count++
	}
	return count
}

// minimalPeriod returns the shortest unit whose repetition is exactly token
func minimalPeriod(token []rune) int {
	n := len(token)
	for unit := 1; unit <= n/2; unit++ {
		if n%unit == 0 && copies(token, 0, unit) == n/unit {
			return unit
		}
	}
	return n
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
