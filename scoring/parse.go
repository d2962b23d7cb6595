package scoring

import (
	"math"

	"github.com/projectdiscovery/guessx/match"
)

// Parse is the minimum-guesses decomposition of a password
type Parse struct {
	Guesses      float64
	GuessesLog10 float64
	// Sequence covers every rune exactly once, in order
	Sequence []*match.Match
}

// MostGuessable runs the optimal parse over the candidate matches.
//
// best[k] is the minimum product of guesses explaining password[0:k].
// Every span may also be explained by a bruteforce match, except right after
// another bruteforce match since one longer span is never worse. On equal
// products a detector match beats bruteforce, then the shorter match wins,
// then the earlier registered detector.
func (e *Estimator) MostGuessable(password []rune, matches []*match.Match) *Parse {
	n := len(password)
	if n == 0 {
		return &Parse{Guesses: 1}
	}

	byEnd := make([][]*match.Match, n)
	for _, m := range matches {
		if m == nil || m.I < 0 || m.J >= n || m.I > m.J {
			continue
		}
		byEnd[m.J] = append(byEnd[m.J], m)
	}

	best := make([]float64, n+1)
	choice := make([]*match.Match, n+1)
	best[0] = 1
	for k := 1; k <= n; k++ {
		best[k] = math.Inf(1)
	}

	consider := func(end int, m *match.Match) {
		candidate := clamp(best[m.I] * e.Estimate(m, n))
		if candidate < best[end] || (candidate == best[end] && preferred(m, choice[end])) {
			best[end] = candidate
			choice[end] = m
		}
	}

	for k := 0; k < n; k++ {
		for _, m := range byEnd[k] {
			consider(k+1, m)
		}
		for i := 0; i <= k; i++ {
			if prev := choice[i]; prev != nil && prev.Kind == match.Bruteforce {
				continue
			}
			consider(k+1, bruteforceMatch(password, i, k))
		}
	}

	var sequence []*match.Match
	for k := n; k > 0; {
		m := choice[k]
		sequence = append(sequence, m)
		k = m.I
	}
	for i, j := 0, len(sequence)-1; i < j; i, j = i+1, j-1 {
		sequence[i], sequence[j] = sequence[j], sequence[i]
	}
	return &Parse{
		Guesses:      best[n],
		GuessesLog10: math.Log10(best[n]),
		Sequence:     sequence,
	}
}

// preferred reports whether candidate should replace current on equal guesses
func preferred(candidate, current *match.Match) bool {
	if current == nil {
		return true
	}
	candidateBrute := candidate.Kind == match.Bruteforce
	currentBrute := current.Kind == match.Bruteforce
	if candidateBrute != currentBrute {
		return !candidateBrute
	}
	if candidate.Len() != current.Len() {
		return candidate.Len() < current.Len()
	}
	return candidate.Order < current.Order
}

func bruteforceMatch(password []rune, i, j int) *match.Match {
	return &match.Match{
		Kind:  match.Bruteforce,
		I:     i,
		J:     j,
		Token: string(password[i : j+1]),
		Order: match.BruteforceOrder,
	}
}
