package matching

import (
	"github.com/projectdiscovery/guessx/match"
)

// sequenceMatch finds runs of three or more runes whose code points step by
// the same non-zero delta, at most SequenceMaxDelta in magnitude
func (m *Matcher) sequenceMatch(in *input) []*match.Match {
	password := in.password
	n := len(password)
	if n < 3 {
		return nil
	}
	var results []*match.Match
	emit := func(i, j, delta int) {
		if j-i < 2 {
			return
		}
		abs := delta
		if abs < 0 {
			abs = -abs
		}
		if abs == 0 || abs > m.options.SequenceMaxDelta {
			return
		}
		token := password[i : j+1]
		name, space := sequenceName(token)
		results = append(results, &match.Match{
			Kind:  match.Sequence,
			I:     i,
			J:     j,
			Token: string(token),
			Sequence: &match.SequenceData{
				Name:      name,
				Space:     space,
				Ascending: delta > 0,
			},
		})
	}

	i := 0
	last := int(password[1]) - int(password[0])
	for k := 2; k < n; k++ {
		delta := int(password[k]) - int(password[k-1])
		if delta == last {
			continue
		}
		emit(i, k-1, last)
		i = k - 1
		last = delta
	}
	emit(i, n-1, last)
	return results
}

func sequenceName(token []rune) (string, int) {
	lower, upper, digits := true, true, true
	for _, r := range token {
		lower = lower && r >= 'a' && r <= 'z'
		upper = upper && r >= 'A' && r <= 'Z'
		digits = digits && r >= '0' && r <= '9'
	}
	switch {
	case lower:
		return "lower", 26
	case upper:
		return "upper", 26
	case digits:
		return "digits", 10
	}
	return "unicode", 26
}
