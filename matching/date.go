package matching

import (
	"strings"

	"github.com/projectdiscovery/guessx/match"
)

// dateSplits lists, per token length, where a run of digits may be cut into
// three integers
var dateSplits = map[int][][2]int{
	4: {{1, 2}, {2, 3}},
	5: {{1, 3}, {2, 3}},
	6: {{1, 2}, {2, 4}, {4, 5}},
	7: {{1, 3}, {2, 3}, {4, 5}, {4, 6}},
	8: {{2, 4}, {4, 6}},
}

const dateSeparators = " \t\n\r\f\v/\\_.-"

type dmy struct {
	day, month, year int
}

// dateMatch finds day, month and year triples with or without a separator.
// Matches strictly contained in another date match are dropped.
func (m *Matcher) dateMatch(in *input) []*match.Match {
	password := in.password
	n := len(password)
	var results []*match.Match

	for i := 0; i+3 < n; i++ {
		for j := i + 3; j <= i+7 && j < n; j++ {
			token := password[i : j+1]
			if !allDigits(token) {
				break
			}
			var candidates []dmy
			for _, split := range dateSplits[len(token)] {
				ints := [3]int{
					atoi(token[:split[0]]),
					atoi(token[split[0]:split[1]]),
					atoi(token[split[1]:]),
				}
				if d, ok := m.mapIntsToDMY(ints); ok {
					candidates = append(candidates, d)
				}
			}
			if len(candidates) == 0 {
				continue
			}
			ref := m.options.Estimator.ReferenceYear()
			best := candidates[0]
			for _, c := range candidates[1:] {
				if abs(c.year-ref) < abs(best.year-ref) {
					best = c
				}
			}
			results = append(results, dateResult(i, j, token, "", best))
		}
	}

	for i := 0; i+5 < n; i++ {
		for j := i + 5; j <= i+9 && j < n; j++ {
			token := password[i : j+1]
			ints, sep, ok := splitSeparated(token)
			if !ok {
				continue
			}
			if d, ok := m.mapIntsToDMY(ints); ok {
				results = append(results, dateResult(i, j, token, string(sep), d))
			}
		}
	}

	filtered := make([]*match.Match, 0, len(results))
	for _, a := range results {
		contained := false
		for _, b := range results {
			if a != b && b.I <= a.I && b.J >= a.J && (b.I != a.I || b.J != a.J) {
				contained = true
				break
			}
		}
		if !contained {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func dateResult(i, j int, token []rune, sep string, d dmy) *match.Match {
	return &match.Match{
		Kind:  match.Date,
		I:     i,
		J:     j,
		Token: string(token),
		Date: &match.DateData{
			Separator: sep,
			Year:      d.year,
			Month:     d.month,
			Day:       d.day,
		},
	}
}

// splitSeparated parses d{1,4} sep d{1,2} sep d{1,4} with the same
// separator twice
func splitSeparated(token []rune) ([3]int, rune, bool) {
	var ints [3]int
	var seps []int
	for idx, r := range token {
		if r < '0' || r > '9' {
			seps = append(seps, idx)
		}
	}
	if len(seps) != 2 {
		return ints, 0, false
	}
	a, b := seps[0], seps[1]
	sep := token[a]
	if token[b] != sep || !strings.ContainsRune(dateSeparators, sep) {
		return ints, 0, false
	}
	first, middle, last := token[:a], token[a+1:b], token[b+1:]
	if len(first) < 1 || len(first) > 4 || len(middle) < 1 || len(middle) > 2 || len(last) < 1 || len(last) > 4 {
		return ints, 0, false
	}
	ints = [3]int{atoi(first), atoi(middle), atoi(last)}
	return ints, sep, true
}

// mapIntsToDMY orders three integers into a plausible date. The middle one
// is always a day or month; a four digit year may come first or last.
func (m *Matcher) mapIntsToDMY(ints [3]int) (dmy, bool) {
	if ints[1] > 31 || ints[1] <= 0 {
		return dmy{}, false
	}
	over12, over31, under1 := 0, 0, 0
	for _, v := range ints {
		if (v > 99 && v < m.options.DateMinYear) || v > m.options.DateMaxYear {
			return dmy{}, false
		}
		if v > 31 {
			over31++
		}
		if v > 12 {
			over12++
		}
		if v <= 0 {
			under1++
		}
	}
	if over31 >= 2 || over12 == 3 || under1 >= 2 {
		return dmy{}, false
	}

	type split struct {
		year int
		rest [2]int
	}
	for _, s := range []split{
		{ints[2], [2]int{ints[0], ints[1]}},
		{ints[0], [2]int{ints[1], ints[2]}},
	} {
		if s.year >= m.options.DateMinYear && s.year <= m.options.DateMaxYear {
			day, month, ok := mapIntsToDM(s.rest)
			if !ok {
				// a plausible year with no day and month is not a date
				return dmy{}, false
			}
			return dmy{day: day, month: month, year: s.year}, true
		}
	}

	for _, s := range []split{
		{ints[2], [2]int{ints[0], ints[1]}},
		{ints[0], [2]int{ints[1], ints[2]}},
	} {
		if day, month, ok := mapIntsToDM(s.rest); ok {
			return dmy{day: day, month: month, year: twoToFourDigitYear(s.year)}, true
		}
	}
	return dmy{}, false
}

func mapIntsToDM(ints [2]int) (int, int, bool) {
	for _, p := range [][2]int{{ints[0], ints[1]}, {ints[1], ints[0]}} {
		d, mo := p[0], p[1]
		if d >= 1 && d <= 31 && mo >= 1 && mo <= 12 {
			return d, mo, true
		}
	}
	return 0, 0, false
}

func twoToFourDigitYear(year int) int {
	switch {
	case year > 99:
		return year
	case year > 50:
		return year + 1900
	}
	return year + 2000
}

func allDigits(token []rune) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoi(digits []rune) int {
	v := 0
	for _, r := range digits {
		v = v*10 + int(r-'0')
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
