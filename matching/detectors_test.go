package matching

import (
	"testing"

	"github.com/projectdiscovery/guessx/match"
	"github.com/stretchr/testify/require"
)

func runDetector(m *Matcher, detect func(*Matcher, *input) []*match.Match, password string) []*match.Match {
	return detect(m, newInput([]rune(password), m.dicts))
}

func TestDictionaryMatch(t *testing.T) {
	m := newTestMatcher("mother", "motherboard", "board", "abcd", "cd")
	matches := runDetector(m, (*Matcher).dictionaryMatch, "MotherBoard")
	require.Equal(t, [][2]int{{0, 5}, {0, 10}, {6, 10}}, spans(matches))
	require.Equal(t, "MotherBoard", matches[1].Token)
	require.Equal(t, "motherboard", matches[1].Dictionary.MatchedWord)
	require.Equal(t, 2, matches[1].Dictionary.Rank)

	matches = runDetector(m, (*Matcher).dictionaryMatch, "abcde")
	require.Equal(t, [][2]int{{0, 3}, {2, 3}}, spans(matches))
}

func TestReverseDictionaryMatch(t *testing.T) {
	m := newTestMatcher("123", "321", "456", "654")
	matches := runDetector(m, (*Matcher).reverseDictionaryMatch, "0123456789")
	require.Equal(t, [][2]int{{4, 6}, {1, 3}}, spans(matches))
	require.Equal(t, "123", matches[1].Token)
	require.Equal(t, "321", matches[1].Dictionary.MatchedWord)
	require.True(t, matches[1].Dictionary.Reversed)
}

func TestL33tMatch(t *testing.T) {
	m := newTestMatcher("aac", "password", "paassword", "cgo")
	matches := runDetector(m, (*Matcher).l33tMatch, "p4ssword")
	require.Len(t, matches, 1)
	require.Equal(t, "p4ssword", matches[0].Token)
	require.Equal(t, "password", matches[0].Dictionary.MatchedWord)
	require.True(t, matches[0].Dictionary.L33t)
	require.Equal(t, map[rune]rune{'4': 'a'}, matches[0].Dictionary.Sub)
	require.Equal(t, "4 -> a", matches[0].SubDisplay())

	// each match only reports the substitutions inside its token
	matches = runDetector(m, (*Matcher).l33tMatch, "@a(go{G0")
	require.Equal(t, [][2]int{{0, 2}, {2, 4}, {5, 7}}, spans(matches))
	require.Equal(t, map[rune]rune{'@': 'a', '(': 'c'}, matches[0].Dictionary.Sub)

	// words without substitutions and single characters are left to other detectors
	require.Empty(t, runDetector(m, (*Matcher).l33tMatch, "password"))
	require.Empty(t, runDetector(newTestMatcher("a"), (*Matcher).l33tMatch, "4"))
}

func TestSpatialMatch(t *testing.T) {
	m := newTestMatcher()
	testcases := []struct {
		password string
		token    string
		graph    string
		turns    int
		shifted  int
	}{
		{password: "zxcvbn", token: "zxcvbn", graph: "qwerty", turns: 1},
		{password: "qwERt", token: "qwERt", graph: "qwerty", turns: 1, shifted: 2},
		{password: "Qwert", token: "Qwert", graph: "qwerty", turns: 1, shifted: 1},
		{password: "xqwedcxz", token: "qwedcxz", graph: "qwerty", turns: 3},
		{password: "1qaz2wsx", token: "2wsx", graph: "qwerty", turns: 1},
		{password: "9632", token: "9632", graph: "keypad", turns: 2},
	}
	for _, v := range testcases {
		var found *match.Match
		for _, r := range runDetector(m, (*Matcher).spatialMatch, v.password) {
			if r.Spatial.Graph == v.graph && r.Token == v.token {
				found = r
			}
		}
		require.NotNil(t, found, "no %v match %q in %q", v.graph, v.token, v.password)
		require.Equal(t, v.turns, found.Spatial.Turns, "turns of %v", v.token)
		require.Equal(t, v.shifted, found.Spatial.ShiftedCount, "shifted of %v", v.token)
	}

	// two keys are not a pattern
	require.Empty(t, runDetector(m, (*Matcher).spatialMatch, "qw"))
}

func TestRepeatMatch(t *testing.T) {
	m := newTestMatcher()
	testcases := []struct {
		password string
		token    string
		base     string
		count    int
	}{
		{password: "aaa", token: "aaa", base: "a", count: 3},
		{password: "xyzabcabcabc", token: "abcabcabc", base: "abc", count: 3},
		{password: "aabaab", token: "aabaab", base: "aab", count: 2},
		{password: "&&&&&", token: "&&&&&", base: "&", count: 5},
	}
	for _, v := range testcases {
		matches := runDetector(m, (*Matcher).repeatMatch, v.password)
		require.Len(t, matches, 1, "matches of %v", v.password)
		r := matches[0]
		require.Equal(t, v.token, r.Token)
		require.Equal(t, v.base, r.Repeat.BaseToken)
		require.Equal(t, v.count, r.Repeat.RepeatCount)
		require.GreaterOrEqual(t, r.Repeat.BaseGuesses, 1.0)
		require.NotEmpty(t, r.Repeat.BaseMatches)
	}

	matches := runDetector(m, (*Matcher).repeatMatch, "aabbbcc")
	require.Equal(t, [][2]int{{0, 1}, {2, 4}, {5, 6}}, spans(matches))
	require.Empty(t, runDetector(m, (*Matcher).repeatMatch, "abcdef"))
}

func TestRepeatGuessesMonotonic(t *testing.T) {
	m := newTestMatcher()
	prev := 0.0
	for n := 2; n <= 12; n++ {
		password := make([]rune, n)
		for i := range password {
			password[i] = 'a'
		}
		parse := m.MostGuessable(password)
		require.Greater(t, parse.Guesses, prev, "guesses of %d repeats", n)
		prev = parse.Guesses
	}
}

func TestSequenceMatch(t *testing.T) {
	m := newTestMatcher()
	testcases := []struct {
		password  string
		token     string
		name      string
		space     int
		ascending bool
	}{
		{password: "abcdef", token: "abcdef", name: "lower", space: 26, ascending: true},
		{password: "ZYX", token: "ZYX", name: "upper", space: 26, ascending: false},
		{password: "9753", token: "9753", name: "digits", space: 10, ascending: false},
		{password: "acegi", token: "acegi", name: "lower", space: 26, ascending: true},
		{password: "αβγ", token: "αβγ", name: "unicode", space: 26, ascending: true},
	}
	for _, v := range testcases {
		matches := runDetector(m, (*Matcher).sequenceMatch, v.password)
		require.Len(t, matches, 1, "matches of %v", v.password)
		s := matches[0]
		require.Equal(t, v.token, s.Token)
		require.Equal(t, v.name, s.Sequence.Name)
		require.Equal(t, v.space, s.Sequence.Space)
		require.Equal(t, v.ascending, s.Sequence.Ascending)
	}

	matches := runDetector(m, (*Matcher).sequenceMatch, "abcxyz1357")
	require.Equal(t, [][2]int{{0, 2}, {3, 5}, {6, 9}}, spans(matches))

	for _, password := range []string{"ab", "aaa", "agm", "a1b2"} {
		require.Empty(t, runDetector(m, (*Matcher).sequenceMatch, password), "no sequence in %v", password)
	}
}

func TestRegexMatch(t *testing.T) {
	m := newTestMatcher()
	matches := runDetector(m, (*Matcher).regexMatch, "ä1999x2021")
	require.Equal(t, [][2]int{{1, 4}, {6, 9}}, spans(matches))
	require.Equal(t, "recent_year", matches[0].Regex.Name)
	require.Empty(t, runDetector(m, (*Matcher).regexMatch, "1899"))
}

func TestDateMatch(t *testing.T) {
	m := newTestMatcher()
	testcases := []struct {
		password string
		token    string
		sep      string
		year     int
		month    int
		day      int
	}{
		{password: "1987-04-12", token: "1987-04-12", sep: "-", year: 1987, month: 12, day: 4},
		{password: "13.5.1999", token: "13.5.1999", sep: ".", year: 1999, month: 5, day: 13},
		{password: "x02/28/85x", token: "02/28/85", sep: "/", year: 1985, month: 2, day: 28},
		{password: "13061990", token: "13061990", year: 1990, month: 6, day: 13},
		{password: "111", token: "", year: 0},
		{password: "1191", token: "1191", year: 2001, month: 9, day: 11},
	}
	for _, v := range testcases {
		matches := runDetector(m, (*Matcher).dateMatch, v.password)
		if v.token == "" {
			require.Empty(t, matches, "no date in %v", v.password)
			continue
		}
		require.Len(t, matches, 1, "dates in %v: %v", v.password, matches)
		d := matches[0]
		require.Equal(t, v.token, d.Token)
		require.Equal(t, v.sep, d.Date.Separator)
		require.Equal(t, v.year, d.Date.Year)
		require.Equal(t, v.month, d.Date.Month)
		require.Equal(t, v.day, d.Date.Day)
	}

	for _, password := range []string{"87/04-12", "33/33/33", "00000000", "12:12:12"} {
		require.Empty(t, runDetector(m, (*Matcher).dateMatch, password), "no date in %v", password)
	}
}

func TestMapIntsToDMY(t *testing.T) {
	m := newTestMatcher()
	testcases := []struct {
		ints [3]int
		want dmy
		ok   bool
	}{
		{ints: [3]int{1, 1, 1991}, want: dmy{day: 1, month: 1, year: 1991}, ok: true},
		{ints: [3]int{2012, 1, 25}, want: dmy{day: 25, month: 1, year: 2012}, ok: true},
		{ints: [3]int{25, 1, 85}, want: dmy{day: 25, month: 1, year: 1985}, ok: true},
		{ints: [3]int{25, 1, 12}, want: dmy{day: 25, month: 1, year: 2012}, ok: true},
		{ints: [3]int{1, 32, 1991}},
		{ints: [3]int{1, 0, 1991}},
		{ints: [3]int{500, 1, 1}},
		{ints: [3]int{1, 1, 2051}},
		{ints: [3]int{40, 1, 40}},
		{ints: [3]int{13, 13, 13}},
		{ints: [3]int{0, 1, 0}},
		{ints: [3]int{1991, 13, 13}},
	}
	for _, v := range testcases {
		got, ok := m.mapIntsToDMY(v.ints)
		require.Equal(t, v.ok, ok, "mapping of %v", v.ints)
		if ok {
			require.Equal(t, v.want, got, "mapping of %v", v.ints)
		}
	}
	require.Equal(t, 2050, twoToFourDigitYear(50))
	require.Equal(t, 1951, twoToFourDigitYear(51))
	require.Equal(t, 1999, twoToFourDigitYear(1999))
}
