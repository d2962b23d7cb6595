package matching

import (
	"testing"

	"github.com/projectdiscovery/guessx/dictionary"
	"github.com/projectdiscovery/guessx/keyboard"
	"github.com/projectdiscovery/guessx/match"
	"github.com/projectdiscovery/guessx/scoring"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(words ...string) *Matcher {
	keyboards := keyboard.NewSet(keyboard.Standard()...)
	params := scoring.DefaultParams()
	params.ReferenceYear = 2020
	return New(&Options{
		Dictionaries: dictionary.NewStore(dictionary.FromList("passwords", words)),
		Keyboards:    keyboards,
		Estimator:    scoring.NewEstimator(params, keyboards),
		MaxL33tSubs:  64,
	})
}

// byKind keeps the matches of one kind
func byKind(matches []*match.Match, kind match.Kind) []*match.Match {
	var out []*match.Match
	for _, m := range matches {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func spans(matches []*match.Match) [][2]int {
	out := make([][2]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, [2]int{m.I, m.J})
	}
	return out
}

func TestDetectors(t *testing.T) {
	require.Equal(t, []string{"dictionary", "reverse-dictionary", "l33t", "spatial", "repeat", "sequence", "regex", "date"}, Detectors())
}

func TestOmnimatchRepeat(t *testing.T) {
	m := newTestMatcher("abc")
	repeats := byKind(m.Omnimatch([]rune("abcabc")), match.Repeat)
	require.Len(t, repeats, 1)
	r := repeats[0].Repeat
	require.Equal(t, "abc", r.BaseToken)
	require.Equal(t, 2, r.RepeatCount)
	// the base is parsed with the same dictionaries
	require.Len(t, r.BaseMatches, 1)
	require.Equal(t, match.Dictionary, r.BaseMatches[0].Kind)
	require.Equal(t, 1.0, r.BaseGuesses)
}

func TestOmnimatchEmpty(t *testing.T) {
	m := newTestMatcher("password")
	require.Empty(t, m.Omnimatch(nil))
	parse := m.MostGuessable(nil)
	require.Equal(t, 1.0, parse.Guesses)
	require.Empty(t, parse.Sequence)
}

func TestOmnimatchSorted(t *testing.T) {
	m := newTestMatcher("pass", "password", "word")
	matches := m.Omnimatch([]rune("password1234"))
	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		require.True(t, prev.I < cur.I || (prev.I == cur.I && (prev.J < cur.J || (prev.J == cur.J && prev.Order <= cur.Order))), "unsorted %v before %v", prev, cur)
	}
}

func TestMostGuessablePassword(t *testing.T) {
	parse := newTestMatcher("password").MostGuessable([]rune("password"))
	require.Len(t, parse.Sequence, 1)
	require.Equal(t, match.Dictionary, parse.Sequence[0].Kind)
	require.Equal(t, 1.0, parse.Guesses)
	require.Equal(t, 0, scoring.DefaultThresholds().Score(parse.Guesses))
}

func TestMostGuessableQwerty123(t *testing.T) {
	parse := newTestMatcher("password").MostGuessable([]rune("qwerty123"))
	require.Len(t, parse.Sequence, 2)
	require.Equal(t, match.Spatial, parse.Sequence[0].Kind)
	require.Equal(t, "qwerty", parse.Sequence[0].Token)
	require.Equal(t, match.Sequence, parse.Sequence[1].Kind)
	require.Equal(t, "123", parse.Sequence[1].Token)
}

func TestParallelMatchesSequential(t *testing.T) {
	sequential := newTestMatcher("password", "dragon", "monkey")
	parallel := newTestMatcher("password", "dragon", "monkey")
	parallel.options.ParallelThreshold = 1

	for _, password := range []string{"P@ssw0rd1987", "qwertyuiop", "abcabcabc", "nogard!monkey-04/12/1999"} {
		want := sequential.Omnimatch([]rune(password))
		got := parallel.Omnimatch([]rune(password))
		require.Equal(t, len(want), len(got), "match count of %v", password)
		for i := range want {
			require.Equal(t, want[i].Kind, got[i].Kind)
			require.Equal(t, want[i].Token, got[i].Token)
			require.Equal(t, want[i].I, got[i].I)
			require.Equal(t, want[i].J, got[i].J)
		}
	}
}

func TestExtraDictionaries(t *testing.T) {
	m := newTestMatcher("password")
	extra := dictionary.FromList("user_inputs", []string{"zephyrinus"})
	matches := byKind(m.Omnimatch([]rune("zephyrinus42"), extra), match.Dictionary)
	require.Len(t, matches, 1)
	require.Equal(t, "user_inputs", matches[0].Dictionary.DictionaryName)

	// extras are per call only
	require.Empty(t, byKind(m.Omnimatch([]rune("zephyrinus42")), match.Dictionary))
}
