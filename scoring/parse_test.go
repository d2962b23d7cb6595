package scoring

import (
	"testing"

	"github.com/projectdiscovery/guessx/match"
	"github.com/stretchr/testify/require"
)

// requireCoverage checks the parse covers every rune exactly once, in order
func requireCoverage(t *testing.T, password string, parse *Parse) {
	t.Helper()
	next := 0
	for _, m := range parse.Sequence {
		require.Equal(t, next, m.I, "gap or overlap before %v", m)
		require.GreaterOrEqual(t, m.J, m.I)
		next = m.J + 1
	}
	require.Equal(t, len([]rune(password)), next)
}

func TestMostGuessableEmpty(t *testing.T) {
	parse := newTestEstimator().MostGuessable(nil, nil)
	require.Equal(t, 1.0, parse.Guesses)
	require.Equal(t, 0.0, parse.GuessesLog10)
	require.Empty(t, parse.Sequence)
}

func TestMostGuessableBruteforce(t *testing.T) {
	parse := newTestEstimator().MostGuessable([]rune("xkq"), nil)
	require.Equal(t, 1000.0, parse.Guesses)
	require.Len(t, parse.Sequence, 1)
	require.Equal(t, match.Bruteforce, parse.Sequence[0].Kind)
	require.Equal(t, "xkq", parse.Sequence[0].Token)
}

func TestMostGuessableSingleWord(t *testing.T) {
	password := "password"
	matches := []*match.Match{
		dictMatch(0, 7, "password", 1),
		dictMatch(0, 3, "pass", 20),
		dictMatch(4, 7, "word", 30),
	}
	parse := newTestEstimator().MostGuessable([]rune(password), matches)
	require.Equal(t, 1.0, parse.Guesses)
	require.Len(t, parse.Sequence, 1)
	require.Equal(t, "password", parse.Sequence[0].Token)
}

func TestMostGuessableProduct(t *testing.T) {
	password := "passwordxyz"
	matches := []*match.Match{
		dictMatch(0, 3, "pass", 60),
		dictMatch(4, 7, "word", 70),
	}
	parse := newTestEstimator().MostGuessable([]rune(password), matches)
	requireCoverage(t, password, parse)
	require.Len(t, parse.Sequence, 3)
	require.Equal(t, 60.0*70*1000, parse.Guesses)
	require.Equal(t, match.Bruteforce, parse.Sequence[2].Kind)
	require.Equal(t, "xyz", parse.Sequence[2].Token)
}

func TestMostGuessableBridgesGaps(t *testing.T) {
	password := "abXYcd"
	matches := []*match.Match{
		dictMatch(0, 1, "ab", 60),
		dictMatch(4, 5, "cd", 60),
		// overlapping candidate that must not break coverage
		dictMatch(1, 4, "bXYc", 1000000),
	}
	parse := newTestEstimator().MostGuessable([]rune(password), matches)
	requireCoverage(t, password, parse)
	require.Equal(t, 60.0*100*60, parse.Guesses)
}

func TestMostGuessableTieBreak(t *testing.T) {
	e := newTestEstimator()

	// equal guesses: a detector match beats bruteforce
	parse := e.MostGuessable([]rune("ab"), []*match.Match{dictMatch(0, 1, "ab", 100)})
	require.Len(t, parse.Sequence, 1)
	require.Equal(t, match.Dictionary, parse.Sequence[0].Kind)

	// equal guesses and span: the earlier registered detector wins
	first := dictMatch(0, 2, "abc", 12)
	first.Order = 0
	second := &match.Match{Kind: match.Sequence, I: 0, J: 2, Token: "abc", Order: 5, Sequence: &match.SequenceData{Name: "lower", Space: 26, Ascending: true}}
	parse = e.MostGuessable([]rune("abc"), []*match.Match{second, first})
	require.Len(t, parse.Sequence, 1)
	require.Equal(t, match.Dictionary, parse.Sequence[0].Kind)

	// equal products: the shorter match ends the parse
	whole := dictMatch(0, 3, "abcd", 2500)
	head := dictMatch(0, 1, "ab", 50)
	tail := dictMatch(2, 3, "cd", 50)
	parse = e.MostGuessable([]rune("abcd"), []*match.Match{whole, head, tail})
	require.Equal(t, 2500.0, parse.Guesses)
	require.Len(t, parse.Sequence, 2)
}

func TestMostGuessableIgnoresInvalidMatches(t *testing.T) {
	parse := newTestEstimator().MostGuessable([]rune("abc"), []*match.Match{
		nil,
		dictMatch(2, 5, "c", 1),
		dictMatch(2, 1, "", 1),
	})
	requireCoverage(t, "abc", parse)
	require.Equal(t, 1000.0, parse.Guesses)
}
