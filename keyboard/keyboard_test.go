package keyboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func standardSet(t *testing.T) *Set {
	t.Helper()
	return NewSet(Standard()...)
}

func TestStandardLayouts(t *testing.T) {
	s := standardSet(t)
	testcases := []struct {
		name       string
		positions  int
		directions int
	}{
		{name: "qwerty", positions: 94, directions: 6},
		{name: "dvorak", positions: 94, directions: 6},
		{name: "keypad", positions: 15, directions: 8},
		{name: "mac_keypad", positions: 16, directions: 8},
	}
	for _, v := range testcases {
		l, err := s.Get(v.name)
		require.Nil(t, err)
		require.Equal(t, v.positions, l.StartingPositions(), "starting positions of %v", v.name)
		require.Len(t, l.Slots('5'), v.directions, "directions of %v", v.name)
	}

	qwerty, err := s.Get("qwerty")
	require.Nil(t, err)
	require.InDelta(t, 4.595744680851064, qwerty.AverageDegree(), 1e-9)
	keypad, err := s.Get("keypad")
	require.Nil(t, err)
	require.InDelta(t, 5.066666666666666, keypad.AverageDegree(), 1e-9)
}

func TestAdjacent(t *testing.T) {
	s := standardSet(t)
	got, err := s.Adjacent("qwerty", 'g')
	require.Nil(t, err)
	require.Equal(t, []rune("BFHTVYbfhtvy"), got)

	// slots are ordered left, top-left, top-right, right, bottom-right, bottom-left
	qwerty, err := s.Get("qwerty")
	require.Nil(t, err)
	require.Equal(t, []string{"fF", "tT", "yY", "hH", "bB", "vV"}, qwerty.Slots('g'))
	require.Equal(t, []string{"", "1!", "2@", "wW", "aA", ""}, qwerty.Slots('q'))

	_, err = s.Adjacent("azerty", 'a')
	require.ErrorIs(t, err, ErrUnknownLayout)

	require.Nil(t, qwerty.Slots('é'))
}

func TestIsShifted(t *testing.T) {
	qwerty, err := standardSet(t).Get("qwerty")
	require.Nil(t, err)
	for _, r := range "QA!@~{?" {
		require.True(t, qwerty.IsShifted(r), "%c is shifted", r)
	}
	for _, r := range "qa12`[/" {
		require.False(t, qwerty.IsShifted(r), "%c is not shifted", r)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build("broken", "ab cd e", false)
	require.ErrorIs(t, err, ErrLoad)

	_, err = Build("empty", "\n \n", true)
	require.ErrorIs(t, err, ErrLoad)

	_, err = Build("offset", "a b\n c", false)
	require.ErrorIs(t, err, ErrLoad)
}

func TestLoad(t *testing.T) {
	l, err := Load("tiny", strings.NewReader(`
layout: |
  1 2 3
  4 5 6
slanted: false
`))
	require.Nil(t, err)
	require.Equal(t, 6, l.StartingPositions())
	require.Equal(t, []rune("12346"), l.Adjacent('5'))

	l, err = Load("graph", strings.NewReader(`
adjacency:
  a: ["", "b"]
  b: ["a", ""]
`))
	require.Nil(t, err)
	require.Equal(t, []rune("b"), l.Adjacent('a'))
	require.InDelta(t, 1.0, l.AverageDegree(), 1e-9)

	testcases := []string{
		"layout: \"a b\"\nadjacency:\n  a: [\"b\"]\n",
		"slanted: true\n",
		"adjacency:\n  ab: [\"c\"]\n",
		"adjacency:\n  a: [\"b\"]\n  b: [\"a\", \"\"]\n",
		"layout: [unclosed\n",
	}
	for _, v := range testcases {
		_, err := Load("invalid", strings.NewReader(v))
		require.ErrorIs(t, err, ErrLoad, "expected load error for %q", v)
	}
}
