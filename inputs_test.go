package guessx

import (
	"testing"

	"github.com/projectdiscovery/guessx/dictionary"
	"github.com/stretchr/testify/require"
)

func TestNewInput(t *testing.T) {
	in := NewInput("John.Doe@mail.example.co.uk")
	require.Equal(t, "john.doe@mail.example.co.uk", in.Raw)
	require.Equal(t, "john.doe", in.Local)
	require.Equal(t, "example.co.uk", in.Root)
	require.Equal(t, "example", in.SLD)
	require.Equal(t, []string{"mail"}, in.Subs)
	require.Equal(t, []string{"john", "doe", "mail", "example", "co", "uk"}, in.Words)

	in = NewInput("  Alice Smith ")
	require.Equal(t, "alice smith", in.Raw)
	require.Empty(t, in.Root)
	require.Equal(t, []string{"alice", "smith"}, in.Words)
}

func TestUserInputsDictionary(t *testing.T) {
	require.Nil(t, userInputsDictionary(nil))
	require.Nil(t, userInputsDictionary([]string{"", "  "}))

	d := userInputsDictionary([]string{"Alice", "alice@acme.io"})
	require.NotNil(t, d)
	require.Equal(t, UserInputsDictionary, d.Name)
	require.Equal(t, dictionary.KindUserInputs, d.Kind)
	rank, ok := d.Rank("alice")
	require.True(t, ok)
	require.Equal(t, 1, rank)
	acme, ok := d.Rank("acme")
	require.True(t, ok)
	full, _ := d.Rank("alice@acme.io")
	require.Greater(t, acme, full)
}
