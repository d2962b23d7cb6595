package dictionary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	d, err := Load("passwords", strings.NewReader("Password\n123456\n\n  qwerty \npassword\n"))
	require.Nil(t, err)
	require.Equal(t, 3, d.Len())
	require.Equal(t, 8, d.MaxLen())

	testcases := []struct {
		word string
		rank int
	}{
		{word: "password", rank: 1},
		{word: "123456", rank: 2},
		{word: "qwerty", rank: 3},
	}
	for _, v := range testcases {
		rank, ok := d.Rank(v.word)
		require.True(t, ok, "missing %v", v.word)
		require.Equal(t, v.rank, rank, "rank mismatch for %v", v.word)
	}
	_, ok := d.Rank("Password")
	require.False(t, ok, "ranks are stored lower-cased")
}

func TestLoadGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("dragon\nmonkey\n"))
	require.Nil(t, err)
	require.Nil(t, gz.Close())

	d, err := Load("compressed", &buf)
	require.Nil(t, err)
	rank, ok := d.Rank("monkey")
	require.True(t, ok)
	require.Equal(t, 2, rank)
}

func TestLoadErrors(t *testing.T) {
	testcases := []struct {
		name string
		data []byte
	}{
		{name: "binary", data: []byte{0x00, 0xff, 0xfe, 0x01, 0x02}},
		{name: "control", data: []byte("abc\x00def\n")},
		{name: "empty", data: []byte("\n\n   \n")},
		{name: "broken-gzip", data: []byte{0x1f, 0x8b, 0x00, 0x01}},
	}
	for _, v := range testcases {
		_, err := Load(v.name, bytes.NewReader(v.data))
		require.ErrorIs(t, err, ErrLoad, "expected load error for %v", v.name)
	}
	_, err := Load("nil", nil)
	require.ErrorIs(t, err, ErrLoad)
}

func TestPrefixes(t *testing.T) {
	d := FromList("words", []string{"pass", "password", "passwords", "word"})
	type hit struct{ length, rank int }
	var hits []hit
	d.Prefixes([]rune("passwordx"), func(length, rank int) {
		hits = append(hits, hit{length, rank})
	})
	require.Equal(t, []hit{{4, 1}, {8, 2}}, hits)
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "café", Normalize("  CAFÉ "))
	require.Equal(t, "abc", Normalize("AbC"))
}

func TestStore(t *testing.T) {
	s := NewStore(
		FromList("passwords", []string{"password", "dragon"}).WithKind(KindPasswords),
		FromList("names", []string{"alice"}),
	)
	require.Equal(t, []string{"passwords", "names"}, s.Names())

	hit, err := s.Lookup("passwords", "PassWord")
	require.Nil(t, err)
	require.NotNil(t, hit)
	require.Equal(t, 1, hit.Rank)

	hit, err = s.Lookup("names", "bob")
	require.Nil(t, err)
	require.Nil(t, hit, "absent words return no hit")

	_, err = s.Lookup("surnames", "smith")
	require.ErrorIs(t, err, ErrUnknownDictionary)

	d, err := s.Get("passwords")
	require.Nil(t, err)
	require.Equal(t, KindPasswords, d.Kind)
}

func TestLookupL33t(t *testing.T) {
	s := NewStore(FromList("passwords", []string{"password", "leet"}))

	hit, err := s.LookupL33t("passwords", "p@55w0rd", 64)
	require.Nil(t, err)
	require.NotNil(t, hit)
	require.Equal(t, 1, hit.Rank)
	require.Equal(t, map[rune]rune{'@': 'a', '5': 's', '0': 'o'}, hit.Sub)

	// '1' may stand for i or l, only l gives a word
	hit, err = s.LookupL33t("passwords", "1337", 64)
	require.Nil(t, err)
	require.NotNil(t, hit)
	require.Equal(t, 2, hit.Rank)

	hit, err = s.LookupL33t("passwords", "dragon", 64)
	require.Nil(t, err)
	require.Nil(t, hit)

	_, err = s.LookupL33t("missing", "p4ss", 64)
	require.ErrorIs(t, err, ErrUnknownDictionary)
}
