package matching

import (
	"fmt"
	"strings"

	"github.com/projectdiscovery/guessx/dictionary"
	"github.com/projectdiscovery/guessx/match"
)

// dictionaryMatch looks up every substring of the lower-cased password
func (m *Matcher) dictionaryMatch(in *input) []*match.Match {
	return matchDictionaries(in.password, in.lower, in.dicts)
}

func matchDictionaries(password, lower []rune, dicts []*dictionary.Dictionary) []*match.Match {
	var results []*match.Match
	n := len(password)
	for _, d := range dicts {
		for i := 0; i < n; i++ {
			d.Prefixes(lower[i:], func(length, rank int) {
				j := i + length - 1
				results = append(results, &match.Match{
					Kind:  match.Dictionary,
					I:     i,
					J:     j,
					Token: string(password[i : j+1]),
					Dictionary: &match.DictionaryData{
						MatchedWord:    string(lower[i : j+1]),
						Rank:           rank,
						DictionaryName: d.Name,
					},
				})
			})
		}
	}
	return results
}

// reverseDictionaryMatch matches the reversed password and maps positions back
func (m *Matcher) reverseDictionaryMatch(in *input) []*match.Match {
	n := len(in.password)
	results := matchDictionaries(reverse(in.password), reverse(in.lower), in.dicts)
	for _, v := range results {
		v.Token = string(reverse([]rune(v.Token)))
		v.Dictionary.Reversed = true
		v.I, v.J = n-1-v.J, n-1-v.I
	}
	return results
}

// l33tMatch undoes common substitutions before matching. Only tokens longer
// than one character that really contain a substitution are kept.
func (m *Matcher) l33tMatch(in *input) []*match.Match {
	var results []*match.Match
	// the same token shows up again when a substitute outside of it varies
	seen := map[string]struct{}{}
	dictionary.EnumerateSubs(in.lower, m.options.MaxL33tSubs, func(sub map[rune]rune) bool {
		subbed := []rune(dictionary.Translate(in.lower, sub))
		for _, v := range matchDictionaries(in.password, subbed, in.dicts) {
			token := in.password[v.I : v.J+1]
			if strings.ToLower(string(token)) == v.Dictionary.MatchedWord || len(token) <= 1 {
				continue
			}
			key := fmt.Sprintf("%v:%d:%d:%v", v.Dictionary.DictionaryName, v.I, v.J, v.Dictionary.MatchedWord)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			applied := map[rune]rune{}
			for subbedChar, letter := range sub {
				if containsRune(in.lower[v.I:v.J+1], subbedChar) {
					applied[subbedChar] = letter
				}
			}
			v.Dictionary.L33t = true
			v.Dictionary.Sub = applied
			results = append(results, v)
		}
		return true
	})
	return results
}

func containsRune(runes []rune, r rune) bool {
	for _, v := range runes {
		if v == r {
			return true
		}
	}
	return false
}

func reverse(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[len(runes)-1-i] = r
	}
	return out
}
