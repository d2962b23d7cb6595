package matching

import (
	"regexp"
	"unicode/utf8"

	"github.com/projectdiscovery/guessx/match"
)

var regexen = []struct {
	name string
	re   *regexp.Regexp
}{
	{"recent_year", regexp.MustCompile(`19\d\d|20\d\d`)},
}

// regexMatch reports every non-overlapping hit of the known patterns
func (m *Matcher) regexMatch(in *input) []*match.Match {
	var results []*match.Match
	s := string(in.password)
	for _, r := range regexen {
		for _, loc := range r.re.FindAllStringIndex(s, -1) {
			i := utf8.RuneCountInString(s[:loc[0]])
			token := s[loc[0]:loc[1]]
			results = append(results, &match.Match{
				Kind:  match.Regex,
				I:     i,
				J:     i + utf8.RuneCountInString(token) - 1,
				Token: token,
				Regex: &match.RegexData{Name: r.name},
			})
		}
	}
	return results
}
