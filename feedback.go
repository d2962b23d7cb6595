package guessx

import (
	"regexp"
	"strings"

	"github.com/projectdiscovery/guessx/dictionary"
	"github.com/projectdiscovery/guessx/match"
)

// Feedback explains a weak password and how to improve it
type Feedback struct {
	Warning     string   `json:"warning"`
	Suggestions []string `json:"suggestions"`
}

// message templates, placeholders are filled from the match
const (
	msgUseWords          = "Use a few words, avoid common phrases"
	msgNoSymbolsNeeded   = "No need for symbols, digits, or uppercase letters"
	msgAddWord           = "Add another word or two. Uncommon words are better."
	msgStraightRows      = "Straight rows of keys are easy to guess"
	msgShortKeyboard     = "Short keyboard patterns are easy to guess"
	msgLongerKeyboard    = "Use a longer keyboard pattern with more turns"
	msgRepeatChar        = `Repeats like "{{token}}" are easy to guess`
	msgRepeatWord        = `Repeats like "{{token}}" are only slightly harder to guess than "{{base}}"`
	msgAvoidRepeats      = "Avoid repeated words and characters"
	msgSequence          = "Sequences like abc or 6543 are easy to guess"
	msgAvoidSequences    = "Avoid sequences"
	msgRecentYears       = "Recent years are easy to guess"
	msgAvoidRecentYears  = "Avoid recent years"
	msgAvoidYears        = "Avoid years that are associated with you"
	msgDates             = "Dates are often easy to guess"
	msgAvoidDates        = "Avoid dates and years that are associated with you"
	msgTopPassword       = "This is a top-{{limit}} common password"
	msgCommonPassword    = "This is a very common password"
	msgSimilarPassword   = "This is similar to a commonly used password"
	msgWordByItself      = "A word by itself is easy to guess"
	msgNamesByThemselves = "Names and surnames by themselves are easy to guess"
	msgCommonNames       = "Common names and surnames are easy to guess"
	msgCapitalization    = "Capitalization doesn't help very much"
	msgAllUppercase      = "All-uppercase is almost as easy to guess as all-lowercase"
	msgReversed          = "Reversed words aren't much harder to guess"
	msgSubstitutions     = "Predictable substitutions like '{{sub}}' instead of '{{letter}}' don't help very much"
)

var (
	startUpper = regexp.MustCompile(`^\p{Lu}[^\p{Lu}]+$`)
	allUpper   = regexp.MustCompile(`^[^\p{Ll}]+$`)
)

// getFeedback explains the longest match of a weak parse
func getFeedback(score int, sequence []*match.Match, kinds map[string]dictionary.Kind) *Feedback {
	if len(sequence) == 0 {
		return &Feedback{Suggestions: []string{msgUseWords, msgNoSymbolsNeeded}}
	}
	if score > 2 {
		return &Feedback{Suggestions: []string{}}
	}
	longest := sequence[0]
	for _, m := range sequence[1:] {
		if m.Len() > longest.Len() {
			longest = m
		}
	}
	feedback := matchFeedback(longest, len(sequence) == 1, kinds)
	if feedback == nil {
		return &Feedback{Suggestions: []string{msgAddWord}}
	}
	feedback.Suggestions = append([]string{msgAddWord}, feedback.Suggestions...)
	return feedback
}

func matchFeedback(m *match.Match, sole bool, kinds map[string]dictionary.Kind) *Feedback {
	switch m.Kind {
	case match.Dictionary:
		return dictionaryFeedback(m, sole, kinds[m.Dictionary.DictionaryName])
	case match.Spatial:
		warning := msgShortKeyboard
		if m.Spatial.Turns == 1 {
			warning = msgStraightRows
		}
		return &Feedback{Warning: warning, Suggestions: []string{msgLongerKeyboard}}
	case match.Repeat:
		warning := msgRepeatWord
		if len([]rune(m.Repeat.BaseToken)) == 1 {
			warning = msgRepeatChar
		}
		return &Feedback{
			Warning:     Replace(warning, map[string]interface{}{"token": m.Token, "base": m.Repeat.BaseToken}),
			Suggestions: []string{msgAvoidRepeats},
		}
	case match.Sequence:
		return &Feedback{Warning: msgSequence, Suggestions: []string{msgAvoidSequences}}
	case match.Regex:
		if m.Regex.Name == "recent_year" {
			return &Feedback{Warning: msgRecentYears, Suggestions: []string{msgAvoidRecentYears, msgAvoidYears}}
		}
	case match.Date:
		return &Feedback{Warning: msgDates, Suggestions: []string{msgAvoidDates}}
	}
	return nil
}

func dictionaryFeedback(m *match.Match, sole bool, kind dictionary.Kind) *Feedback {
	d := m.Dictionary
	var warning string
	switch kind {
	case dictionary.KindPasswords:
		switch {
		case sole && !d.L33t && !d.Reversed:
			switch {
			case d.Rank <= 10:
				warning = Replace(msgTopPassword, map[string]interface{}{"limit": 10})
			case d.Rank <= 100:
				warning = Replace(msgTopPassword, map[string]interface{}{"limit": 100})
			default:
				warning = msgCommonPassword
			}
		case m.GuessesLog10 <= 4:
			warning = msgSimilarPassword
		}
	case dictionary.KindWords:
		if sole {
			warning = msgWordByItself
		}
	case dictionary.KindNames:
		warning = msgCommonNames
		if sole {
			warning = msgNamesByThemselves
		}
	}

	suggestions := []string{}
	switch {
	case startUpper.MatchString(m.Token):
		suggestions = append(suggestions, msgCapitalization)
	case allUpper.MatchString(m.Token) && strings.ToLower(m.Token) != m.Token:
		suggestions = append(suggestions, msgAllUppercase)
	}
	if d.Reversed && m.Len() >= 4 {
		suggestions = append(suggestions, msgReversed)
	}
	if d.L33t {
		values := map[string]interface{}{"sub": "@", "letter": "a"}
		first := rune(-1)
		for k := range d.Sub {
			if first == -1 || k < first {
				first = k
			}
		}
		if first != -1 {
			values["sub"], values["letter"] = string(first), string(d.Sub[first])
		}
		suggestions = append(suggestions, Replace(msgSubstitutions, values))
	}
	return &Feedback{Warning: warning, Suggestions: suggestions}
}
