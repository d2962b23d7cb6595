package dictionary

import (
	"sort"
	"strings"
)

// L33tTable maps a letter to the characters commonly typed in its place
var L33tTable = map[rune][]rune{
	'a': {'4', '@'},
	'b': {'8'},
	'c': {'(', '{', '[', '<'},
	'e': {'3'},
	'g': {'6', '9'},
	'i': {'1', '!', '|'},
	'l': {'1', '|', '7'},
	'o': {'0'},
	's': {'$', '5'},
	't': {'+', '7'},
	'x': {'%'},
	'z': {'2'},
}

// relevantSubs inverts the part of L33tTable present in password:
// substitute -> candidate letters
func relevantSubs(password []rune) map[rune][]rune {
	present := make(map[rune]struct{}, len(password))
	for _, r := range password {
		present[r] = struct{}{}
	}
	subs := map[rune][]rune{}
	for letter, chars := range L33tTable {
		for _, c := range chars {
			if _, ok := present[c]; ok {
				subs[c] = append(subs[c], letter)
			}
		}
	}
	for _, letters := range subs {
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	}
	return subs
}

// indexMap gives the substitutes a fixed order so enumeration is deterministic
type indexMap struct {
	keys   []rune
	values map[rune][]rune
}

func newIndexMap(values map[rune][]rune) *indexMap {
	keys := make([]rune, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return &indexMap{keys: keys, values: values}
}

func (o *indexMap) Cap() int {
	return len(o.keys)
}

func (o *indexMap) KeyAtNth(n int) rune {
	return o.keys[n]
}

func (o *indexMap) GetNth(n int) []rune {
	return o.values[o.keys[n]]
}

// EnumerateSubs calls callback with every mapping substitute -> letter for
// the substitutes present in password, at most limit times. Every present
// substitute is mapped in each call. callback returns false to stop.
func EnumerateSubs(password []rune, limit int, callback func(sub map[rune]rune) bool) {
	subs := newIndexMap(relevantSubs(password))
	if subs.Cap() == 0 || limit <= 0 {
		return
	}
	count := 0
	clusterBomb(subs, func(sub map[rune]rune) bool {
		count++
		if !callback(sub) {
			return false
		}
		return count < limit
	}, nil)
}

// clusterBomb walks the cartesian product of all substitute choices.
// vector holds the letters chosen for the first len(vector) substitutes;
// once only the last one is missing it is iterated directly.
func clusterBomb(subs *indexMap, callback func(sub map[rune]rune) bool, vector []rune) bool {
	if len(vector) == subs.Cap()-1 {
		index := len(vector)
		for _, letter := range subs.GetNth(index) {
			sub := make(map[rune]rune, subs.Cap())
			for k, v := range vector {
				sub[subs.KeyAtNth(k)] = v
			}
			sub[subs.KeyAtNth(index)] = letter
			if !callback(sub) {
				return false
			}
		}
		return true
	}
	index := len(vector)
	for _, letter := range subs.GetNth(index) {
		next := make([]rune, 0, len(vector)+1)
		next = append(next, vector...)
		next = append(next, letter)
		if !clusterBomb(subs, callback, next) {
			return false
		}
	}
	return true
}

// Translate replaces every substitute in password by its letter and lower-cases the result
func Translate(password []rune, sub map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(password))
	for _, r := range password {
		if letter, ok := sub[r]; ok {
			b.WriteRune(letter)
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
