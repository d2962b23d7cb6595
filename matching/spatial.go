package matching

import (
	"github.com/projectdiscovery/guessx/keyboard"
	"github.com/projectdiscovery/guessx/match"
)

// spatialMatch finds runs of at least three adjacent keys on every layout
func (m *Matcher) spatialMatch(in *input) []*match.Match {
	var results []*match.Match
	for _, l := range m.layouts {
		results = append(results, spatialMatchLayout(in.password, l)...)
	}
	return results
}

// spatialMatchLayout walks the adjacency graph from each start, counting a
// turn whenever the direction changes and a shift whenever the shifted
// character of a key is typed
func spatialMatchLayout(password []rune, l *keyboard.Layout) []*match.Match {
	var results []*match.Match
	n := len(password)
	i := 0
	for i < n-1 {
		j := i + 1
		lastDirection := -1
		turns := 0
		shifted := 0
		if l.IsShifted(password[i]) {
			shifted = 1
		}
		for {
			found := false
			if j < n {
				cur := password[j]
				for direction, token := range l.Slots(password[j-1]) {
					if token == "" {
						continue
					}
					pos := runeIndex(token, cur)
					if pos == -1 {
						continue
					}
					found = true
					if pos == 1 {
						shifted++
					}
					if lastDirection != direction {
						turns++
						lastDirection = direction
					}
					break
				}
			}
			if found {
				j++
				continue
			}
			if j-i > 2 {
				results = append(results, &match.Match{
					Kind:  match.Spatial,
					I:     i,
					J:     j - 1,
					Token: string(password[i:j]),
					Spatial: &match.SpatialData{
						Graph:        l.Name,
						Turns:        turns,
						ShiftedCount: shifted,
					},
				})
			}
			i = j
			break
		}
	}
	return results
}

func runeIndex(token string, r rune) int {
	for idx, v := range []rune(token) {
		if v == r {
			return idx
		}
	}
	return -1
}
