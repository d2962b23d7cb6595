// Package keyboard builds keyboard adjacency graphs used by the spatial matcher.
//
// Each character maps to a fixed-length list of slots. The slot position is
// the direction (for slanted keyboards 0 is left, 1 top-left, 2 top-right,
// 3 right, 4 bottom-right, 5 bottom-left) and the slot value is the key token
// found there, unshifted character first, or "" when there is no key.
package keyboard

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
)

var (
	// ErrLoad is returned for malformed layout definitions
	ErrLoad = errors.New("keyboard: load error")
	// ErrUnknownLayout is returned by lookups against a name the set does not hold
	ErrUnknownLayout = errors.New("keyboard: unknown layout")
)

// Layout is an immutable adjacency graph
type Layout struct {
	Name      string
	adjacency map[rune][]string
	shifted   map[rune]struct{}
	degree    float64
}

type coord struct{ x, y int }

func slantedNeighbors(x, y int) []coord {
	return []coord{{x - 1, y}, {x, y - 1}, {x + 1, y - 1}, {x + 1, y}, {x, y + 1}, {x - 1, y + 1}}
}

func alignedNeighbors(x, y int) []coord {
	return []coord{{x - 1, y}, {x - 1, y - 1}, {x, y - 1}, {x + 1, y - 1}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x - 1, y + 1}}
}

// Build creates a layout from a drawing of the keys. Tokens are separated by
// single spaces and all have the same length; on slanted keyboards each row
// is indented one more column than the one above it.
func Build(name, layout string, slanted bool) (*Layout, error) {
	positions := map[coord]string{}
	tokenSize := 0
	row := 0
	for _, line := range strings.Split(layout, "\n") {
		runes := []rune(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		slant := 0
		if slanted {
			slant = row
		}
		for start := 0; start < len(runes); {
			if runes[start] == ' ' || runes[start] == '\t' {
				start++
				continue
			}
			end := start
			for end < len(runes) && runes[end] != ' ' && runes[end] != '\t' {
				end++
			}
			token := string(runes[start:end])
			if tokenSize == 0 {
				tokenSize = end - start
			} else if end-start != tokenSize {
				return nil, fmt.Errorf("%w: %v: token %q length mismatch", ErrLoad, name, token)
			}
			x, remainder := divmod(start-slant, tokenSize+1)
			if remainder != 0 || start-slant < 0 {
				return nil, fmt.Errorf("%w: %v: unexpected x offset for %q", ErrLoad, name, token)
			}
			positions[coord{x, row}] = token
			start = end
		}
		row++
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: %v: empty layout", ErrLoad, name)
	}

	neighbors := alignedNeighbors
	if slanted {
		neighbors = slantedNeighbors
	}
	adjacency := map[rune][]string{}
	for pos, token := range positions {
		for _, char := range token {
			slots := []string{}
			for _, c := range neighbors(pos.x, pos.y) {
				slots = append(slots, positions[c])
			}
			adjacency[char] = slots
		}
	}
	return newLayout(name, adjacency), nil
}

// FromAdjacency creates a layout from an explicit adjacency map.
// Keys must be single characters and every slot list must have the same length.
func FromAdjacency(name string, adjacency map[string][]string) (*Layout, error) {
	if len(adjacency) == 0 {
		return nil, fmt.Errorf("%w: %v: empty adjacency", ErrLoad, name)
	}
	graph := make(map[rune][]string, len(adjacency))
	directions := -1
	for key, slots := range adjacency {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("%w: %v: key %q is not a single character", ErrLoad, name, key)
		}
		if directions == -1 {
			directions = len(slots)
		} else if len(slots) != directions {
			return nil, fmt.Errorf("%w: %v: key %q has %d directions, want %d", ErrLoad, name, key, len(slots), directions)
		}
		r, _ := utf8.DecodeRuneInString(key)
		graph[r] = append([]string(nil), slots...)
	}
	return newLayout(name, graph), nil
}

type definition struct {
	Layout    string              `yaml:"layout"`
	Slanted   bool                `yaml:"slanted"`
	Adjacency map[string][]string `yaml:"adjacency"`
}

// Load reads a yaml layout definition: either a `layout` drawing with
// `slanted`, or an explicit `adjacency` map
func Load(name string, r io.Reader) (*Layout, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %v: nil source", ErrLoad, name)
	}
	bin, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrLoad, name, err)
	}
	var def definition
	if err := yaml.Unmarshal(bin, &def); err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrLoad, name, err)
	}
	switch {
	case def.Layout != "" && len(def.Adjacency) > 0:
		return nil, fmt.Errorf("%w: %v: both layout and adjacency given", ErrLoad, name)
	case def.Layout != "":
		return Build(name, def.Layout, def.Slanted)
	case len(def.Adjacency) > 0:
		return FromAdjacency(name, def.Adjacency)
	}
	return nil, fmt.Errorf("%w: %v: neither layout nor adjacency given", ErrLoad, name)
}

func newLayout(name string, adjacency map[rune][]string) *Layout {
	l := &Layout{
		Name:      name,
		adjacency: adjacency,
		shifted:   map[rune]struct{}{},
	}
	total := 0
	for _, slots := range adjacency {
		for _, token := range slots {
			if token == "" {
				continue
			}
			total++
			if runes := []rune(token); len(runes) > 1 {
				l.shifted[runes[1]] = struct{}{}
			}
		}
	}
	l.degree = float64(total) / float64(len(adjacency))
	return l
}

// Slots returns the adjacency slots of char, nil when char is not on the layout
func (l *Layout) Slots(char rune) []string {
	return l.adjacency[char]
}

// Adjacent returns the sorted set of characters physically next to char,
// shifted variants included
func (l *Layout) Adjacent(char rune) []rune {
	seen := map[rune]struct{}{}
	for _, token := range l.adjacency[char] {
		for _, r := range token {
			seen[r] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsShifted reports whether char is typed with shift on this layout
func (l *Layout) IsShifted(char rune) bool {
	_, ok := l.shifted[char]
	return ok
}

// StartingPositions is the number of characters on the layout
func (l *Layout) StartingPositions() int {
	return len(l.adjacency)
}

// AverageDegree is the mean number of neighbors per character
func (l *Layout) AverageDegree() float64 {
	return l.degree
}

func divmod(a, b int) (int, int) {
	return a / b, a % b
}
