package keyboard

import "fmt"

// Set holds layouts by name, in registration order
type Set struct {
	layouts map[string]*Layout
	names   []string
}

// NewSet creates a set, later layouts replace earlier ones with the same name
func NewSet(layouts ...*Layout) *Set {
	s := &Set{layouts: make(map[string]*Layout, len(layouts))}
	for _, l := range layouts {
		if l == nil {
			continue
		}
		if _, ok := s.layouts[l.Name]; !ok {
			s.names = append(s.names, l.Name)
		}
		s.layouts[l.Name] = l
	}
	return s
}

// Get returns a layout by name
func (s *Set) Get(name string) (*Layout, error) {
	l, ok := s.layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownLayout, name)
	}
	return l, nil
}

// All returns layouts in registration order
func (s *Set) All() []*Layout {
	out := make([]*Layout, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.layouts[name])
	}
	return out
}

// Adjacent returns the neighbors of char on the named layout
func (s *Set) Adjacent(layout string, char rune) ([]rune, error) {
	l, err := s.Get(layout)
	if err != nil {
		return nil, err
	}
	return l.Adjacent(char), nil
}
