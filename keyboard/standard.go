package keyboard

const (
	QwertyLayout = `
` + "`~" + ` 1! 2@ 3# 4$ 5% 6^ 7& 8* 9( 0) -_ =+
    qQ wW eE rR tT yY uU iI oO pP [{ ]} \|
     aA sS dD fF gG hH jJ kK lL ;: '"
      zZ xX cC vV bB nN mM ,< .> /?
`

	DvorakLayout = `
` + "`~" + ` 1! 2@ 3# 4$ 5% 6^ 7& 8* 9( 0) [{ ]}
    '" ,< .> pP yY fF gG cC rR lL /? =+ \|
     aA oO eE uU iI dD hH tT nN sS -_
      ;: qQ jJ kK xX bB mM wW vV zZ
`

	KeypadLayout = `
  / * -
7 8 9 +
4 5 6
1 2 3
  0 .
`

	MacKeypadLayout = `
  = / *
7 8 9 -
4 5 6 +
1 2 3
  0 .
`
)

// Standard builds the qwerty, dvorak, keypad and mac_keypad layouts
func Standard() []*Layout {
	defs := []struct {
		name    string
		layout  string
		slanted bool
	}{
		{"qwerty", QwertyLayout, true},
		{"dvorak", DvorakLayout, true},
		{"keypad", KeypadLayout, false},
		{"mac_keypad", MacKeypadLayout, false},
	}
	layouts := make([]*Layout, 0, len(defs))
	for _, def := range defs {
		l, err := Build(def.name, def.layout, def.slanted)
		if err != nil {
			// layouts above are constants
			panic(err)
		}
		layouts = append(layouts, l)
	}
	return layouts
}
