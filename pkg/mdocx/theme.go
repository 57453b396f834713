package mdocx

import (
	"sort"
	"strings"
)

// Theme selects the visual preset applied to the whole document
type Theme string

const (
	// ThemeMinimal uses Calibri and a blue palette
	ThemeMinimal Theme = "minimal"
	// ThemeElegant uses Georgia and a purple palette
	ThemeElegant Theme = "elegant"
)

// DefaultTheme is used when no theme is configured
const DefaultTheme = ThemeMinimal

// palette holds the theme dependent colors and fonts
type palette struct {
	font         string
	headingSizes [3]int
	headingColor [3]string
	border       string
	quoteTint    string
	quoteBar     string
	rule         string
	tableHeader  string
}

var palettes = map[Theme]palette{
	ThemeMinimal: {
		font:         "Calibri",
		headingSizes: [3]int{28, 24, 20},
		headingColor: [3]string{"1E40AF", "2563EB", "3B82F6"},
		border:       "93C5FD",
		quoteTint:    "EFF6FF",
		quoteBar:     "3B82F6",
		rule:         "E5E7EB",
		tableHeader:  "F8FAFC",
	},
	ThemeElegant: {
		font:         "Georgia",
		headingSizes: [3]int{32, 26, 22},
		headingColor: [3]string{"7C3AED", "8B5CF6", "A855F7"},
		border:       "D8B4FE",
		quoteTint:    "FAF5FF",
		quoteBar:     "8B5CF6",
		rule:         "E9D5FF",
		tableHeader:  "FAF5FF",
	},
}

// ParseTheme looks up a theme by name, ignoring case and surrounding space.
// An empty name yields DefaultTheme.
func ParseTheme(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultTheme, nil
	}
	theme := Theme(name)
	if _, ok := palettes[theme]; !ok {
		return "", NewOptionError("theme", name, "unknown theme, expected one of "+strings.Join(themeNames(), ", "))
	}
	return theme, nil
}

// Themes returns the built-in themes sorted by name
func Themes() []Theme {
	themes := make([]Theme, 0, len(palettes))
	for theme := range palettes {
		themes = append(themes, theme)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i] < themes[j] })
	return themes
}

func themeNames() []string {
	themes := Themes()
	names := make([]string, len(themes))
	for i, theme := range themes {
		names[i] = string(theme)
	}
	return names
}

// Valid reports whether t is a built-in theme
func (t Theme) Valid() bool {
	_, ok := palettes[t]
	return ok
}

func (t Theme) String() string {
	return string(t)
}

// palette returns the theme's palette, falling back to DefaultTheme
func (t Theme) palette() palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[DefaultTheme]
}
