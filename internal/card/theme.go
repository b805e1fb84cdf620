package card

// ThemeID names one of the fixed colour palettes.
type ThemeID string

const (
	ThemeMidnight ThemeID = "midnight"
	ThemeSunset   ThemeID = "sunset"
	ThemeOcean    ThemeID = "ocean"
	ThemeForest   ThemeID = "forest"
	ThemeMinimal  ThemeID = "minimal"
	ThemeRose     ThemeID = "rose"

	// DefaultTheme is used whenever the requested theme is missing or unknown.
	DefaultTheme = ThemeMidnight
)

// Gradient holds the start, middle and end stops of the diagonal background.
type Gradient [3]string

// Theme is a resolved palette applied uniformly across a card.
type Theme struct {
	ID              ThemeID
	Label           string
	Background      Gradient
	BackgroundSolid string
	Text            string
	Accent          string
	AccentLight     string
	Muted           string
}

var themeOrder = []ThemeID{
	ThemeMidnight,
	ThemeSunset,
	ThemeOcean,
	ThemeForest,
	ThemeMinimal,
	ThemeRose,
}

var themeCatalogue = map[ThemeID]Theme{
	ThemeMidnight: {
		ID:              ThemeMidnight,
		Label:           "Midnight",
		Background:      Gradient{"#0f0f23", "#1a1a3e", "#0d0d1f"},
		BackgroundSolid: "#0f0f23",
		Text:            "#ffffff",
		Accent:          "#6366f1",
		AccentLight:     "#818cf8",
		Muted:           "#94a3b8",
	},
	ThemeSunset: {
		ID:              ThemeSunset,
		Label:           "Sunset",
		Background:      Gradient{"#1f1d2e", "#2d1b3d", "#1a1625"},
		BackgroundSolid: "#1f1d2e",
		Text:            "#ffffff",
		Accent:          "#f97316",
		AccentLight:     "#fb923c",
		Muted:           "#a1a1aa",
	},
	ThemeOcean: {
		ID:              ThemeOcean,
		Label:           "Ocean",
		Background:      Gradient{"#0c1929", "#0f2847", "#071520"},
		BackgroundSolid: "#0c1929",
		Text:            "#ffffff",
		Accent:          "#06b6d4",
		AccentLight:     "#22d3ee",
		Muted:           "#94a3b8",
	},
	ThemeForest: {
		ID:              ThemeForest,
		Label:           "Forest",
		Background:      Gradient{"#0f1a0f", "#1a2e1a", "#0d150d"},
		BackgroundSolid: "#0f1a0f",
		Text:            "#ffffff",
		Accent:          "#22c55e",
		AccentLight:     "#4ade80",
		Muted:           "#a1a1aa",
	},
	ThemeMinimal: {
		ID:              ThemeMinimal,
		Label:           "Minimal",
		Background:      Gradient{"#fafafa", "#f4f4f5", "#e4e4e7"},
		BackgroundSolid: "#fafafa",
		Text:            "#18181b",
		Accent:          "#18181b",
		AccentLight:     "#3f3f46",
		Muted:           "#71717a",
	},
	ThemeRose: {
		ID:              ThemeRose,
		Label:           "Rose",
		Background:      Gradient{"#1c1017", "#2d1a24", "#170d12"},
		BackgroundSolid: "#1c1017",
		Text:            "#ffffff",
		Accent:          "#f43f5e",
		AccentLight:     "#fb7185",
		Muted:           "#a1a1aa",
	},
}

// ParseTheme maps a raw value onto the theme enumeration. Matching is exact
// and case-sensitive; anything else yields DefaultTheme.
func ParseTheme(value string) ThemeID {
	id := ThemeID(value)
	if _, ok := themeCatalogue[id]; ok {
		return id
	}
	return DefaultTheme
}

// ThemeByID returns the palette registered for id, falling back to the default palette.
func ThemeByID(id ThemeID) Theme {
	if theme, ok := themeCatalogue[id]; ok {
		return theme
	}
	return themeCatalogue[DefaultTheme]
}

// Themes lists every palette in presentation order.
func Themes() []Theme {
	themes := make([]Theme, 0, len(themeOrder))
	for _, id := range themeOrder {
		themes = append(themes, themeCatalogue[id])
	}
	return themes
}
