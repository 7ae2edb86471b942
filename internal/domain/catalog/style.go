package catalog

// Symbol names the emblem drawn for a house.
type Symbol string

// Emblem symbols.
const (
	SymbolTriangle Symbol = "triangle"
	SymbolWindow   Symbol = "window"
	SymbolSun      Symbol = "sun"
)

// HouseStyle carries the presentation palette of a house.
type HouseStyle struct {
	Color      string   `json:"color"`
	ColorLight string   `json:"color_light"`
	ColorDark  string   `json:"color_dark"`
	Gradient   []string `json:"gradient"`
	GlowColor  string   `json:"glow_color"`
	BgAccent   string   `json:"bg_accent"`
	Symbol     Symbol   `json:"symbol"`
}

// HouseStyles maps each house to its palette.
var HouseStyles = map[HouseKey]HouseStyle{ //nolint:gochecknoglobals // constant table
	Prisma: {
		Color:      "#2B7A9E",
		ColorLight: "#3A9BC4",
		ColorDark:  "#1A5276",
		Gradient:   []string{"#1A5276", "#2B7A9E", "#3AAFCF"},
		GlowColor:  "rgba(43, 122, 158, 0.4)",
		BgAccent:   "rgba(43, 122, 158, 0.08)",
		Symbol:     SymbolTriangle,
	},
	Macondo: {
		Color:      "#6C4F9E",
		ColorLight: "#8B6BBF",
		ColorDark:  "#4A3072",
		Gradient:   []string{"#4A3072", "#6C4F9E", "#9B7FD0"},
		GlowColor:  "rgba(108, 79, 158, 0.4)",
		BgAccent:   "rgba(108, 79, 158, 0.08)",
		Symbol:     SymbolWindow,
	},
	Marmoris: {
		Color:      "#D4A574",
		ColorLight: "#E4BF9A",
		ColorDark:  "#C4956A",
		Gradient:   []string{"#C4956A", "#D4A574", "#E8CBA8"},
		GlowColor:  "rgba(212, 165, 116, 0.4)",
		BgAccent:   "rgba(212, 165, 116, 0.08)",
		Symbol:     SymbolSun,
	},
}

// StyleOf returns the palette for key, falling back to a neutral grey.
func StyleOf(key HouseKey) HouseStyle {
	if s, ok := HouseStyles[key]; ok {
		return s
	}
	return HouseStyle{
		Color:      "#888888",
		ColorLight: "#AAAAAA",
		ColorDark:  "#555555",
		Gradient:   []string{"#555555", "#888888", "#AAAAAA"},
		GlowColor:  "rgba(136, 136, 136, 0.4)",
		BgAccent:   "rgba(136, 136, 136, 0.08)",
		Symbol:     SymbolTriangle,
	}
}
