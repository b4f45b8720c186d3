package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("invalid_color")

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R int
	G int
	B int
}

// ParseHexColor parses a #RRGGBB value.
func ParseHexColor(value string) (Color, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) != 7 || trimmed[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	parsed, err := strconv.ParseUint(trimmed[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return Color{
		R: int(parsed >> 16 & 0xFF),
		G: int(parsed >> 8 & 0xFF),
		B: int(parsed & 0xFF),
	}, nil
}

func mustColor(value string) Color {
	color, err := ParseHexColor(value)
	if err != nil {
		panic(err)
	}
	return color
}

// Theme is a named visual preset controlling document colors and fonts.
type Theme struct {
	ID         string
	Name       string
	Primary    Color
	Secondary  Color
	HeaderBG   Color
	HeaderText Color
	Font       string
}

// Core PDF font families understood by the writer.
const (
	FontHelvetica = "helvetica"
	FontTimes     = "times"
)

// DefaultThemeID is the designated fallback for unknown theme ids.
const DefaultThemeID = "professional"

var themes = []Theme{
	{
		ID:         "professional",
		Name:       "Professional",
		Primary:    mustColor("#06b6d4"),
		Secondary:  mustColor("#0891b2"),
		HeaderBG:   mustColor("#06b6d4"),
		HeaderText: mustColor("#ffffff"),
		Font:       FontHelvetica,
	},
	{
		ID:         "modern",
		Name:       "Modern",
		Primary:    mustColor("#8b5cf6"),
		Secondary:  mustColor("#7c3aed"),
		HeaderBG:   mustColor("#8b5cf6"),
		HeaderText: mustColor("#ffffff"),
		Font:       FontHelvetica,
	},
	{
		ID:         "classic",
		Name:       "Classic",
		Primary:    mustColor("#1f2937"),
		Secondary:  mustColor("#374151"),
		HeaderBG:   mustColor("#1f2937"),
		HeaderText: mustColor("#ffffff"),
		Font:       FontTimes,
	},
	{
		ID:         "minimal",
		Name:       "Minimal",
		Primary:    mustColor("#000000"),
		Secondary:  mustColor("#6b7280"),
		HeaderBG:   mustColor("#f3f4f6"),
		HeaderText: mustColor("#1f2937"),
		Font:       FontHelvetica,
	},
}

// Themes lists the available visual presets in a stable order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ThemeByID resolves a theme id, falling back to the default theme for
// unknown or empty ids rather than failing.
func ThemeByID(id string) Theme {
	normalized := strings.ToLower(strings.TrimSpace(id))
	for _, theme := range themes {
		if theme.ID == normalized {
			return theme
		}
	}
	return ThemeByID(DefaultThemeID)
}
