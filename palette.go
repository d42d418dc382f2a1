package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette lists the level colors from empty to most contributions, plus the
// background and label colors used when the grid is rasterized.
type Palette struct {
	Name       string
	Levels     [NumLevels]string
	Background string
	Text       string
}

var (
	lightPalette = Palette{
		Name:       "light",
		Levels:     [NumLevels]string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
		Background: "#ffffff",
		Text:       "#57606a",
	}
	darkPalette = Palette{
		Name:       "dark",
		Levels:     [NumLevels]string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
		Background: "#0d1117",
		Text:       "#8b949e",
	}
)

func paletteByName(name string) (Palette, bool) {
	switch strings.ToLower(name) {
	case "light", "":
		return lightPalette, true
	case "dark":
		return darkPalette, true
	}
	return lightPalette, false
}

// RGBA returns the color of level l. Invalid levels map to the empty color.
func (p Palette) RGBA(l Level) color.RGBA {
	if !l.Valid() {
		l = 0
	}
	return mustParseHex(p.Levels[l])
}

func (p Palette) TextRGBA() color.RGBA {
	return mustParseHex(p.Text)
}

func (p Palette) Style(l Level) lipgloss.Style {
	if !l.Valid() {
		l = 0
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Levels[l]))
}

func parseHex(s string) (color.RGBA, error) {
	var c color.RGBA
	c.A = 0xff
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("bad color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("bad color %q: %w", s, err)
	}
	return c, nil
}

func mustParseHex(s string) color.RGBA {
	c, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
