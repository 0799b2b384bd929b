package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/catalog"
)

// Star glyphs by magnitude. Brighter stars get more prominent symbols.
const (
	glyphStarBright  = '✦' // mag < 1.5
	glyphStarMedium  = '✧' // mag 1.5-3.0
	glyphStarDim     = '·' // mag 3.0-4.5
	glyphStarVeryDim = '˙' // mag > 4.5
)

// canvas is a cell grid with per-cell foreground colors. One terminal cell
// plays the role of one pixel for the cameras.
type canvas struct {
	width  int
	height int
	cells  [][]rune
	colors [][]lipgloss.Color
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.cells = make([][]rune, height)
	c.colors = make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		c.cells[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			c.cells[y][x] = ' '
		}
	}
	return c
}

// set places a glyph, silently dropping out-of-bounds cells.
func (c *canvas) set(x, y int, r rune, color lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
	c.colors[y][x] = color
}

// text writes a horizontal string starting at (x, y).
func (c *canvas) text(x, y int, s string, color lipgloss.Color) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, color)
	}
}

func (c *canvas) render() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if c.cells[y][x] == ' ' {
				b.WriteRune(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.colors[y][x])
			b.WriteString(style.Render(string(c.cells[y][x])))
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// starGlyph picks the glyph for a magnitude and the color for a B-V index.
func starGlyph(mag, colorIndex float64) (rune, lipgloss.Color) {
	color := lipgloss.Color(catalog.BVToRGB(colorIndex).Hex())
	switch {
	case mag < 1.5:
		return glyphStarBright, color
	case mag < 3.0:
		return glyphStarMedium, color
	case mag < 4.5:
		return glyphStarDim, color
	default:
		return glyphStarVeryDim, color
	}
}
