// Package render turns the board into terminal text.
//
// Canvas is a fixed grid of character cells that implements game.Surface.
// Frames are built in the grid and written out in one piece by String, so a
// half-drawn frame never reaches the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/termsnake/game"
)

const blank = ' '

type cell struct {
	glyph rune
	color game.Color
}

type Canvas struct {
	width  int
	height int
	cells  []cell
	color  game.Color
	styles map[game.Color]lipgloss.Style
}

// NewCanvas returns a cleared width x height grid.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		styles: DefaultStyles(),
	}
	c.Clear()
	return c
}

// DefaultStyles maps each game colour to a terminal foreground.
// ColorDefault has no entry and is written unstyled.
func DefaultStyles() map[game.Color]lipgloss.Style {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return map[game.Color]lipgloss.Style{
		game.ColorGray:  fg("7"),
		game.ColorGreen: fg("10"),
		game.ColorRed:   fg("9"),
		game.ColorCyan:  fg("14"),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{glyph: blank}
	}
	c.color = game.ColorDefault
}

func (c *Canvas) SetColor(col game.Color) {
	c.color = col
}

// DrawAt writes glyph at (x, y) in the current colour. Cells outside the
// grid are dropped.
func (c *Canvas) DrawAt(x, y int, glyph rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{glyph: glyph, color: c.color}
}

// Cell returns the glyph and colour at (x, y). Out-of-range cells read as
// blank.
func (c *Canvas) Cell(x, y int) (rune, game.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blank, game.ColorDefault
	}
	cl := c.cells[y*c.width+x]
	return cl.glyph, cl.color
}

// String renders the grid with colours, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		// Consecutive cells of one colour share a single styled run.
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].color == row[start].color {
				end++
			}
			sb.WriteString(c.paint(row[start].color, row[start:end]))
			start = end
		}
	}
	return sb.String()
}

// Plain renders the grid without colour codes.
func (c *Canvas) Plain() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y*c.width+x].glyph)
		}
	}
	return sb.String()
}

func (c *Canvas) paint(col game.Color, run []cell) string {
	var sb strings.Builder
	for _, cl := range run {
		sb.WriteRune(cl.glyph)
	}
	style, ok := c.styles[col]
	if !ok {
		return sb.String()
	}
	return style.Render(sb.String())
}
