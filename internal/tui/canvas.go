package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// canvas is a fixed grid of terminal cells. Wide runes occupy two cells; the
// second is a continuation that renders nothing.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

type cell struct {
	r     rune
	style int
	cont  bool
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style int) {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return
	}
	c.clearAt(x, y)
	w := runewidth.RuneWidth(r)
	if w == 2 {
		if x+1 >= c.width {
			return
		}
		c.clearAt(x+1, y)
		c.cells[y][x+1] = cell{style: style, cont: true}
	}
	c.cells[y][x] = cell{r: r, style: style}
}

// clearAt blanks the other half of a wide rune that x,y would split.
func (c *canvas) clearAt(x, y int) {
	cur := c.cells[y][x]
	if cur.cont && x > 0 {
		c.cells[y][x-1] = cell{r: ' ', style: c.cells[y][x-1].style}
	}
	if !cur.cont && runewidth.RuneWidth(cur.r) == 2 && x+1 < c.width {
		c.cells[y][x+1] = cell{r: ' ', style: cur.style}
	}
}

// text writes s starting at column x, clipping at the edges.
func (c *canvas) text(x, y int, s string, style int) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(x, y, r, style)
		x += w
	}
}

// centered writes s so that its middle lands on column x.
func (c *canvas) centered(x, y int, s string, style int) {
	c.text(x-runewidth.StringWidth(s)/2, y, s, style)
}

// render joins runs of equally styled cells so each run is styled once.
func (c *canvas) render(palette []lipgloss.Style) string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		runStyle := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(palette[runStyle].Render(run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.style != runStyle {
				flush()
				runStyle = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// plain returns the grid without styling.
func (c *canvas) plain() string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if !cl.cont {
				b.WriteRune(cl.r)
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
