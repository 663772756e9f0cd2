// Package render draws search frames as a terminal raster.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/mazestar/astar"
)

// Cell is the display state of one lattice cell, in increasing draw priority.
type Cell int

const (
	CellEmpty Cell = iota
	CellWall
	CellOpen
	CellClosed
	CellPath
	CellStart
	CellGoal
)

// Swatch is how one Cell kind is drawn.
type Swatch struct {
	Glyph string
	Style lipgloss.Style
}

// Palette maps every Cell to its Swatch.
type Palette map[Cell]Swatch

func block(color string) Swatch {
	return Swatch{Glyph: "  ", Style: lipgloss.NewStyle().Background(lipgloss.Color(color))}
}

// DefaultPalette colors cells as two-column blocks: black floor, grey walls,
// red open set, white closed set, purple path, pink start and green goal.
func DefaultPalette() Palette {
	return Palette{
		CellEmpty:  block("0"),
		CellWall:   block("8"),
		CellOpen:   block("9"),
		CellClosed: block("15"),
		CellPath:   block("129"),
		CellStart:  block("218"),
		CellGoal:   block("34"),
	}
}

// PlainPalette draws one uncolored character per cell.
func PlainPalette() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		CellEmpty:  {Glyph: " ", Style: plain},
		CellWall:   {Glyph: "#", Style: plain},
		CellOpen:   {Glyph: "o", Style: plain},
		CellClosed: {Glyph: ".", Style: plain},
		CellPath:   {Glyph: "*", Style: plain},
		CellStart:  {Glyph: "S", Style: plain},
		CellGoal:   {Glyph: "G", Style: plain},
	}
}

// Renderer turns a grid plus a snapshot into text.
type Renderer struct {
	palette Palette
	plain   bool
}

// New returns a Renderer using palette.
func New(palette Palette) *Renderer {
	return &Renderer{palette: palette}
}

// NewPlain returns a Renderer that emits bare glyphs without escape codes.
func NewPlain() *Renderer {
	return &Renderer{palette: PlainPalette(), plain: true}
}

// Classify returns the display state of c. Later layers win: walls, open,
// closed, path, start, goal.
func Classify(grid *astar.Grid, snap astar.StepSnapshot, path map[astar.Coord]bool, c astar.Coord) Cell {
	switch {
	case c == grid.Goal():
		return CellGoal
	case c == grid.Start():
		return CellStart
	case path[c]:
		return CellPath
	case snap.Closed[c]:
		return CellClosed
	case snap.Open[c]:
		return CellOpen
	case grid.Occupancy(c) == astar.Blocked:
		return CellWall
	default:
		return CellEmpty
	}
}

// Grid draws every cell of grid, one text line per row.
func (r *Renderer) Grid(grid *astar.Grid, snap astar.StepSnapshot) string {
	path := make(map[astar.Coord]bool, len(snap.Path))
	for _, c := range snap.Path {
		path[c] = true
	}

	var b strings.Builder
	n := grid.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			sw := r.palette[Classify(grid, snap, path, astar.Coord{Row: row, Col: col})]
			if r.plain {
				b.WriteString(sw.Glyph)
			} else {
				b.WriteString(sw.Style.Render(sw.Glyph))
			}
		}
		if row < n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Summary describes the search progress in one line.
func Summary(snap astar.StepSnapshot) string {
	line := fmt.Sprintf("step %d  open %d  closed %d  %s",
		snap.StepIndex, len(snap.Open), len(snap.Closed), snap.Status)
	if snap.Status == astar.StatusSuccess {
		line += fmt.Sprintf("  path %d", len(snap.Path))
	}
	return line
}
