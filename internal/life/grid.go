// Package life implements Conway's Game of Life on a fixed, bounded grid.
// Cells outside the grid are dead; there is no wraparound.
package life

import "math/rand"

// Grid is a W×H field of cells. Row 0 is the top row.
type Grid struct {
	w, h  int
	cells []bool
	next  []bool
}

// NewGrid returns an all-dead grid. Non-positive sizes are clamped to 1.
func NewGrid(w, h int) *Grid {
	w, h = max(w, 1), max(h, 1)
	return &Grid{w: w, h: h, cells: make([]bool, w*h), next: make([]bool, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Alive reports whether (x, y) is live. Out-of-grid cells are dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.w+x]
}

// Set sets the cell state. Out-of-grid coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.w+x] = alive
}

// Toggle flips a cell. Out-of-grid coordinates are ignored.
func (g *Grid) Toggle(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.w+x] = !g.cells[y*g.w+x]
}

// Neighbours counts the live cells in the Moore neighbourhood of (x, y).
func (g *Grid) Neighbours(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Rule returns the next state of a cell under B3/S23.
func Rule(alive bool, neighbours int) bool {
	if alive {
		return neighbours == 2 || neighbours == 3
	}
	return neighbours == 3
}

// Step advances the grid by one generation.
func (g *Grid) Step() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.next[y*g.w+x] = Rule(g.cells[y*g.w+x], g.Neighbours(x, y))
		}
	}
	g.cells, g.next = g.next, g.cells
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Randomize sets each cell live with probability density.
func (g *Grid) Randomize(r *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = r.Float64() < density
	}
}

// CopyFrom overwrites the grid with src, aligned at the top-left corner.
// Cells of src outside g are dropped.
func (g *Grid) CopyFrom(src *Grid) {
	g.Clear()
	for y := 0; y < min(g.h, src.h); y++ {
		for x := 0; x < min(g.w, src.w); x++ {
			g.cells[y*g.w+x] = src.cells[y*src.w+x]
		}
	}
}

// LiveCells returns the coordinates of all live cells in row-major order.
func (g *Grid) LiveCells() [][2]int {
	out := make([][2]int, 0, g.Population())
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}
