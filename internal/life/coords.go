package life

// CellCenter maps a cell to normalized device coordinates, with row 0 at
// the top of the viewport.
func (g *Grid) CellCenter(x, y int) (float32, float32) {
	nx := -1 + (2*float32(x)+1)/float32(g.w)
	ny := 1 - (2*float32(y)+1)/float32(g.h)
	return nx, ny
}

// CellAt maps a cursor position in a viewW×viewH window to a cell. It
// returns false when the position is outside the grid.
func (g *Grid) CellAt(cx, cy float64, viewW, viewH int) (int, int, bool) {
	if viewW <= 0 || viewH <= 0 || cx < 0 || cy < 0 {
		return 0, 0, false
	}
	x := int(cx * float64(g.w) / float64(viewW))
	y := int(cy * float64(g.h) / float64(viewH))
	if !g.InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// Points appends the NDC centre of every live cell to dst as x, y pairs.
func (g *Grid) Points(dst []float32) []float32 {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] {
				nx, ny := g.CellCenter(x, y)
				dst = append(dst, nx, ny)
			}
		}
	}
	return dst
}
