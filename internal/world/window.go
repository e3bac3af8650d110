package world

import "github.com/vvendramini/geomerge/internal/geo"

// WindowCell pairs a visible cell with its resolved state and its
// real-world bounds, ready for a renderer.
type WindowCell struct {
	Cell   geo.Cell
	State  CellState
	Bounds geo.Bounds
}

// Window materializes the (2r+1)² neighborhood around center, in
// row-major order from the north-west corner. Cells outside the window
// are neither evaluated nor returned.
func Window(s Store, m geo.Mapper, center geo.Cell, radius int) []WindowCell {
	side := 2*radius + 1
	cells := make([]WindowCell, 0, side*side)
	for di := radius; di >= -radius; di-- {
		for dj := -radius; dj <= radius; dj++ {
			c := center.Add(geo.Delta{DI: di, DJ: dj})
			cells = append(cells, WindowCell{
				Cell:   c,
				State:  s.Get(c),
				Bounds: m.FromCell(c),
			})
		}
	}
	return cells
}
