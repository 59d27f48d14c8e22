package cellsel

// Cell is a single cell. It ignores the grid extent: the coordinate is
// returned as given, even when it lies outside the grid.
type Cell struct {
	Row int
	Col int
}

// Cells returns the cell even when it lies outside the grid.
func (c Cell) Cells(int, int) []Coord {
	return []Coord{{Row: c.Row, Col: c.Col}}
}
