// Package cellsel addresses sub-regions of a two-dimensional grid.
//
// A Selector describes a set of cells without being bound to a grid. It is
// evaluated against the grid's current extent with Cells, which returns the
// (row, column) coordinates it denotes:
//
//	sel := cellsel.Union(cellsel.FirstRow{}, cellsel.FirstColumn{}).Except(cellsel.Cell{Row: 0, Col: 0})
//	coords := sel.Cells(rows, cols)
//
// Selections that fall outside the extent are empty, never an error.
package cellsel

// Coord is a 0-based (row, column) position on a grid.
type Coord struct {
	Row int
	Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

// Less orders coordinates by row, then column.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Selector locates a part of a grid.
type Selector interface {
	// Cells returns the coordinates of the selected cells on a grid with
	// countRows rows and countColumns columns.
	Cells(countRows, countColumns int) []Coord
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(countRows, countColumns int) []Coord

// Cells calls f.
func (f SelectorFunc) Cells(countRows, countColumns int) []Coord {
	return f(countRows, countColumns)
}

// Empty selects nothing.
type Empty struct{}

// Cells always returns nil.
func (Empty) Cells(int, int) []Coord { return nil }

// rowCells returns every cell of row across count columns.
func rowCells(row, countColumns int) []Coord {
	if countColumns <= 0 {
		return nil
	}
	cells := make([]Coord, 0, countColumns)
	for col := 0; col < countColumns; col++ {
		cells = append(cells, Coord{Row: row, Col: col})
	}
	return cells
}

// columnCells returns every cell of col across count rows.
func columnCells(col, countRows int) []Coord {
	if countRows <= 0 {
		return nil
	}
	cells := make([]Coord, 0, countRows)
	for row := 0; row < countRows; row++ {
		cells = append(cells, Coord{Row: row, Col: col})
	}
	return cells
}

// lastIndex is the last valid index of a dimension, saturating at 0.
func lastIndex(count int) int {
	if count <= 0 {
		return 0
	}
	return count - 1
}

// clip narrows a resolved interval to the indexes [0, count) of a dimension.
func clip(start, end, count int) (int, int) {
	return max(start, 0), min(end, max(count, 0))
}
