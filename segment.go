package cellsel

// Segment is a rectangular sub-grid given by a row span and a column span.
type Segment struct {
	Rows    Span
	Columns Span
}

// NewSegment builds a Segment.
func NewSegment(rows, columns Span) Segment {
	return Segment{Rows: rows, Columns: columns}
}

// All returns a Segment covering the whole grid.
func All() Segment {
	return NewSegment(SpanAll(), SpanAll())
}

// Cells enumerates the part of the segment inside the grid, row by row.
func (s Segment) Cells(countRows, countColumns int) []Coord {
	rowStart, rowEnd := s.Rows.Resolve(countRows)
	rowStart, rowEnd = clip(rowStart, rowEnd, countRows)
	colStart, colEnd := s.Columns.Resolve(countColumns)
	colStart, colEnd = clip(colStart, colEnd, countColumns)

	var cells []Coord
	for row := rowStart; row < rowEnd; row++ {
		for col := colStart; col < colEnd; col++ {
			cells = append(cells, Coord{Row: row, Col: col})
		}
	}
	return cells
}

// Full selects every cell.
//
// Deprecated: the name is not descriptive. Use All instead.
type Full struct{}

// Cells is the same as All().Cells.
func (Full) Cells(countRows, countColumns int) []Coord {
	return All().Cells(countRows, countColumns)
}

// Frame selects the cells on the outer edge of the grid: the top row, the
// bottom row, the left column and the right column, in that order.
// Corner cells, and whole sides of 1xN or Nx1 grids, appear more than once.
type Frame struct{}

// Cells lists the four sides without removing duplicates.
func (Frame) Cells(countRows, countColumns int) []Coord {
	var cells []Coord

	if countRows > 0 {
		cells = append(cells, rowCells(0, countColumns)...)
		cells = append(cells, rowCells(countRows-1, countColumns)...)
	}

	if countColumns > 0 {
		cells = append(cells, columnCells(0, countRows)...)
		cells = append(cells, columnCells(countColumns-1, countRows)...)
	}

	return cells
}
