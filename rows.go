package cellsel

// Rows selects every cell of the rows in a span, row by row.
type Rows struct {
	Span Span
}

// NewRows selects the rows in span.
func NewRows(span Span) Rows { return Rows{Span: span} }

// Cells lists the rows of the span that fall inside the grid.
func (r Rows) Cells(countRows, countColumns int) []Coord {
	start, end := r.Span.Resolve(countRows)
	start, end = clip(start, end, countRows)

	var cells []Coord
	for row := start; row < end; row++ {
		cells = append(cells, rowCells(row, countColumns)...)
	}
	return cells
}

// Row is a single row located by its index from the first row.
// It is empty when the index is beyond the last row.
type Row int

// Cells is empty for a negative index or one past the last row.
func (r Row) Cells(countRows, countColumns int) []Coord {
	index := int(r)
	if index < 0 || index >= countRows {
		return nil
	}
	return rowCells(index, countColumns)
}

// FirstRow is the first row of a grid, where headers usually live.
type FirstRow struct{}

// Cells returns row 0 without checking countRows.
func (FirstRow) Cells(_, countColumns int) []Coord {
	return rowCells(0, countColumns)
}

// ShiftedForward returns the row n rows below the first one.
func (FirstRow) ShiftedForward(n int) Row { return Row(n) }

// LastRow is the last row of a grid.
type LastRow struct{}

// Cells returns the last row. A grid without rows still yields row 0.
func (LastRow) Cells(countRows, countColumns int) []Coord {
	return rowCells(lastIndex(countRows), countColumns)
}

// ShiftedBackward returns the row n rows above the last one.
func (LastRow) ShiftedBackward(n int) LastRowOffset { return LastRowOffset{Offset: n} }

// LastRowOffset is a row located by its distance from the last row.
//
// On a grid without rows the last row resolves to index 0, so an offset of 0
// still selects row 0.
type LastRowOffset struct {
	Offset int
}

// Cells is empty for a negative offset or one reaching above row 0.
func (r LastRowOffset) Cells(countRows, countColumns int) []Coord {
	last := lastIndex(countRows)
	if r.Offset < 0 || r.Offset > last {
		return nil
	}
	return rowCells(last-r.Offset, countColumns)
}

// ShiftedBackward moves the row n more rows up.
func (r LastRowOffset) ShiftedBackward(n int) LastRowOffset {
	return LastRowOffset{Offset: r.Offset + n}
}
