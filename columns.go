package cellsel

// Columns selects every cell of the columns in a span, column by column.
type Columns struct {
	Span Span
}

// NewColumns selects the columns in span.
func NewColumns(span Span) Columns { return Columns{Span: span} }

// Cells lists the columns of the span that fall inside the grid.
func (c Columns) Cells(countRows, countColumns int) []Coord {
	start, end := c.Span.Resolve(countColumns)
	start, end = clip(start, end, countColumns)

	var cells []Coord
	for col := start; col < end; col++ {
		cells = append(cells, columnCells(col, countRows)...)
	}
	return cells
}

// Column is a single column located by its index from the first column.
// It is empty when the index is beyond the last column.
type Column int

// Cells is empty for a negative index or one past the last column.
func (c Column) Cells(countRows, countColumns int) []Coord {
	index := int(c)
	if index < 0 || index >= countColumns {
		return nil
	}
	return columnCells(index, countRows)
}

// FirstColumn is the first column of a grid.
type FirstColumn struct{}

// Cells returns column 0 without checking countColumns.
func (FirstColumn) Cells(countRows, _ int) []Coord {
	return columnCells(0, countRows)
}

// ShiftedForward returns the column n columns right of the first one.
func (FirstColumn) ShiftedForward(n int) Column { return Column(n) }

// LastColumn is the last column of a grid.
type LastColumn struct{}

// Cells returns the last column. A grid without columns still yields column 0.
func (LastColumn) Cells(countRows, countColumns int) []Coord {
	return columnCells(lastIndex(countColumns), countRows)
}

// ShiftedBackward returns the column n columns left of the last one.
func (LastColumn) ShiftedBackward(n int) LastColumnOffset {
	return LastColumnOffset{Offset: n}
}

// LastColumnOffset is a column located by its distance from the last column.
//
// On a grid without columns the last column resolves to index 0, so an offset
// of 0 still selects column 0.
type LastColumnOffset struct {
	Offset int
}

// Cells is empty for a negative offset or one reaching left of column 0.
func (c LastColumnOffset) Cells(countRows, countColumns int) []Coord {
	last := lastIndex(countColumns)
	if c.Offset < 0 || c.Offset > last {
		return nil
	}
	return columnCells(last-c.Offset, countRows)
}

// ShiftedBackward moves the column n more columns left.
func (c LastColumnOffset) ShiftedBackward(n int) LastColumnOffset {
	return LastColumnOffset{Offset: c.Offset + n}
}
