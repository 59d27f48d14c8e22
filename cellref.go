package cellsel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// String formats the coordinate as an A1 cell name ("C2" for row 1, column 2).
// Coordinates that have no cell name are formatted as "R<row>C<col>".
func (c Coord) String() string {
	name, err := c.CellName()
	if err != nil {
		return fmt.Sprintf("R%dC%d", c.Row, c.Col)
	}
	return name
}

// CellName returns the A1 name of the coordinate.
func (c Coord) CellName() (string, error) {
	return excelize.CoordinatesToCellName(c.Col+1, c.Row+1)
}

// ParseCoord parses a cell reference like "A1", "$B$5" or "Sheet1!C3".
// The sheet part, if any, is ignored.
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coord{}, fmt.Errorf("empty cell reference")
	}

	cellPart := s
	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		cellPart = s[idx+1:]
	}
	cellPart = strings.ReplaceAll(cellPart, "$", "")

	col, row, err := excelize.CellNameToCoordinates(cellPart)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}
	return Coord{Row: row - 1, Col: col - 1}, nil
}

// Area is a rectangular selection given by two corner cells, both included.
type Area struct {
	First Coord
	Last  Coord
}

// NewArea builds an Area from any two opposite corners.
func NewArea(a, b Coord) Area {
	first := Coord{Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)}
	last := Coord{Row: max(a.Row, b.Row), Col: max(a.Col, b.Col)}
	return Area{First: first, Last: last}
}

// ParseArea parses an area reference like "A1:C5" or "Sheet1!A1:C5".
// A single cell reference ("B2") is accepted as a 1x1 area.
func ParseArea(s string) (Area, error) {
	s = strings.TrimSpace(s)
	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		s = s[idx+1:]
	}

	parts := strings.SplitN(s, ":", 2)
	first, err := ParseCoord(parts[0])
	if err != nil {
		return Area{}, fmt.Errorf("invalid area reference %q: %w", s, err)
	}
	if len(parts) == 1 {
		return Area{First: first, Last: first}, nil
	}

	last, err := ParseCoord(parts[1])
	if err != nil {
		return Area{}, fmt.Errorf("invalid area reference %q: %w", s, err)
	}
	return NewArea(first, last), nil
}

// String formats the area as "A1:C5".
func (a Area) String() string {
	return a.First.String() + ":" + a.Last.String()
}

// Segment returns the equivalent Segment.
func (a Area) Segment() Segment {
	return NewSegment(
		SpanInclusive(a.First.Row, a.Last.Row),
		SpanInclusive(a.First.Col, a.Last.Col),
	)
}

// Cells enumerates the part of the area inside the grid, row by row.
func (a Area) Cells(countRows, countColumns int) []Coord {
	return a.Segment().Cells(countRows, countColumns)
}
