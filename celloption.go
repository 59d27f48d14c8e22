package cellsel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// CellOption changes a single cell of a Sheet.
type CellOption interface {
	ChangeCell(s *Sheet, c Coord) error
}

// CellOptionFunc adapts a function to the CellOption interface.
type CellOptionFunc func(s *Sheet, c Coord) error

// ChangeCell calls f.
func (f CellOptionFunc) ChangeCell(s *Sheet, c Coord) error { return f(s, c) }

// StyleOption replaces the style of each cell with a fixed style.
type StyleOption struct {
	Style *excelize.Style
}

// Style returns an option that sets style on every cell.
func Style(style *excelize.Style) StyleOption {
	return StyleOption{Style: style}
}

func (o StyleOption) ChangeCell(s *Sheet, c Coord) error {
	id, err := s.styleID(o.Style)
	if err != nil {
		return err
	}
	return s.SetStyle(c, id)
}

// IndentOption sets the inner left indent of each cell, keeping the rest of
// its style. It is the worksheet counterpart of cell padding.
type IndentOption struct {
	Indent int
}

// Indent returns an option that indents cell content by n levels.
func Indent(n int) IndentOption { return IndentOption{Indent: n} }

func (o IndentOption) ChangeCell(s *Sheet, c Coord) error {
	return s.deriveStyle(c, fmt.Sprintf("indent:%d", o.Indent), func(st *excelize.Style) {
		if st.Alignment == nil {
			st.Alignment = &excelize.Alignment{}
		}
		st.Alignment.Indent = o.Indent
		if st.Alignment.Horizontal == "" {
			st.Alignment.Horizontal = "left"
		}
	})
}

// AlignOption sets horizontal and vertical alignment, keeping the rest of the
// style. Empty values leave that axis unchanged.
type AlignOption struct {
	Horizontal string
	Vertical   string
}

// Align returns an option that aligns cell content.
func Align(horizontal, vertical string) AlignOption {
	return AlignOption{Horizontal: horizontal, Vertical: vertical}
}

func (o AlignOption) ChangeCell(s *Sheet, c Coord) error {
	return s.deriveStyle(c, fmt.Sprintf("align:%s/%s", o.Horizontal, o.Vertical), func(st *excelize.Style) {
		if st.Alignment == nil {
			st.Alignment = &excelize.Alignment{}
		}
		if o.Horizontal != "" {
			st.Alignment.Horizontal = o.Horizontal
		}
		if o.Vertical != "" {
			st.Alignment.Vertical = o.Vertical
		}
	})
}

// ValueOption writes a fixed value into each cell.
type ValueOption struct {
	Value any
}

// Value returns an option that writes v into every cell.
func Value(v any) ValueOption { return ValueOption{Value: v} }

func (o ValueOption) ChangeCell(s *Sheet, c Coord) error {
	return s.SetValue(c, o.Value)
}
