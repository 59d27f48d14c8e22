package cellsel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the named worksheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Modification pairs a selector with the options to apply to every cell it selects.
type Modification struct {
	selector Selector
	options  []CellOption
}

// Modify creates a Modification applying opts to the cells sel selects.
func Modify(sel Selector, opts ...CellOption) *Modification {
	return &Modification{selector: sel, options: opts}
}

// With appends more options to the modification.
func (m *Modification) With(opts ...CellOption) *Modification {
	m.options = append(m.options, opts...)
	return m
}

// Sheet applies cell options to the selected cells of one excelize worksheet.
type Sheet struct {
	file *excelize.File
	name string
	opts *Options

	styleCache map[styleKey]int // (base style, change) → derived style ID

	mu sync.Mutex // excelize files are not safe for concurrent writes
}

type styleKey struct {
	base   int
	change string
}

// NewSheet wraps the worksheet called name in f.
func NewSheet(f *excelize.File, name string, opts ...Option) (*Sheet, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("look up sheet %q: %w", name, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Sheet{
		file:       f,
		name:       name,
		opts:       o,
		styleCache: make(map[styleKey]int),
	}, nil
}

// File returns the underlying workbook.
func (s *Sheet) File() *excelize.File { return s.file }

// Name returns the worksheet name.
func (s *Sheet) Name() string { return s.name }

// Extent returns the number of rows and columns selectors are evaluated
// against: the fixed extent from WithExtent, or the worksheet's used range.
func (s *Sheet) Extent() (rows, columns int, err error) {
	if s.opts.extentSet {
		return s.opts.rows, s.opts.columns, nil
	}
	data, err := s.file.GetRows(s.name)
	if err != nil {
		return 0, 0, fmt.Errorf("read rows from sheet %q: %w", s.name, err)
	}
	for _, row := range data {
		columns = max(columns, len(row))
	}
	return len(data), columns, nil
}

// Apply runs each modification in order. For every modification the extent
// is read once and the selector is evaluated once; each option is then
// applied to each selected cell.
func (s *Sheet) Apply(mods ...*Modification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range mods {
		if m == nil || m.selector == nil {
			continue
		}
		rows, columns, err := s.Extent()
		if err != nil {
			return err
		}
		cells := m.selector.Cells(rows, columns)
		s.opts.logger.Log("modification %d: %d cell(s) on %q (%dx%d), %d option(s)",
			i, len(cells), s.name, rows, columns, len(m.options))

		for _, c := range cells {
			for _, opt := range m.options {
				if err := s.changeCell(c, opt); err != nil {
					return fmt.Errorf("modification %d at %s: %w", i, c, err)
				}
			}
		}
	}
	return nil
}

// changeCell applies one option to one cell, firing listeners around it.
func (s *Sheet) changeCell(c Coord, opt CellOption) error {
	for _, l := range s.opts.listeners {
		if !l.BeforeChangeCell(c, opt) {
			for _, l2 := range s.opts.listeners {
				l2.AfterChangeCell(c, opt)
			}
			return nil
		}
	}

	if err := opt.ChangeCell(s, c); err != nil {
		return err
	}

	for _, l := range s.opts.listeners {
		l.AfterChangeCell(c, opt)
	}
	return nil
}

// SetValue writes a value into the cell at c.
func (s *Sheet) SetValue(c Coord, value any) error {
	cell, err := c.CellName()
	if err != nil {
		return err
	}
	return s.file.SetCellValue(s.name, cell, value)
}

// SetStyle sets the style ID of the cell at c.
func (s *Sheet) SetStyle(c Coord, styleID int) error {
	cell, err := c.CellName()
	if err != nil {
		return err
	}
	return s.file.SetCellStyle(s.name, cell, cell, styleID)
}

// styleID registers style in the workbook and returns its ID. excelize
// returns the existing ID for a style it already holds.
func (s *Sheet) styleID(style *excelize.Style) (int, error) {
	if style == nil {
		style = &excelize.Style{}
	}
	id, err := s.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("create style: %w", err)
	}
	return id, nil
}

// deriveStyle restyles the cell at c with a copy of its current style changed
// by mutate. Derived styles are cached by (current style, key) so that equal
// changes share one style ID.
func (s *Sheet) deriveStyle(c Coord, key string, mutate func(*excelize.Style)) error {
	cell, err := c.CellName()
	if err != nil {
		return err
	}
	base, err := s.file.GetCellStyle(s.name, cell)
	if err != nil {
		return fmt.Errorf("read style of %s: %w", cell, err)
	}

	k := styleKey{base: base, change: key}
	styleID, ok := s.styleCache[k]
	if !ok {
		style, err := s.file.GetStyle(base)
		if err != nil {
			return fmt.Errorf("read style %d: %w", base, err)
		}
		if style == nil {
			style = &excelize.Style{}
		}
		mutate(style)
		styleID, err = s.file.NewStyle(style)
		if err != nil {
			return fmt.Errorf("create style for %s: %w", cell, err)
		}
		s.styleCache[k] = styleID
		s.opts.logger.Log("derived style %d from %d (%s)", styleID, base, key)
	}
	return s.file.SetCellStyle(s.name, cell, cell, styleID)
}
