package cellsel

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query is a Selector as seen from a selector expression. Its methods are
// what expressions can call on a value, e.g. FirstRow().Except(Cell(0, 0)).
type Query struct {
	Selector
}

// UnionWith adds the cells of other.
func (q Query) UnionWith(other Query) Query {
	return Query{Union(q.Selector, other.Selector)}
}

// Except removes the cells of other.
func (q Query) Except(other Query) Query {
	return Query{Difference(q.Selector, other.Selector)}
}

// selectorEnv lists everything a selector expression can refer to.
func selectorEnv() map[string]any {
	return map[string]any{
		"All":         func() Query { return Query{All()} },
		"Frame":       func() Query { return Query{Frame{}} },
		"Empty":       func() Query { return Query{Empty{}} },
		"Cell":        func(row, col int) Query { return Query{Cell{Row: row, Col: col}} },
		"CellAt":      cellAt,
		"Area":        area,
		"Row":         func(index int) Query { return Query{Row(index)} },
		"Column":      func(index int) Query { return Query{Column(index)} },
		"FirstRow":    func() Query { return Query{FirstRow{}} },
		"LastRow":     func() Query { return Query{LastRow{}} },
		"FirstColumn": func() Query { return Query{FirstColumn{}} },
		"LastColumn":  func() Query { return Query{LastColumn{}} },
		"RowFromEnd": func(offset int) Query {
			return Query{LastRowOffset{Offset: offset}}
		},
		"ColumnFromEnd": func(offset int) Query {
			return Query{LastColumnOffset{Offset: offset}}
		},
		"Rows":        func(from, to int) Query { return Query{NewRows(SpanBetween(from, to))} },
		"RowsThrough": func(from, to int) Query { return Query{NewRows(SpanInclusive(from, to))} },
		"RowsFrom":    func(from int) Query { return Query{NewRows(SpanFrom(from))} },
		"Columns":     func(from, to int) Query { return Query{NewColumns(SpanBetween(from, to))} },
		"ColumnsThrough": func(from, to int) Query {
			return Query{NewColumns(SpanInclusive(from, to))}
		},
		"ColumnsFrom": func(from int) Query { return Query{NewColumns(SpanFrom(from))} },
		"Union":       func(a, b Query) Query { return a.UnionWith(b) },
		"Difference":  func(a, b Query) Query { return a.Except(b) },
	}
}

func cellAt(name string) (Query, error) {
	c, err := ParseCoord(name)
	if err != nil {
		return Query{}, err
	}
	return Query{Cell{Row: c.Row, Col: c.Col}}, nil
}

func area(ref string) (Query, error) {
	a, err := ParseArea(ref)
	if err != nil {
		return Query{}, err
	}
	return Query{a}, nil
}

// compiler compiles selector expressions with expr-lang/expr.
type compiler struct {
	env   map[string]any
	cache sync.Map // expression string → compiled *vm.Program
}

func newCompiler() *compiler {
	return &compiler{env: selectorEnv()}
}

var defaultCompiler = newCompiler()

// Compile turns a selector expression into a Selector.
//
// Expressions call constructor functions and combine them with methods or
// operators:
//
//	FirstRow().Except(Cell(0, 0))
//	Area("B2:D4") + LastRow()
//	All() - Frame()
//
// Rows(from, to) and Columns(from, to) exclude to; RowsThrough and
// ColumnsThrough include it. "+" is Union and "-" is Difference; both
// evaluate left to right.
func Compile(expression string) (Selector, error) {
	return defaultCompiler.compileSelector(expression)
}

// MustCompile is like Compile but panics if the expression is invalid.
func MustCompile(expression string) Selector {
	sel, err := Compile(expression)
	if err != nil {
		panic(err)
	}
	return sel
}

func (c *compiler) compileSelector(expression string) (Selector, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty selector expression")
	}

	program, err := c.compile(expression)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", expression, err)
	}
	result, err := expr.Run(program, c.env)
	if err != nil {
		return nil, fmt.Errorf("evaluate selector %q: %w", expression, err)
	}

	q, ok := result.(Query)
	if !ok {
		return nil, fmt.Errorf("selector %q evaluated to %T, expected a selector", expression, result)
	}
	if q.Selector == nil {
		return Empty{}, nil
	}
	return q.Selector, nil
}

func (c *compiler) compile(expression string) (*vm.Program, error) {
	if cached, ok := c.cache.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(expression,
		expr.Env(c.env),
		expr.Operator("+", "Union"),
		expr.Operator("-", "Difference"),
	)
	if err != nil {
		return nil, err
	}
	c.cache.Store(expression, program)
	return program, nil
}
