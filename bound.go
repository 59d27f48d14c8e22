package cellsel

import (
	"fmt"
	"math"
)

// EndpointKind tells how an Endpoint limits a Span.
type EndpointKind int

const (
	EndpointUnbounded EndpointKind = iota // no limit on this side
	EndpointIncluded                      // the value is part of the span
	EndpointExcluded                      // the value is not part of the span
)

// Endpoint is one side of a Span.
type Endpoint struct {
	Kind  EndpointKind
	Value int
}

// Included returns an endpoint that contains v.
func Included(v int) Endpoint { return Endpoint{Kind: EndpointIncluded, Value: v} }

// Excluded returns an endpoint that stops right before v.
// It is only valid as the end of a Span.
func Excluded(v int) Endpoint { return Endpoint{Kind: EndpointExcluded, Value: v} }

// Unbounded returns an endpoint without a limit.
func Unbounded() Endpoint { return Endpoint{} }

// String formats the endpoint as "included(3)", "excluded(3)" or "unbounded".
func (e Endpoint) String() string {
	switch e.Kind {
	case EndpointIncluded:
		return fmt.Sprintf("included(%d)", e.Value)
	case EndpointExcluded:
		return fmt.Sprintf("excluded(%d)", e.Value)
	default:
		return "unbounded"
	}
}

// Span is a one-dimensional range of row or column indexes.
// The zero value is the unbounded span "..".
type Span struct {
	Start Endpoint
	End   Endpoint
}

// SpanAll returns "..": every index.
func SpanAll() Span { return Span{} }

// SpanFrom returns "x..": x and everything after it.
func SpanFrom(x int) Span { return Span{Start: Included(x)} }

// SpanTo returns "..y": everything before y.
func SpanTo(y int) Span { return Span{End: Excluded(y)} }

// SpanToInclusive returns "..=y": everything up to and including y.
func SpanToInclusive(y int) Span { return Span{End: Included(y)} }

// SpanBetween returns "x..y": x up to but not including y.
func SpanBetween(x, y int) Span { return Span{Start: Included(x), End: Excluded(y)} }

// SpanInclusive returns "x..=y": x up to and including y.
func SpanInclusive(x, y int) Span { return Span{Start: Included(x), End: Included(y)} }

// String formats the span in range notation, e.g. "1..", "..=4", "2..5".
func (s Span) String() string {
	start, end := "", ""
	switch s.Start.Kind {
	case EndpointIncluded:
		start = fmt.Sprintf("%d", s.Start.Value)
	case EndpointExcluded:
		start = fmt.Sprintf("!%d", s.Start.Value)
	}
	switch s.End.Kind {
	case EndpointIncluded:
		end = fmt.Sprintf("=%d", s.End.Value)
	case EndpointExcluded:
		end = fmt.Sprintf("%d", s.End.Value)
	}
	return start + ".." + end
}

// Resolve converts the span into a half-open interval [start, end) for a
// dimension holding count elements.
//
// Only unbounded ends are derived from count; explicit values are returned
// as-is, so the interval may lie partly or fully outside [0, count). Callers
// iterate start..end and an inverted interval simply yields nothing.
//
// An included end of math.MaxInt saturates instead of overflowing, so it
// reads as "through the end".
//
// Resolve panics if the start endpoint is excluded.
func (s Span) Resolve(count int) (start, end int) {
	if count < 0 {
		count = 0
	}

	switch s.Start.Kind {
	case EndpointIncluded:
		start = s.Start.Value
	case EndpointUnbounded:
		start = 0
	default:
		panic("cellsel: a start bound can't be excluded")
	}

	switch s.End.Kind {
	case EndpointIncluded:
		end = s.End.Value
		if end != math.MaxInt {
			end++
		}
	case EndpointExcluded:
		end = s.End.Value
	default:
		end = count
	}
	return start, end
}
