package databox

import "errors"

var (
	// ErrInvalidGraph is returned when a draw is requested on a nil graph
	// or with a nil box.
	ErrInvalidGraph = errors.New("databox: invalid graph")

	// ErrNilGraph is returned by Box.AddGraph for a nil graph.
	ErrNilGraph = errors.New("databox: graph must not be nil")

	// ErrGraphNotFound is returned by Box.RemoveGraph when the graph was
	// never added.
	ErrGraphNotFound = errors.New("databox: graph not found")

	// ErrInvalidLimits is returned when a pair of limits is degenerate
	// (left == right or top == bottom) or not finite.
	ErrInvalidLimits = errors.New("databox: invalid limits")

	// ErrNonPositiveLogLimits is returned when a logarithmic axis is given
	// limits that are not strictly positive.
	ErrNonPositiveLogLimits = errors.New("databox: logarithmic scale requires positive limits")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("databox: invalid size")

	// ErrUnknownScaleType is returned by ParseScaleType.
	ErrUnknownScaleType = errors.New("databox: unknown scale type")
)
