package segrtree

import (
	"errors"
	"fmt"
)

// Validation errors are raised only while constructing or validating
// geometries. Queries on a built tree never fail.
var (
	ErrSingleCoordinate    = errors.New("segrtree: path has only one coordinate")
	ErrNonFiniteCoordinate = errors.New("segrtree: coordinate has a non-finite component")
	ErrTooFewCoordinates   = errors.New("segrtree: ring must have at least 4 coordinates")
	ErrNotClosed           = errors.New("segrtree: ring must have equal first and last coordinates")
	ErrHoleNotValid        = errors.New("segrtree: hole is not contained in the shell")

	// ErrMultipleIntersections is returned when two rings of a polygon touch
	// in more than one point.
	ErrMultipleIntersections = errors.New("segrtree: polygon rings have more than one intersection")

	// ErrInteriorDisconnected is returned when the ring-intersection graph of
	// a polygon contains a cycle. The cycle criterion is conservative: it can
	// flag polygons whose interior is in fact connected, and such cases
	// should be re-checked with exact arithmetic rather than assumed invalid.
	ErrInteriorDisconnected = errors.New("segrtree: polygon interior may be disconnected")
)

// DegenerateSegmentError reports a zero-length segment.
type DegenerateSegmentError struct {
	Index    int
	Position Point
}

func (e DegenerateSegmentError) Error() string {
	return fmt.Sprintf("segrtree: degenerate segment %d at %v", e.Index, e.Position)
}

// SelfIntersectionError reports two segments of one path crossing at a point.
type SelfIntersectionError struct {
	I, J     int
	Position Point
}

func (e SelfIntersectionError) Error() string {
	return fmt.Sprintf("segrtree: segments %d and %d intersect at %v", e.I, e.J, e.Position)
}

// OverlappingSegmentsError reports two collinear segments sharing more than a
// point.
type OverlappingSegmentsError struct {
	I, J       int
	Start, End Point
}

func (e OverlappingSegmentsError) Error() string {
	return fmt.Sprintf("segrtree: segments %d and %d overlap between %v and %v", e.I, e.J, e.Start, e.End)
}
