package segrtree

import (
	"fmt"
	"math"
)

// Envelope is an axis-aligned bounding box. A valid envelope has
// XMin <= XMax and YMin <= YMax; the empty envelope has NaN bounds.
type Envelope struct {
	XMin, YMin, XMax, YMax float64
}

// NewEnvelope returns the envelope of the segment between p and q.
func NewEnvelope(p, q Point) Envelope {
	return Envelope{
		XMin: math.Min(p.X, q.X),
		YMin: math.Min(p.Y, q.Y),
		XMax: math.Max(p.X, q.X),
		YMax: math.Max(p.Y, q.Y),
	}
}

// EmptyEnvelope returns the empty envelope, the identity for Expand.
func EmptyEnvelope() Envelope {
	nan := math.NaN()
	return Envelope{nan, nan, nan, nan}
}

// EnvelopeOf returns the union of all given envelopes.
func EnvelopeOf(envs ...Envelope) Envelope {
	e := EmptyEnvelope()
	for _, o := range envs {
		e = e.Expand(o)
	}
	return e
}

// IsEmpty returns true if the envelope covers no point.
func (e Envelope) IsEmpty() bool {
	return math.IsNaN(e.XMin) || math.IsNaN(e.YMin) || math.IsNaN(e.XMax) || math.IsNaN(e.YMax)
}

// Equals returns true if both envelopes have the same bounds. All empty
// envelopes are equal to each other.
func (e Envelope) Equals(o Envelope) bool {
	if e.IsEmpty() {
		return o.IsEmpty()
	}
	return e.XMin == o.XMin && e.YMin == o.YMin && e.XMax == o.XMax && e.YMax == o.YMax
}

// Center returns the center point of the envelope.
func (e Envelope) Center() Point {
	return Point{(e.XMin + e.XMax) / 2.0, (e.YMin + e.YMax) / 2.0}
}

// Expand returns the smallest envelope covering both e and o. The empty
// envelope is the identity.
func (e Envelope) Expand(o Envelope) Envelope {
	if e.IsEmpty() {
		return o
	} else if o.IsEmpty() {
		return e
	}
	return Envelope{
		XMin: math.Min(e.XMin, o.XMin),
		YMin: math.Min(e.YMin, o.YMin),
		XMax: math.Max(e.XMax, o.XMax),
		YMax: math.Max(e.YMax, o.YMax),
	}
}

// Intersects returns true if both envelopes overlap or touch. Bounds are
// closed intervals, so a shared edge or corner counts as intersecting.
func (e Envelope) Intersects(o Envelope) bool {
	return e.XMin <= o.XMax && e.XMax >= o.XMin && e.YMin <= o.YMax && e.YMax >= o.YMin
}

// Contains returns true if o lies weakly inside e.
func (e Envelope) Contains(o Envelope) bool {
	return e.XMin <= o.XMin && e.XMax >= o.XMax && e.YMin <= o.YMin && e.YMax >= o.YMax
}

// ContainsPoint returns true if p lies weakly inside e.
func (e Envelope) ContainsPoint(p Point) bool {
	return e.XMin <= p.X && p.X <= e.XMax && e.YMin <= p.Y && p.Y <= e.YMax
}

func (e Envelope) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", e.XMin, e.YMin, e.XMax, e.YMax)
}

// ClipSegment returns the part of the segment from start to end that lies
// within the envelope, using the Liang-Barsky algorithm. The returned points
// coincide if the segment only touches the envelope; ok is false if the
// segment lies fully outside.
func (e Envelope) ClipSegment(start, end Point) (Point, Point, bool) {
	if e.ContainsPoint(start) && e.ContainsPoint(end) {
		return start, end, true
	} else if start == end {
		return Point{}, Point{}, false
	}

	t0, t1 := 0.0, 1.0
	dx := end.X - start.X
	dy := end.Y - start.Y

	for side := 0; side < 4; side++ {
		var p, q float64
		switch side {
		case 0: // left
			p, q = -dx, -(e.XMin - start.X)
		case 1: // right
			p, q = dx, e.XMax-start.X
		case 2: // bottom
			p, q = -dy, -(e.YMin - start.Y)
		case 3: // top
			p, q = dy, e.YMax-start.Y
		}
		if p == 0.0 && q < 0.0 {
			return Point{}, Point{}, false
		}
		r := q / p
		if p < 0.0 {
			if r > t1 {
				return Point{}, Point{}, false
			} else if r > t0 {
				t0 = r
			}
		} else if p > 0.0 {
			if r < t0 {
				return Point{}, Point{}, false
			} else if r < t1 {
				t1 = r
			}
		}
	}
	return Point{start.X + t0*dx, start.Y + t0*dy}, Point{start.X + t1*dx, start.Y + t1*dy}, true
}
