package segrtree

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Interop with github.com/paulmach/orb. Parsing and serialization are
// delegated to orb; this file only moves coordinates between orb's types and
// the indexed types here.

func fromOrbPoints(ps []orb.Point) []Point {
	coords := make([]Point, len(ps))
	for i, p := range ps {
		coords[i] = Point{p.X(), p.Y()}
	}
	return coords
}

func toOrbPoints(coords []Point) []orb.Point {
	ps := make([]orb.Point, len(coords))
	for i, c := range coords {
		ps[i] = orb.Point{c.X, c.Y}
	}
	return ps
}

// FromOrbLineString indexes an orb LineString without validation.
func FromOrbLineString(ls orb.LineString) *LineString {
	return NewLineString(fromOrbPoints(ls))
}

// FromOrbRing indexes and validates an orb Ring.
func FromOrbRing(r orb.Ring) (*Ring, error) {
	return NewRing(fromOrbPoints(r))
}

// FromOrbPolygon indexes and validates an orb Polygon and its rings.
func FromOrbPolygon(poly orb.Polygon) (*Polygon, error) {
	if len(poly) == 0 {
		return nil, ErrTooFewCoordinates
	}
	shell, err := FromOrbRing(poly[0])
	if err != nil {
		return nil, err
	}
	holes := make([]*Ring, 0, len(poly)-1)
	for _, r := range poly[1:] {
		hole, err := FromOrbRing(r)
		if err != nil {
			return nil, err
		}
		holes = append(holes, hole)
	}
	return NewPolygon(shell, holes)
}

// Orb returns the LineString as an orb LineString.
func (l *LineString) Orb() orb.LineString {
	return orb.LineString(toOrbPoints(l.coords))
}

// Orb returns the Ring as an orb Ring.
func (r *Ring) Orb() orb.Ring {
	return orb.Ring(toOrbPoints(r.coords))
}

// Orb returns the Polygon as an orb Polygon.
func (p *Polygon) Orb() orb.Polygon {
	poly := make(orb.Polygon, 0, len(p.holes)+1)
	poly = append(poly, p.shell.Orb())
	for _, hole := range p.holes {
		poly = append(poly, hole.Orb())
	}
	return poly
}

// LineStringFromWKT parses a WKT LINESTRING and indexes it.
func LineStringFromWKT(s string) (*LineString, error) {
	ls, err := wkt.UnmarshalLineString(s)
	if err != nil {
		return nil, err
	}
	return FromOrbLineString(ls), nil
}

// PolygonFromWKT parses a WKT POLYGON and indexes and validates it.
func PolygonFromWKT(s string) (*Polygon, error) {
	poly, err := wkt.UnmarshalPolygon(s)
	if err != nil {
		return nil, err
	}
	return FromOrbPolygon(poly)
}

// WKT returns the LineString as WKT.
func (l *LineString) WKT() string {
	return wkt.MarshalString(l.Orb())
}

// WKT returns the Polygon as WKT.
func (p *Polygon) WKT() string {
	return wkt.MarshalString(p.Orb())
}
