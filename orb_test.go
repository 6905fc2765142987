package segrtree

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestOrbLineString(t *testing.T) {
	ls := FromOrbLineString(orb.LineString{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
	test.T(t, ls.NumSegments(), 2)
	test.T(t, ls.Coords(), []Point{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
	test.T(t, ls.Orb(), orb.LineString{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
}

func TestOrbRing(t *testing.T) {
	ring, err := FromOrbRing(orb.Ring{{0.0, 0.0}, {2.0, 0.0}, {2.0, 2.0}, {0.0, 2.0}, {0.0, 0.0}})
	test.Error(t, err)
	test.That(t, ring.Contains(Point{1.0, 1.0}))
	test.T(t, ring.Orb(), orb.Ring{{0.0, 0.0}, {2.0, 0.0}, {2.0, 2.0}, {0.0, 2.0}, {0.0, 0.0}})

	_, err = FromOrbRing(orb.Ring{{0.0, 0.0}, {2.0, 0.0}, {2.0, 2.0}, {0.0, 2.0}})
	test.T(t, err, ErrNotClosed)
}

func TestOrbPolygon(t *testing.T) {
	poly, err := FromOrbPolygon(orb.Polygon{
		{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}, {0.0, 0.0}},
		{{2.0, 2.0}, {4.0, 2.0}, {4.0, 4.0}, {2.0, 4.0}, {2.0, 2.0}},
	})
	test.Error(t, err)
	test.T(t, len(poly.Holes()), 1)
	test.That(t, poly.Contains(Point{1.0, 1.0}))
	test.That(t, !poly.Contains(Point{3.0, 3.0}))
	test.T(t, len(poly.Orb()), 2)

	_, err = FromOrbPolygon(orb.Polygon{})
	test.T(t, err, ErrTooFewCoordinates)
}

func TestWKTRoundTrip(t *testing.T) {
	ls, err := LineStringFromWKT("LINESTRING(0 0,1 1,2 0)")
	test.Error(t, err)
	test.T(t, ls.Coords(), []Point{{0.0, 0.0}, {1.0, 1.0}, {2.0, 0.0}})

	reparsed, err := LineStringFromWKT(ls.WKT())
	test.Error(t, err)
	test.T(t, reparsed.Coords(), ls.Coords())

	poly, err := PolygonFromWKT("POLYGON((0 0,10 0,10 10,0 10,0 0),(2 2,4 2,4 4,2 4,2 2))")
	test.Error(t, err)
	test.That(t, poly.Contains(Point{5.0, 5.0}))
	test.That(t, !poly.Contains(Point{3.0, 3.0}))

	reparsed2, err := PolygonFromWKT(poly.WKT())
	test.Error(t, err)
	test.T(t, reparsed2.Shell().Coords(), poly.Shell().Coords())
	test.T(t, len(reparsed2.Holes()), len(poly.Holes()))
}

func TestWKTInvalid(t *testing.T) {
	_, err := LineStringFromWKT("POINT(0 0)")
	test.That(t, err != nil)

	_, err = PolygonFromWKT("POLYGON((0 0,1 1))")
	test.That(t, err != nil)
}
