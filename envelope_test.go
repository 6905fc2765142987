package segrtree

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEnvelope(t *testing.T) {
	e := NewEnvelope(Point{1.0, 4.0}, Point{3.0, 2.0})
	test.T(t, e, Envelope{1.0, 2.0, 3.0, 4.0})
	test.T(t, e.Center(), Point{2.0, 3.0})

	test.That(t, e.Expand(NewEnvelope(Point{0.0, 0.0}, Point{0.0, 0.0})).Equals(Envelope{0.0, 0.0, 3.0, 4.0}))
	test.That(t, EnvelopeOf(e, NewEnvelope(Point{5.0, 5.0}, Point{6.0, 6.0})).Equals(Envelope{1.0, 2.0, 6.0, 6.0}))

	test.That(t, EmptyEnvelope().IsEmpty())
	test.That(t, !e.IsEmpty())
	test.That(t, EmptyEnvelope().Equals(EmptyEnvelope()))
	test.That(t, !e.Equals(EmptyEnvelope()))

	// expanding the empty envelope is the identity
	test.That(t, EmptyEnvelope().Expand(e).Equals(e))
}

func TestEnvelopeIntersects(t *testing.T) {
	e := Envelope{0.0, 0.0, 2.0, 2.0}
	test.That(t, e.Intersects(Envelope{1.0, 1.0, 3.0, 3.0}))
	test.That(t, e.Intersects(Envelope{2.0, 2.0, 3.0, 3.0})) // touching corner counts
	test.That(t, e.Intersects(Envelope{-1.0, 0.0, 0.0, 2.0})) // touching edge counts
	test.That(t, !e.Intersects(Envelope{2.1, 0.0, 3.0, 2.0}))
	test.That(t, !e.Intersects(Envelope{0.0, 2.1, 2.0, 3.0}))

	test.That(t, e.Contains(Envelope{0.5, 0.5, 1.5, 1.5}))
	test.That(t, e.Contains(e)) // containment is weak
	test.That(t, !e.Contains(Envelope{0.5, 0.5, 2.5, 1.5}))

	test.That(t, e.ContainsPoint(Point{1.0, 1.0}))
	test.That(t, e.ContainsPoint(Point{2.0, 0.0}))
	test.That(t, !e.ContainsPoint(Point{2.0, -0.1}))
}

func TestEnvelopeClipSegment(t *testing.T) {
	rect := Envelope{0.0, 0.0, 1.0, 1.0}

	var tts = []struct {
		start, end Point
		isxn0      Point
		isxn1      Point
		ok         bool
	}{
		{Point{0.2, -0.2}, Point{0.1, -0.1}, Point{}, Point{}, false},
		{Point{0.2, -0.2}, Point{0.2, 0.2}, Point{0.2, 0.0}, Point{0.2, 0.2}, true},
		{Point{-0.2, -0.2}, Point{1.2, 1.2}, Point{0.0, 0.0}, Point{1.0, 1.0}, true},
		{Point{0.2, 0.2}, Point{0.8, 0.8}, Point{0.2, 0.2}, Point{0.8, 0.8}, true},
		{Point{0.0, -1.0}, Point{0.0, 0.0}, Point{0.0, 0.0}, Point{0.0, 0.0}, true},
	}
	for _, tt := range tts {
		isxn0, isxn1, ok := rect.ClipSegment(tt.start, tt.end)
		test.T(t, ok, tt.ok)
		if ok {
			test.T(t, isxn0, tt.isxn0)
			test.T(t, isxn1, tt.isxn1)
		}
	}
}
