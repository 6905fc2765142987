package segrtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/tdewolff/test"
)

func TestIntersectSegments(t *testing.T) {
	var tts = []struct {
		a0, a1, b0, b1 Point
		isxn0, isxn1   Point
		ok             bool
	}{
		// identical and reversed segments overlap fully
		{Point{0.0, 0.0}, Point{1.0, 1.0}, Point{0.0, 0.0}, Point{1.0, 1.0}, Point{0.0, 0.0}, Point{1.0, 1.0}, true},
		{Point{0.0, 0.0}, Point{1.0, 1.0}, Point{1.0, 1.0}, Point{0.0, 0.0}, Point{0.0, 0.0}, Point{1.0, 1.0}, true},
		// crossing
		{Point{0.0, 0.0}, Point{1.0, 1.0}, Point{1.0, 0.0}, Point{0.0, 1.0}, Point{0.5, 0.5}, Point{0.5, 0.5}, true},
		// touching at an endpoint
		{Point{0.0, 0.0}, Point{1.0, 1.0}, Point{1.0, 1.0}, Point{2.0, 0.0}, Point{1.0, 1.0}, Point{1.0, 1.0}, true},
		// parallel but not collinear
		{Point{0.0, 0.0}, Point{1.0, 0.0}, Point{0.0, 1.0}, Point{1.0, 1.0}, Point{}, Point{}, false},
		// collinear with partial overlap
		{Point{0.0, 0.0}, Point{0.0, 1.0}, Point{0.0, 0.5}, Point{0.0, 1.5}, Point{0.0, 0.5}, Point{0.0, 1.0}, true},
		// collinear but disjoint
		{Point{0.0, 0.0}, Point{0.0, 1.0}, Point{0.0, 1.5}, Point{0.0, 2.0}, Point{}, Point{}, false},
		// disjoint
		{Point{0.0, 0.0}, Point{1.0, 1.0}, Point{2.0, 0.0}, Point{3.0, 0.0}, Point{}, Point{}, false},
	}
	for _, tt := range tts {
		isxn0, isxn1, ok := IntersectSegments(tt.a0, tt.a1, tt.b0, tt.b1)
		test.T(t, ok, tt.ok)
		if ok {
			test.T(t, isxn0, tt.isxn0)
			test.T(t, isxn1, tt.isxn1)
		}
	}
}

func segmentEnvelopes(coords []Point) []Envelope {
	envs := make([]Envelope, 0, len(coords)-1)
	for i := 0; i+1 < len(coords); i++ {
		envs = append(envs, NewEnvelope(coords[i], coords[i+1]))
	}
	return envs
}

func sortPairs(pairs [][2]int) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
}

func TestSelfIntersectionsBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for iter := 0; iter < 20; iter++ {
		var coords []Point
		if iter%2 == 0 {
			coords = starRing(rnd, 4+rnd.Intn(40))
		} else {
			// deliberately self-crossing path
			n := 4 + rnd.Intn(40)
			coords = make([]Point, n)
			for i := range coords {
				coords[i] = Point{rnd.Float64(), rnd.Float64()}
			}
		}

		envs := segmentEnvelopes(coords)
		var want [][2]int
		for i := range envs {
			for j := i + 1; j < len(envs); j++ {
				if envs[i].Intersects(envs[j]) {
					want = append(want, [2]int{i, j})
				}
			}
		}

		for _, degree := range []int{2, 16} {
			tree := NewSegRTree(degree, envs)
			got := tree.SelfIntersectionPairs()
			sortPairs(got)
			test.T(t, got, want)
		}
	}
}

func TestPairwiseIntersectionsBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(31))
	for iter := 0; iter < 20; iter++ {
		a := starRing(rnd, 4+rnd.Intn(30))
		b := starRing(rnd, 4+rnd.Intn(30))
		for i := range b {
			b[i] = b[i].Add(Point{rnd.Float64() - 0.5, rnd.Float64() - 0.5})
		}

		envsA, envsB := segmentEnvelopes(a), segmentEnvelopes(b)
		var want [][2]int
		for i := range envsA {
			for j := range envsB {
				if envsA[i].Intersects(envsB[j]) {
					want = append(want, [2]int{i, j})
				}
			}
		}

		treeA := NewSegRTree(16, envsA)
		treeB := NewSegRTree(4, envsB)
		got := treeA.IntersectionPairs(treeB)
		sortPairs(got)
		test.T(t, got, want)
	}
}

func TestScannerAbandon(t *testing.T) {
	coords := starRing(rand.New(rand.NewSource(3)), 30)
	tree := NewLineString(coords).RTree()

	// draining partially and restarting yields the same first pair
	s := tree.SelfIntersections()
	test.That(t, s.Scan())
	i0, j0 := s.Pair()

	s = tree.SelfIntersections()
	test.That(t, s.Scan())
	i1, j1 := s.Pair()
	test.T(t, i0, i1)
	test.T(t, j0, j1)
}

func TestSelfIntersectionsEmpty(t *testing.T) {
	test.T(t, len(EmptySegRTree().SelfIntersectionPairs()), 0)
	test.T(t, len(EmptySegRTree().IntersectionPairs(EmptySegRTree())), 0)
}
