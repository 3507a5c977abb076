package geom

import (
	"math"
	"testing"
)

const testEps = 1e-10

func epsEq(x, y, eps float64) bool {
	return x+eps > y && x-eps < y
}

func TestPointOps(t *testing.T) {
	table := []struct {
		p, q Point
		mid  Point
		dist float64
	}{
		{Point{0, 0}, Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 0}, Point{1, 0}, Point{0.5, 0}, 1},
		{Point{0, 0}, Point{3, 4}, Point{1.5, 2}, 5},
		{Point{-1, -1}, Point{1, 1}, Point{0, 0}, 2 * math.Sqrt2},
	}

	for i, test := range table {
		mid := test.p.Mid(test.q)
		if !epsEq(mid[0], test.mid[0], testEps) ||
			!epsEq(mid[1], test.mid[1], testEps) {
			t.Errorf("%d) %v.Mid(%v) -> %v instead of %v",
				i+1, test.p, test.q, mid, test.mid)
		}
		dist := test.p.Dist(test.q)
		if !epsEq(dist, test.dist, testEps) {
			t.Errorf("%d) %v.Dist(%v) -> %g instead of %g",
				i+1, test.p, test.q, dist, test.dist)
		}
	}
}

func TestGridCoords(t *testing.T) {
	g, err := NewGrid(0, 4, -2, 2, 4, 4)
	if err != nil {
		t.Fatal(err.Error())
	}
	if g.Len() != 16 {
		t.Errorf("Len() -> %d instead of 16", g.Len())
	}

	table := []struct {
		ix, iy int
		x, y   float64
	}{
		{0, 0, 0.5, -1.5},
		{3, 0, 3.5, -1.5},
		{0, 3, 0.5, 1.5},
		{2, 1, 2.5, -0.5},
	}

	for i, test := range table {
		x, y := g.Coords(g.Idx(test.ix, test.iy))
		if !epsEq(x, test.x, testEps) || !epsEq(y, test.y, testEps) {
			t.Errorf("%d) Coords(Idx(%d, %d)) -> (%g, %g) instead of (%g, %g)",
				i+1, test.ix, test.iy, x, y, test.x, test.y)
		}
	}

	xs, ys := g.Xs(), g.Ys()
	if len(xs) != g.Len() || len(ys) != g.Len() {
		t.Fatalf("Xs(), Ys() lengths are (%d, %d) instead of %d",
			len(xs), len(ys), g.Len())
	}
	for i := range xs {
		x, y := g.Coords(i)
		if xs[i] != x || ys[i] != y {
			t.Errorf("Xs()[%d], Ys()[%d] disagree with Coords(%d)", i, i, i)
		}
	}
}

func TestGridErrors(t *testing.T) {
	if _, err := NewGrid(0, 1, 0, 1, 0, 10); err == nil {
		t.Errorf("NewGrid accepted a zero pixel count.")
	}
	if _, err := NewGrid(1, 1, 0, 1, 10, 10); err == nil {
		t.Errorf("NewGrid accepted empty x bounds.")
	}
}

func TestPolylineSegmentMeans(t *testing.T) {
	p, err := NewPolyline(
		[]float64{0, 1, 2}, []float64{0, 0, 0}, []float64{1, 2, 3},
	)
	if err != nil {
		t.Fatal(err.Error())
	}

	means := p.SegmentMeans()
	want := []float64{1.5, 2.5}
	if len(means) != len(want) {
		t.Fatalf("SegmentMeans() -> %d means instead of %d",
			len(means), len(want))
	}
	for i := range want {
		if !epsEq(means[i], want[i], testEps) {
			t.Errorf("SegmentMeans()[%d] -> %g instead of %g",
				i, means[i], want[i])
		}
	}

	single, _ := NewPolyline([]float64{0}, []float64{0}, []float64{1})
	if len(single.SegmentMeans()) != 0 {
		t.Errorf("One-vertex polyline produced segments.")
	}
}

func TestPolylineLengthMismatch(t *testing.T) {
	_, err := NewPolyline([]float64{0, 1}, []float64{0}, []float64{1, 2})
	if err == nil {
		t.Errorf("NewPolyline accepted mismatched slice lengths.")
	}
}
