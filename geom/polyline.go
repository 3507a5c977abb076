package geom

import (
	"fmt"
)

// Polyline is an ordered sequence of traced vertices with one scalar value
// per vertex, e.g. a digitized vessel wall with a measured glycocalyx
// thickness at every point.
type Polyline struct {
	Xs, Ys, Vals []float64
}

// NewPolyline wraps the given coordinate and value slices. The slices must
// have equal length.
func NewPolyline(xs, ys, vals []float64) (*Polyline, error) {
	if len(xs) != len(ys) || len(xs) != len(vals) {
		return nil, fmt.Errorf(
			"Polyline slice lengths are not equal: %d xs, %d ys, %d vals.",
			len(xs), len(ys), len(vals),
		)
	}
	return &Polyline{xs, ys, vals}, nil
}

// Len returns the number of vertices.
func (p *Polyline) Len() int { return len(p.Xs) }

// Vertex returns the i'th vertex.
func (p *Polyline) Vertex(i int) Point { return Point{p.Xs[i], p.Ys[i]} }

// SegmentMeans returns the mean of the two endpoint values for each of the
// Len() - 1 segments joining consecutive vertices.
func (p *Polyline) SegmentMeans() []float64 {
	if p.Len() == 0 {
		return []float64{}
	}
	means := make([]float64, p.Len()-1)
	for i := range means {
		means[i] = (p.Vals[i] + p.Vals[i+1]) / 2
	}
	return means
}
