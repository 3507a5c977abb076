/*package geom provides the 2D primitives used by the glycocalyx intensity
model: points in the image plane, uniform sampling grids, and traced
polylines.
*/
package geom

import (
	"math"
)

// Point is a position in the image plane.
type Point [2]float64

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p[0] - q[0], p[1] - q[1]}
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{(p[0] + q[0]) / 2, (p[1] + q[1]) / 2}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := q[0]-p[0], q[1]-p[1]
	return math.Sqrt(dx*dx + dy*dy)
}
