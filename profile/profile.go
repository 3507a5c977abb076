/*package profile implements the closed-form fluorescence intensity model of
the glycocalyx: a 2D rotationally symmetric Gaussian convolved with a
finite-width line segment, rotated and translated to follow a vessel wall.
*/
package profile

import (
	. "math"

	"github.com/drkutuzov/glycocalyx-image-tools/geom"
)

// SmearedGauss evaluates, at (x, y), a 2D isotropic Gaussian of standard
// deviation s convolved with a line segment of width d centered on the
// origin and aligned with the x axis. The convolution is analytic: the x
// term collapses to a difference of error functions and the y term remains
// Gaussian. s must be nonzero; d may be 0, in which case the erf difference
// vanishes and the result is identically 0.
func SmearedGauss(x, y, s, d float64) float64 {
	x1 := (x - d/2) / (Sqrt2 * s)
	x2 := (x + d/2) / (Sqrt2 * s)
	return 0.5 * (Erf(x2) - Erf(x1)) * Exp(-y*y/(2*s*s))
}

// SmearedGaussRotated evaluates SmearedGauss with the segment axis rotated
// by theta radians about the origin.
func SmearedGaussRotated(x, y, s, d, theta float64) float64 {
	xRot := Cos(theta)*x - Sin(theta)*y
	yRot := Sin(theta)*x + Cos(theta)*y
	return SmearedGauss(xRot, yRot, s, d)
}

// PerpAngle returns the angle, in radians, perpendicular to the segment
// joining p1 and p2. This is the orientation expected by Segment.Theta.
// A vertical segment (x1 == x2) returns exactly 0.
func PerpAngle(p1, p2 geom.Point) float64 {
	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	if x1 == x2 {
		return 0
	}
	return Pi/2 - Atan((y2-y1)/(x2-x1))
}

// Segment holds the intensity profile parameters of one vessel-wall
// segment.
type Segment struct {
	A      float64 // maximum fluorescence intensity
	S      float64 // standard deviation of the glycocalyx peak
	D      float64 // width of the segment the profile is averaged along
	Xo, Yo float64 // coordinates of the peak
	Theta  float64 // angle between the wall segment and the x axis, radians
}

// SegmentFromEndpoints returns the Segment whose wall runs from p1 to p2:
// the peak sits at the midpoint, the width is the endpoint distance, and
// the orientation comes from PerpAngle.
func SegmentFromEndpoints(p1, p2 geom.Point, a, s float64) *Segment {
	mid := p1.Mid(p2)
	return &Segment{
		A: a, S: s, D: p1.Dist(p2),
		Xo: mid[0], Yo: mid[1],
		Theta: PerpAngle(p1, p2),
	}
}

// Intensity returns the model intensity at (x, y).
func (seg *Segment) Intensity(x, y float64) float64 {
	return seg.A * SmearedGaussRotated(
		x-seg.Xo, y-seg.Yo, seg.S, seg.D, seg.Theta,
	)
}

// EvalGrid evaluates Intensity at every sample of g. If buf is non-nil it
// must have length g.Len() and is overwritten (the buffer is returned as a
// convenience).
func (seg *Segment) EvalGrid(g *geom.Grid, buf []float64) []float64 {
	if buf == nil {
		buf = make([]float64, g.Len())
	}
	for i := range buf {
		x, y := g.Coords(i)
		buf[i] = seg.Intensity(x, y)
	}
	return buf
}

// AddGrid adds Intensity at every sample of g to buf, which must have
// length g.Len(). Summing over segments this way synthesizes the intensity
// map of a whole wall trace.
func (seg *Segment) AddGrid(g *geom.Grid, buf []float64) {
	for i := range buf {
		x, y := g.Coords(i)
		buf[i] += seg.Intensity(x, y)
	}
}
