package geom

import (
	"fmt"
)

// Grid provides an interface for reasoning over a 1D slice as if it were a
// uniform 2D sampling grid. Samples sit at pixel centers: the coordinate of
// pixel (ix, iy) is (X0 + (ix+0.5)*Dx, Y0 + (iy+0.5)*Dy). Values are stored
// row major with x varying fastest.
type Grid struct {
	X0, Y0 float64
	Dx, Dy float64
	Nx, Ny int
}

// NewGrid returns a grid of nx * ny pixels spanning [xMin, xMax) and
// [yMin, yMax).
func NewGrid(xMin, xMax, yMin, yMax float64, nx, ny int) (*Grid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf(
			"Grid pixel counts must be positive, but are (%d, %d).", nx, ny,
		)
	}
	if xMax <= xMin || yMax <= yMin {
		return nil, fmt.Errorf(
			"Grid bounds [%g, %g) x [%g, %g) are empty.",
			xMin, xMax, yMin, yMax,
		)
	}

	g := &Grid{
		X0: xMin, Y0: yMin,
		Dx: (xMax - xMin) / float64(nx),
		Dy: (yMax - yMin) / float64(ny),
		Nx: nx, Ny: ny,
	}
	return g, nil
}

// Len returns the number of samples in the grid.
func (g *Grid) Len() int { return g.Nx * g.Ny }

// Idx returns the flat index of pixel (ix, iy).
func (g *Grid) Idx(ix, iy int) int { return ix + iy*g.Nx }

// Coords returns the sample coordinates of the pixel with flat index idx.
func (g *Grid) Coords(idx int) (x, y float64) {
	ix, iy := idx%g.Nx, idx/g.Nx
	x = g.X0 + (float64(ix)+0.5)*g.Dx
	y = g.Y0 + (float64(iy)+0.5)*g.Dy
	return x, y
}

// Xs returns the flattened x coordinates of every sample, in index order.
func (g *Grid) Xs() []float64 {
	xs := make([]float64, g.Len())
	for i := range xs {
		xs[i], _ = g.Coords(i)
	}
	return xs
}

// Ys returns the flattened y coordinates of every sample, in index order.
func (g *Grid) Ys() []float64 {
	ys := make([]float64, g.Len())
	for i := range ys {
		_, ys[i] = g.Coords(i)
	}
	return ys
}
