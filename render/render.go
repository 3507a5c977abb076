/*package render synthesizes glycocalyx intensity maps from segment models
and exports them as colormapped PNG images.
*/
package render

import (
	"image"
	"image/png"
	"os"

	"github.com/drkutuzov/glycocalyx-image-tools/geom"
	"github.com/drkutuzov/glycocalyx-image-tools/profile"
	"github.com/drkutuzov/glycocalyx-image-tools/render/palette"
)

// Map evaluates the summed intensity of segs at every sample of g.
func Map(g *geom.Grid, segs []*profile.Segment) []float64 {
	buf := make([]float64, g.Len())
	for _, seg := range segs {
		seg.AddGrid(g, buf)
	}
	return buf
}

// Image maps vals, a flat grid of intensities laid out according to g, onto
// an RGBA image through p. Intensities are normalized linearly over
// [min, max] of vals. Rows are flipped so increasing y points up, the way
// the map would appear in a plot.
func Image(g *geom.Grid, vals []float64, p palette.Palette) *image.RGBA {
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Nx, g.Ny))
	for iy := 0; iy < g.Ny; iy++ {
		for ix := 0; ix < g.Nx; ix++ {
			v := vals[g.Idx(ix, iy)]
			img.Set(ix, g.Ny-1-iy, p.At((v-lo)/span))
		}
	}
	return img
}

// WritePNG writes img to fname.
func WritePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
