package plot

import (
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/drkutuzov/glycocalyx-image-tools/profile"
)

var profileColors = []string{
	"DarkSlateBlue", "DarkTurquoise", "DarkViolet",
	"DeepPink", "DarkOrange", "DimGray",
}

// CrossSection samples a segment's intensity along the line through its peak
// normal to the wall, at the given signed offsets.
func CrossSection(seg *profile.Segment, ts []float64) []float64 {
	zs := make([]float64, len(ts))
	for i, t := range ts {
		// (sin theta, cos theta) is the unit normal in image coordinates.
		x := seg.Xo + t*math.Sin(seg.Theta)
		y := seg.Yo + t*math.Cos(seg.Theta)
		zs[i] = seg.Intensity(x, y)
	}
	return zs
}

// ProfilePlot draws the cross-section intensity curves of segs out to
// +-rMax from each peak, sampled at n points, and saves the figure to
// fname.
func ProfilePlot(segs []*profile.Segment, rMax float64, n int, fname string) {
	plt.Reset()
	plt.Figure(plt.FigSize(8, 6))

	ts := linspace(-rMax, rMax, n)
	for i, seg := range segs {
		plt.Plot(ts, CrossSection(seg, ts),
			plt.LW(2), plt.C(profileColors[i%len(profileColors)]))
	}

	plt.XLabel(`$r$`, plt.FontSize(16))
	plt.YLabel(`$I(r)$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
	plt.Execute()
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*dx
	}
	xs[n-1] = hi
	return xs
}
