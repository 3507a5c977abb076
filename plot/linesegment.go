/*package plot draws glycocalyx traces and intensity profiles. Polylines are
rendered through generated matplotlib scripts; 1D cross-sections go through
the pyplot wrapper directly.
*/
package plot

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/drkutuzov/glycocalyx-image-tools/geom"
)

// LineSegmentPlot renders a polyline as consecutive line segments, each
// colored by the mean of its two endpoint values mapped through a matplotlib
// colormap, with a colorbar spanning the range of segment means.
type LineSegmentPlot struct {
	poly *geom.Polyline

	cmap      string
	lw        float64
	title     string
	xLabel    string
	yLabel    string
	cbarLabel string
	xLim      *[2]float64
	yLim      *[2]float64
}

// An Option modifies the appearance of a LineSegmentPlot.
type Option func(*LineSegmentPlot)

// Colormap sets the matplotlib colormap name. The name is passed through to
// matplotlib unchanged.
func Colormap(name string) Option {
	return func(p *LineSegmentPlot) { p.cmap = name }
}

// LW sets the segment line width.
func LW(w float64) Option {
	return func(p *LineSegmentPlot) { p.lw = w }
}

// Title sets the axes title.
func Title(s string) Option {
	return func(p *LineSegmentPlot) { p.title = s }
}

// XLabel sets the x axis label.
func XLabel(s string) Option {
	return func(p *LineSegmentPlot) { p.xLabel = s }
}

// YLabel sets the y axis label.
func YLabel(s string) Option {
	return func(p *LineSegmentPlot) { p.yLabel = s }
}

// CBarLabel sets the colorbar label.
func CBarLabel(s string) Option {
	return func(p *LineSegmentPlot) { p.cbarLabel = s }
}

// XLim sets the x axis limits.
func XLim(lo, hi float64) Option {
	return func(p *LineSegmentPlot) { p.xLim = &[2]float64{lo, hi} }
}

// YLim sets the y axis limits.
func YLim(lo, hi float64) Option {
	return func(p *LineSegmentPlot) { p.yLim = &[2]float64{lo, hi} }
}

// NewLineSegmentPlot creates a plot of poly. poly needs at least two
// vertices to contain a segment.
func NewLineSegmentPlot(
	poly *geom.Polyline, opts ...Option,
) (*LineSegmentPlot, error) {
	if poly.Len() < 2 {
		return nil, fmt.Errorf(
			"Cannot plot segments of a polyline with %d vertices.",
			poly.Len(),
		)
	}

	p := &LineSegmentPlot{poly: poly, cmap: "viridis", lw: 2}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// SegmentMeans returns the per-segment color values, the mean of each
// segment's two endpoint values.
func (p *LineSegmentPlot) SegmentMeans() []float64 {
	return p.poly.SegmentMeans()
}

// NormRange returns the linear color normalization range: the minimum and
// maximum of the segment means.
func (p *LineSegmentPlot) NormRange() (lo, hi float64) {
	means := p.SegmentMeans()
	lo, hi = means[0], means[0]
	for _, m := range means {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	return lo, hi
}

// Script returns the matplotlib source that draws the plot. If fname is
// nonempty the script saves the figure there, otherwise it shows an
// interactive window.
func (p *LineSegmentPlot) Script(fname string) string {
	lo, hi := p.NormRange()

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `import numpy as np
import matplotlib.pyplot as plt
from matplotlib.collections import LineCollection
from matplotlib.colors import Normalize

x = np.array(%s)
y = np.array(%s)
means = np.array(%s)
segs = np.stack([np.column_stack([x[:-1], y[:-1]]),
                 np.column_stack([x[1:], y[1:]])], axis=1)
lc = LineCollection(segs, cmap='%s', norm=Normalize(%g, %g),
                    linewidths=%g)
lc.set_array(means)
ax = plt.gca()
ax.add_collection(lc)
ax.autoscale()
cbar = plt.colorbar(lc, ax=ax)
`, pyList(p.poly.Xs), pyList(p.poly.Ys), pyList(p.SegmentMeans()),
		p.cmap, lo, hi, p.lw,
	)

	if p.cbarLabel != "" {
		fmt.Fprintf(buf, "cbar.set_label(r'%s')\n", p.cbarLabel)
	}
	if p.title != "" {
		fmt.Fprintf(buf, "ax.set_title(r'%s')\n", p.title)
	}
	if p.xLabel != "" {
		fmt.Fprintf(buf, "ax.set_xlabel(r'%s')\n", p.xLabel)
	}
	if p.yLabel != "" {
		fmt.Fprintf(buf, "ax.set_ylabel(r'%s')\n", p.yLabel)
	}
	if p.xLim != nil {
		fmt.Fprintf(buf, "ax.set_xlim(%g, %g)\n", p.xLim[0], p.xLim[1])
	}
	if p.yLim != nil {
		fmt.Fprintf(buf, "ax.set_ylim(%g, %g)\n", p.yLim[0], p.yLim[1])
	}

	if fname == "" {
		fmt.Fprintf(buf, "plt.show()\n")
	} else {
		fmt.Fprintf(buf, "plt.savefig('%s')\n", fname)
	}
	return buf.String()
}

// SaveFig runs the script through python, saving the figure to fname.
func (p *LineSegmentPlot) SaveFig(fname string) error {
	return runPython(p.Script(fname))
}

// Show runs the script through python, opening an interactive window.
func (p *LineSegmentPlot) Show() error {
	return runPython(p.Script(""))
}

func pyList(xs []float64) string {
	strs := make([]string, len(xs))
	for i, x := range xs {
		strs[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

func runPython(script string) error {
	f, err := os.CreateTemp("", "gcx_plot_*.py")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write([]byte(script)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	c := exec.Command("python", f.Name())
	out := &bytes.Buffer{}
	c.Stdout, c.Stderr = out, out
	if err := c.Run(); err != nil {
		return fmt.Errorf("python failed: %s: %s", err.Error(), out.String())
	}
	return nil
}
