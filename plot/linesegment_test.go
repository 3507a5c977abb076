package plot

import (
	"math"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drkutuzov/glycocalyx-image-tools/geom"
	"github.com/drkutuzov/glycocalyx-image-tools/profile"
)

func testPolyline(t *testing.T) *geom.Polyline {
	poly, err := geom.NewPolyline(
		[]float64{0, 1, 2}, []float64{0, 0, 0}, []float64{1, 2, 3},
	)
	if err != nil {
		t.Fatal(err.Error())
	}
	return poly
}

func TestSegmentMeansAndNormRange(t *testing.T) {
	p, err := NewLineSegmentPlot(testPolyline(t))
	assert.NoError(t, err)

	means := p.SegmentMeans()
	assert.Equal(t, []float64{1.5, 2.5}, means)

	lo, hi := p.NormRange()
	assert.Equal(t, 1.5, lo)
	assert.Equal(t, 2.5, hi)
}

func TestTooFewVertices(t *testing.T) {
	poly, err := geom.NewPolyline(
		[]float64{0}, []float64{0}, []float64{1},
	)
	assert.NoError(t, err)
	_, err = NewLineSegmentPlot(poly)
	assert.Error(t, err)
}

func TestScriptContents(t *testing.T) {
	p, err := NewLineSegmentPlot(
		testPolyline(t),
		Colormap("plasma"), LW(3),
		XLabel("x"), YLabel("y"), CBarLabel("thickness"),
		XLim(-1, 3), YLim(-1, 1), Title("wall"),
	)
	assert.NoError(t, err)

	s := p.Script("out.png")
	assert.Contains(t, s, "LineCollection")
	assert.Contains(t, s, "cmap='plasma'")
	assert.Contains(t, s, "Normalize(1.5, 2.5)")
	assert.Contains(t, s, "means = np.array([1.5, 2.5])")
	assert.Contains(t, s, "linewidths=3")
	assert.Contains(t, s, "cbar.set_label(r'thickness')")
	assert.Contains(t, s, "ax.set_xlim(-1, 3)")
	assert.Contains(t, s, "plt.savefig('out.png')")
	assert.False(t, strings.Contains(s, "plt.show()"))

	assert.Contains(t, p.Script(""), "plt.show()")
}

func TestCrossSection(t *testing.T) {
	seg := &profile.Segment{
		A: 2, S: 0.5, D: 1.5, Xo: 0.75, Yo: -0.25, Theta: 0.9,
	}
	ts := linspace(-2, 2, 41)
	zs := CrossSection(seg, ts)

	// Along the normal through the peak the rotated x coordinate is 0, so
	// the curve is A * SmearedGauss(0, t, s, d).
	for i, tt := range ts {
		want := seg.A * profile.SmearedGauss(0, tt, seg.S, seg.D)
		assert.InDelta(t, want, zs[i], 1e-12, "offset %g", tt)
	}

	// Peak at the center, symmetric falloff.
	mid := len(ts) / 2
	assert.InDelta(t, zs[mid-4], zs[mid+4], 1e-12)
	assert.Greater(t, zs[mid], zs[0])
}

func TestLinspace(t *testing.T) {
	xs := linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)
	assert.Equal(t, math.Pi, linspace(0, math.Pi, 3)[2])
}

func TestSaveFigRunsPython(t *testing.T) {
	if _, err := exec.LookPath("python"); err != nil {
		t.Skip("python not installed")
	}

	p, err := NewLineSegmentPlot(testPolyline(t))
	assert.NoError(t, err)

	dir := t.TempDir()
	err = p.SaveFig(dir + "/trace.png")
	if err != nil {
		// matplotlib may be missing even when python is present.
		if strings.Contains(err.Error(), "matplotlib") {
			t.Skip("matplotlib not installed")
		}
		t.Fatal(err.Error())
	}
}
