package trace

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drkutuzov/glycocalyx-image-tools/geom"
)

const testTrace = `0 0 1.0
1 0 2.0
1 1 3.0
`

func writeTrace(t *testing.T) string {
	fname := t.TempDir() + "/trace.txt"
	if err := os.WriteFile(fname, []byte(testTrace), 0666); err != nil {
		t.Fatal(err.Error())
	}
	return fname
}

func TestRead(t *testing.T) {
	p, err := Read(writeTrace(t), 0, 1, 2)
	assert.NoError(t, err)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []float64{0, 1, 1}, p.Xs)
	assert.Equal(t, []float64{0, 0, 1}, p.Ys)
	assert.Equal(t, []float64{1, 2, 3}, p.Vals)
}

func TestReadWithoutValues(t *testing.T) {
	p, err := Read(writeTrace(t), 0, 1, -1)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, p.Vals)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(t.TempDir()+"/missing.txt", 0, 1, -1)
	assert.Error(t, err)
}

func TestSegments(t *testing.T) {
	p, err := Read(writeTrace(t), 0, 1, 2)
	assert.NoError(t, err)

	segs, err := Segments(p, 5, 0.4)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(segs))

	// First edge is horizontal from (0,0) to (1,0).
	assert.InDelta(t, 0.5, segs[0].Xo, 1e-12)
	assert.InDelta(t, 0.0, segs[0].Yo, 1e-12)
	assert.InDelta(t, 1.0, segs[0].D, 1e-12)
	assert.InDelta(t, math.Pi/2, segs[0].Theta, 1e-12)
	assert.Equal(t, 5.0, segs[0].A)
	assert.Equal(t, 0.4, segs[0].S)

	// Second edge is vertical; its perpendicular angle is the documented 0.
	assert.InDelta(t, 0.0, segs[1].Theta, 1e-12)
	assert.InDelta(t, 1.0, segs[1].Xo, 1e-12)
	assert.InDelta(t, 0.5, segs[1].Yo, 1e-12)
}

func TestSegmentsTooShort(t *testing.T) {
	p, err := geom.NewPolyline([]float64{0}, []float64{0}, []float64{0})
	assert.NoError(t, err)
	_, err = Segments(p, 1, 1)
	assert.Error(t, err)
}
