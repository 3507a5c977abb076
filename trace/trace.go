/*package trace reads digitized vessel-wall traces from column text files
and converts them into glycocalyx profile segments.
*/
package trace

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/drkutuzov/glycocalyx-image-tools/geom"
	"github.com/drkutuzov/glycocalyx-image-tools/profile"
)

// Read reads a wall trace from the given file. xCol and yCol index the
// coordinate columns and vCol the per-vertex scalar column. A negative vCol
// means the file carries no values and every vertex gets 0.
func Read(fname string, xCol, yCol, vCol int) (p *geom.Polyline, err error) {
	colIdxs := []int{xCol, yCol}
	if vCol >= 0 {
		colIdxs = append(colIdxs, vCol)
	}

	// The table package reports failures by panicking; convert them back
	// into returned errors.
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("%v", r)
		}
	}()
	cols := table.TextFile(fname).ReadFloat64s(colIdxs)

	xs, ys := cols[0], cols[1]
	var vals []float64
	if vCol >= 0 {
		vals = cols[2]
	} else {
		vals = make([]float64, len(xs))
	}

	return geom.NewPolyline(xs, ys, vals)
}

// Segments converts a trace into one profile segment per polyline edge,
// sharing the peak amplitude a and standard deviation s.
func Segments(p *geom.Polyline, a, s float64) ([]*profile.Segment, error) {
	if p.Len() < 2 {
		return nil, fmt.Errorf(
			"Cannot build segments from a trace with %d vertices.", p.Len(),
		)
	}

	segs := make([]*profile.Segment, p.Len()-1)
	for i := range segs {
		segs[i] = profile.SegmentFromEndpoints(
			p.Vertex(i), p.Vertex(i+1), a, s,
		)
	}
	return segs, nil
}
