/*package palette maps normalized intensities onto colors for PNG export.
Palettes interpolate between anchor colors in Lab space.
*/
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// A Palette maps a value in [0, 1] to a color. Values outside [0, 1] are
// clamped.
type Palette interface {
	At(t float64) color.Color
}

type anchored struct {
	name    string
	anchors []colorful.Color
}

func (p *anchored) At(t float64) color.Color {
	if t <= 0 {
		return p.anchors[0]
	}
	if t >= 1 {
		return p.anchors[len(p.anchors)-1]
	}

	f := t * float64(len(p.anchors)-1)
	i := int(f)
	return p.anchors[i].BlendLab(p.anchors[i+1], f-float64(i)).Clamped()
}

var palettes = map[string]*anchored{
	"gray": {"gray", []colorful.Color{
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
	}},
	"viridis": {"viridis", []colorful.Color{
		{R: 0.267, G: 0.005, B: 0.329},
		{R: 0.254, G: 0.265, B: 0.530},
		{R: 0.164, G: 0.471, B: 0.558},
		{R: 0.128, G: 0.567, B: 0.551},
		{R: 0.267, G: 0.749, B: 0.441},
		{R: 0.741, G: 0.873, B: 0.150},
		{R: 0.993, G: 0.906, B: 0.144},
	}},
	"inferno": {"inferno", []colorful.Color{
		{R: 0.001, G: 0.000, B: 0.014},
		{R: 0.258, G: 0.039, B: 0.406},
		{R: 0.578, G: 0.148, B: 0.404},
		{R: 0.865, G: 0.316, B: 0.226},
		{R: 0.988, G: 0.645, B: 0.040},
		{R: 0.988, G: 0.998, B: 0.645},
	}},
}

// ByName returns the palette with the given name. Valid names are "gray",
// "viridis", and "inferno".
func ByName(name string) (Palette, error) {
	p, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("Unknown palette '%s'.", name)
	}
	return p, nil
}
