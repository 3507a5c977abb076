package main

import (
	"fmt"

	"github.com/drkutuzov/glycocalyx-image-tools/geom"
	"github.com/drkutuzov/glycocalyx-image-tools/profile"
)

const (
	ExampleMapFile = `[Map]

#######################
# Required Parameters #
#######################

# File the synthesized intensity map will be written to, as a PNG.
Output = gcx_map.png

# Bounds of the sampled region, in image coordinates.
XMin = 0
XMax = 50
YMin = 0
YMax = 50

# Number of pixels along each axis.
PixelsX = 500
PixelsY = 500

#######################
# Optional Parameters #
#######################

# Palette used for the PNG. One of gray, viridis, inferno. Default is
# viridis.
# Palette = inferno

# If set, a figure with the intensity cross-section of every segment is
# saved here (requires python with matplotlib on the path).
# ProfileFile = profiles.png
# ProfileRadius = 5
# ProfileSamples = 200

# Walls are specified by their endpoints: the peak sits at the midpoint and
# the orientation and width follow from the endpoints. Specify as many as
# needed, each with its own name.
[Wall "upper"]
A  = 10
S  = 1.5
X1 = 5
Y1 = 40
X2 = 45
Y2 = 42

# Segments carry explicit center, width, and orientation (radians) instead
# of endpoints.
[Segment "stub"]
A     = 8
S     = 1.2
D     = 12
Xo    = 25
Yo    = 10
Theta = 1.571`

	ExamplePlotFile = `[Plot]

#######################
# Required Parameters #
#######################

# Text file with one traced wall vertex per row.
Input = trace.txt

#######################
# Optional Parameters #
#######################

# Figure file; if unset an interactive window opens instead.
# Output = trace.png

# Zero-based column indices of the x coordinate, y coordinate, and the
# per-vertex scalar (e.g. measured glycocalyx thickness). ValCol = -1 means
# the file has no value column. Defaults are 0, 1, 2.
# XCol   = 0
# YCol   = 1
# ValCol = 2

# Any matplotlib colormap name; passed through unchanged. Default is
# viridis.
# Colormap = plasma

# LineWidth = 2

# Labels. Matplotlib math text is allowed.
# Title     = Glycocalyx thickness
# XLabel    = x
# YLabel    = y
# CBarLabel = thickness`
)

type MapConfig struct {
	// Required
	Output                 string
	XMin, XMax, YMin, YMax float64
	PixelsX, PixelsY       int

	// Optional
	Palette        string
	ProfileFile    string
	ProfileRadius  float64
	ProfileSamples int
}

func (con *MapConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *MapConfig) ValidBounds() bool {
	return con.XMax > con.XMin && con.YMax > con.YMin
}
func (con *MapConfig) ValidPixels() bool {
	return con.PixelsX > 0 && con.PixelsY > 0
}

// WallConfig describes a segment by its endpoints, the way traced walls
// come out of an image.
type WallConfig struct {
	// Required
	A, S           float64
	X1, Y1, X2, Y2 float64

	// Optional
	Name string
}

func (wall *WallConfig) CheckInit(name string) error {
	if wall.S <= 0 {
		return fmt.Errorf(
			"Need to specify a positive S for Wall '%s'.", name,
		)
	}
	if wall.X1 == wall.X2 && wall.Y1 == wall.Y2 {
		return fmt.Errorf(
			"Endpoints of Wall '%s' coincide at (%g, %g).",
			name, wall.X1, wall.Y1,
		)
	}
	wall.Name = name
	return nil
}

func (wall *WallConfig) Segment() *profile.Segment {
	return profile.SegmentFromEndpoints(
		geom.Point{wall.X1, wall.Y1}, geom.Point{wall.X2, wall.Y2},
		wall.A, wall.S,
	)
}

// SegmentConfig describes a segment by explicit profile parameters.
type SegmentConfig struct {
	// Required
	A, S, D float64
	Xo, Yo  float64
	Theta   float64

	// Optional
	Name string
}

func (seg *SegmentConfig) CheckInit(name string) error {
	if seg.S <= 0 {
		return fmt.Errorf(
			"Need to specify a positive S for Segment '%s'.", name,
		)
	}
	if seg.D < 0 {
		return fmt.Errorf(
			"Segment '%s' given a negative width, %g.", name, seg.D,
		)
	}
	seg.Name = name
	return nil
}

func (seg *SegmentConfig) Segment() *profile.Segment {
	return &profile.Segment{
		A: seg.A, S: seg.S, D: seg.D,
		Xo: seg.Xo, Yo: seg.Yo, Theta: seg.Theta,
	}
}

type MapWrapper struct {
	Map     MapConfig
	Wall    map[string]*WallConfig
	Segment map[string]*SegmentConfig
}

func DefaultMapWrapper() *MapWrapper {
	con := MapConfig{}
	con.Palette = "viridis"
	con.ProfileRadius = 5
	con.ProfileSamples = 200
	return &MapWrapper{Map: con}
}

type PlotConfig struct {
	// Required
	Input string

	// Optional
	Output             string
	Colormap           string
	LineWidth          float64
	XCol, YCol, ValCol int
	Title              string
	XLabel, YLabel     string
	CBarLabel          string
}

func (con *PlotConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *PlotConfig) ValidCols() bool {
	return con.XCol >= 0 && con.YCol >= 0
}
func (con *PlotConfig) ValidLineWidth() bool {
	return con.LineWidth > 0
}

type PlotWrapper struct {
	Plot PlotConfig
}

func DefaultPlotWrapper() *PlotWrapper {
	con := PlotConfig{}
	con.Colormap = "viridis"
	con.LineWidth = 2
	con.XCol, con.YCol, con.ValCol = 0, 1, 2
	return &PlotWrapper{con}
}
