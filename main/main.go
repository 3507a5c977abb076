/*gcxmap synthesizes glycocalyx fluorescence intensity maps and plots traced
vessel walls. Each mode is driven by a gcfg configuration file; run with
-ExampleConfig to print a template.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/gcfg.v1"

	"github.com/drkutuzov/glycocalyx-image-tools/geom"
	"github.com/drkutuzov/glycocalyx-image-tools/plot"
	"github.com/drkutuzov/glycocalyx-image-tools/profile"
	"github.com/drkutuzov/glycocalyx-image-tools/render"
	"github.com/drkutuzov/glycocalyx-image-tools/render/palette"
	"github.com/drkutuzov/glycocalyx-image-tools/trace"
)

func main() {
	var (
		mapStr, plotStr, exampleConfig string
	)
	vars := map[string]*string{
		"Map":           &mapStr,
		"Plot":          &plotStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&mapStr, "Map", "",
		"Configuration file for [Map] mode: synthesize an intensity map "+
			"from wall segments and write it as a PNG.",
	)
	flag.StringVar(
		&plotStr, "Plot", "",
		"Configuration file for [Plot] mode: draw a traced wall as colored "+
			"segments with a colorbar.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Map' and 'Plot'.",
	)

	flag.Parse()

	mode, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch mode {
	case "Map":
		wrap := DefaultMapWrapper()
		if err := gcfg.ReadFileInto(wrap, mapStr); err != nil {
			log.Fatal(err.Error())
		}
		mapMain(wrap)
	case "Plot":
		wrap := DefaultPlotWrapper()
		if err := gcfg.ReadFileInto(wrap, plotStr); err != nil {
			log.Fatal(err.Error())
		}
		plotMain(&wrap.Plot)
	case "ExampleConfig":
		switch exampleConfig {
		case "Map":
			fmt.Println(ExampleMapFile)
		case "Plot":
			fmt.Println(ExamplePlotFile)
		default:
			log.Fatalf(
				"Unrecognized ExampleConfig argument '%s'. Accepted "+
					"arguments are 'Map' and 'Plot'.", exampleConfig,
			)
		}
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setModes := []string{}
	for mode, val := range vars {
		if *val != "" {
			setModes = append(setModes, mode)
		}
	}

	if len(setModes) == 0 {
		return "", fmt.Errorf(
			"No mode selected. Run '%s --help' for usage.", os.Args[0],
		)
	} else if len(setModes) > 1 {
		return "", fmt.Errorf(
			"The modes %v cannot be used together.", setModes,
		)
	}
	return setModes[0], nil
}

func mapMain(wrap *MapWrapper) {
	con := &wrap.Map
	if !con.ValidOutput() {
		log.Fatal("[Map] variable 'Output' not set.")
	} else if !con.ValidBounds() {
		log.Fatalf(
			"[Map] bounds [%g, %g) x [%g, %g) are empty.",
			con.XMin, con.XMax, con.YMin, con.YMax,
		)
	} else if !con.ValidPixels() {
		log.Fatalf(
			"[Map] pixel counts (%d, %d) must be positive.",
			con.PixelsX, con.PixelsY,
		)
	}

	segs := []*profile.Segment{}
	for name, wall := range wrap.Wall {
		if err := wall.CheckInit(name); err != nil {
			log.Fatal(err.Error())
		}
		segs = append(segs, wall.Segment())
	}
	for name, seg := range wrap.Segment {
		if err := seg.CheckInit(name); err != nil {
			log.Fatal(err.Error())
		}
		segs = append(segs, seg.Segment())
	}
	if len(segs) == 0 {
		log.Fatal("Config contains no [Wall] or [Segment] sections.")
	}

	p, err := palette.ByName(con.Palette)
	if err != nil {
		log.Fatal(err.Error())
	}
	g, err := geom.NewGrid(
		con.XMin, con.XMax, con.YMin, con.YMax, con.PixelsX, con.PixelsY,
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	vals := render.Map(g, segs)
	if err := render.WritePNG(con.Output, render.Image(g, vals, p)); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %d segments to %s.", len(segs), con.Output)

	if con.ProfileFile != "" {
		plot.ProfilePlot(
			segs, con.ProfileRadius, con.ProfileSamples, con.ProfileFile,
		)
	}
}

func plotMain(con *PlotConfig) {
	if !con.ValidInput() {
		log.Fatal("[Plot] variable 'Input' not set.")
	} else if !con.ValidCols() {
		log.Fatalf(
			"[Plot] coordinate columns (%d, %d) must be non-negative.",
			con.XCol, con.YCol,
		)
	} else if !con.ValidLineWidth() {
		log.Fatalf("[Plot] LineWidth %g must be positive.", con.LineWidth)
	}

	poly, err := trace.Read(con.Input, con.XCol, con.YCol, con.ValCol)
	if err != nil {
		log.Fatal(err.Error())
	}

	opts := []plot.Option{
		plot.Colormap(con.Colormap), plot.LW(con.LineWidth),
	}
	if con.Title != "" {
		opts = append(opts, plot.Title(con.Title))
	}
	if con.XLabel != "" {
		opts = append(opts, plot.XLabel(con.XLabel))
	}
	if con.YLabel != "" {
		opts = append(opts, plot.YLabel(con.YLabel))
	}
	if con.CBarLabel != "" {
		opts = append(opts, plot.CBarLabel(con.CBarLabel))
	}

	p, err := plot.NewLineSegmentPlot(poly, opts...)
	if err != nil {
		log.Fatal(err.Error())
	}

	if con.Output == "" {
		err = p.Show()
	} else {
		err = p.SaveFig(con.Output)
	}
	if err != nil {
		log.Fatal(err.Error())
	}
}
