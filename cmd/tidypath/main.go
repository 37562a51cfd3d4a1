package main

import (
	"fmt"
	"log"
	"os"

	"github.com/osuushi/tidypath/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. Paths are read from an SVG file, or with "-", from
// stdin as newline separated points in the form "x y", with each path
// separated by an extra newline. Edited paths are written to stdout as SVG.
var (
	app    = kingpin.New("tidypath", "Edit the anchor points of vector paths.")
	closed = app.Flag("closed", "Treat paths read from stdin as closed.").Bool()
	inputs = make(map[string]*string)

	smoothCmd     = withInput(app.Command("smooth", "Smooth the selected points, or the given indices."))
	smoothIndices = smoothCmd.Flag("index", "Point index to smooth. Repeatable.").Short('i').Ints()

	segmentCmd     = withInput(app.Command("segment", "Copy the points between the first and last selected points into a new path."))
	segmentLonger  = segmentCmd.Flag("longer", "On closed paths, take the longer arc.").Bool()
	segmentShorter = segmentCmd.Flag("shorter", "On closed paths, take the shorter arc.").Bool()
	segmentInclude = segmentCmd.Flag("include", "On closed paths, take the arc containing this extreme point.").Enum("top", "bottom", "left", "right")
	segmentExclude = segmentCmd.Flag("exclude", "On closed paths, take the arc not containing this extreme point.").Enum("top", "bottom", "left", "right")
	segmentFrom    = segmentCmd.Flag("from", "First index, instead of the first selected point.").Default("-1").Int()
	segmentTo      = segmentCmd.Flag("to", "Last index, instead of the last selected point.").Default("-1").Int()

	redundantCmd       = withInput(app.Command("redundant", "Find and collapse coincident points."))
	redundantTolerance = redundantCmd.Flag("tolerance", "Points closer than this coincide.").Default("0.5").Float64()
	redundantFilter    = redundantCmd.Flag("filter", "Selection filter: ignore, any or all.").Default("ignore").Enum("ignore", "any", "all")
	keepLeading        = redundantCmd.Flag("keep-leading", "Keep the first point of each run.").Bool()
	keepTrailing       = redundantCmd.Flag("keep-trailing", "Keep the last point of each run.").Bool()
	keepAveraged       = redundantCmd.Flag("keep-averaged", "When keeping both ends, also keep a point at the run's centroid.").Bool()
	selectOnly         = redundantCmd.Flag("select-only", "Select the redundant points instead of removing them.").Bool()

	inspectCmd    = withInput(app.Command("inspect", "List the points of each path."))
	inspectColors = inspectCmd.Flag("color", "Colorize output.").Default("true").Bool()

	renderCmd    = withInput(app.Command("render", "Render the paths with their handles to a PNG."))
	renderOut    = renderCmd.Flag("out", "Output PNG file.").Default("paths.png").String()
	renderScale  = renderCmd.Flag("scale", "Pixels per unit.").Default("4").Float64()
	renderLabels = renderCmd.Flag("labels", "Label each point.").Bool()
	renderCat    = renderCmd.Flag("imgcat", "Print the image inline in the terminal.").Bool()
)

// Every command takes the input as its argument.
func withInput(cmd *kingpin.CmdClause) *kingpin.CmdClause {
	inputs[cmd.FullCommand()] = cmd.Arg("input", "SVG file to read, or - for points on stdin.").Default("-").String()
	return cmd
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	input := *inputs[command]
	paths, err := loadPaths(input)
	app.FatalIfError(err, "reading %s", input)
	log.Printf("Read %d paths", len(paths))

	switch command {
	case smoothCmd.FullCommand():
		err = runSmooth(paths)
	case segmentCmd.FullCommand():
		paths, err = runSegment(paths)
	case redundantCmd.FullCommand():
		err = runRedundant(paths)
	case inspectCmd.FullCommand():
		for _, path := range paths {
			if err = path.Describe(os.Stdout, *inspectColors); err != nil {
				break
			}
		}
		app.FatalIfError(err, "inspect")
		return
	case renderCmd.FullCommand():
		err = advanced.RenderPNG(paths, *renderScale, *renderLabels, *renderOut)
		app.FatalIfError(err, "render")
		if *renderCat {
			app.FatalIfError(advanced.CatPNG(*renderOut, os.Stdout), "imgcat")
		}
		return
	}
	app.FatalIfError(err, command)
	app.FatalIfError(advanced.WriteSVG(os.Stdout, paths), "writing svg")
}

// Unnamed paths are named by position, for log messages.
func loadPaths(name string) ([]*advanced.Path, error) {
	var paths []*advanced.Path
	if name == "-" {
		var err error
		if paths, err = advanced.ReadPoints(os.Stdin, *closed); err != nil {
			return nil, err
		}
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		root, err := advanced.ReadSVG(f)
		if err != nil {
			return nil, err
		}
		paths = advanced.CollectPaths(root)
	}
	for i, path := range paths {
		if path.Name == "" {
			path.Name = fmt.Sprintf("path %d", i)
		}
	}
	return paths, nil
}

func runSmooth(paths []*advanced.Path) error {
	for _, path := range paths {
		if len(*smoothIndices) == 0 {
			log.Printf("%s: smoothed %d points", path.Name, path.SmoothSelected())
			continue
		}
		for _, i := range *smoothIndices {
			if err := path.SmoothPoint(i); err != nil {
				return errors.Wrapf(err, "path %q", path.Name)
			}
		}
	}
	return nil
}

func segmentRule() (advanced.SegmentRule, error) {
	switch {
	case *segmentShorter:
		return advanced.ShorterArc(), nil
	case *segmentLonger:
		return advanced.LongerArc(), nil
	case *segmentInclude != "":
		e, err := advanced.ParseExtremum(*segmentInclude)
		return advanced.IncludingExtremum(e), err
	case *segmentExclude != "":
		e, err := advanced.ParseExtremum(*segmentExclude)
		return advanced.ExcludingExtremum(e), err
	}
	return advanced.SegmentRule{}, nil
}

// Paths that can't be cut unambiguously are skipped with a warning, so one bad
// path doesn't stop the rest.
func runSegment(paths []*advanced.Path) ([]*advanced.Path, error) {
	rule, err := segmentRule()
	if err != nil {
		return nil, err
	}
	var result []*advanced.Path
	for _, path := range paths {
		var segment *advanced.Path
		if *segmentFrom >= 0 || *segmentTo >= 0 {
			var indices []int
			indices, err = path.ExtractSegment(*segmentFrom, *segmentTo, rule)
			if err == nil {
				segment = path.CopySegment(indices)
			}
		} else {
			segment, err = path.ExtractSelectedSegment(rule)
		}
		if errors.Is(err, advanced.ErrAmbiguousSelection) || errors.Is(err, advanced.ErrUnsupportedConfiguration) {
			log.Printf("skipping %q: %v", path.Name, err)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "path %q", path.Name)
		}
		result = append(result, segment)
	}
	return result, nil
}

func runRedundant(paths []*advanced.Path) error {
	filter, err := advanced.ParseSelectionFilter(*redundantFilter)
	if err != nil {
		return err
	}
	opts := advanced.Options{
		Tolerance:    *redundantTolerance,
		Filter:       filter,
		KeepLeading:  *keepLeading,
		KeepTrailing: *keepTrailing,
		KeepAveraged: *keepAveraged,
	}
	for _, path := range paths {
		groups := path.FindRedundant(opts.Tolerance, opts.Filter)
		if *selectOnly {
			log.Printf("%s: selected %d redundant points", path.Name, path.SelectRedundant(groups))
			continue
		}
		log.Printf("%s: removed %d redundant points", path.Name, path.Collapse(groups, opts))
	}
	return nil
}
