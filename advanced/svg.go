package advanced

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This reads just enough SVG to edit paths: groups, layers, path elements and
// polygons. Transforms and styles other than display:none are ignored.
//
// SVG's Y axis points down, while paths are edited with Y pointing up, so
// coordinates are mirrored across the X axis on the way in and on the way out.

// ReadSVG parses an SVG document into a tree rooted at a layer.
func ReadSVG(r io.Reader) (*Layer, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	layer := &Layer{Name: root.Attributes["id"]}
	if layer.Children, err = convertChildren(root); err != nil {
		return nil, err
	}
	return layer, nil
}

func convertChildren(el *svgparser.Element) ([]Node, error) {
	var nodes []Node
	for _, child := range el.Children {
		node, err := convertElement(child)
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// Convert a single element. Returns nil for elements that hold no paths.
func convertElement(el *svgparser.Element) (Node, error) {
	name := elementName(el)
	switch el.Name {
	case "g":
		children, err := convertChildren(el)
		if err != nil {
			return nil, err
		}
		if el.Attributes["groupmode"] == "layer" {
			return &Layer{
				Name:     name,
				Locked:   isLocked(el),
				Hidden:   strings.Contains(strings.ReplaceAll(el.Attributes["style"], " ", ""), "display:none"),
				Children: children,
			}, nil
		}
		return &Group{Name: name, Children: children}, nil

	case "path":
		paths, err := ParsePathData(el.Attributes["d"])
		if err != nil {
			return nil, errors.Wrapf(err, "path %q", name)
		}
		return finishPaths(el, name, paths)

	case "polygon", "polyline":
		path, err := parsePolygonPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "%s %q", el.Name, name)
		}
		path.Closed = el.Name == "polygon"
		return finishPaths(el, name, []*Path{path})
	}
	return nil, nil
}

func elementName(el *svgparser.Element) string {
	if label, ok := el.Attributes["label"]; ok {
		return label
	}
	return el.Attributes["id"]
}

func isLocked(el *svgparser.Element) bool {
	return el.Attributes["data-locked"] == "true" || el.Attributes["insensitive"] == "true"
}

// Apply the element's name, lock and selection to its paths, and wrap them in a
// compound path if there's more than one. Selection indices count through all
// of the subpaths in order.
func finishPaths(el *svgparser.Element, name string, paths []*Path) (Node, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	var all []*AnchorPoint
	for _, path := range paths {
		path.Name = name
		path.Locked = isLocked(el)
		mirror(path.Points)
		all = append(all, path.Points...)
	}
	for _, field := range strings.Fields(el.Attributes["data-selected"]) {
		i, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPathData, "selection %q on %q", field, name)
		}
		if i < 0 || i >= len(all) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "selection %d on %q with %d points", i, name, len(all))
		}
		all[i].Selected = SelectAnchor
	}
	if len(paths) == 1 {
		return paths[0], nil
	}
	return &CompoundPath{Name: name, Paths: paths}, nil
}

// Polygon points are "x,y x,y ...", though any mix of commas and whitespace is
// allowed between numbers.
func parsePolygonPoints(s string) (*Path, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidPathData, "odd number of coordinates in %q", s)
	}
	path := &Path{}
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPathData, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPathData, "invalid y value %q", fields[i+1])
		}
		path.Points = append(path.Points, NewCornerPoint(Pt(x, y)))
	}
	return path, nil
}

// Bounds returns the smallest and largest coordinates of the anchors and
// handles of all the paths.
func Bounds(paths []*Path) (min, max Point) {
	min = Pt(math.Inf(1), math.Inf(1))
	max = Pt(math.Inf(-1), math.Inf(-1))
	for _, path := range paths {
		for _, p := range path.Points {
			for _, q := range []Point{p.Anchor, p.LeftDirection, p.RightDirection} {
				min.X = math.Min(min.X, q.X)
				min.Y = math.Min(min.Y, q.Y)
				max.X = math.Max(max.X, q.X)
				max.Y = math.Max(max.Y, q.Y)
			}
		}
	}
	return min, max
}

// Flip every anchor and handle across the X axis. Subtracting from zero keeps
// zeros positive.
func mirror(points []*AnchorPoint) {
	for _, p := range points {
		p.Anchor.Y = 0 - p.Anchor.Y
		p.LeftDirection.Y = 0 - p.LeftDirection.Y
		p.RightDirection.Y = 0 - p.RightDirection.Y
	}
}

// A copy of the path in SVG coordinates.
func mirrored(path *Path) *Path {
	result := *path
	result.Points = make([]*AnchorPoint, len(path.Points))
	for i, p := range path.Points {
		result.Points[i] = p.Clone()
	}
	mirror(result.Points)
	return &result
}

// WriteSVG writes the paths as a standalone SVG document, one path element
// each, with selection recorded in data-selected.
func WriteSVG(w io.Writer, paths []*Path) error {
	svgPaths := make([]*Path, len(paths))
	for i, path := range paths {
		svgPaths[i] = mirrored(path)
	}
	paths = svgPaths

	min, max := Bounds(paths)
	if math.IsInf(min.X, 0) {
		min, max = Point{}, Point{}
	}
	const padding = 10
	printf := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := printf("<?xml version=\"1.0\"?>\n<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"%s %s %s %s\">\n",
		formatNumber(min.X-padding), formatNumber(min.Y-padding),
		formatNumber(max.X-min.X+2*padding), formatNumber(max.Y-min.Y+2*padding)); err != nil {
		return err
	}
	for _, path := range paths {
		var attrs string
		if path.Name != "" {
			attrs += fmt.Sprintf(" id=%q", path.Name)
		}
		var selected []string
		for i, p := range path.Points {
			if p.IsSelected() {
				selected = append(selected, strconv.Itoa(i))
			}
		}
		if len(selected) > 0 {
			attrs += fmt.Sprintf(" data-selected=%q", strings.Join(selected, " "))
		}
		if err := printf("  <path%s d=%q fill=\"none\" stroke=\"black\"/>\n", attrs, path.PathData()); err != nil {
			return err
		}
	}
	return printf("</svg>\n")
}
