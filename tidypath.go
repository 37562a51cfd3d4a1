// Tools for editing the anchor points of vector paths made of cubic Bézier
// segments.
//
// This package can smooth a point's handles so the path passes through it
// with a continuous tangent, copy the run of points between two selected
// points out into a new path, and find and collapse runs of coincident points
// while keeping the shape of the path as close as possible to what it was.
//
// The functions here operate on one path at a time. The advanced package has
// the full set of lower level operations, plus SVG reading and writing.
package tidypath

import (
	"io"

	"github.com/osuushi/tidypath/advanced"
)

type Point = advanced.Point
type AnchorPoint = advanced.AnchorPoint
type Path = advanced.Path
type RedundantGroup = advanced.RedundantGroup
type Options = advanced.Options
type SegmentRule = advanced.SegmentRule

// Smooth turns the point at index into a smooth point.
func Smooth(path *Path, index int) error {
	return path.SmoothPoint(index)
}

// ExtractSegment copies the points between the first and last selected points
// of the path into a new open path. On a closed path, the rule picks which of
// the two arcs between those points to copy.
func ExtractSegment(path *Path, rule SegmentRule) (*Path, error) {
	return path.ExtractSelectedSegment(rule)
}

// FindRedundant returns the runs of coincident points on the path.
func FindRedundant(path *Path, opts Options) []RedundantGroup {
	return path.FindRedundant(opts.Tolerance, opts.Filter)
}

// Collapse removes redundant points in the given groups and returns how many
// were removed. Malformed groups are reported as an error, and in that case
// the path is left untouched.
func Collapse(path *Path, groups []RedundantGroup, opts Options) (removed int, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			removed = 0
			err = recoveredErr
		}
	}()
	return path.Collapse(groups, opts), nil
}

// Tidy finds and collapses redundant points on the path in one step.
func Tidy(path *Path, opts Options) (int, error) {
	return Collapse(path, FindRedundant(path, opts), opts)
}

// SelectRedundant selects the redundant points on the path, deselecting all
// others, and returns how many were selected.
func SelectRedundant(path *Path, opts Options) int {
	return path.SelectRedundant(FindRedundant(path, opts))
}

// LoadSVG reads an SVG document and returns its editable paths, skipping
// locked and hidden layers and locked paths.
func LoadSVG(r io.Reader) ([]*Path, error) {
	root, err := advanced.ReadSVG(r)
	if err != nil {
		return nil, err
	}
	return advanced.CollectPaths(root), nil
}
