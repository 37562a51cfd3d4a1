package advanced

import "github.com/pkg/errors"

// Facilities for picking out a contiguous run of points between two selected
// points. On an open path there is only one such run. On a closed path there
// are two complementary arcs between the points, the "inner" arc
// [first..last] and the "outer" arc [last..end, 0..first], and a SegmentRule
// decides between them.

type RuleKind int

const (
	RuleNone RuleKind = iota
	RuleLength
	RuleExtremum
)

type Extremum int

const (
	Top Extremum = iota
	Bottom
	Left
	Right
)

func (e Extremum) String() string {
	return [...]string{"top", "bottom", "left", "right"}[e]
}

// ParseExtremum converts "top", "bottom", "left" or "right" into an Extremum.
func ParseExtremum(s string) (Extremum, error) {
	for _, e := range []Extremum{Top, Bottom, Left, Right} {
		if e.String() == s {
			return e, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedConfiguration, "unknown extremum %q", s)
}

type SegmentRule struct {
	Kind RuleKind
	// For RuleLength, pick the longer arc instead of the shorter one.
	Longer bool
	// For RuleExtremum, the landmark point, and whether the chosen arc must
	// contain it (otherwise it must not).
	Extremum Extremum
	Include  bool
	// Used by RuleLength. Defaults to DefaultMeasurer.
	Measurer LengthMeasurer
}

func ShorterArc() SegmentRule { return SegmentRule{Kind: RuleLength} }
func LongerArc() SegmentRule  { return SegmentRule{Kind: RuleLength, Longer: true} }

func IncludingExtremum(e Extremum) SegmentRule {
	return SegmentRule{Kind: RuleExtremum, Extremum: e, Include: true}
}

func ExcludingExtremum(e Extremum) SegmentRule {
	return SegmentRule{Kind: RuleExtremum, Extremum: e}
}

// SelectedBounds finds the first selected point scanning forward, and the last
// scanning backward.
func (path *Path) SelectedBounds() (first, last int, err error) {
	first, last = -1, -1
	for i, p := range path.Points {
		if p.IsSelected() {
			first = i
			break
		}
	}
	for i := len(path.Points) - 1; i >= 0; i-- {
		if path.Points[i].IsSelected() {
			last = i
			break
		}
	}
	if first < 0 || first == last {
		return 0, 0, errors.Wrap(ErrUnsupportedConfiguration, "need at least two selected points")
	}
	return first, last, nil
}

// ExtremumIndex returns the index of the topmost, bottommost, leftmost or
// rightmost anchor. Y grows upward. On ties the first point found wins.
func (path *Path) ExtremumIndex(e Extremum) int {
	best := 0
	for i, p := range path.Points {
		b := path.Points[best].Anchor
		var better bool
		switch e {
		case Top:
			better = p.Anchor.Y > b.Y
		case Bottom:
			better = p.Anchor.Y < b.Y
		case Left:
			better = p.Anchor.X < b.X
		case Right:
			better = p.Anchor.X > b.X
		}
		if better {
			best = i
		}
	}
	return best
}

// ExtractSegment returns the ordered indices of the run of points from first
// to last. The rule is only consulted for closed paths.
func (path *Path) ExtractSegment(first, last int, rule SegmentRule) ([]int, error) {
	n := len(path.Points)
	if n < 3 {
		return nil, errors.Wrapf(ErrUnsupportedConfiguration, "path has only %d points", n)
	}
	if first < 0 || last >= n {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "segment %d..%d on path of %d points", first, last, n)
	}
	if first >= last {
		return nil, errors.Wrapf(ErrUnsupportedConfiguration, "segment start %d is not before end %d", first, last)
	}

	inner := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		inner = append(inner, i)
	}
	if !path.Closed {
		return inner, nil
	}

	outer := make([]int, 0, n-(last-first)+1)
	for i := last; i < n; i++ {
		outer = append(outer, i)
	}
	for i := 0; i <= first; i++ {
		outer = append(outer, i)
	}

	switch rule.Kind {
	case RuleLength:
		measurer := rule.Measurer
		if measurer == nil {
			measurer = DefaultMeasurer
		}
		innerLength := measurer.ArcLength(path, inner)
		outerLength := measurer.ArcLength(path, outer)
		// Ties go to the inner arc.
		if innerLength == outerLength || rule.Longer == (innerLength > outerLength) {
			return inner, nil
		}
		return outer, nil

	case RuleExtremum:
		landmark := path.ExtremumIndex(rule.Extremum)
		if landmark == first || landmark == last {
			return nil, errors.Wrapf(ErrAmbiguousSelection, "%s point %d is a segment endpoint", rule.Extremum, landmark)
		}
		between := first < landmark && landmark < last
		if rule.Include == between {
			return inner, nil
		}
		return outer, nil
	}

	return nil, errors.Wrap(ErrUnsupportedConfiguration, "closed path segment needs a rule to pick an arc")
}

// CopySegment copies the points at indices, in order, into a new open path.
// Handles are kept as they are and the copies are deselected.
func (path *Path) CopySegment(indices []int) *Path {
	result := &Path{Name: path.Name, Points: make([]*AnchorPoint, 0, len(indices))}
	for _, i := range indices {
		p := path.Points[i].Clone()
		p.Selected = SelectNone
		result.Points = append(result.Points, p)
	}
	return result
}

// ExtractSelectedSegment copies the segment between the path's first and last
// selected points into a new path.
func (path *Path) ExtractSelectedSegment(rule SegmentRule) (*Path, error) {
	first, last, err := path.SelectedBounds()
	if err != nil {
		return nil, err
	}
	indices, err := path.ExtractSegment(first, last, rule)
	if err != nil {
		return nil, err
	}
	return path.CopySegment(indices), nil
}
