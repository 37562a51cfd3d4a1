package advanced

import (
	"math"
	"sort"
)

const (
	// Handle length, as a fraction of the distance to the group's centroid,
	// for handles synthesized when both ends of a group are kept.
	inwardHandleRatio   = 0.5
	extensionRatio      = 0.25
	inwardAngleFactor   = 1.0
	oppositeAngleMargin = 0.02
)

// Collapse removes the redundant points in each group, and rebuilds the
// handles of the points that survive so that the path's shape is disturbed as
// little as possible. It returns the number of points removed.
//
// Groups must be disjoint. All of the handle math for every group is done
// before anything is removed, so indices stay valid throughout.
func (path *Path) Collapse(groups []RedundantGroup, opts Options) int {
	path.validateGroups(groups)

	var doomed []int
	for _, group := range groups {
		if opts.KeepLeading && opts.KeepTrailing {
			doomed = append(doomed, path.collapseKeepingEnds(group, opts.KeepAveraged)...)
		} else {
			doomed = append(doomed, path.collapseToLeading(group, opts)...)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(doomed)))
	for _, i := range doomed {
		path.RemovePoint(i)
	}
	return len(doomed)
}

// Tidy finds redundant points on the path and collapses them.
func (path *Path) Tidy(opts Options) int {
	return path.Collapse(path.FindRedundant(opts.Tolerance, opts.Filter), opts)
}

func (path *Path) validateGroups(groups []RedundantGroup) {
	seen := make(map[int]struct{})
	for _, group := range groups {
		if len(group) < 2 {
			fatalf("redundant group %v has fewer than 2 points", group)
		}
		for _, i := range group {
			if i < 0 || i >= len(path.Points) {
				fatalWrapf(ErrIndexOutOfRange, "redundant group %v on path of %d points", group, len(path.Points))
			}
			if _, ok := seen[i]; ok {
				fatalf("point %d appears in more than one redundant group", i)
			}
			seen[i] = struct{}{}
		}
	}
}

func (path *Path) groupPoints(group RedundantGroup) []*AnchorPoint {
	points := make([]*AnchorPoint, len(group))
	for j, i := range group {
		points[j] = path.Points[i]
	}
	return points
}

// Both ends of the group survive. Their outward handles (leading's left,
// trailing's right) already face away from the group and are left alone; the
// inward handles are synthesized. Returns the indices to remove.
func (path *Path) collapseKeepingEnds(group RedundantGroup, keepAveraged bool) []int {
	leading := path.Points[group.Leading()]
	trailing := path.Points[group.Trailing()]
	centroid := Centroid(path.groupPoints(group))
	interior := group[1 : len(group)-1]

	if len(group) == 2 || !keepAveraged {
		leading.PointType = Corner
		trailing.PointType = Corner
		// Both are computed from the original anchors before either is written.
		leadingInward := inwardHandle(leading.Anchor, trailing.Anchor, centroid)
		trailingInward := inwardHandle(trailing.Anchor, leading.Anchor, centroid)
		leading.RightDirection = leadingInward
		trailing.LeftDirection = trailingInward
		return append([]int(nil), interior...)
	}

	// Keep the first interior point, moved to the centroid, as a smooth point
	// whose handles run along the line between the ends.
	middle := path.Points[group[1]]
	middle.Anchor = centroid
	middle.PointType = Smooth
	middle.LeftDirection = centroid.Polar(Theta(trailing.Anchor, leading.Anchor), inwardHandleRatio*Distance(leading.Anchor, centroid))
	middle.RightDirection = centroid.Polar(Theta(leading.Anchor, trailing.Anchor), inwardHandleRatio*Distance(trailing.Anchor, centroid))

	leading.PointType = Smooth
	trailing.PointType = Smooth
	leading.RightDirection = extendHandle(leading.Anchor, leading.LeftDirection, extensionRatio*Distance(leading.Anchor, centroid))
	trailing.LeftDirection = extendHandle(trailing.Anchor, trailing.RightDirection, extensionRatio*Distance(trailing.Anchor, centroid))
	return append([]int(nil), group[2:len(group)-1]...)
}

// The inward handle for an end of the group points at the centroid, swung
// further away from the other end by the angle between the two.
func inwardHandle(end, otherEnd, centroid Point) Point {
	toCentroid := Theta(end, centroid)
	toOther := Theta(end, otherEnd)
	angle := toCentroid + inwardAngleFactor*(toCentroid-toOther)
	return end.Polar(angle, inwardHandleRatio*Distance(end, centroid))
}

// A handle of the given length colinear with, and opposite to, the outward
// handle. If the outward handle is retracted there's no direction to extend,
// so the result is retracted too.
func extendHandle(anchor, outward Point, length float64) Point {
	if Distance(anchor, outward) == 0 {
		return anchor
	}
	return anchor.Polar(Theta(anchor, outward)+math.Pi, length)
}

// At most one end of the group survives. Everything happens on the leading
// point, which takes on the position and handles of whichever end is kept.
// Returns the indices to remove.
func (path *Path) collapseToLeading(group RedundantGroup, opts Options) []int {
	leading := path.Points[group.Leading()]
	trailing := path.Points[group.Trailing()]
	original := *leading
	originalTrailing := *trailing

	leftAngle, leftLength := handlePolar(original.Anchor, original.LeftDirection)
	rightAngle, rightLength := handlePolar(originalTrailing.Anchor, originalTrailing.RightDirection)

	var anchor, left, right Point
	switch {
	case opts.KeepLeading:
		anchor = original.Anchor
		left = original.LeftDirection
		right = anchor.Polar(rightAngle, rightLength)
	case opts.KeepTrailing:
		anchor = originalTrailing.Anchor
		right = originalTrailing.RightDirection
		left = anchor.Polar(leftAngle, leftLength)
	default:
		anchor = Centroid(path.groupPoints(group))
		left = anchor.Polar(leftAngle, leftLength)
		right = anchor.Polar(rightAngle, rightLength)
	}

	// Trig round trips leave tiny handles behind. Retract them, since their
	// angles are noise and would throw off the smoothness check.
	if roundHundredths(Distance(anchor, left)) == 0 {
		left = anchor
	}
	if roundHundredths(Distance(anchor, right)) == 0 {
		right = anchor
	}

	pointType := originalTrailing.PointType
	leftLength = Distance(anchor, left)
	rightLength = Distance(anchor, right)
	if roundHundredths(leftLength) > 0 && roundHundredths(rightLength) > 0 {
		leftAngle = Theta(anchor, left)
		rightAngle = Theta(anchor, right)
		if math.Abs(math.Pi-math.Abs(leftAngle-rightAngle)) < oppositeAngleMargin {
			// Keeping only the trailing end keeps its type. Otherwise the
			// merged point is smooth.
			if opts.KeepTrailing {
				pointType = originalTrailing.PointType
			} else {
				pointType = Smooth
			}
		} else {
			pointType = Corner
		}

		// Line the handles up exactly, keeping the angle of the handle that
		// belongs to the kept end.
		if pointType == Smooth {
			if opts.KeepTrailing && !opts.KeepLeading {
				left = anchor.Polar(rightAngle+math.Pi, leftLength)
			} else {
				right = anchor.Polar(leftAngle+math.Pi, rightLength)
			}
		}
	}

	leading.Anchor = anchor
	leading.LeftDirection = left
	leading.RightDirection = right
	leading.PointType = pointType
	return append([]int(nil), group[1:]...)
}
