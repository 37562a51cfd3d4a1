package advanced

import "fmt"

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

type PointType int

const (
	Corner PointType = iota
	Smooth
)

func (t PointType) String() string {
	if t == Smooth {
		return "smooth"
	}
	return "corner"
}

type SelectionState int

const (
	SelectNone SelectionState = iota
	SelectAnchor
)

// An anchor point on a path. The direction handles are absolute positions, not
// offsets from the anchor. A handle sitting exactly on the anchor is
// "retracted", meaning that side of the anchor has no curvature.
type AnchorPoint struct {
	Anchor         Point
	LeftDirection  Point
	RightDirection Point
	PointType      PointType
	Selected       SelectionState
}

// NewCornerPoint returns a corner point at p with both handles retracted.
func NewCornerPoint(p Point) *AnchorPoint {
	return &AnchorPoint{Anchor: p, LeftDirection: p, RightDirection: p}
}

func (ap *AnchorPoint) IsSelected() bool {
	return ap.Selected == SelectAnchor
}

// Clone returns a copy of the point which shares no storage with the original.
func (ap *AnchorPoint) Clone() *AnchorPoint {
	clone := *ap
	return &clone
}

func (ap *AnchorPoint) String() string {
	return fmt.Sprintf("%s %s [%s %s]", ap.PointType, ap.Anchor, ap.LeftDirection, ap.RightDirection)
}

// Points are stored as pointers, and operations mutate them in place. The
// order of the points is the geometric order along the path. On a closed path,
// the last point is followed by the first.
type Path struct {
	Points []*AnchorPoint
	Closed bool
	Locked bool
	Name   string
}

func (path *Path) Len() int {
	return len(path.Points)
}

// Remove the point at index i. Indices above i shift down by one.
func (path *Path) RemovePoint(i int) {
	path.Points = append(path.Points[:i], path.Points[i+1:]...)
}

// SelectedCount returns the number of anchor-selected points.
func (path *Path) SelectedCount() int {
	count := 0
	for _, p := range path.Points {
		if p.IsSelected() {
			count++
		}
	}
	return count
}

// Transient view of a point and its neighbors. Previous and Next are nil where
// an open path ends.
type PointTriplet struct {
	Previous, Current, Next *AnchorPoint
}

// An ordered run of point indices, in path order, where each point coincides
// with the one after it. A group always has at least two indices.
type RedundantGroup []int

func (g RedundantGroup) Leading() int {
	return g[0]
}

func (g RedundantGroup) Trailing() int {
	return g[len(g)-1]
}
