package advanced

import "math"

// Handles are this fraction of the distance to the neighbor on their side.
const smoothHandleRatio = 0.25

// SmoothTriplet converts the current point of the triplet into a smooth point.
//
// Both handles end up on one line through the anchor, perpendicular to the
// bisector of the angle formed with the neighbors. Each handle's length is a
// quarter of the distance to the neighbor on its side. With only one neighbor,
// the handle on the missing side is retracted and the other points straight
// at the neighbor.
func SmoothTriplet(triplet PointTriplet) {
	current := triplet.Current
	prev, next := triplet.Previous, triplet.Next

	current.PointType = Smooth
	current.LeftDirection = current.Anchor
	current.RightDirection = current.Anchor

	switch {
	case prev == nil && next == nil:
		return
	case prev == nil:
		current.RightDirection = current.Anchor.Polar(
			Theta(current.Anchor, next.Anchor),
			smoothHandleRatio*Distance(current.Anchor, next.Anchor),
		)
		return
	case next == nil:
		current.LeftDirection = current.Anchor.Polar(
			Theta(current.Anchor, prev.Anchor),
			smoothHandleRatio*Distance(current.Anchor, prev.Anchor),
		)
		return
	}

	thetaPrev := Theta(current.Anchor, prev.Anchor)
	thetaNext := Theta(current.Anchor, next.Anchor)

	// Averaging the two angles gives the bisector or its opposite, depending on
	// how the angles wrapped. Either way the perpendicular is a tangent, but the
	// left handle must face the previous point's side.
	theta := (thetaPrev+thetaNext)/2 - math.Pi/2
	if math.Abs(theta-thetaPrev) > math.Pi/2 {
		theta += math.Pi
	}

	current.LeftDirection = current.Anchor.Polar(theta, smoothHandleRatio*Distance(prev.Anchor, current.Anchor))
	current.RightDirection = current.Anchor.Polar(theta+math.Pi, smoothHandleRatio*Distance(next.Anchor, current.Anchor))
}

// SmoothPoint smooths the point at index on the path.
func (path *Path) SmoothPoint(index int) error {
	triplet, err := path.TripletAt(index)
	if err != nil {
		return err
	}
	SmoothTriplet(triplet)
	return nil
}

// SmoothSelected smooths every selected point on the path and returns how many
// were smoothed. Points are smoothed in order, so later points see the new
// handles of earlier ones, but smoothing only reads neighbor anchors, which it
// never moves.
func (path *Path) SmoothSelected() int {
	count := 0
	for i, p := range path.Points {
		if !p.IsSelected() {
			continue
		}
		// The index comes from the range, so it can't be out of bounds.
		_ = path.SmoothPoint(i)
		count++
	}
	return count
}
