package advanced

// Measures the length of the path along the given run of point indices. The
// run is in path order, and a segment joins each consecutive pair.
type LengthMeasurer interface {
	ArcLength(path *Path, indices []int) float64
}

// BezierMeasurer measures the cubic Bézier segments between anchors, using
// each start anchor's right handle and each end anchor's left handle as the
// control points.
type BezierMeasurer struct {
	// Maximum error of the estimate, per segment.
	Accuracy float64
}

var DefaultMeasurer = BezierMeasurer{Accuracy: 1e-3}

func (m BezierMeasurer) ArcLength(path *Path, indices []int) float64 {
	var total float64
	for i := 1; i < len(indices); i++ {
		start := path.Points[indices[i-1]]
		end := path.Points[indices[i]]
		total += cubicArclen(start.Anchor, start.RightDirection, end.LeftDirection, end.Anchor, m.Accuracy, 0)
	}
	return total
}

// The arc length lies between the chord length and the control polygon length.
// When the two are close enough, a weighted average of them is a very good
// estimate (Gravesen). Otherwise we subdivide with de Casteljau and recurse.
func cubicArclen(p0, p1, p2, p3 Point, accuracy float64, depth int) float64 {
	chord := Distance(p0, p3)
	polygon := Distance(p0, p1) + Distance(p1, p2) + Distance(p2, p3)
	if polygon-chord <= accuracy || depth >= 16 {
		return (2*chord + 2*polygon) / 4
	}

	p01 := p0.Midpoint(p1)
	p12 := p1.Midpoint(p2)
	p23 := p2.Midpoint(p3)
	p012 := p01.Midpoint(p12)
	p123 := p12.Midpoint(p23)
	mid := p012.Midpoint(p123)
	return cubicArclen(p0, p01, p012, mid, accuracy*0.5, depth+1) +
		cubicArclen(mid, p123, p23, p3, accuracy*0.5, depth+1)
}
