package advanced

import "github.com/pkg/errors"

// TripletAt returns the point at index along with its neighbors. On an open
// path the first point has no previous point and the last has no next point;
// on a closed path they wrap around to each other.
func (path *Path) TripletAt(index int) (PointTriplet, error) {
	n := len(path.Points)
	if index < 0 || index >= n {
		return PointTriplet{}, errors.Wrapf(ErrIndexOutOfRange, "point %d on path of %d points", index, n)
	}

	triplet := PointTriplet{Current: path.Points[index]}
	if index > 0 || path.Closed {
		triplet.Previous = path.Points[CircularIndex(index-1, n)]
	}
	if index < n-1 || path.Closed {
		triplet.Next = path.Points[CircularIndex(index+1, n)]
	}

	// A closed path with a single point is its own neighbor on both sides, which
	// is no neighbor at all.
	if triplet.Previous == triplet.Current {
		triplet.Previous = nil
	}
	if triplet.Next == triplet.Current {
		triplet.Next = nil
	}
	return triplet, nil
}
