package advanced

// Facilities for finding runs of coincident anchor points. Two points coincide
// when the distance between them, rounded to hundredths, is under the
// tolerance.

func coincident(a, b *AnchorPoint, tolerance float64) bool {
	return roundHundredths(Distance(a.Anchor, b.Anchor)) < tolerance
}

// FindRedundant returns the maximal runs of coincident points on the path, in
// path order, filtered by selection according to the filter.
func (path *Path) FindRedundant(tolerance float64, filter SelectionFilter) []RedundantGroup {
	raw := path.findRawRedundant(tolerance)
	switch filter {
	case FilterAnySelected:
		var result []RedundantGroup
		for _, group := range raw {
			for _, i := range group {
				if path.Points[i].IsSelected() {
					result = append(result, group)
					break
				}
			}
		}
		return result
	case FilterAllSelected:
		var result []RedundantGroup
		for _, group := range raw {
			result = append(result, path.splitSelectedRuns(group)...)
		}
		return result
	}
	return raw
}

func (path *Path) findRawRedundant(tolerance float64) []RedundantGroup {
	n := len(path.Points)
	if n < 2 {
		return nil
	}

	// On a closed path, a run can straddle the seam between the last point and
	// the first. Walk backward from the end first, growing the group that ends
	// at index 0, so that the run isn't split in two.
	current := RedundantGroup{0}
	stop := n - 1
	if path.Closed {
		for stop > 0 && coincident(path.Points[stop], path.Points[CircularIndex(stop+1, n)], tolerance) {
			current = append(RedundantGroup{stop}, current...)
			stop--
		}
	}

	// Now walk forward up to where the backward walk stopped. Points after stop
	// are already in the seam group.
	var groups []RedundantGroup
	for i := 0; i < stop; i++ {
		if coincident(path.Points[i], path.Points[i+1], tolerance) {
			current = append(current, i+1)
			continue
		}
		if len(current) >= 2 {
			groups = append(groups, current)
		}
		current = RedundantGroup{i + 1}
	}
	if len(current) >= 2 {
		groups = append(groups, current)
	}
	return groups
}

// Cut a group into its maximal runs of selected points, dropping runs that are
// too short to be groups.
func (path *Path) splitSelectedRuns(group RedundantGroup) []RedundantGroup {
	// A group covering a whole closed path is a ring, so a run can wrap from
	// its last point to its first. Walk backward from the end for the part of
	// that run, and start the forward walk with it.
	end := len(group)
	var run RedundantGroup
	if path.Closed && len(group) == len(path.Points) {
		for end > 0 && path.Points[group[end-1]].IsSelected() {
			end--
		}
		if end == 0 {
			return []RedundantGroup{group}
		}
		run = append(run, group[end:]...)
	}

	var result []RedundantGroup
	for _, i := range group[:end] {
		if path.Points[i].IsSelected() {
			run = append(run, i)
			continue
		}
		if len(run) >= 2 {
			result = append(result, run)
		}
		run = nil
	}
	if len(run) >= 2 {
		result = append(result, run)
	}
	return result
}

// SelectRedundant selects exactly the points belonging to the groups, and
// returns the number of points selected.
func (path *Path) SelectRedundant(groups []RedundantGroup) int {
	for _, p := range path.Points {
		p.Selected = SelectNone
	}
	count := 0
	for _, group := range groups {
		for _, i := range group {
			path.Points[i].Selected = SelectAnchor
			count++
		}
	}
	return count
}
