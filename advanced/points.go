package advanced

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadPoints reads paths of corner points from newline separated points in the
// form "x y", with each path separated by an extra newline. A trailing "*"
// after the coordinates marks the point as selected.
func ReadPoints(in io.Reader, closed bool) ([]*Path, error) {
	var paths []*Path
	// Scan lines
	scanner := bufio.NewScanner(in)
	current := &Path{Closed: closed}
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the path
		if text == "" {
			if len(current.Points) > 0 {
				paths = append(paths, current)
				current = &Path{Closed: closed}
			}
			continue
		}

		point, err := parsePointLine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		current.Points = append(current.Points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing path if any
	if len(current.Points) > 0 {
		paths = append(paths, current)
	}
	return paths, nil
}

func parsePointLine(line string) (*AnchorPoint, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 || len(parts) > 3 || (len(parts) == 3 && parts[2] != "*") {
		return nil, errors.Wrapf(ErrInvalidPathData, "expected \"x y\" but got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPathData, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPathData, "invalid y value %q", parts[1])
	}
	point := NewCornerPoint(Pt(x, y))
	if len(parts) == 3 {
		point.Selected = SelectAnchor
	}
	return point, nil
}
