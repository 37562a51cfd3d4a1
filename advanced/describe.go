package advanced

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// Describe writes one line per point of the path: index, type, anchor and
// handles. Smooth points are cyan, corners green, and selected indices red.
func (path *Path) Describe(w io.Writer, colors bool) error {
	au := aurora.NewAurora(colors)
	kind := "open"
	if path.Closed {
		kind = "closed"
	}
	if _, err := fmt.Fprintf(w, "%s (%s, %d points)\n", au.Bold(path.Name), kind, len(path.Points)); err != nil {
		return err
	}
	for i, p := range path.Points {
		index := au.Sprintf("%3d", i)
		if p.IsSelected() {
			index = au.Red(index).String()
		}
		pointType := au.Green(p.PointType).String()
		if p.PointType == Smooth {
			pointType = au.Cyan(p.PointType).String()
		}
		if _, err := fmt.Fprintf(w, "%s %-6s %s  in %s  out %s\n", index, pointType, p.Anchor, p.LeftDirection, p.RightDirection); err != nil {
			return err
		}
	}
	return nil
}
