package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Points 4, 0 and 1 coincide, across the seam of a closed path.
func seamPath() *Path {
	return Polygon(Pt(0, 0), Pt(0.1, 0), Pt(10, 0), Pt(10, 10), Pt(0, 0.2))
}

func TestFindRedundant(t *testing.T) {
	t.Run("run across the seam of a closed path", func(t *testing.T) {
		groups := seamPath().FindRedundant(0.5, FilterIgnore)
		diff(t, []RedundantGroup{{4, 0, 1}}, groups)
	})

	t.Run("open paths have no seam", func(t *testing.T) {
		path := seamPath()
		path.Closed = false
		groups := path.FindRedundant(0.5, FilterIgnore)
		diff(t, []RedundantGroup{{0, 1}}, groups)
	})

	t.Run("several groups", func(t *testing.T) {
		path := Polyline(Pt(0, 0), Pt(0, 0.1), Pt(5, 5), Pt(10, 10), Pt(10, 10.2), Pt(10, 10.3))
		groups := path.FindRedundant(0.5, FilterIgnore)
		diff(t, []RedundantGroup{{0, 1}, {3, 4, 5}}, groups)
	})

	t.Run("fixture", func(t *testing.T) {
		groups := LoadFixture("doubled_square").FindRedundant(0.5, FilterIgnore)
		diff(t, []RedundantGroup{{6, 0}, {1, 2}, {4, 5}}, groups)
	})

	t.Run("every point coincides", func(t *testing.T) {
		path := Polygon(Pt(0, 0), Pt(0, 0), Pt(0, 0))
		groups := path.FindRedundant(0.5, FilterIgnore)
		diff(t, []RedundantGroup{{1, 2, 0}}, groups)
	})

	t.Run("distances are rounded to hundredths", func(t *testing.T) {
		path := Polyline(Pt(0, 0), Pt(0.494, 0), Pt(5, 5), Pt(5.496, 5))
		groups := path.FindRedundant(0.5, FilterIgnore)
		diff(t, []RedundantGroup{{0, 1}}, groups)
	})

	t.Run("nothing to find", func(t *testing.T) {
		assert.Empty(t, RegularPolygon(6, 10).FindRedundant(0.5, FilterIgnore))
		assert.Empty(t, Polyline(Pt(0, 0)).FindRedundant(0.5, FilterIgnore))
		assert.Empty(t, (&Path{}).FindRedundant(0.5, FilterIgnore))
	})
}

func TestFindRedundantFilters(t *testing.T) {
	t.Run("any selected", func(t *testing.T) {
		path := Polyline(Pt(0, 0), Pt(0, 0.1), Pt(5, 5), Pt(10, 10), Pt(10, 10.2), Pt(10, 10.3))
		selectPoints(path, 1, 2)
		groups := path.FindRedundant(0.5, FilterAnySelected)
		diff(t, []RedundantGroup{{0, 1}}, groups)
	})

	// A single run of five coincident points, then a distant point.
	run := func() *Path {
		return Polyline(Pt(0, 0), Pt(0, 0.1), Pt(0, 0.2), Pt(0, 0.3), Pt(0, 0.4), Pt(9, 9))
	}

	t.Run("all selected splits runs", func(t *testing.T) {
		path := run()
		selectPoints(path, 0, 1, 3, 4)
		groups := path.FindRedundant(0.5, FilterAllSelected)
		diff(t, []RedundantGroup{{0, 1}, {3, 4}}, groups)
	})

	t.Run("all selected drops short runs", func(t *testing.T) {
		path := run()
		selectPoints(path, 0, 1, 2, 4)
		groups := path.FindRedundant(0.5, FilterAllSelected)
		diff(t, []RedundantGroup{{0, 1, 2}}, groups)
	})

	t.Run("all selected across the seam", func(t *testing.T) {
		path := seamPath()
		selectPoints(path, 4, 0)
		groups := path.FindRedundant(0.5, FilterAllSelected)
		diff(t, []RedundantGroup{{4, 0}}, groups)
	})

	t.Run("all selected around a fully coincident closed path", func(t *testing.T) {
		path := Polygon(Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0))
		require.Equal(t, []RedundantGroup{{1, 2, 3, 0}}, path.FindRedundant(0.5, FilterIgnore))

		selectPoints(path, 0, 1)
		diff(t, []RedundantGroup{{0, 1}}, path.FindRedundant(0.5, FilterAllSelected))

		selectPoints(path, 3)
		diff(t, []RedundantGroup{{3, 0, 1}}, path.FindRedundant(0.5, FilterAllSelected))

		selectPoints(path, 2)
		diff(t, []RedundantGroup{{1, 2, 3, 0}}, path.FindRedundant(0.5, FilterAllSelected))
	})

	t.Run("ignore", func(t *testing.T) {
		path := run()
		groups := path.FindRedundant(0.5, FilterIgnore)
		diff(t, []RedundantGroup{{0, 1, 2, 3, 4}}, groups)
		assert.Empty(t, path.FindRedundant(0.5, FilterAnySelected))
		assert.Empty(t, path.FindRedundant(0.5, FilterAllSelected))
	})
}

func TestSelectRedundant(t *testing.T) {
	path := seamPath()
	selectPoints(path, 2, 3)

	count := path.SelectRedundant(path.FindRedundant(0.5, FilterIgnore))
	assert.Equal(t, 3, count)
	for i, p := range path.Points {
		assert.Equal(t, i == 4 || i == 0 || i == 1, p.IsSelected(), "point %d", i)
	}
}

func TestParseSelectionFilter(t *testing.T) {
	for _, f := range []SelectionFilter{FilterIgnore, FilterAnySelected, FilterAllSelected} {
		parsed, err := ParseSelectionFilter(f.String())
		assert.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	_, err := ParseSelectionFilter("some")
	assert.Error(t, err)
}
