package tidypath

import (
	"strings"
	"testing"

	"github.com/osuushi/tidypath/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.

const document = `<svg xmlns="http://www.w3.org/2000/svg">
  <path id="outline" d="M 0 0 L 10 0 L 10.1 0 L 10 10 L 0 10 Z" data-selected="0 3"/>
</svg>`

func TestTidy(t *testing.T) {
	paths, err := LoadSVG(strings.NewReader(document))
	require.NoError(t, err)
	require.Len(t, paths, 1)

	path := paths[0]
	assert.Len(t, FindRedundant(path, advanced.DefaultOptions()), 1)

	removed, err := Tidy(path, advanced.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Len(t, path.Points, 4)
}

func TestSelectRedundant(t *testing.T) {
	paths, err := LoadSVG(strings.NewReader(document))
	require.NoError(t, err)

	assert.Equal(t, 2, SelectRedundant(paths[0], advanced.DefaultOptions()))
	assert.False(t, paths[0].Points[0].IsSelected())
	assert.True(t, paths[0].Points[1].IsSelected())
	assert.True(t, paths[0].Points[2].IsSelected())
}

func TestCollapseError(t *testing.T) {
	paths, err := LoadSVG(strings.NewReader(document))
	require.NoError(t, err)
	path := paths[0]

	removed, err := Collapse(path, []RedundantGroup{{1, 2}, {2, 3}}, advanced.DefaultOptions())
	assert.Error(t, err)
	assert.Equal(t, 0, removed)
	assert.Len(t, path.Points, 5, "nothing is removed when the groups are bad")

	_, err = Collapse(path, []RedundantGroup{{4, 9}}, advanced.DefaultOptions())
	assert.True(t, errors.Is(err, advanced.ErrIndexOutOfRange))
}

func TestSmoothAndExtract(t *testing.T) {
	paths, err := LoadSVG(strings.NewReader(document))
	require.NoError(t, err)
	path := paths[0]

	segment, err := ExtractSegment(path, advanced.ShorterArc())
	require.NoError(t, err)
	assert.Len(t, segment.Points, 3)
	assert.Equal(t, advanced.Pt(10, -10), segment.Points[0].Anchor, "svg Y is flipped on read")

	_, err = ExtractSegment(path, advanced.SegmentRule{})
	assert.True(t, errors.Is(err, advanced.ErrUnsupportedConfiguration))

	require.NoError(t, Smooth(path, 3))
	assert.Equal(t, advanced.Smooth, path.Points[3].PointType)
	assert.Error(t, Smooth(path, 5))
}
