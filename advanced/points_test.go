package advanced

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	input := `0 0
10 0 *
10 10

  
5 5 *
6 6 *
`
	paths, err := ReadPoints(strings.NewReader(input), true)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, anchors(paths[0]))
	diff(t, []Point{Pt(5, 5), Pt(6, 6)}, anchors(paths[1]))
	assert.True(t, paths[0].Closed)
	assert.Equal(t, 1, paths[0].SelectedCount())
	assert.True(t, paths[0].Points[1].IsSelected())
	assert.Equal(t, 2, paths[1].SelectedCount())

	for _, bad := range []string{"1\n", "a 1\n", "1 b\n", "1 2 3\n"} {
		_, err := ReadPoints(strings.NewReader(bad), false)
		assert.True(t, errors.Is(err, ErrInvalidPathData), "%q: %v", bad, err)
	}
}
