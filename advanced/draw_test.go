package advanced

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPNG(t *testing.T) {
	path := LoadFixture("wave")
	require.NoError(t, path.SmoothPoint(1))
	square := LoadFixture("doubled_square")

	filename := filepath.Join(t.TempDir(), "paths.png")
	require.NoError(t, RenderPNG([]*Path{path, square}, 4, true, filename))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = RenderPNG(nil, 4, false, filename)
	assert.True(t, errors.Is(err, ErrUnsupportedConfiguration))
}

func TestCatPNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "wave.png")
	require.NoError(t, RenderPNG([]*Path{LoadFixture("wave")}, 2, false, filename))

	var buf bytes.Buffer
	require.NoError(t, CatPNG(filename, &buf))
	assert.NotEmpty(t, buf.Bytes())

	err := CatPNG(filepath.Join(t.TempDir(), "missing.png"), &buf)
	assert.Error(t, err)
}
