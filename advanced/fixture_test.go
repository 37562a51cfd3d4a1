package advanced

import (
	"embed"
	"log"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds exactly one path. If anything goes wrong, loading fails the whole
// test binary.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Path {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	root, err := ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	paths := CollectPaths(root)
	if len(paths) != 1 {
		log.Fatalf("Expected one path in fixture %q, found %d", name, len(paths))
	}
	return paths[0]
}

// Some ad hoc fixtures

// A regular polygon of corner points, starting on the positive X axis and
// going counterclockwise.
func RegularPolygon(n int, radius float64) *Path {
	path := &Path{Closed: true}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		path.Points = append(path.Points, NewCornerPoint(Pt(radius*math.Cos(angle), radius*math.Sin(angle))))
	}
	return path
}

// An open path of corner points.
func Polyline(points ...Point) *Path {
	path := &Path{}
	for _, p := range points {
		path.Points = append(path.Points, NewCornerPoint(p))
	}
	return path
}

func Polygon(points ...Point) *Path {
	path := Polyline(points...)
	path.Closed = true
	return path
}

func selectPoints(path *Path, indices ...int) {
	for _, i := range indices {
		path.Points[i].Selected = SelectAnchor
	}
}

func anchors(path *Path) []Point {
	result := make([]Point, len(path.Points))
	for i, p := range path.Points {
		result[i] = p.Anchor
	}
	return result
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

const delta = 1e-6

func assertPointInDelta(t *testing.T, expected, actual Point, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
}

// The difference between two angles, wrapped into [-π, π].
func angleDifference(a, b float64) float64 {
	return math.Remainder(a-b, 2*math.Pi)
}
