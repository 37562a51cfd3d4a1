package advanced

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	parsestrconv "github.com/tdewolff/parse/v2/strconv"
)

// Parsing and formatting of SVG path data (the "d" attribute). Only the
// commands that map onto anchor points joined by cubics are understood: M, L,
// H, V, C and Z, in absolute and relative form.

type pathDataScanner struct {
	data []byte
	pos  int
}

func (s *pathDataScanner) skipSeparators() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathDataScanner) done() bool {
	s.skipSeparators()
	return s.pos >= len(s.data)
}

func (s *pathDataScanner) hasNumber() bool {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return false
	}
	c := s.data[s.pos]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func (s *pathDataScanner) command() (byte, error) {
	s.skipSeparators()
	c := s.data[s.pos]
	if !strings.ContainsRune("MmLlHhVvCcZz", rune(c)) {
		return 0, errors.Wrapf(ErrInvalidPathData, "unsupported command %q at offset %d", c, s.pos)
	}
	s.pos++
	return c, nil
}

func (s *pathDataScanner) number() (float64, error) {
	if !s.hasNumber() {
		return 0, errors.Wrapf(ErrInvalidPathData, "expected number at offset %d", s.pos)
	}
	f, n := parsestrconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		return 0, errors.Wrapf(ErrInvalidPathData, "malformed number at offset %d", s.pos)
	}
	s.pos += n
	return f, nil
}

func (s *pathDataScanner) point(relativeTo Point, relative bool) (Point, error) {
	x, err := s.number()
	if err != nil {
		return Point{}, err
	}
	y, err := s.number()
	if err != nil {
		return Point{}, err
	}
	if relative {
		return Point{X: relativeTo.X + x, Y: relativeTo.Y + y}, nil
	}
	return Point{X: x, Y: y}, nil
}

// Accumulates subpaths as path data is read.
type pathBuilder struct {
	paths   []*Path
	current *Path
	cursor  Point
	start   Point
}

func (b *pathBuilder) moveTo(p Point) {
	b.current = &Path{Points: []*AnchorPoint{NewCornerPoint(p)}}
	b.paths = append(b.paths, b.current)
	b.cursor = p
	b.start = p
}

// Drawing after a close, without a move, starts a new subpath where the closed
// one started.
func (b *pathBuilder) ensureSubpath() {
	if b.current == nil {
		b.moveTo(b.start)
	}
}

func (b *pathBuilder) lineTo(p Point) {
	b.ensureSubpath()
	b.current.Points = append(b.current.Points, NewCornerPoint(p))
	b.cursor = p
}

func (b *pathBuilder) cubicTo(c1, c2, p Point) {
	b.ensureSubpath()
	last := b.current.Points[len(b.current.Points)-1]
	last.RightDirection = c1
	point := NewCornerPoint(p)
	point.LeftDirection = c2
	b.current.Points = append(b.current.Points, point)
	b.cursor = p
}

// Close the subpath. An explicit closing segment that ends on the starting
// point is folded into the first point, which takes over its left handle.
func (b *pathBuilder) close() {
	if b.current == nil {
		return
	}
	points := b.current.Points
	if n := len(points); n > 1 && points[n-1].Anchor == points[0].Anchor {
		points[0].LeftDirection = points[n-1].LeftDirection
		b.current.Points = points[:n-1]
	}
	b.current.Closed = true
	b.current = nil
	b.cursor = b.start
}

// ParsePathData converts SVG path data into one path per subpath. Point types
// are inferred from the handles.
func ParsePathData(d string) ([]*Path, error) {
	s := &pathDataScanner{data: []byte(d)}
	b := &pathBuilder{}
	var cmd byte
	for !s.done() {
		if !s.hasNumber() {
			var err error
			if cmd, err = s.command(); err != nil {
				return nil, err
			}
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, errors.Wrapf(ErrInvalidPathData, "unexpected number at offset %d", s.pos)
		}

		relative := cmd >= 'a'
		var err error
		switch cmd {
		case 'M', 'm':
			var p Point
			if p, err = s.point(b.cursor, relative); err == nil {
				b.moveTo(p)
				// Further coordinate pairs are implicit line commands.
				if relative {
					cmd = 'l'
				} else {
					cmd = 'L'
				}
			}
		case 'L', 'l':
			var p Point
			if p, err = s.point(b.cursor, relative); err == nil {
				b.lineTo(p)
			}
		case 'H', 'h':
			var x float64
			if x, err = s.number(); err == nil {
				if relative {
					x += b.cursor.X
				}
				b.lineTo(Point{X: x, Y: b.cursor.Y})
			}
		case 'V', 'v':
			var y float64
			if y, err = s.number(); err == nil {
				if relative {
					y += b.cursor.Y
				}
				b.lineTo(Point{X: b.cursor.X, Y: y})
			}
		case 'C', 'c':
			var c1, c2, p Point
			origin := b.cursor
			if c1, err = s.point(origin, relative); err != nil {
				break
			}
			if c2, err = s.point(origin, relative); err != nil {
				break
			}
			if p, err = s.point(origin, relative); err == nil {
				b.cubicTo(c1, c2, p)
			}
		case 'Z', 'z':
			b.close()
		}
		if err != nil {
			return nil, err
		}
	}

	for _, path := range b.paths {
		path.inferPointTypes()
	}
	return b.paths, nil
}

// A point is smooth when both handles are out and they point in opposite
// directions.
func (path *Path) inferPointTypes() {
	for _, p := range path.Points {
		p.PointType = Corner
		leftAngle, leftLength := handlePolar(p.Anchor, p.LeftDirection)
		rightAngle, rightLength := handlePolar(p.Anchor, p.RightDirection)
		if roundHundredths(leftLength) > 0 && roundHundredths(rightLength) > 0 &&
			math.Abs(math.Pi-math.Abs(leftAngle-rightAngle)) < oppositeAngleMargin {
			p.PointType = Smooth
		}
	}
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(math.Round(x*1e4)/1e4, 'f', -1, 64)
}

func formatPoint(p Point) string {
	return formatNumber(p.X) + " " + formatNumber(p.Y)
}

// PathData formats the path as SVG path data. Segments with both handles
// retracted are written as lines.
func (path *Path) PathData() string {
	if len(path.Points) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("M " + formatPoint(path.Points[0].Anchor))
	segment := func(from, to *AnchorPoint) {
		if from.RightDirection == from.Anchor && to.LeftDirection == to.Anchor {
			sb.WriteString(" L " + formatPoint(to.Anchor))
			return
		}
		sb.WriteString(" C " + formatPoint(from.RightDirection) + " " + formatPoint(to.LeftDirection) + " " + formatPoint(to.Anchor))
	}
	for i := 1; i < len(path.Points); i++ {
		segment(path.Points[i-1], path.Points[i])
	}
	if path.Closed {
		if len(path.Points) > 1 {
			segment(path.Points[len(path.Points)-1], path.Points[0])
		}
		sb.WriteString(" Z")
	}
	return sb.String()
}
