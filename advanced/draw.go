package advanced

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/tidypath/dbg"
	"github.com/pkg/errors"
)

// Padding around the paths so handles near the edge stay visible
const drawPadding = 40

// RenderPNG draws the paths with their handles and anchors and saves the image
// to filename. Smooth points are drawn as circles and corners as squares;
// selected points are filled. When labels is set, each point is tagged with a
// readable name, which helps to tell points apart while debugging.
func RenderPNG(paths []*Path, scale float64, labels bool, filename string) error {
	min, max := Bounds(paths)
	if math.IsInf(min.X, 0) {
		return errors.Wrap(ErrUnsupportedConfiguration, "nothing to render")
	}

	width := int(scale*(max.X-min.X)) + drawPadding*2
	height := int(scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	lineWidth := 2 / scale
	for _, path := range paths {
		drawCurve(c, path)
		c.SetRGB(0, 0, 0)
		c.SetLineWidth(lineWidth)
		c.Stroke()
	}
	for _, path := range paths {
		for _, p := range path.Points {
			drawHandles(c, p, lineWidth, 4/scale)
		}
	}
	if labels {
		for _, path := range paths {
			for _, p := range path.Points {
				drawLabel(c, p)
			}
		}
	}
	return c.SavePNG(filename)
}

// CatPNG prints a PNG file inline in the terminal (iTerm only).
func CatPNG(filename string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(filename, w), "printing %s", filename)
}

func drawCurve(c *gg.Context, path *Path) {
	if len(path.Points) == 0 {
		return
	}
	first := path.Points[0]
	c.MoveTo(first.Anchor.X, first.Anchor.Y)
	segment := func(from, to *AnchorPoint) {
		c.CubicTo(
			from.RightDirection.X, from.RightDirection.Y,
			to.LeftDirection.X, to.LeftDirection.Y,
			to.Anchor.X, to.Anchor.Y,
		)
	}
	for i := 1; i < len(path.Points); i++ {
		segment(path.Points[i-1], path.Points[i])
	}
	if path.Closed {
		segment(path.Points[len(path.Points)-1], first)
		c.ClosePath()
	}
}

func drawHandles(c *gg.Context, p *AnchorPoint, lineWidth, radius float64) {
	c.SetLineWidth(lineWidth)
	for _, handle := range []Point{p.LeftDirection, p.RightDirection} {
		if handle == p.Anchor {
			continue
		}
		c.SetRGB(0.3, 0.5, 1)
		c.DrawLine(p.Anchor.X, p.Anchor.Y, handle.X, handle.Y)
		c.Stroke()
		c.DrawCircle(handle.X, handle.Y, radius/2)
		c.Fill()
	}

	if p.PointType == Smooth {
		c.DrawCircle(p.Anchor.X, p.Anchor.Y, radius)
	} else {
		c.DrawRectangle(p.Anchor.X-radius, p.Anchor.Y-radius, 2*radius, 2*radius)
	}
	if p.IsSelected() {
		c.SetRGB(1, 0.2, 0.2)
		c.Fill()
	} else {
		c.SetRGB(1, 1, 1)
		c.FillPreserve()
		c.SetRGB(1, 0.2, 0.2)
		c.Stroke()
	}
}

func drawLabel(c *gg.Context, p *AnchorPoint) {
	// We have to go back to identity to draw the text, so get the point in native coordinates
	x, y := c.TransformPoint(p.Anchor.X, p.Anchor.Y)
	c.Push()
	c.Identity()
	c.SetRGB(0, 0, 0)
	c.DrawStringAnchored(dbg.Name(p), x+6, y-6, 0, 0)
	c.Pop()
}
