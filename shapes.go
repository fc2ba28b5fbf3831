package logo

import (
	"fmt"
	"image"
	"image/color"
)

// Primitive is a single drawing step applied to a Canvas.
type Primitive interface {
	// Draw paints the primitive onto c.
	// Returns an error if the canvas rejects the operation.
	Draw(c *Canvas) error
}

// Rect is a filled rectangle. Both corners are inclusive: Rect{Min: (40,40),
// Max: (160,160)} paints 121×121 pixels.
type Rect struct {
	Min, Max image.Point
	Fill     color.NRGBA
}

// Draw implements Primitive.
func (r Rect) Draw(c *Canvas) error {
	return c.FillRect(image.Rectangle{Min: r.Min, Max: r.Max}, r.Fill)
}

func (r Rect) String() string {
	return fmt.Sprintf("rect %v-%v %s", r.Min, r.Max, hexColor(r.Fill))
}

// Ellipse is a filled ellipse inscribed in an inclusive bounding box.
type Ellipse struct {
	Min, Max image.Point
	Fill     color.NRGBA
}

// Circle returns the Ellipse for a circle of radius r centred at (cx, cy).
func Circle(cx, cy, r int, fill color.NRGBA) Ellipse {
	return Ellipse{
		Min:  image.Pt(cx-r, cy-r),
		Max:  image.Pt(cx+r, cy+r),
		Fill: fill,
	}
}

// Draw implements Primitive.
func (e Ellipse) Draw(c *Canvas) error {
	return c.FillEllipse(image.Rectangle{Min: e.Min, Max: e.Max}, e.Fill)
}

func (e Ellipse) String() string {
	return fmt.Sprintf("ellipse %v-%v %s", e.Min, e.Max, hexColor(e.Fill))
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
