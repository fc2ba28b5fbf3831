package logo

import (
	"fmt"
	"image"
	"io"
)

// FileName is the name the logo is saved under by the logogen command.
const FileName = "logo.png"

// Size is the width and height of the logo in pixels.
const Size = 200

// Box geometry: the blue square, inset from every edge by boxMargin.
const boxMargin = 40

// Barcode geometry.
const (
	stripeTop    = 70
	stripeHeight = 60
	stripeLeft   = 55
	stripeGap    = 4
)

// stripeFactors are the relative stripe widths, left to right. Each stripe is
// twice its factor in pixels wide.
var stripeFactors = [...]int{3, 1, 4, 2, 3, 2, 1, 5, 2, 3, 1}

// Badge geometry.
const (
	badgeX      = 150
	badgeY      = 50
	badgeRadius = 20
)

// Stripes returns the barcode stripes in drawing order as inclusive-corner
// rectangles. Consecutive stripes never overlap: each starts stripeGap
// pixels after the previous one's nominal right edge.
func Stripes() []image.Rectangle {
	stripes := make([]image.Rectangle, 0, len(stripeFactors))
	x := stripeLeft
	for _, factor := range stripeFactors {
		w := factor * 2
		stripes = append(stripes, image.Rectangle{
			Min: image.Pt(x, stripeTop),
			Max: image.Pt(x+w, stripeTop+stripeHeight),
		})
		x += w + stripeGap
	}
	return stripes
}

// Design returns the primitives that make up the logo in the order they
// must be drawn: the box, the barcode stripes, then the badge. Later
// primitives cover earlier ones.
func Design() []Primitive {
	design := make([]Primitive, 0, len(stripeFactors)+2)

	design = append(design, Rect{
		Min:  image.Pt(boxMargin, boxMargin),
		Max:  image.Pt(Size-boxMargin, Size-boxMargin),
		Fill: BoxBlue,
	})

	for _, s := range Stripes() {
		design = append(design, Rect{Min: s.Min, Max: s.Max, Fill: StripeWhite})
	}

	design = append(design, Circle(badgeX, badgeY, badgeRadius, BadgeRed))
	return design
}

// Render draws the logo onto a new Size×Size canvas. The caller owns the
// returned canvas and should Close it when done drawing.
func Render(opts ...CanvasOption) (*Canvas, error) {
	c, err := NewCanvas(Size, Size, Backdrop, opts...)
	if err != nil {
		return nil, err
	}

	design := Design()
	for i, p := range design {
		if err := p.Draw(c); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("logo: draw step %d (%v): %w", i, p, err)
		}
	}

	Logger().Debug("logo rendered", "size", Size, "primitives", len(design))
	return c, nil
}

// Encode renders the logo and writes it as PNG to w.
func Encode(w io.Writer) error {
	c, err := Render()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	return c.EncodePNG(w)
}

// Save renders the logo and writes it as a PNG file at path, replacing any
// existing file.
func Save(path string) error {
	c, err := Render()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if err := c.SavePNG(path); err != nil {
		return err
	}

	Logger().Debug("logo saved", "path", path)
	return nil
}
