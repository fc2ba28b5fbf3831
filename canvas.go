package logo

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
)

var (
	// ErrInvalidSize is returned by NewCanvas for non-positive dimensions.
	ErrInvalidSize = errors.New("logo: invalid canvas size")

	// ErrClosed is returned when drawing on a Canvas after Close.
	ErrClosed = errors.New("logo: canvas is closed")
)

// Canvas is a fixed-size raster that primitives draw into.
//
// Pixels are stored non-premultiplied, so a fully transparent pixel keeps
// its colour channels through encoding. Shape geometry is rasterized by a
// gg drawing context into a coverage mask, and the mask decides which canvas
// pixels receive the fill colour.
type Canvas struct {
	img    *image.NRGBA
	dc     *gg.Context
	opts   canvasOptions
	closed bool
}

// Ensure Canvas implements image.Image and io.Closer.
var (
	_ image.Image = (*Canvas)(nil)
	_ io.Closer   = (*Canvas)(nil)
)

// NewCanvas creates a width×height canvas with every pixel set to background.
func NewCanvas(width, height int, background color.NRGBA, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = background.R
		img.Pix[i+1] = background.G
		img.Pix[i+2] = background.B
		img.Pix[i+3] = background.A
	}

	return &Canvas{
		img:  img,
		dc:   gg.NewContext(width, height),
		opts: options,
	}, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the underlying pixel buffer. The buffer is shared with the
// canvas; later drawing is visible through it.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// NRGBAAt returns the colour of a single pixel. Coordinates outside the
// canvas yield the zero colour.
func (c *Canvas) NRGBAAt(x, y int) color.NRGBA {
	return c.img.NRGBAAt(x, y)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// FillRect fills the rectangle whose corners r.Min and r.Max are both
// inclusive. A rectangle with r.Max left of or above r.Min draws nothing.
func (c *Canvas) FillRect(r image.Rectangle, col color.NRGBA) error {
	if c.closed {
		return ErrClosed
	}
	area, ok := pixelSpan(r)
	if !ok {
		return nil
	}

	c.dc.DrawRectangle(
		float64(area.Min.X), float64(area.Min.Y),
		float64(area.Dx()), float64(area.Dy()),
	)
	return c.fillPath(area, col)
}

// FillEllipse fills the ellipse inscribed in the bounding box whose corners
// r.Min and r.Max are both inclusive.
func (c *Canvas) FillEllipse(r image.Rectangle, col color.NRGBA) error {
	if c.closed {
		return ErrClosed
	}
	area, ok := pixelSpan(r)
	if !ok {
		return nil
	}

	rx := float64(area.Dx()) / 2
	ry := float64(area.Dy()) / 2
	c.dc.DrawEllipse(float64(area.Min.X)+rx, float64(area.Min.Y)+ry, rx, ry)
	return c.fillPath(area, col)
}

// fillPath composites col through the coverage of the context's current
// path and clears the path. Only pixels within area (grown by one pixel for
// edge coverage) are visited.
func (c *Canvas) fillPath(area image.Rectangle, col color.NRGBA) error {
	mask := c.dc.AsMask()
	c.dc.ClearPath()

	r := area.Inset(-1).Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			coverage := mask.At(x, y)
			if !c.opts.antialias {
				// Hard edges: a pixel at least half covered takes the fill
				// colour outright, replacing what was there.
				if coverage >= 128 {
					c.img.SetNRGBA(x, y, col)
				}
				continue
			}
			if coverage == 0 {
				continue
			}
			c.img.SetNRGBA(x, y, blendOver(c.img.NRGBAAt(x, y), col, coverage))
		}
	}
	return nil
}

// pixelSpan converts an inclusive-corner rectangle into the half-open pixel
// area it covers. It reports false for an empty rectangle.
func pixelSpan(r image.Rectangle) (image.Rectangle, bool) {
	if r.Max.X < r.Min.X || r.Max.Y < r.Min.Y {
		return image.Rectangle{}, false
	}
	return image.Rectangle{Min: r.Min, Max: r.Max.Add(image.Pt(1, 1))}, true
}

// EncodePNG writes the canvas as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to a PNG file, creating or truncating it.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return fmt.Errorf("logo: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			if err == nil {
				err = fmt.Errorf("logo: close %s: %w", path, cerr)
				return
			}
			Logger().Warn("close after failed write", "path", path, "err", cerr)
		}
	}()

	if err := c.EncodePNG(f); err != nil {
		return fmt.Errorf("logo: write %s: %w", path, err)
	}
	return nil
}

// Close releases the rasterizer. Close is idempotent; drawing after Close
// returns ErrClosed, while reading and encoding keep working.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dc.Close()
}
