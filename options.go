package logo

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Hard-edged fills (default)
//	c, err := logo.NewCanvas(200, 200, logo.Backdrop)
//
//	// Coverage-blended edges
//	c, err := logo.NewCanvas(200, 200, logo.Backdrop, logo.WithAntialias(true))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	antialias bool
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		antialias: false,
	}
}

// WithAntialias selects how shape edges are composited. When false (the
// default) a pixel is painted with the full fill colour if the shape covers
// at least half of it and left untouched otherwise, so every painted pixel
// carries the exact palette colour. When true, edge pixels are blended with
// the canvas in proportion to their coverage.
func WithAntialias(enabled bool) CanvasOption {
	return func(o *canvasOptions) {
		o.antialias = enabled
	}
}
