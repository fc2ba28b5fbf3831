// Package logo renders the product-scanner logo: a blue square carrying a
// row of white barcode stripes, with a red circular badge on its top-right
// corner.
//
// # Quick Start
//
//	import "github.com/prodscan/logo"
//
//	// Write logo.png in the working directory
//	if err := logo.Save(logo.FileName); err != nil {
//	    log.Fatal(err)
//	}
//
// # Drawing Model
//
// A [Canvas] is a fixed-size non-premultiplied RGBA raster. The logo is the
// ordered list of primitives returned by [Design], applied to a canvas
// cleared to transparent white. Rectangle and ellipse corners are inclusive
// pixel coordinates. Shape edges are hard by default; see [WithAntialias].
//
// Shape geometry is rasterized with github.com/gogpu/gg and only its
// coverage is used, so the fill colours land in the output unchanged.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package logo
