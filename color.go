package logo

import "image/color"

// Palette of the logo. Fill colours are opaque; the backdrop is fully
// transparent white.
var (
	Backdrop    = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	BoxBlue     = color.NRGBA{R: 41, G: 128, B: 185, A: 255}
	StripeWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	BadgeRed    = color.NRGBA{R: 231, G: 76, B: 60, A: 255}
)

// blendOver composites src with the given coverage (0-255) over dst using
// source-over in non-premultiplied space. A destination with zero alpha
// takes the source colour unchanged.
func blendOver(dst, src color.NRGBA, coverage uint8) color.NRGBA {
	if coverage == 0 || src.A == 0 {
		return dst
	}
	if coverage == 255 && src.A == 255 {
		return src
	}

	srcA := float64(src.A) / 255 * float64(coverage) / 255
	dstA := float64(dst.A) / 255
	inv := 1 - srcA

	outA := srcA + dstA*inv
	if outA <= 0 {
		return dst
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*srcA + float64(d)*dstA*inv) / outA
		return uint8(clamp255(v + 0.5))
	}
	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(clamp255(outA*255 + 0.5)),
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
