package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate returns src turned by the given angle in degrees about its centre.
// Positive angles turn clockwise on screen. The result is grown to hold the
// rotated bounds, so the centre of src maps to the centre of the result.
func Rotate(src image.Image, degrees float32) image.Image {
	if degrees == 0 || src == nil {
		return src
	}

	b := src.Bounds()
	rad := float64(degrees) * math.Pi / 180
	sin, cos := math.Sincos(rad)

	w, h := RotatedSize(b.Dx(), b.Dy(), degrees)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	// dst = R * (src - srcCentre) + dstCentre
	scx := float64(b.Min.X) + float64(b.Dx())/2
	scy := float64(b.Min.Y) + float64(b.Dy())/2
	dcx, dcy := float64(w)/2, float64(h)/2
	m := f64.Aff3{
		cos, -sin, dcx - (cos*scx - sin*scy),
		sin, cos, dcy - (sin*scx + cos*scy),
	}

	draw.BiLinear.Transform(dst, m, src, b, draw.Over, nil)
	return dst
}

// RotatedSize returns the pixel size of the bounding box of a w x h
// rectangle turned by the given angle in degrees.
func RotatedSize(w, h int, degrees float32) (int, int) {
	rad := float64(degrees) * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	fw, fh := float64(w), float64(h)

	// Round away tiny float error so 90° turns stay exact
	rw := math.Ceil(fw*cos + fh*sin - 1e-9)
	rh := math.Ceil(fw*sin + fh*cos - 1e-9)
	return int(rw), int(rh)
}
