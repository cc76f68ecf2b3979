package codec

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/imgproc"
)

// Fit scales b down so it fits within maxWidth×maxHeight, preserving the
// aspect ratio. Buffers that already fit are returned as-is. A
// non-positive bound leaves that axis unconstrained.
//
// The result is always a 4-channel buffer with samples clamped to
// [0, 255], since scaling goes through image.NRGBA.
func Fit(b *imgproc.Buffer, maxWidth, maxHeight int) *imgproc.Buffer {
	w, h := fitSize(b.Width(), b.Height(), maxWidth, maxHeight)
	if w == b.Width() && h == b.Height() {
		return b
	}

	imgproc.Logger().Debug("scaling buffer",
		"from", image.Pt(b.Width(), b.Height()), "to", image.Pt(w, h))

	src := b.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return imgproc.FromImage(dst)
}

// fitSize returns the largest size within the bounds that keeps the
// aspect ratio of w×h, never growing the image and never shrinking an
// axis below one pixel.
func fitSize(w, h, maxWidth, maxHeight int) (int, int) {
	scale := 1.0
	if maxWidth > 0 && w > maxWidth {
		scale = min(scale, float64(maxWidth)/float64(w))
	}
	if maxHeight > 0 && h > maxHeight {
		scale = min(scale, float64(maxHeight)/float64(h))
	}
	if scale == 1 {
		return w, h
	}
	return max(1, int(math.Round(float64(w)*scale))), max(1, int(math.Round(float64(h)*scale)))
}
