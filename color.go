package imgproc

import (
	"fmt"
	"math"
)

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float32
}

// HSVPositionToRGB converts a normalized picker position to a color.
// x is the hue as a fraction of a full turn (H = x*360°), y is the
// saturation, and the value is fixed at 1.
//
// Hue positions at or beyond a full turn fall into the last sextant, so
// x == 1 yields the same red as x == 0.
func HSVPositionToRGB(x, y float32) RGB {
	const v = 1.0

	h := float64(x) * 360
	c := v * float64(y)
	hs := h / 60
	xc := c * (1 - math.Abs(math.Mod(hs, 2)-1))

	var r, g, b float64
	switch {
	case hs < 1:
		r, g, b = c, xc, 0
	case hs < 2:
		r, g, b = xc, c, 0
	case hs < 3:
		r, g, b = 0, c, xc
	case hs < 4:
		r, g, b = 0, xc, c
	case hs < 5:
		r, g, b = xc, 0, c
	default:
		r, g, b = c, 0, xc
	}

	m := v - c
	return RGB{R: float32(r + m), G: float32(g + m), B: float32(b + m)}
}

// GrayscaleValue reduces a color to a single luminance value.
//
// With uniform set it uses the ITU-R 601 luma weights
// (0.299, 0.587, 0.114); otherwise the plain average of the three
// channels. Both scales (0..255 or 0..1) work as long as the caller is
// consistent. A gray input (r == g == b) is returned unchanged.
func GrayscaleValue(r, g, b float32, uniform bool) float32 {
	if r == g && g == b {
		return r
	}
	if uniform {
		return r*0.299 + g*0.587 + b*0.114
	}
	return (r + g + b) / 3
}

// ToGrayscale replaces the first three channels of every pixel with
// GrayscaleValue of those channels. Alpha and any further channels are
// left untouched. Buffers with fewer than three channels are already
// single-luminance and are not modified.
func (b *Buffer) ToGrayscale(uniform bool) {
	if b.channels < 3 {
		return
	}
	for i := 0; i < len(b.data); i += b.channels {
		v := GrayscaleValue(b.data[i], b.data[i+1], b.data[i+2], uniform)
		b.data[i] = v
		b.data[i+1] = v
		b.data[i+2] = v
	}
}

// HSVField creates a 4-channel color picker buffer: pixel (x, y) holds
// HSVPositionToRGB(x/width, y/height) with an opaque alpha.
func HSVField(width, height int) (*Buffer, error) {
	buf, err := NewBuffer(width, height, 4)
	if err != nil {
		return nil, err
	}
	for y := range height {
		for x := range width {
			rgb := HSVPositionToRGB(float32(x)/float32(width), float32(y)/float32(height))
			buf.SetNormalizedValue(x, y, ChannelR, rgb.R)
			buf.SetNormalizedValue(x, y, ChannelG, rgb.G)
			buf.SetNormalizedValue(x, y, ChannelB, rgb.B)
			buf.SetValue(x, y, ChannelA, MaxValue)
		}
	}
	return buf, nil
}

// GradientField creates the 4-channel placeholder buffer used when no
// source image is available: red ramps along x, green along y, blue is
// constant at half intensity.
func GradientField(width, height int) (*Buffer, error) {
	buf, err := NewBuffer(width, height, 4)
	if err != nil {
		return nil, err
	}
	for y := range height {
		for x := range width {
			buf.SetNormalizedValue(x, y, ChannelR, float32(x)/float32(width))
			buf.SetNormalizedValue(x, y, ChannelG, float32(y)/float32(height))
			buf.SetNormalizedValue(x, y, ChannelB, 0.5)
			buf.SetValue(x, y, ChannelA, MaxValue)
		}
	}
	return buf, nil
}

// PickerReadout formats the HSV and RGB values of a normalized picker
// position, e.g. "HSV: (120, 1, 1)  RGB: (0, 1, 0)".
func PickerReadout(x, y float32) string {
	rgb := HSVPositionToRGB(x, y)
	return fmt.Sprintf("HSV: (%g, %g, %g)  RGB: (%g, %g, %g)",
		x*360, y, float32(1), rgb.R, rgb.G, rgb.B)
}
