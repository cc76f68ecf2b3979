package imgproc

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Common errors for buffer and kernel construction.
var (
	// ErrInvalidDimensions is returned when width, height or channel count is non-positive.
	ErrInvalidDimensions = errors.New("imgproc: invalid dimensions")

	// ErrKernelSize is returned when a kernel's coefficient count does not match width*height.
	ErrKernelSize = errors.New("imgproc: kernel coefficient count mismatch")
)

// Channel indices of a 4-channel buffer.
const (
	ChannelR = 0
	ChannelG = 1
	ChannelB = 2
	ChannelA = 3
)

// MaxValue is the nominal upper bound of a sample.
const MaxValue = 255

// Buffer is a width×height grid of pixels with a fixed number of channels.
//
// Samples are float32 on the nominal 8-bit scale [0, MaxValue]. Values are
// not saturated on store: operations such as Convolve may produce samples
// above MaxValue, and only ToImage clamps them.
//
// Accessing a sample outside the buffer panics. A Buffer requires exclusive
// access while it is being mutated; concurrent readers are fine.
type Buffer struct {
	width    int
	height   int
	channels int
	data     []float32 // row-major, channels interleaved
}

// NewBuffer creates a zeroed buffer.
// Returns ErrInvalidDimensions if any argument is non-positive.
func NewBuffer(width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, width, height, channels)
	}
	return &Buffer{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]float32, width*height*channels),
	}, nil
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Channels returns the number of samples per pixel.
func (b *Buffer) Channels() int {
	return b.channels
}

// Data returns the backing sample slice (row-major, channels interleaved).
func (b *Buffer) Data() []float32 {
	return b.data
}

func (b *Buffer) offset(x, y, c int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || c < 0 || c >= b.channels {
		panic(fmt.Sprintf("imgproc: sample (%d,%d,%d) out of range for %dx%dx%d buffer",
			x, y, c, b.width, b.height, b.channels))
	}
	return (y*b.width+x)*b.channels + c
}

// Value returns the sample at (x, y, c).
func (b *Buffer) Value(x, y, c int) float32 {
	return b.data[b.offset(x, y, c)]
}

// SetValue stores v at (x, y, c).
func (b *Buffer) SetValue(x, y, c int, v float32) {
	b.data[b.offset(x, y, c)] = v
}

// NormalizedValue returns the sample at (x, y, c) scaled to [0, 1].
func (b *Buffer) NormalizedValue(x, y, c int) float32 {
	return b.Value(x, y, c) / MaxValue
}

// SetNormalizedValue stores a [0, 1] value at (x, y, c).
func (b *Buffer) SetNormalizedValue(x, y, c int, v float32) {
	b.SetValue(x, y, c, v*MaxValue)
}

// Fill sets every sample of every channel to v.
func (b *Buffer) Fill(v float32) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]float32, len(b.data))
	copy(data, b.data)
	return &Buffer{
		width:    b.width,
		height:   b.height,
		channels: b.channels,
		data:     data,
	}
}

// SameShape reports whether o has the same width, height and channel count.
func (b *Buffer) SameShape(o *Buffer) bool {
	return b.width == o.width && b.height == o.height && b.channels == o.channels
}

// FromImage creates a 4-channel buffer from an image.
// Samples are non-premultiplied values in [0, 255].
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("imgproc: cannot convert empty image %v", bounds))
	}

	buf := &Buffer{
		width:    width,
		height:   height,
		channels: 4,
		data:     make([]float32, width*height*4),
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
			dst := buf.data[y*width*4:]
			for i, v := range row {
				dst[i] = float32(v)
			}
		}
		return buf
	}

	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*width + x) * 4
			buf.data[i+0] = float32(c.R)
			buf.data[i+1] = float32(c.G)
			buf.data[i+2] = float32(c.B)
			buf.data[i+3] = float32(c.A)
		}
	}
	return buf
}

// ToImage converts the buffer to an image.NRGBA, clamping every sample to
// [0, 255]. Buffers with fewer than three channels are treated as gray
// (channel 0 replicated); a missing alpha channel is opaque.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		for x := range b.width {
			base := (y*b.width + x) * b.channels
			o := y*img.Stride + x*4

			r := b.data[base]
			g, bl := r, r
			if b.channels >= 3 {
				g = b.data[base+1]
				bl = b.data[base+2]
			}
			a := float32(MaxValue)
			if b.channels >= 4 {
				a = b.data[base+3]
			}

			img.Pix[o+0] = clamp255(r)
			img.Pix[o+1] = clamp255(g)
			img.Pix[o+2] = clamp255(bl)
			img.Pix[o+3] = clamp255(a)
		}
	}
	return img
}

// clamp255 saturates a sample to [0, 255] and rounds to the nearest integer.
func clamp255(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= MaxValue {
		return MaxValue
	}
	return uint8(v + 0.5)
}
