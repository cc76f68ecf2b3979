package imgproc

import "math"

// filteredChannels is the number of leading channels Convolve filters.
// Any further channel (alpha) is copied unchanged.
const filteredChannels = 3

// wrap maps i onto [0, n) with a true modulo, so -1 becomes n-1.
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Convolve applies k to the color channels of src and returns a new buffer
// of the same shape. src is not modified.
//
// Neighbors are sampled with toroidal wraparound: a pixel on the left edge
// reads its left neighbor from the right edge, and likewise vertically.
//
// The kernel is indexed transposed relative to the spatial offset: the
// sample at horizontal offset i and vertical offset j from the window
// origin is weighted by k.At(j, i). For symmetric kernels this makes no
// difference; for directional kernels such as FilterSobelX it swaps the
// direction of the response.
//
// Each output sample is the magnitude sqrt(v*v) of the accumulated sum v.
// Results are rectified but not clamped, so they may exceed MaxValue.
func Convolve(src *Buffer, k *Kernel) *Buffer {
	Logger().Debug("convolve",
		"width", src.width, "height", src.height, "channels", src.channels,
		"kernel", k)

	dst := src.Clone()

	n := min(src.channels, filteredChannels)
	// i walks kernel rows and the horizontal offset, j walks kernel
	// columns and the vertical offset.
	offX := k.height / 2
	offY := k.width / 2

	for y := range src.height {
		for x := range src.width {
			for c := range n {
				var value float32
				for i := range k.height {
					sx := wrap(x+i-offX, src.width)
					for j := range k.width {
						sy := wrap(y+j-offY, src.height)
						value += src.data[(sy*src.width+sx)*src.channels+c] * k.coeffs[i*k.width+j]
					}
				}
				dst.data[(y*src.width+x)*src.channels+c] = float32(math.Abs(float64(value)))
			}
		}
	}

	return dst
}

// ApplyFilter convolves src with the kernel of the built-in filter f.
func ApplyFilter(src *Buffer, f Filter) *Buffer {
	return Convolve(src, f.Kernel())
}
