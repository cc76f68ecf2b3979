// Package imgproc provides a small raster image-processing engine.
//
// # Overview
//
// imgproc holds a multi-channel pixel buffer, converts colors per pixel,
// applies 3×3 convolution filters with wrap-around boundaries, and renders
// a buffer to ASCII art. It performs no file I/O and knows nothing about
// windows or input events: callers hand in a decoded [Buffer] and get back
// a new or mutated buffer, or a text block.
//
// # Quick Start
//
//	import "github.com/gogpu/imgproc"
//
//	buf, _ := imgproc.GradientField(512, 512)
//
//	// Color operations mutate in place
//	buf.ToGrayscale(true)
//
//	// Convolution returns a new buffer
//	edges := imgproc.ApplyFilter(buf, imgproc.FilterSobelX)
//
//	// ASCII art, one line per 4 source rows
//	art := imgproc.RenderASCII(edges, true)
//
// # Sample Scale
//
// Samples are float32 on the nominal 8-bit scale [0, 255]. Nothing is
// rounded between operations. Convolve rectifies its output (|v|) but does
// not clamp it, so filtered buffers can hold values above 255; only
// [Buffer.ToImage] saturates.
//
// # Boundaries
//
// Convolve samples neighbors toroidally: the buffer behaves as if tiled,
// so the left neighbor of column 0 is column width-1. Direct buffer access
// never wraps; an out-of-range (x, y, c) panics.
//
// # Concurrency
//
// All operations are synchronous. A buffer may be read by several
// operations at once, or mutated by exactly one.
package imgproc
