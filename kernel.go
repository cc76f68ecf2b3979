package imgproc

import (
	"fmt"
	"strings"
)

// Kernel is a small coefficient matrix stored in row-major order.
//
// Kernels are not normalized: sharpening and edge kernels rely on the
// rectification step of Convolve rather than on coefficient scaling.
type Kernel struct {
	width  int
	height int
	coeffs []float32
}

// NewKernel creates a kernel from row-major coefficients.
// Returns ErrInvalidDimensions for non-positive sizes and ErrKernelSize
// when len(coeffs) != width*height.
func NewKernel(width, height int, coeffs ...float32) (*Kernel, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: kernel %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(coeffs) != width*height {
		return nil, fmt.Errorf("%w: %dx%d kernel needs %d coefficients, got %d",
			ErrKernelSize, width, height, width*height, len(coeffs))
	}
	c := make([]float32, len(coeffs))
	copy(c, coeffs)
	return &Kernel{width: width, height: height, coeffs: c}, nil
}

// mustKernel is NewKernel for compile-time literal tables.
func mustKernel(width, height int, coeffs ...float32) *Kernel {
	k, err := NewKernel(width, height, coeffs...)
	if err != nil {
		panic(err)
	}
	return k
}

// NewMeanKernel creates a box kernel with every coefficient 1/(width*height).
// It panics on non-positive sizes.
func NewMeanKernel(width, height int) *Kernel {
	k := mustKernel(width, height, make([]float32, width*height)...)
	k.Fill(1 / float32(width*height))
	return k
}

// Fill sets every coefficient to v.
func (k *Kernel) Fill(v float32) {
	for i := range k.coeffs {
		k.coeffs[i] = v
	}
}

// At returns the coefficient in column col of row row.
func (k *Kernel) At(col, row int) float32 {
	if col < 0 || col >= k.width || row < 0 || row >= k.height {
		panic(fmt.Sprintf("imgproc: kernel index (%d,%d) out of range for %dx%d kernel",
			col, row, k.width, k.height))
	}
	return k.coeffs[row*k.width+col]
}

// Width returns the number of columns.
func (k *Kernel) Width() int {
	return k.width
}

// Height returns the number of rows.
func (k *Kernel) Height() int {
	return k.height
}

// Coefficients returns a copy of the row-major coefficients.
func (k *Kernel) Coefficients() []float32 {
	c := make([]float32, len(k.coeffs))
	copy(c, k.coeffs)
	return c
}

// String formats the kernel as rows of coefficients.
func (k *Kernel) String() string {
	var sb strings.Builder
	for row := range k.height {
		if row > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprint(&sb, k.coeffs[row*k.width:(row+1)*k.width])
	}
	return sb.String()
}
