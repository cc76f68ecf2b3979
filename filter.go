package imgproc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilter is returned by ParseFilter for an unrecognized name.
var ErrUnknownFilter = errors.New("imgproc: unknown filter")

// Filter identifies one of the built-in 3×3 convolution kernels.
type Filter uint8

// Built-in filters.
const (
	FilterIdentity Filter = iota
	FilterMean
	FilterEdge
	FilterSobelX
	FilterSobelY
	FilterSharpen
	FilterEmboss

	filterCount
)

var filterNames = [filterCount]string{
	FilterIdentity: "identity",
	FilterMean:     "mean",
	FilterEdge:     "edge",
	FilterSobelX:   "sobelx",
	FilterSobelY:   "sobely",
	FilterSharpen:  "sharpen",
	FilterEmboss:   "emboss",
}

// filterKernels builds the kernel of each filter. Entries return a fresh
// value so callers never share coefficient storage.
var filterKernels = [filterCount]func() *Kernel{
	FilterIdentity: func() *Kernel {
		return mustKernel(3, 3,
			0, 0, 0,
			0, 1, 0,
			0, 0, 0)
	},
	FilterMean: func() *Kernel {
		return NewMeanKernel(3, 3)
	},
	FilterEdge: func() *Kernel {
		return mustKernel(3, 3,
			-1, -1, -1,
			-1, 8, -1,
			-1, -1, -1)
	},
	FilterSobelX: func() *Kernel {
		return mustKernel(3, 3,
			-1, 0, 1,
			-2, 0, 2,
			-1, 0, 1)
	},
	FilterSobelY: func() *Kernel {
		return mustKernel(3, 3,
			-1, -2, -1,
			0, 0, 0,
			1, 2, 1)
	},
	FilterSharpen: func() *Kernel {
		return mustKernel(3, 3,
			0, -1, 0,
			-1, 5, -1,
			0, -1, 0)
	},
	FilterEmboss: func() *Kernel {
		return mustKernel(3, 3,
			-2, -1, 0,
			-1, 1, 1,
			0, 1, 2)
	},
}

// Filters returns all built-in filters in declaration order.
func Filters() []Filter {
	fs := make([]Filter, 0, filterCount)
	for f := range filterCount {
		fs = append(fs, f)
	}
	return fs
}

// String returns the lower-case filter name.
func (f Filter) String() string {
	if f < filterCount {
		return filterNames[f]
	}
	return fmt.Sprintf("Filter(%d)", uint8(f))
}

// Kernel returns a new kernel for the filter. It panics for values
// outside the built-in set.
func (f Filter) Kernel() *Kernel {
	if f >= filterCount {
		panic(fmt.Sprintf("imgproc: invalid filter %d", uint8(f)))
	}
	return filterKernels[f]()
}

// ParseFilter looks up a filter by name, ignoring case.
func ParseFilter(name string) (Filter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range filterNames {
		if n == name {
			return Filter(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}
