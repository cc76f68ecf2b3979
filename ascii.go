package imgproc

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Palette errors.
var (
	// ErrEmptyPalette is returned when a palette has no glyphs.
	ErrEmptyPalette = errors.New("imgproc: empty palette")

	// ErrPaletteGlyph is returned for glyphs that are not printable in a
	// single terminal cell.
	ErrPaletteGlyph = errors.New("imgproc: palette glyph is not a single-cell printable rune")
)

// ASCII-art sampling strides. Terminal cells are roughly twice as tall as
// they are wide, so rows are sampled twice as sparsely as columns.
const (
	asciiRowStep = 4
	asciiColStep = 2
)

// Palette is an ordered, non-empty set of glyphs used to quantize
// luminance. Index 0 is used for the darkest luminance.
type Palette struct {
	glyphs []rune
}

// Built-in palettes, both ordered from densest to sparsest glyph.
var (
	// DensePalette has 70 levels.
	DensePalette = mustPalette("$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ")

	// SparsePalette has 10 levels.
	SparsePalette = mustPalette("@%#*+=-:. ")
)

// NewPalette creates a palette from the runes of glyphs. Every rune must
// occupy exactly one terminal cell: control characters, combining marks
// and East Asian wide forms are rejected.
func NewPalette(glyphs string) (*Palette, error) {
	runes := []rune(glyphs)
	if len(runes) == 0 {
		return nil, ErrEmptyPalette
	}
	for _, r := range runes {
		if !unicode.IsPrint(r) || unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) {
			return nil, fmt.Errorf("%w: %q", ErrPaletteGlyph, r)
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			return nil, fmt.Errorf("%w: %q", ErrPaletteGlyph, r)
		}
	}
	return &Palette{glyphs: runes}, nil
}

func mustPalette(glyphs string) *Palette {
	p, err := NewPalette(glyphs)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of glyphs.
func (p *Palette) Len() int {
	return len(p.glyphs)
}

// Glyph returns the glyph at index i, clamped to the palette range.
func (p *Palette) Glyph(i int) rune {
	return p.glyphs[clampInt(i, 0, len(p.glyphs)-1)]
}

// Index quantizes a luminance in [0, MaxValue] to a glyph index:
// floor(l/MaxValue*Len()), clamped so that l == MaxValue maps to the last
// glyph instead of one past it.
func (p *Palette) Index(luminance float32) int {
	f := math.Floor(float64(luminance) / MaxValue * float64(len(p.glyphs)))
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f >= float64(len(p.glyphs)) {
		return len(p.glyphs) - 1
	}
	return int(f)
}

// String returns the glyphs as a string.
func (p *Palette) String() string {
	return string(p.glyphs)
}

// RenderASCII renders src as ASCII art using SparsePalette when small is
// set, DensePalette otherwise.
func RenderASCII(src *Buffer, small bool) string {
	if small {
		return RenderASCIIPalette(src, SparsePalette)
	}
	return RenderASCIIPalette(src, DensePalette)
}

// RenderASCIIPalette renders src as ASCII art with palette p.
//
// Rows are scanned bottom to top starting at the last row (height-1) in
// steps of 4; columns left to right in steps of 2. Each sampled pixel's
// luminance is the plain mean of its color channels. Every row of output
// ends with a newline, giving ceil(height/4) lines of ceil(width/2)
// glyphs.
func RenderASCIIPalette(src *Buffer, p *Palette) string {
	lines := (src.height + asciiRowStep - 1) / asciiRowStep
	cols := (src.width + asciiColStep - 1) / asciiColStep
	Logger().Debug("render ascii",
		"width", src.width, "height", src.height,
		"lines", lines, "cols", cols, "levels", p.Len())

	n := min(src.channels, filteredChannels)

	var sb strings.Builder
	sb.Grow(lines * (cols + 1))
	for y := src.height - 1; y >= 0; y -= asciiRowStep {
		for x := 0; x < src.width; x += asciiColStep {
			base := (y*src.width + x) * src.channels
			var sum float32
			for c := range n {
				sum += src.data[base+c]
			}
			sb.WriteRune(p.glyphs[p.Index(sum/float32(n))])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
