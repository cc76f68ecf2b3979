package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/internal/codec"
	"github.com/gogpu/imgproc/internal/glyph"
)

// errUnknownOp is returned for operation names missing from the table.
var errUnknownOp = errors.New("unknown operation")

// fallbackSize is the size of the gradient used when no image can be loaded.
const fallbackSize = 512

// session is the state an operation sequence runs against.
type session struct {
	// load produces a fresh source buffer; used initially and by "reload".
	load func() (*imgproc.Buffer, error)

	// small selects the sparse ASCII palette.
	small bool

	// asciiPath and asciiPNG are the ASCII export targets; empty skips.
	asciiPath string
	asciiPNG  string

	image *imgproc.Buffer
	log   *slog.Logger
}

// op is one host operation. Operations replace s.image or write exports.
type op func(s *session) error

// filterOp convolves the current image with a built-in filter.
func filterOp(f imgproc.Filter) op {
	return func(s *session) error {
		s.image = imgproc.ApplyFilter(s.image, f)
		return nil
	}
}

// grayOp converts the current image to grayscale in place.
func grayOp(uniform bool) op {
	return func(s *session) error {
		s.image.ToGrayscale(uniform)
		return nil
	}
}

// ops maps operation names to their implementation. The single-letter
// aliases follow the key bindings of the interactive viewer.
var ops = map[string]op{
	"gray":     grayOp(false),
	"g":        grayOp(false),
	"luma":     grayOp(true),
	"h":        grayOp(true),
	"mean":     filterOp(imgproc.FilterMean),
	"m":        filterOp(imgproc.FilterMean),
	"edge":     filterOp(imgproc.FilterEdge),
	"e":        filterOp(imgproc.FilterEdge),
	"identity": filterOp(imgproc.FilterIdentity),
	"i":        filterOp(imgproc.FilterIdentity),
	"sobelx":   filterOp(imgproc.FilterSobelX),
	"a":        filterOp(imgproc.FilterSobelX),
	"sobely":   filterOp(imgproc.FilterSobelY),
	"b":        filterOp(imgproc.FilterSobelY),
	"sharpen":  filterOp(imgproc.FilterSharpen),
	"emboss":   filterOp(imgproc.FilterEmboss),
	"reload":   reload,
	"r":        reload,
	"ascii":    exportASCII,
	"t":        exportASCII,
}

// reload replaces the current image with a freshly loaded one, falling
// back to a gradient when loading fails.
func reload(s *session) error {
	img, err := s.load()
	if err != nil {
		s.log.Warn("load failed, using gradient", "error", err)
		img, err = imgproc.GradientField(fallbackSize, fallbackSize)
		if err != nil {
			return err
		}
	}
	s.image = img
	return nil
}

// exportASCII renders the current image to ASCII art and writes the
// configured exports.
func exportASCII(s *session) error {
	art := imgproc.RenderASCII(s.image, s.small)
	if s.asciiPath != "" {
		if err := codec.WriteText(s.asciiPath, art); err != nil {
			return err
		}
	}
	if s.asciiPNG != "" {
		if err := codec.Save(s.asciiPNG, imgproc.FromImage(glyph.Rasterize(art))); err != nil {
			return err
		}
	}
	return nil
}

// parseOps splits a comma-separated operation list and resolves every name.
func parseOps(list string) ([]op, []string, error) {
	var (
		resolved []op
		names    []string
	)
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		o, ok := ops[name]
		if !ok {
			return nil, nil, fmt.Errorf("%w %q", errUnknownOp, name)
		}
		resolved = append(resolved, o)
		names = append(names, name)
	}
	return resolved, names, nil
}

// run loads the initial image and applies the operations in order.
func (s *session) run(list string) error {
	seq, names, err := parseOps(list)
	if err != nil {
		return err
	}
	if err := reload(s); err != nil {
		return err
	}
	for i, o := range seq {
		s.log.Debug("applying operation", "op", names[i])
		if err := o(s); err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
	}
	return nil
}
