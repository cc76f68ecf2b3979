// Command imgproc applies color conversions, convolution filters and
// ASCII-art export to an image.
//
// Operations run left to right over the loaded image, for example:
//
//	imgproc -in lenna.bmp -ops gray,sobelx,ascii -ascii ascii.txt -out edges.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/internal/codec"
)

func main() {
	var (
		in       = flag.String("in", "lenna.bmp", "input image (bmp, png, jpeg)")
		opList   = flag.String("ops", "", "comma-separated operations: gray, luma, mean, edge, identity, sobelx, sobely, sharpen, emboss, reload, ascii")
		out      = flag.String("out", "", "output image (bmp, png, jpeg)")
		ascii    = flag.String("ascii", "ascii.txt", "ASCII-art text export path")
		asciiPNG = flag.String("ascii-png", "", "ASCII-art image export path")
		small    = flag.Bool("small", true, "use the 10-glyph palette instead of the 70-glyph one")
		fit      = flag.Int("fit", 512, "scale input down to fit NxN pixels (0 disables)")
		picker   = flag.Bool("picker", false, "use an HSV color picker field instead of -in")
		pick     = flag.String("pick", "", "print the color at a normalized picker position \"x,y\" and exit")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	imgproc.SetLogger(logger)

	if *pick != "" {
		x, y, err := parsePosition(*pick)
		if err != nil {
			log.Fatalf("Invalid -pick: %v", err)
		}
		fmt.Println(imgproc.PickerReadout(x, y))
		return
	}

	s := &session{
		small:     *small,
		asciiPath: *ascii,
		asciiPNG:  *asciiPNG,
		log:       logger,
		load: func() (*imgproc.Buffer, error) {
			if *picker {
				return imgproc.HSVField(640, 480)
			}
			b, err := codec.Load(*in)
			if err != nil {
				return nil, err
			}
			return codec.Fit(b, *fit, *fit), nil
		},
	}

	if err := s.run(*opList); err != nil {
		log.Fatalf("Failed: %v", err)
	}

	if *out != "" {
		if err := codec.Save(*out, s.image); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Image saved to %s (%dx%d)\n", *out, s.image.Width(), s.image.Height())
	}
}

// parsePosition parses "x,y" with both coordinates in [0, 1].
func parsePosition(s string) (float32, float32, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return 0, 0, err
	}
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return 0, 0, fmt.Errorf("position %q outside [0,1]", s)
	}
	return float32(x), float32(y), nil
}
