package codec

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/imgproc"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension or format is not supported.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("codec: empty image")
)

// Format is an encodable image file format.
type Format uint8

// Supported formats.
const (
	FormatBMP Format = iota + 1
	FormatPNG
	FormatJPEG
)

// String returns the conventional lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatBMP:
		return "bmp"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// jpegQuality is used for every JPEG encode.
const jpegQuality = 95

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		return FormatBMP, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads and decodes the image file at path.
func Load(path string) (*imgproc.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(bufio.NewReader(f))
}

// Decode decodes a BMP, PNG or JPEG image, auto-detecting the format.
// The result is a 4-channel buffer.
func Decode(r io.Reader) (*imgproc.Buffer, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	buf := imgproc.FromImage(img)
	imgproc.Logger().Info("image decoded",
		"format", format, "width", buf.Width(), "height", buf.Height())
	return buf, nil
}

// Encode writes b to w in format f. Samples are clamped to [0, 255].
func Encode(w io.Writer, b *imgproc.Buffer, f Format) error {
	img := b.ToImage()

	var err error
	switch f {
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %v: %w", f, err)
	}
	return nil
}

// Save encodes b to path, choosing the format from the extension.
func Save(path string, b *imgproc.Buffer) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, b, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("codec: write file: %w", err)
	}

	imgproc.Logger().Info("image written", "path", path, "format", format)
	return f.Close()
}

// WriteText writes an ASCII-art text block to path followed by a newline.
func WriteText(path, text string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}

	w := bufio.NewWriter(f)
	_, _ = w.WriteString(text)
	_ = w.WriteByte('\n')
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("codec: write file: %w", err)
	}

	imgproc.Logger().Info("text written", "path", path, "bytes", len(text)+1)
	return f.Close()
}
