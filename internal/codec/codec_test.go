package codec

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/imgproc"
)

// newPatternBuffer creates a 4-channel buffer with integral samples.
func newPatternBuffer(t *testing.T, w, h int, opaque bool) *imgproc.Buffer {
	t.Helper()
	b, err := imgproc.NewBuffer(w, h, 4)
	if err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for x := range w {
			b.SetValue(x, y, imgproc.ChannelR, float32((x*37)%256))
			b.SetValue(x, y, imgproc.ChannelG, float32((y*53)%256))
			b.SetValue(x, y, imgproc.ChannelB, float32((x*y)%256))
			a := float32(255)
			if !opaque {
				a = float32(128 + (x+y)%128)
			}
			b.SetValue(x, y, imgproc.ChannelA, a)
		}
	}
	return b
}

func equalBuffers(t *testing.T, got, want *imgproc.Buffer) {
	t.Helper()
	if !got.SameShape(want) {
		t.Fatalf("shape = %dx%dx%d, want %dx%dx%d",
			got.Width(), got.Height(), got.Channels(), want.Width(), want.Height(), want.Channels())
	}
	for i, v := range want.Data() {
		if got.Data()[i] != v {
			t.Fatalf("sample %d = %v, want %v", i, got.Data()[i], v)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"lenna.bmp", FormatBMP},
		{"out/edges.PNG", FormatPNG},
		{"photo.jpg", FormatJPEG},
		{"photo.jpeg", FormatJPEG},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatFromPath("image.tiff"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromPath(tiff) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		format Format
		opaque bool
	}{
		{FormatPNG, false},
		{FormatBMP, true},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			src := newPatternBuffer(t, 13, 7, tt.opaque)

			var buf bytes.Buffer
			if err := Encode(&buf, src, tt.format); err != nil {
				t.Fatalf("Encode() = %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() = %v", err)
			}
			equalBuffers(t, got, src)
		})
	}
}

func TestEncodeJPEG(t *testing.T) {
	src := newPatternBuffer(t, 16, 16, true)
	var buf bytes.Buffer
	if err := Encode(&buf, src, FormatJPEG); err != nil {
		t.Fatalf("Encode(JPEG) = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(JPEG) = %v", err)
	}
	if got.Width() != 16 || got.Height() != 16 {
		t.Errorf("JPEG size = %dx%d, want 16x16", got.Width(), got.Height())
	}
}

func TestEncodeUnsupported(t *testing.T) {
	src := newPatternBuffer(t, 2, 2, true)
	if err := Encode(&bytes.Buffer{}, src, Format(99)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(Format(99)) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("definitely not an image"))); err == nil {
		t.Error("Decode(garbage) = nil error, want failure")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := newPatternBuffer(t, 9, 5, true)

	for _, name := range []string{"out.bmp", "out.png"} {
		path := filepath.Join(dir, name)
		if err := Save(path, src); err != nil {
			t.Fatalf("Save(%s) = %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) = %v", name, err)
		}
		equalBuffers(t, got, src)
	}

	if err := Save(filepath.Join(dir, "out.gif"), src); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(gif) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.bmp")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascii.txt")
	if err := WriteText(path, "@@\n..\n"); err != nil {
		t.Fatalf("WriteText() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "@@\n..\n\n"; got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}
