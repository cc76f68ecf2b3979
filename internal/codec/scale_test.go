package codec

import (
	"testing"

	"github.com/gogpu/imgproc"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"already fits", 512, 512, 512, 512, 512, 512},
		{"square halved", 1024, 1024, 512, 512, 512, 512},
		{"wide limited by width", 1000, 500, 300, 300, 300, 150},
		{"tall limited by height", 400, 1600, 512, 512, 128, 512},
		{"unbounded height", 2000, 100, 1000, 0, 1000, 50},
		{"never below one pixel", 1000, 1, 10, 10, 10, 1},
		{"never grows", 10, 10, 100, 100, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitSize(tt.w, tt.h, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("fitSize(%d, %d, %d, %d) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitReturnsInputWhenItFits(t *testing.T) {
	b, err := imgproc.NewBuffer(8, 8, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := Fit(b, 16, 16); got != b {
		t.Error("Fit() copied a buffer that already fits")
	}
}

func TestFitConstantField(t *testing.T) {
	b, err := imgproc.NewBuffer(40, 20, 4)
	if err != nil {
		t.Fatal(err)
	}
	b.Fill(200)

	got := Fit(b, 10, 10)
	if got.Width() != 10 || got.Height() != 5 {
		t.Fatalf("Fit() size = %dx%d, want 10x5", got.Width(), got.Height())
	}
	for i, v := range got.Data() {
		if v < 198 || v > 202 {
			t.Fatalf("sample %d = %v, want ~200", i, v)
		}
	}
}
