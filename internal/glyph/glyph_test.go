package glyph

import (
	"image"
	"testing"
)

func TestSize(t *testing.T) {
	tests := []struct {
		text string
		want image.Point
	}{
		{"", image.Pt(0, 0)},
		{"\n", image.Pt(0, 0)},
		{"@", image.Pt(7, 13)},
		{"@@@\n..\n", image.Pt(21, 26)},
		{"a\nbcde\nf", image.Pt(28, 39)},
	}
	for _, tt := range tests {
		if got := Size(tt.text); got != tt.want {
			t.Errorf("Size(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFaceMatchesCellSize(t *testing.T) {
	if adv, ok := Face.GlyphAdvance('@'); !ok || adv.Round() != CellWidth {
		t.Errorf("advance of '@' = %v (ok=%v), want %d", adv.Round(), ok, CellWidth)
	}
	if h := Face.Metrics().Height.Round(); h != CellHeight {
		t.Errorf("face height = %d, want %d", h, CellHeight)
	}
}

func TestRasterizeBlankIsWhite(t *testing.T) {
	img := Rasterize("   \n   \n")
	if img.Bounds().Size() != image.Pt(21, 26) {
		t.Fatalf("bounds = %v, want 21x26", img.Bounds())
	}
	for i, v := range img.Pix {
		if v != 0xff {
			t.Fatalf("Pix[%d] = %d, want white", i, v)
		}
	}
}

func TestRasterizeDrawsInk(t *testing.T) {
	img := Rasterize(" @\n")

	ink := func(x0, x1 int) int {
		n := 0
		for y := range CellHeight {
			for x := x0; x < x1; x++ {
				if img.GrayAt(x, y).Y < 0x80 {
					n++
				}
			}
		}
		return n
	}
	if n := ink(0, CellWidth); n != 0 {
		t.Errorf("space cell has %d dark pixels, want 0", n)
	}
	if n := ink(CellWidth, 2*CellWidth); n == 0 {
		t.Error("'@' cell has no dark pixels")
	}
}

func TestRasterizeEmpty(t *testing.T) {
	if img := Rasterize(""); !img.Bounds().Empty() {
		t.Errorf("Rasterize(\"\") bounds = %v, want empty", img.Bounds())
	}
}
