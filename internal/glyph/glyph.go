// Package glyph rasterizes ASCII-art text blocks into images.
//
// Text is drawn with the fixed 7×13 bitmap face from x/image, so every
// glyph occupies the same cell and the picture keeps the column layout of
// the text.
package glyph

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face is the bitmap face used for rasterization.
var Face = basicfont.Face7x13

// Cell dimensions of Face in pixels.
const (
	CellWidth  = 7
	CellHeight = 13
)

// lines splits a text block into lines, ignoring one trailing newline.
func lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Size returns the pixel size of the rasterized text block.
func Size(text string) image.Point {
	ls := lines(text)
	cols := 0
	for _, l := range ls {
		cols = max(cols, utf8.RuneCountInString(l))
	}
	return image.Pt(cols*CellWidth, len(ls)*CellHeight)
}

// Rasterize draws text black on white, one text line per cell row.
// An empty text block yields an empty image.
func Rasterize(text string) *image.Gray {
	img := image.NewGray(image.Rectangle{Max: Size(text)})
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: Face,
	}
	ascent := Face.Metrics().Ascent
	for i, l := range lines(text) {
		d.Dot = fixed.Point26_6{
			X: 0,
			Y: fixed.I(i*CellHeight) + ascent,
		}
		d.DrawString(l)
	}
	return img
}
