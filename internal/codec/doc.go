// Package codec moves pixel buffers in and out of image files.
//
// It is the file-format collaborator of package imgproc: it decodes BMP,
// PNG and JPEG into an [imgproc.Buffer], encodes buffers back to those
// formats, writes ASCII-art exports and scales buffers to a display size.
// The processing core itself never imports this package.
package codec
