package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// ImageSink collects pixels in raster order into an in-memory image
type ImageSink struct {
	img  *image.RGBA
	next int
}

// NewImageSink creates an empty image sink; the image is allocated by Begin
func NewImageSink() *ImageSink {
	return &ImageSink{}
}

// Begin allocates a width x height image
func (s *ImageSink) Begin(width, height int) error {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.next = 0
	return nil
}

// WritePixel stores c at the next raster position
func (s *ImageSink) WritePixel(c color.RGBA) error {
	if s.img == nil {
		return ErrNotStarted
	}
	width := s.img.Bounds().Dx()
	if s.next >= width*s.img.Bounds().Dy() {
		return ErrPixelOverflow
	}
	s.img.SetRGBA(s.next%width, s.next/width, c)
	s.next++
	return nil
}

// End checks that the image is complete
func (s *ImageSink) End() error {
	if s.img == nil {
		return ErrNotStarted
	}
	if total := s.img.Bounds().Dx() * s.img.Bounds().Dy(); s.next != total {
		return fmt.Errorf("%d of %d pixels: %w", s.next, total, ErrPixelUnderflow)
	}
	return nil
}

// Image returns the collected image, nil before Begin
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes img as a PNG to w
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("output: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to a PNG file at path
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}

	if err := EncodePNG(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
