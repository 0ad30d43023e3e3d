// Package output provides the color sinks that consume rendered pixels.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
)

var (
	ErrNotStarted     = errors.New("output: Begin was not called")
	ErrPixelOverflow  = errors.New("output: more pixels written than the image holds")
	ErrPixelUnderflow = errors.New("output: image ended before every pixel was written")
)

// PPMWriter streams pixels as a plain-text P3 image
type PPMWriter struct {
	w       *bufio.Writer
	total   int
	written int
	started bool
}

// NewPPMWriter creates a PPM sink writing to w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the P3 header
func (p *PPMWriter) Begin(width, height int) error {
	p.total = width * height
	p.written = 0
	p.started = true
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "R G B" line
func (p *PPMWriter) WritePixel(c color.RGBA) error {
	if !p.started {
		return ErrNotStarted
	}
	if p.written >= p.total {
		return ErrPixelOverflow
	}
	p.written++
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", c.R, c.G, c.B)
	return err
}

// End flushes buffered output
func (p *PPMWriter) End() error {
	if !p.started {
		return ErrNotStarted
	}
	if p.written != p.total {
		return fmt.Errorf("%d of %d pixels: %w", p.written, p.total, ErrPixelUnderflow)
	}
	return p.w.Flush()
}
