package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	SamplesPerPixel int           // Samples taken for every pixel
	MaxDepth        int           // Bounce limit per camera ray
	Duration        time.Duration // Wall-clock render time

	PrimarySamples int64 // Camera rays, one per sample
	RaysTraced     int64 // Rays intersected against the world, primary and scattered
	SkyEscapes     int64 // Paths that ended on the background
	Absorptions    int64 // Paths absorbed by a material
	DepthExhausted int64 // Paths cut off by the bounce limit
}

// TotalPixels returns the number of pixels in the image
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// AverageBounces returns the mean number of traced rays per camera sample
func (s RenderStats) AverageBounces() float64 {
	if s.PrimarySamples == 0 {
		return 0
	}
	return float64(s.RaysTraced) / float64(s.PrimarySamples)
}

// pathStats is the per-path accounting RayColor feeds. A nil receiver discards counts.
type pathStats struct {
	raysTraced     int64
	skyEscapes     int64
	absorptions    int64
	depthExhausted int64
}

func (p *pathStats) ray() {
	if p != nil {
		p.raysTraced++
	}
}

func (p *pathStats) escape() {
	if p != nil {
		p.skyEscapes++
	}
}

func (p *pathStats) absorb() {
	if p != nil {
		p.absorptions++
	}
}

func (p *pathStats) exhaust() {
	if p != nil {
		p.depthExhausted++
	}
}
