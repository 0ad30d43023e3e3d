package renderer

import (
	"fmt"
	"image/color"
	"time"

	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
)

// ColorSink receives finished pixels in raster order
type ColorSink interface {
	Begin(width, height int) error
	WritePixel(c color.RGBA) error
	End() error
}

// hitRange excludes hits too close to the ray origin to avoid shadow acne
var hitRange = core.NewInterval(0.001, math32.Inf(1))

var (
	white   = core.NewVec3(1, 1, 1)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
	black   = core.NewVec3(0, 0, 0)
)

// backgroundGradient blends white to sky blue by the ray direction's height
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return white.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}

// RayColor returns the radiance carried back along r, following at most depth bounces
func (c *Camera) RayColor(r core.Ray, depth int, world geometry.Hittable) core.Vec3 {
	return c.rayColor(r, depth, world, nil)
}

func (c *Camera) rayColor(r core.Ray, depth int, world geometry.Hittable, stats *pathStats) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		stats.exhaust()
		return black
	}

	stats.ray()
	hit, isHit := world.Hit(r, hitRange)
	if !isHit {
		stats.escape()
		return backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, hit, c.sampler)
	if !didScatter {
		stats.absorb()
		return black
	}

	return scatter.Attenuation.MultiplyVec(c.rayColor(scatter.Scattered, depth-1, world, stats))
}

// Render traces every pixel of the image and streams the results to sink
func (c *Camera) Render(world geometry.Hittable, sink ColorSink) (RenderStats, error) {
	if world == nil {
		return RenderStats{}, ErrNilWorld
	}

	stats := RenderStats{
		Width:           c.imageWidth,
		Height:          c.imageHeight,
		SamplesPerPixel: c.config.SamplesPerPixel,
		MaxDepth:        c.config.MaxDepth,
	}

	c.logger.Notice("render started")
	c.logger.Infof(
		"resolution %dx%d, %d samples per pixel, max depth %d, vfov %.1f, defocus %.2f, focus %.2f",
		c.imageWidth, c.imageHeight, c.config.SamplesPerPixel, c.config.MaxDepth,
		c.config.VFov, c.config.DefocusAngle, c.config.FocusDistance,
	)

	start := time.Now()
	if err := sink.Begin(c.imageWidth, c.imageHeight); err != nil {
		return stats, fmt.Errorf("renderer: begin output: %w", err)
	}

	var paths pathStats
	for j := 0; j < c.imageHeight; j++ {
		c.logger.Debugf("scanlines remaining: %d", c.imageHeight-j)
		for i := 0; i < c.imageWidth; i++ {
			pixelColor := black
			for sample := 0; sample < c.config.SamplesPerPixel; sample++ {
				ray := c.GetRay(i, j, c.sampler)
				pixelColor = pixelColor.Add(c.rayColor(ray, c.config.MaxDepth, world, &paths))
			}
			stats.PrimarySamples += int64(c.config.SamplesPerPixel)

			if err := sink.WritePixel(ToRGBA(pixelColor.Multiply(c.pixelSamplesScale))); err != nil {
				return stats, fmt.Errorf("renderer: write pixel (%d, %d): %w", i, j, err)
			}
		}
	}

	if err := sink.End(); err != nil {
		return stats, fmt.Errorf("renderer: end output: %w", err)
	}

	stats.Duration = time.Since(start)
	stats.RaysTraced = paths.raysTraced
	stats.SkyEscapes = paths.skyEscapes
	stats.Absorptions = paths.absorptions
	stats.DepthExhausted = paths.depthExhausted

	c.logger.Noticef("render complete in %s", stats.Duration)
	return stats, nil
}
