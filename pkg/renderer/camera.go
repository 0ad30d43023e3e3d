package renderer

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/log"
)

// CameraConfig contains all camera and sampling parameters
type CameraConfig struct {
	AspectRatio     float32   // Ideal width over height
	Width           int       // Image width in pixels
	SamplesPerPixel int       // Random samples taken per pixel
	MaxDepth        int       // Maximum number of ray bounces
	VFov            float32   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera is looking at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float32   // Aperture cone angle in degrees, <= 0 disables depth of field
	FocusDistance   float32   // Distance from LookFrom to the plane of perfect focus
	Seed            int64     // Seed for the camera's sampler

	// Sampler overrides the seeded sampler when set
	Sampler core.Sampler
	// Logger overrides the default renderer logger when set
	Logger log.Logger
}

// DefaultCameraConfig returns the baseline configuration scenes start from
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		Width:           100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
		Seed:            42,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied.
// A zero vector or zero number in override keeps the base value.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	var zero core.Vec3

	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != zero {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.Sampler != nil {
		result.Sampler = override.Sampler
	}
	if override.Logger != nil {
		result.Logger = override.Logger
	}

	return result
}

// Camera generates rays for rendering. Its geometry is fixed at construction.
type Camera struct {
	config CameraConfig

	imageWidth        int
	imageHeight       int
	pixelSamplesScale float32

	center       core.Vec3
	pixel00Loc   core.Vec3
	pixelDeltaU  core.Vec3
	pixelDeltaV  core.Vec3
	u, v, w      core.Vec3
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3

	sampler core.Sampler
	logger  log.Logger
}

// NewCamera validates config and derives the viewport geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	imageHeight := imageHeightFor(config.Width, config.AspectRatio)

	center := config.LookFrom

	// Viewport dimensions
	theta := degreesToRadians(config.VFov)
	h := math32.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float32(config.Width) / float32(imageHeight))

	// Orthonormal camera basis
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1 / float32(config.Width))
	pixelDeltaV := viewportV.Multiply(1 / float32(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math32.Tan(degreesToRadians(config.DefocusAngle/2))

	sampler := config.Sampler
	if sampler == nil {
		sampler = core.NewSeededSampler(config.Seed)
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New("renderer")
	}

	return &Camera{
		config:            config,
		imageWidth:        config.Width,
		imageHeight:       imageHeight,
		pixelSamplesScale: 1 / float32(config.SamplesPerPixel),
		center:            center,
		pixel00Loc:        pixel00Loc,
		pixelDeltaU:       pixelDeltaU,
		pixelDeltaV:       pixelDeltaV,
		u:                 u,
		v:                 v,
		w:                 w,
		defocusDiskU:      u.Multiply(defocusRadius),
		defocusDiskV:      v.Multiply(defocusRadius),
		sampler:           sampler,
		logger:            logger,
	}, nil
}

func validateConfig(config CameraConfig) error {
	if config.Width < 1 {
		return fmt.Errorf("width %d: %w", config.Width, ErrInvalidWidth)
	}
	if !(config.AspectRatio > 0) || math32.IsInf(config.AspectRatio, 0) {
		return fmt.Errorf("aspect ratio %g: %w", config.AspectRatio, ErrInvalidAspectRatio)
	}
	if config.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel %d: %w", config.SamplesPerPixel, ErrInvalidSamples)
	}
	if config.MaxDepth < 0 {
		return fmt.Errorf("max depth %d: %w", config.MaxDepth, ErrInvalidDepth)
	}
	if !(config.VFov > 0 && config.VFov < 180) {
		return fmt.Errorf("vfov %g: %w", config.VFov, ErrInvalidFieldOfView)
	}
	if !(config.FocusDistance > 0) || math32.IsInf(config.FocusDistance, 0) {
		return fmt.Errorf("focus distance %g: %w", config.FocusDistance, ErrInvalidFocusDistance)
	}

	forward := config.LookFrom.Subtract(config.LookAt)
	if forward.LengthSquared() == 0 {
		return fmt.Errorf("look-from equals look-at %v: %w", config.LookFrom, ErrDegenerateView)
	}
	if config.Up.Cross(forward.Normalize()).LengthSquared() == 0 {
		return fmt.Errorf("up %v is parallel to the view direction: %w", config.Up, ErrDegenerateView)
	}
	return nil
}

// imageHeightFor rounds width/aspect to the nearest pixel, never below 1
func imageHeightFor(width int, aspectRatio float32) int {
	height := int(math32.Round(float32(width) / aspectRatio))
	if height < 1 {
		return 1
	}
	return height
}

func degreesToRadians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.imageWidth
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Sampler returns the camera's random sampler
func (c *Camera) Sampler() core.Sampler {
	return c.sampler
}

// Basis returns the orthonormal camera frame: u points right, v up, w backwards
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// GetRay returns a camera ray for pixel (i, j), originating from the defocus disk
// and aimed at a randomly jittered point inside the pixel
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float32(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float32(j) + offset.Y))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
