package renderer

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

func TestNewCamera_ImageHeight(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		aspectRatio    float32
		expectedHeight int
	}{
		{"square", 100, 1, 100},
		{"widescreen", 400, 16.0 / 9.0, 225},
		{"rounds down", 10, 3, 3},
		{"rounds half up", 5, 2, 3},
		{"never below one", 1, 10, 1},
		{"portrait", 50, 0.5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.Width = tt.width
			config.AspectRatio = tt.aspectRatio

			camera, err := NewCamera(config)
			if err != nil {
				t.Fatalf("NewCamera failed: %v", err)
			}
			if camera.Width() != tt.width {
				t.Errorf("Expected width %d, got %d", tt.width, camera.Width())
			}
			if camera.Height() != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, camera.Height())
			}
		})
	}
}

func TestNewCamera_InvalidConfig(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*CameraConfig)
		expected error
	}{
		{"zero width", func(c *CameraConfig) { c.Width = 0 }, ErrInvalidWidth},
		{"negative width", func(c *CameraConfig) { c.Width = -5 }, ErrInvalidWidth},
		{"zero aspect", func(c *CameraConfig) { c.AspectRatio = 0 }, ErrInvalidAspectRatio},
		{"infinite aspect", func(c *CameraConfig) { c.AspectRatio = math32.Inf(1) }, ErrInvalidAspectRatio},
		{"NaN aspect", func(c *CameraConfig) { c.AspectRatio = math32.NaN() }, ErrInvalidAspectRatio},
		{"zero samples", func(c *CameraConfig) { c.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"negative depth", func(c *CameraConfig) { c.MaxDepth = -1 }, ErrInvalidDepth},
		{"zero vfov", func(c *CameraConfig) { c.VFov = 0 }, ErrInvalidFieldOfView},
		{"straight vfov", func(c *CameraConfig) { c.VFov = 180 }, ErrInvalidFieldOfView},
		{"zero focus", func(c *CameraConfig) { c.FocusDistance = 0 }, ErrInvalidFocusDistance},
		{"look at self", func(c *CameraConfig) { c.LookAt = c.LookFrom }, ErrDegenerateView},
		{"up along view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }, ErrDegenerateView},
		{"zero up", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 0) }, ErrDegenerateView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.modify(&config)

			camera, err := NewCamera(config)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, err)
			}
			if camera != nil {
				t.Error("Expected nil camera on error")
			}
		})
	}
}

func TestNewCamera_ZeroDepthAllowed(t *testing.T) {
	config := DefaultCameraConfig()
	config.MaxDepth = 0
	if _, err := NewCamera(config); err != nil {
		t.Errorf("Expected depth 0 to be accepted, got %v", err)
	}
}

func TestCamera_Basis(t *testing.T) {
	tests := []struct {
		name      string
		lookFrom  core.Vec3
		lookAt    core.Vec3
		expectedU core.Vec3
		expectedV core.Vec3
		expectedW core.Vec3
	}{
		{
			name:      "looking down -Z",
			lookFrom:  core.NewVec3(0, 0, 0),
			lookAt:    core.NewVec3(0, 0, -1),
			expectedU: core.NewVec3(1, 0, 0),
			expectedV: core.NewVec3(0, 1, 0),
			expectedW: core.NewVec3(0, 0, 1),
		},
		{
			name:      "looking down -X",
			lookFrom:  core.NewVec3(5, 0, 0),
			lookAt:    core.NewVec3(0, 0, 0),
			expectedU: core.NewVec3(0, 0, -1),
			expectedV: core.NewVec3(0, 1, 0),
			expectedW: core.NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.LookFrom = tt.lookFrom
			config.LookAt = tt.lookAt

			camera, err := NewCamera(config)
			if err != nil {
				t.Fatalf("NewCamera failed: %v", err)
			}

			u, v, w := camera.Basis()
			if !vecNear(u, tt.expectedU) {
				t.Errorf("Expected u=%v, got %v", tt.expectedU, u)
			}
			if !vecNear(v, tt.expectedV) {
				t.Errorf("Expected v=%v, got %v", tt.expectedV, v)
			}
			if !vecNear(w, tt.expectedW) {
				t.Errorf("Expected w=%v, got %v", tt.expectedW, w)
			}
		})
	}
}

func TestCamera_GetRay_PixelCenters(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 3
	config.VFov = 90
	config.FocusDistance = 10
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	sampler := newCenteredSampler(1)

	// Middle pixel looks straight down the view axis onto the focus plane
	ray := camera.GetRay(1, 1, sampler)
	if ray.Origin != config.LookFrom {
		t.Errorf("Expected origin at camera center without defocus, got %v", ray.Origin)
	}
	if !vecNear(ray.Direction, core.NewVec3(0, 0, -10)) {
		t.Errorf("Expected center direction (0, 0, -10), got %v", ray.Direction)
	}

	// Pixel (0, 0) is the top-left corner of the image
	topLeft := camera.GetRay(0, 0, sampler)
	if topLeft.Direction.X >= 0 || topLeft.Direction.Y <= 0 {
		t.Errorf("Expected top-left ray to point up and left, got %v", topLeft.Direction)
	}
	bottomRight := camera.GetRay(2, 2, sampler)
	if bottomRight.Direction.X <= 0 || bottomRight.Direction.Y >= 0 {
		t.Errorf("Expected bottom-right ray to point down and right, got %v", bottomRight.Direction)
	}
}

func TestCamera_GetRay_JitterStaysInPixel(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 4
	config.FocusDistance = 1
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	center := camera.GetRay(2, 1, newCenteredSampler(1)).Direction
	halfPixel := camera.pixelDeltaU.Length() / 2

	sampler := core.NewSeededSampler(7)
	for k := 0; k < 200; k++ {
		d := camera.GetRay(2, 1, sampler).Direction
		if math32.Abs(d.X-center.X) > halfPixel+tolerance || math32.Abs(d.Y-center.Y) > halfPixel+tolerance {
			t.Fatalf("Jittered ray %v left the pixel around %v", d, center)
		}
		if !near(d.Z, center.Z) {
			t.Fatalf("Jitter should stay on the focus plane, got z=%f want %f", d.Z, center.Z)
		}
	}
}

func TestCamera_GetRay_DefocusDisk(t *testing.T) {
	config := DefaultCameraConfig()
	config.DefocusAngle = 10
	config.FocusDistance = 4
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	radius := config.FocusDistance * math32.Tan(5*math32.Pi/180)
	_, _, w := camera.Basis()

	sampler := core.NewSeededSampler(3)
	moved := false
	for k := 0; k < 100; k++ {
		ray := camera.GetRay(3, 3, sampler)
		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() > radius+tolerance {
			t.Fatalf("Origin %v outside defocus disk of radius %f", ray.Origin, radius)
		}
		if !near(offset.Dot(w), 0) {
			t.Fatalf("Origin %v should lie in the lens plane", ray.Origin)
		}
		if offset.LengthSquared() > 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected defocus to move ray origins off the camera center")
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	override := CameraConfig{
		Width:    320,
		MaxDepth: 3,
		LookAt:   core.NewVec3(1, 2, 3),
		Seed:     99,
	}

	merged := MergeCameraConfig(base, override)

	if merged.Width != 320 || merged.MaxDepth != 3 || merged.Seed != 99 {
		t.Errorf("Override fields not applied: %+v", merged)
	}
	if merged.LookAt != core.NewVec3(1, 2, 3) {
		t.Errorf("Expected LookAt override, got %v", merged.LookAt)
	}
	if merged.SamplesPerPixel != base.SamplesPerPixel || merged.VFov != base.VFov {
		t.Errorf("Zero override fields should keep base values: %+v", merged)
	}
	if merged.Up != base.Up || merged.LookFrom != base.LookFrom {
		t.Errorf("Zero override vectors should keep base values: %+v", merged)
	}
}
