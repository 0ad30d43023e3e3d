package renderer

import (
	"errors"
	"image/color"
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

const tolerance = 1e-4

// centeredSampler never jitters: Get2D always lands on the pixel (and disk) center,
// while scatter directions still come from a seeded generator
type centeredSampler struct {
	random *rand.Rand
}

func newCenteredSampler(seed int64) *centeredSampler {
	return &centeredSampler{random: rand.New(rand.NewSource(seed))}
}

func (s *centeredSampler) Get1D() float32 { return s.random.Float32() }
func (s *centeredSampler) Get2D() core.Vec2 {
	return core.NewVec2(0.5, 0.5)
}
func (s *centeredSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.random.Float32(), s.random.Float32(), s.random.Float32())
}

// recordingSink keeps every pixel it receives
type recordingSink struct {
	width, height int
	began, ended  bool
	pixels        []color.RGBA
}

func (s *recordingSink) Begin(width, height int) error {
	s.width, s.height, s.began = width, height, true
	return nil
}

func (s *recordingSink) WritePixel(c color.RGBA) error {
	s.pixels = append(s.pixels, c)
	return nil
}

func (s *recordingSink) End() error {
	s.ended = true
	return nil
}

var errSinkFull = errors.New("sink full")

// failingSink rejects the pixel at index failAt
type failingSink struct {
	recordingSink
	failAt int
}

func (s *failingSink) WritePixel(c color.RGBA) error {
	if len(s.pixels) == s.failAt {
		return errSinkFull
	}
	return s.recordingSink.WritePixel(c)
}

func near(a, b float32) bool {
	return math32.Abs(a-b) < tolerance
}

func vecNear(a, b core.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

// testConfig returns a small, quiet configuration
func testConfig() CameraConfig {
	config := DefaultCameraConfig()
	config.Width = 8
	config.SamplesPerPixel = 1
	config.MaxDepth = 4
	return config
}
