package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

func TestLinearToGamma(t *testing.T) {
	tests := []struct {
		linear   float32
		expected float32
	}{
		{0, 0},
		{-0.5, 0},
		{0.25, 0.5},
		{1, 1},
		{4, 2},
	}

	for _, tt := range tests {
		if got := LinearToGamma(tt.linear); !near(got, tt.expected) {
			t.Errorf("LinearToGamma(%f) = %f, expected %f", tt.linear, got, tt.expected)
		}
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"overexposed clamps", core.NewVec3(7, 100, 1.5), color.RGBA{255, 255, 255, 255}},
		{"negative clamps to zero", core.NewVec3(-1, -0.1, 0), color.RGBA{0, 0, 0, 255}},
		{"quarter becomes half", core.NewVec3(0.25, 0, 1), color.RGBA{128, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.input); got != tt.expected {
				t.Errorf("ToRGBA(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
