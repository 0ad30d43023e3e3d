package cmd

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-recursive-pathtracer/pkg/renderer"
	"github.com/df07/go-recursive-pathtracer/pkg/scene"
)

func smallOptions(sceneName, out string) renderOptions {
	return renderOptions{
		scene: sceneName,
		seed:  3,
		out:   out,
		override: renderer.CameraConfig{
			Width:           4,
			SamplesPerPixel: 1,
			MaxDepth:        2,
		},
	}
}

func TestRunRender_PPMToStdout(t *testing.T) {
	var stdout bytes.Buffer
	stats, err := runRender(smallOptions("cubes", "-"), &stdout)
	if err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	// 4 wide at 16:9 rounds to 2 rows
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 3+4*2 {
		t.Fatalf("Expected header plus 8 pixel lines, got %d lines:\n%s", len(lines), stdout.String())
	}
	if lines[0] != "P3" || lines[1] != "4 2" || lines[2] != "255" {
		t.Errorf("Unexpected PPM header %q", lines[:3])
	}
	if stats.Width != 4 || stats.Height != 2 || stats.MaxDepth != 2 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestRunRender_ExplicitZeroDepth(t *testing.T) {
	opts := smallOptions("default", "-")
	zero := 0
	opts.depth = &zero

	var stdout bytes.Buffer
	if _, err := runRender(opts, &stdout); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	for _, line := range lines[3:] {
		if line != "0 0 0" {
			t.Fatalf("Expected black pixels at depth 0, got %q", line)
		}
	}
}

func TestRunRender_Files(t *testing.T) {
	dir := t.TempDir()

	ppmPath := filepath.Join(dir, "frame.ppm")
	if _, err := runRender(smallOptions("spheregrid", ppmPath), nil); err != nil {
		t.Fatalf("PPM render failed: %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatalf("Reading PPM failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n4 2\n255\n") {
		t.Errorf("Unexpected PPM header in %q", string(data))
	}

	pngPath := filepath.Join(dir, "frame.PNG")
	if _, err := runRender(smallOptions("random-spheres", pngPath), nil); err != nil {
		t.Fatalf("PNG render failed: %v", err)
	}
	file, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("Opening PNG failed: %v", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decoding PNG failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected 4x2 PNG, got %v", img.Bounds())
	}
}

func TestRunRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		opts     renderOptions
		expected error
	}{
		{"unknown scene", smallOptions("nonexistent", "-"), scene.ErrUnknownScene},
		{"unsupported output", smallOptions("cubes", "frame.jpg"), ErrUnsupportedOutput},
		{
			name: "invalid camera",
			opts: func() renderOptions {
				opts := smallOptions("cubes", "-")
				negative := -1
				opts.depth = &negative
				return opts
			}(),
			expected: renderer.ErrInvalidDepth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			if _, err := runRender(tt.opts, &stdout); !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestFormatStats(t *testing.T) {
	stats := renderer.RenderStats{
		Width:           16,
		Height:          9,
		SamplesPerPixel: 4,
		MaxDepth:        10,
		PrimarySamples:  576,
		RaysTraced:      1152,
		SkyEscapes:      500,
		Absorptions:     6,
		DepthExhausted:  70,
	}

	out := formatStats("cubes", stats)
	for _, want := range []string{"cubes", "16x9 px", "576", "1152", "2.00", "Render time"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in stats table:\n%s", want, out)
		}
	}
}

func TestWriteSceneTable(t *testing.T) {
	var buf bytes.Buffer
	writeSceneTable(&buf, scene.List())

	for _, id := range scene.IDs() {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("Expected scene %q in listing:\n%s", id, buf.String())
		}
	}
}
