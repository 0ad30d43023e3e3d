package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-recursive-pathtracer/pkg/output"
	"github.com/df07/go-recursive-pathtracer/pkg/renderer"
	"github.com/df07/go-recursive-pathtracer/pkg/scene"
)

// ErrUnsupportedOutput is returned for output paths that are neither .ppm, .png nor "-".
var ErrUnsupportedOutput = errors.New("unsupported output format")

// renderOptions holds everything the render command reads from its flags.
type renderOptions struct {
	scene    string
	seed     int64
	out      string
	override renderer.CameraConfig

	// depth is applied after merging so that an explicit 0 survives
	depth *int
}

// RenderFrame renders a built-in scene to a file or stdout.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderOptions{
		scene: ctx.String("scene"),
		seed:  ctx.Int64("seed"),
		out:   ctx.String("out"),
		override: renderer.CameraConfig{
			Width:           ctx.Int("width"),
			AspectRatio:     float32(ctx.Float64("aspect")),
			SamplesPerPixel: ctx.Int("spp"),
			VFov:            float32(ctx.Float64("vfov")),
			DefocusAngle:    float32(ctx.Float64("defocus")),
			FocusDistance:   float32(ctx.Float64("focus")),
		},
	}
	if ctx.IsSet("depth") {
		depth := ctx.Int("depth")
		opts.depth = &depth
	}

	stats, err := runRender(opts, ctx.App.Writer)
	if err != nil {
		return err
	}

	logger.Noticef("frame statistics\n%s", formatStats(opts.scene, stats))
	return nil
}

func runRender(opts renderOptions, stdout io.Writer) (renderer.RenderStats, error) {
	sc, err := scene.New(opts.scene, opts.seed, opts.override)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	config := sc.CameraConfig
	config.Seed = opts.seed
	if opts.depth != nil {
		config.MaxDepth = *opts.depth
	}

	camera, err := renderer.NewCamera(config)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	switch ext := strings.ToLower(filepath.Ext(opts.out)); {
	case opts.out == "-":
		return camera.Render(sc.World, output.NewPPMWriter(stdout))

	case ext == ".ppm":
		file, err := os.Create(opts.out)
		if err != nil {
			return renderer.RenderStats{}, err
		}
		stats, err := camera.Render(sc.World, output.NewPPMWriter(file))
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err == nil {
			logger.Noticef("wrote %s", opts.out)
		}
		return stats, err

	case ext == ".png":
		sink := output.NewImageSink()
		stats, err := camera.Render(sc.World, sink)
		if err != nil {
			return stats, err
		}
		if err := output.SavePNG(opts.out, sink.Image()); err != nil {
			return stats, err
		}
		logger.Noticef("wrote %s", opts.out)
		return stats, nil

	default:
		return renderer.RenderStats{}, fmt.Errorf("%q: %w", opts.out, ErrUnsupportedOutput)
	}
}

func formatStats(sceneName string, stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.AppendBulk([][]string{
		{"Scene", sceneName},
		{"Resolution", fmt.Sprintf("%dx%d px", stats.Width, stats.Height)},
		{"Samples per pixel", fmt.Sprintf("%d", stats.SamplesPerPixel)},
		{"Max depth", fmt.Sprintf("%d", stats.MaxDepth)},
		{"Primary samples", fmt.Sprintf("%d", stats.PrimarySamples)},
		{"Rays traced", fmt.Sprintf("%d", stats.RaysTraced)},
		{"Rays per sample", fmt.Sprintf("%.2f", stats.AverageBounces())},
		{"Sky escapes", fmt.Sprintf("%d", stats.SkyEscapes)},
		{"Absorptions", fmt.Sprintf("%d", stats.Absorptions)},
		{"Depth exhausted", fmt.Sprintf("%d", stats.DepthExhausted)},
	})
	table.SetFooter([]string{"Render time", stats.Duration.String()})
	table.Render()
	return buf.String()
}
