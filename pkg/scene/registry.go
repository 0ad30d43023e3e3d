package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for names not in the registry
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by New
	DisplayName string // Human readable name
	Description string
}

type builder func(seed int64, override renderer.CameraConfig) *Scene

type entry struct {
	info  SceneInfo
	build builder
}

var builtins = map[string]entry{
	"random-spheres": {
		info: SceneInfo{Description: "Ground covered in small random spheres around three large ones"},
		build: func(seed int64, override renderer.CameraConfig) *Scene {
			return NewRandomSpheresScene(core.NewSeededSampler(seed), override)
		},
	},
	"default": {
		info: SceneInfo{Description: "Spheres of every material including a hollow glass sphere"},
		build: func(_ int64, override renderer.CameraConfig) *Scene {
			return NewDefaultScene(override)
		},
	},
	"cubes": {
		info: SceneInfo{Description: "Axis-aligned cubes of diffuse, glass and metal"},
		build: func(_ int64, override renderer.CameraConfig) *Scene {
			return NewCubeScene(override)
		},
	},
	"spheregrid": {
		info: SceneInfo{Description: "10x10 grid of rainbow-colored metallic spheres"},
		build: func(_ int64, override renderer.CameraConfig) *Scene {
			return NewSphereGridScene(override)
		},
	},
}

// New builds the named scene. seed drives any random layout; override is merged
// over the scene's recommended camera.
func New(id string, seed int64, override renderer.CameraConfig) (*Scene, error) {
	e, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("%q (available: %s): %w", id, strings.Join(IDs(), ", "), ErrUnknownScene)
	}

	s := e.build(seed, override)
	logger.Infof("built scene %s with %d objects", id, s.ObjectCount())
	return s, nil
}

// IDs returns the registered scene names in sorted order
func IDs() []string {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns metadata for every built-in scene, sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, id := range IDs() {
		info := builtins[id].info
		info.ID = id
		info.DisplayName = titleCase(id)
		infos = append(infos, info)
	}
	return infos
}

// titleCase converts a name-style string to title case
// e.g., "random-spheres" -> "Random Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
