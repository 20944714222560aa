package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by ByName for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

type sceneFactory struct {
	info  SceneInfo
	build func(seed int64) *Scene
}

var builtinScenes = map[string]sceneFactory{
	"default": {
		info:  SceneInfo{Name: "default", Description: "Three spheres (diffuse, hollow glass, fuzzed gold) on a ground sphere"},
		build: func(int64) *Scene { return NewDefaultScene() },
	},
	"spheres": {
		info:  SceneInfo{Name: "spheres", Description: "Random field of small diffuse and metal spheres around three feature spheres"},
		build: NewSphereFieldScene,
	},
}

// ByName builds the named scene. Scenes with random placement use seed.
func ByName(name string, seed int64) (*Scene, error) {
	factory, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return factory.build(seed), nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every registered scene, sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range Names() {
		scenes = append(scenes, builtinScenes[name].info)
	}
	return scenes
}
