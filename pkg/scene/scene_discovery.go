package scene

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Builder constructs a scene. Renderers only depend on this signature, so
// scenes can be swapped without touching the pipeline.
type Builder func() (*Scene, error)

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Description string `json:"description"` // Optional description
}

type registration struct {
	info  SceneInfo
	build Builder
}

var builtins = map[string]registration{
	"default": {
		info: SceneInfo{ID: "default", Description: "White sphere with a red sphere in front"},
		build: func() (*Scene, error) {
			return NewDefaultScene(), nil
		},
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, r := range builtins {
		scenes = append(scenes, r.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Lookup returns the builder for a built-in scene ID or a path to a JSON scene file
func Lookup(name string) (Builder, error) {
	if r, ok := builtins[name]; ok {
		return r.build, nil
	}

	if strings.EqualFold(filepath.Ext(name), ".json") {
		return func() (*Scene, error) {
			return Load(name)
		}, nil
	}

	return nil, fmt.Errorf("unknown scene %q", name)
}
