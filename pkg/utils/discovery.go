package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fluidform/sph-simulations/pkg/logger"
)

// SceneCatalog describes one scene, loaded from a scene.yaml sitting next
// to the raw scene text it points at.
type SceneCatalog struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Scene       string `yaml:"scene"` // scene text file, relative to the catalog
	Version     string `yaml:"version,omitempty"`
}

// SceneInfo contains information about a discovered scene.
type SceneInfo struct {
	Path    string // path of the scene.yaml catalog file
	Catalog SceneCatalog
}

// ScenePath returns the path of the raw scene text, resolved against the
// catalog's directory.
func (s SceneInfo) ScenePath() string {
	if filepath.IsAbs(s.Catalog.Scene) {
		return s.Catalog.Scene
	}
	return filepath.Join(filepath.Dir(s.Path), s.Catalog.Scene)
}

// DiscoverScenes finds all scene catalogs under a workspace directory.
func DiscoverScenes(dir string) ([]SceneInfo, error) {
	var scenes []SceneInfo

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Look for scene.yaml catalog files
		if info.Name() == "scene.yaml" {
			sceneInfo, err := loadSceneCatalog(path)
			if err != nil {
				// Log error but continue scanning
				logger.Warnf("failed to load %s: %v", path, err)
				return nil
			}
			scenes = append(scenes, *sceneInfo)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan for scenes: %w", err)
	}

	return scenes, nil
}

// loadSceneCatalog loads a scene catalog from a file.
func loadSceneCatalog(path string) (*SceneInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var catalog SceneCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if catalog.Name == "" {
		return nil, fmt.Errorf("%s: scene catalog has no name", path)
	}
	if catalog.Scene == "" {
		return nil, fmt.Errorf("%s: scene catalog points at no scene file", path)
	}

	return &SceneInfo{Path: path, Catalog: catalog}, nil
}
