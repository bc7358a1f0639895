package scene

import (
	"fmt"

	"github.com/fluidform/sph-simulations/pkg/models"
)

// Particle type codes as they appear in field 3 of [position] rows.
const (
	LiquidParticle   = 0
	ElasticParticle  = 1
	BoundaryParticle = 2
)

// SceneConfig holds everything the preload pass learns about a scene file:
// the simulation box, particle and membrane counts, and the physical
// constants table. The solver uses the counts to size its device buffers
// before the full-load pass hydrates the per-particle arrays.
//
// A SceneConfig is written only while Preload is running and must be
// treated as read-only once it returns.
type SceneConfig struct {
	// Path is the scene file the config was read from.
	Path string `yaml:"path,omitempty"`

	// Bounds is the simulation box, in file order
	// (xmin, xmax, ymin, ymax, zmin, zmax).
	Bounds models.Box `yaml:"bounds"`

	NumLiquid   int `yaml:"num_liquid"`
	NumElastic  int `yaml:"num_elastic"`
	NumBoundary int `yaml:"num_boundary"`
	NumTotal    int `yaml:"num_total"`

	NumMembranes int `yaml:"num_membranes"`

	// NumConnections and MemIndexCount are reserved for the full-load
	// pass; preload leaves them at zero.
	NumConnections int `yaml:"num_connections,omitempty"`
	MemIndexCount  int `yaml:"mem_index_count,omitempty"`

	// Constants maps physical parameter names to their values. A name
	// declared twice keeps the last value.
	Constants map[string]float64 `yaml:"constants"`

	// ResumeOffset is the byte offset immediately after the
	// [simulation box] block. The full-load pass seeks here instead of
	// re-parsing the header region.
	ResumeOffset int64 `yaml:"resume_offset"`
}

// NewSceneConfig returns an empty config for the given scene file.
func NewSceneConfig(path string) *SceneConfig {
	return &SceneConfig{
		Path:      path,
		Constants: make(map[string]float64),
	}
}

// Const returns the named physical constant, or def if the scene does not
// declare it.
func (c *SceneConfig) Const(name string, def float64) float64 {
	if v, ok := c.Constants[name]; ok {
		return v
	}
	return def
}

// Validate checks the counter invariant: the total particle count must
// equal the sum of the per-type counts.
func (c *SceneConfig) Validate() error {
	if sum := c.NumLiquid + c.NumElastic + c.NumBoundary; sum != c.NumTotal {
		return fmt.Errorf("particle counts out of sync: liquid %d + elastic %d + boundary %d != total %d",
			c.NumLiquid, c.NumElastic, c.NumBoundary, c.NumTotal)
	}
	if c.NumTotal < 0 || c.NumMembranes < 0 {
		return fmt.Errorf("negative counts: total %d, membranes %d", c.NumTotal, c.NumMembranes)
	}
	return nil
}
