package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fluidform/sph-simulations/pkg/report"
	"github.com/fluidform/sph-simulations/pkg/scene"
	"github.com/fluidform/sph-simulations/pkg/utils"
)

var preloadCmd = &cobra.Command{
	Use:   "preload [scene-file]",
	Short: "Run the sizing pass over a scene file",
	Long: `Preload streams a scene file once and reports the counts and scalar
parameters a solver needs before allocating buffers: the simulation box,
per-type particle counts, membrane count, and the physical constants
table. Without a scene file argument it offers the scenes discovered in
the active workspace.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreload,
}

var (
	outputFormat string
	strict       bool
)

func init() {
	preloadCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, yaml)")
	preloadCmd.Flags().BoolVar(&strict, "strict", false, "fail if any line had to be skipped")
}

func runPreload(cmd *cobra.Command, args []string) error {
	path, err := resolveScenePath(args)
	if err != nil {
		return err
	}

	start := time.Now()
	cfg, diags, err := scene.Preload(path)
	if err != nil {
		return fmt.Errorf("failed to preload %s: %w", path, err)
	}
	elapsed := time.Since(start)

	switch outputFormat {
	case "text":
		r := report.New(cfg, diags, elapsed)
		if err := r.Render(os.Stdout); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	case "yaml":
		out := struct {
			Config   *scene.SceneConfig `yaml:"config"`
			Warnings []string           `yaml:"warnings,omitempty"`
		}{Config: cfg}
		for _, d := range diags {
			out.Warnings = append(out.Warnings, d.String())
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	if strict && len(diags) > 0 {
		return fmt.Errorf("%d line(s) skipped in strict mode", len(diags))
	}
	return nil
}

// resolveScenePath returns the scene file to preload: the positional
// argument if given, otherwise an interactive choice from the workspace.
func resolveScenePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	ws, err := resolveWorkspace()
	if err != nil {
		return "", err
	}

	scenes, err := utils.DiscoverScenes(ws.Dir)
	if err != nil {
		return "", fmt.Errorf("failed to discover scenes: %w", err)
	}
	if len(scenes) == 0 {
		return "", fmt.Errorf("no scenes found in workspace %s", ws.Name)
	}

	selected, err := utils.SelectScene(scenes)
	if err != nil {
		return "", fmt.Errorf("failed to select scene: %w", err)
	}
	return selected.ScenePath(), nil
}
