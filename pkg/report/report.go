package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/fluidform/sph-simulations/pkg/scene"
)

// Color definitions for report rendering
var (
	colorHeading = color.New(color.FgCyan, color.Bold)
	colorWarning = color.New(color.FgYellow)
	colorMuted   = color.New(color.FgHiBlack)
)

// Report summarizes one finished preload run: the record it produced, the
// diagnostics it accumulated, and how long the scan took.
type Report struct {
	RunID       uuid.UUID
	Scene       string
	Duration    time.Duration
	Config      *scene.SceneConfig
	Diagnostics []scene.Diagnostic
}

// New builds a report for a finished preload run.
func New(cfg *scene.SceneConfig, diags []scene.Diagnostic, duration time.Duration) *Report {
	return &Report{
		RunID:       uuid.New(),
		Scene:       cfg.Path,
		Duration:    duration,
		Config:      cfg,
		Diagnostics: diags,
	}
}

// HasWarnings reports whether the run skipped any malformed rows.
func (r *Report) HasWarnings() bool {
	return len(r.Diagnostics) > 0
}

// Render writes the human-readable summary to w: run metadata, the
// simulation box, the particle and membrane counts, the constants table,
// and any diagnostics.
func (r *Report) Render(w io.Writer) error {
	_, _ = colorHeading.Fprintln(w, "Preload Summary")
	_, _ = colorMuted.Fprintf(w, "run %s", r.RunID)
	if r.Scene != "" {
		_, _ = colorMuted.Fprintf(w, " | scene %s", r.Scene)
	}
	_, _ = colorMuted.Fprintf(w, " | %s\n\n", r.Duration.Round(time.Microsecond))

	cfg := r.Config
	b := cfg.Bounds
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Simulation box\tX(%g, %g) Y(%g, %g) Z(%g, %g)\n",
		b.XMin, b.XMax, b.YMin, b.YMax, b.ZMin, b.ZMax)
	_, _ = fmt.Fprintf(tw, "Box center\t(%g, %g, %g)\n",
		b.Center().X, b.Center().Y, b.Center().Z)
	_, _ = fmt.Fprintf(tw, "Particles\tliquid %d, elastic %d, boundary %d, total %d\n",
		cfg.NumLiquid, cfg.NumElastic, cfg.NumBoundary, cfg.NumTotal)
	_, _ = fmt.Fprintf(tw, "Membranes\t%d\n", cfg.NumMembranes)
	_, _ = fmt.Fprintf(tw, "Constants\t%d\n", len(cfg.Constants))
	_, _ = fmt.Fprintf(tw, "Resume offset\t%d\n", cfg.ResumeOffset)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Diagnostics) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = colorWarning.Fprintf(w, "%d skipped line(s):\n", len(r.Diagnostics))
		for _, d := range r.Diagnostics {
			_, _ = fmt.Fprintf(w, "  %s\n", d)
		}
	}

	return nil
}
