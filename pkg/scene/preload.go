package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Preload makes a single streaming pass over the scene file at path,
// gathering the simulation box, particle and membrane counts, and the
// physical constants table. Row contents are never retained; the pass
// exists so the solver can size fixed device buffers before the full-load
// pass hydrates them.
//
// Malformed rows are skipped and reported through the returned
// diagnostics; the pass only aborts when the file cannot be read or the
// [simulation box] block is broken. A nil error with non-empty
// diagnostics means "completed with warnings".
func Preload(path string) (*SceneConfig, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &FatalError{Stage: StageOpen, Err: err}
	}
	defer f.Close()

	return preload(f, path)
}

// PreloadReader is Preload over an arbitrary reader. The returned config
// has no path; resume offsets are relative to the start of r.
func PreloadReader(r io.Reader) (*SceneConfig, []Diagnostic, error) {
	return preload(r, "")
}

func preload(r io.Reader, path string) (*SceneConfig, []Diagnostic, error) {
	p := &preloader{
		r:   bufio.NewReader(r),
		cfg: NewSceneConfig(path),
	}
	if err := p.run(); err != nil {
		return nil, nil, err
	}
	if err := p.cfg.Validate(); err != nil {
		return nil, nil, &FatalError{Stage: StageRead, Line: p.line, Err: err}
	}
	return p.cfg, p.diags, nil
}

// preloader is the line-oriented state machine behind Preload. The active
// section decides how each non-header line is handled; section headers
// are the only transitions.
type preloader struct {
	r       *bufio.Reader
	cfg     *SceneConfig
	diags   []Diagnostic
	section Section
	line    int
	offset  int64
}

func (p *preloader) run() error {
	for {
		raw, readErr := p.next()
		if readErr != nil && readErr != io.EOF {
			return &FatalError{Stage: StageRead, Line: p.line, Err: readErr}
		}
		if raw != "" {
			done, err := p.handleLine(strings.TrimSpace(raw))
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

// next reads one raw line, keeping the line counter and byte offset in
// step with the source. The final line of a file may arrive without a
// trailing newline, alongside io.EOF.
func (p *preloader) next() (string, error) {
	raw, err := p.r.ReadString('\n')
	if raw != "" {
		p.line++
		p.offset += int64(len(raw))
	}
	return raw, err
}

func (p *preloader) handleLine(line string) (bool, error) {
	if skippable(line) {
		return false, nil
	}

	if section, ok := parseSectionHeader(line); ok {
		p.section = section
		if section.terminal() {
			// Counts are final by here; the rest of the file
			// belongs to the full-load pass.
			return true, nil
		}
		if section == SectionSimulationBox {
			return false, p.readBounds()
		}
		return false, nil
	}

	switch p.section {
	case SectionPhysicalParams:
		p.readPhysParam(line)
	case SectionPosition:
		p.countPositionRow(line)
	case SectionMembranes:
		p.countMembraneRow(line)
	}
	return false, nil
}

// skippable reports whether a trimmed line is blank or a comment. These
// are ignored in every section.
func skippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#")
}

// readBounds consumes the six lines following a [simulation box] header,
// in fixed order: xmin, xmax, ymin, ymax, zmin, zmax. The block does not
// nest, so the section resets to none afterward, and the byte offset past
// the sixth line is recorded for the full-load pass. Truncation or a
// non-numeric line is fatal.
func (p *preloader) readBounds() error {
	b := &p.cfg.Bounds
	dims := [6]*float64{&b.XMin, &b.XMax, &b.YMin, &b.YMax, &b.ZMin, &b.ZMax}

	for _, dim := range dims {
		raw, readErr := p.next()
		if readErr != nil && readErr != io.EOF {
			return &FatalError{Stage: StageSimulationBox, Line: p.line, Err: readErr}
		}
		text := strings.TrimSpace(raw)
		if text == "" {
			if readErr == io.EOF {
				return &FatalError{Stage: StageSimulationBox, Line: p.line, Err: io.ErrUnexpectedEOF}
			}
			return &FatalError{Stage: StageSimulationBox, Line: p.line, Err: fmt.Errorf("expected a bound, got a blank line")}
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return &FatalError{Stage: StageSimulationBox, Line: p.line, Err: fmt.Errorf("bad bound %q: %w", text, err)}
		}
		*dim = v
	}

	p.cfg.ResumeOffset = p.offset
	p.section = SectionNone
	return nil
}

func (p *preloader) readPhysParam(line string) {
	name, value, ok := parsePhysParam(line)
	if !ok {
		p.warnf(line, "unrecognized parameter line")
		return
	}
	p.cfg.Constants[name] = value
}

// countPositionRow tallies one [position] row by its type code (0-based
// field 3). Rows with an unknown code increment no counter, not even the
// total, so NumTotal always equals the sum of the typed counts.
func (p *preloader) countPositionRow(line string) {
	parts := strings.Split(line, "\t")
	if len(parts) < 4 {
		p.warnf(line, "row has %d fields, need at least 4", len(parts))
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		p.warnf(line, "bad particle type %q", parts[3])
		return
	}
	switch int(v) {
	case LiquidParticle:
		p.cfg.NumLiquid++
	case ElasticParticle:
		p.cfg.NumElastic++
	case BoundaryParticle:
		p.cfg.NumBoundary++
	default:
		p.warnf(line, "unknown particle type %d", int(v))
		return
	}
	p.cfg.NumTotal++
}

// countMembraneRow validates one [membranes] row: at least three
// tab-separated fields, each an integer. Values are discarded; preload
// only counts.
func (p *preloader) countMembraneRow(line string) {
	parts := strings.Split(line, "\t")
	if len(parts) < 3 {
		p.warnf(line, "row has %d fields, need at least 3", len(parts))
		return
	}
	for _, part := range parts[:3] {
		if _, err := strconv.Atoi(strings.TrimSpace(part)); err != nil {
			p.warnf(line, "bad membrane index %q", part)
			return
		}
	}
	p.cfg.NumMembranes++
}

func (p *preloader) warnf(row, format string, args ...interface{}) {
	p.diags = append(p.diags, Diagnostic{
		Section: p.section,
		Line:    p.line,
		Row:     row,
		Reason:  fmt.Sprintf(format, args...),
	})
}
