package scene

import "fmt"

// Stages at which a preload can fail fatally.
const (
	StageOpen          = "open"
	StageRead          = "read"
	StageSimulationBox = "simulation box"
)

// FatalError aborts the whole preload pass. It is returned for conditions
// the loader cannot recover from: an unreadable source, an I/O failure
// mid-scan, or a broken [simulation box] block, without which nothing
// downstream can size its buffers.
type FatalError struct {
	Stage string
	Line  int
	Err   error
}

func (e *FatalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("preload failed at %s, line %d: %v", e.Stage, e.Line, e.Err)
	}
	return fmt.Sprintf("preload failed at %s: %v", e.Stage, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Diagnostic records a malformed input unit that the preload pass skipped
// without aborting. Diagnostics are returned in file order so callers can
// report or assert on them without capturing console output.
type Diagnostic struct {
	Section Section
	Line    int
	Row     string
	Reason  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] line %d: %s: %q", d.Section, d.Line, d.Reason, d.Row)
}
