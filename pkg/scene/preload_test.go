package scene

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeScene writes a scene file into a temp dir and returns its path.
func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write scene file: %v", err)
	}
	return path
}

const boxBlock = "[simulation box]\n0\n10\n0\n10\n0\n10\n"

func TestPreloadEndToEnd(t *testing.T) {
	content := boxBlock +
		"[position]\n" +
		"1.0\t2.0\t3.0\t0\n" +
		"4.0\t5.0\t6.0\t2\n" +
		"[membranes]\n" +
		"1\t2\t0\n" +
		"[end]\n"
	cfg, diags, err := Preload(writeScene(t, content))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}

	b := cfg.Bounds
	if b.XMin != 0 || b.XMax != 10 || b.YMin != 0 || b.YMax != 10 || b.ZMin != 0 || b.ZMax != 10 {
		t.Errorf("unexpected bounds: %+v", b)
	}
	if cfg.NumLiquid != 1 {
		t.Errorf("expected 1 liquid particle, got %d", cfg.NumLiquid)
	}
	if cfg.NumElastic != 0 {
		t.Errorf("expected 0 elastic particles, got %d", cfg.NumElastic)
	}
	if cfg.NumBoundary != 1 {
		t.Errorf("expected 1 boundary particle, got %d", cfg.NumBoundary)
	}
	if cfg.NumTotal != 2 {
		t.Errorf("expected 2 total particles, got %d", cfg.NumTotal)
	}
	if cfg.NumMembranes != 1 {
		t.Errorf("expected 1 membrane, got %d", cfg.NumMembranes)
	}
	if cfg.ResumeOffset != int64(len(boxBlock)) {
		t.Errorf("expected resume offset %d, got %d", len(boxBlock), cfg.ResumeOffset)
	}
}

func TestPreloadBoundsInFileOrder(t *testing.T) {
	content := "[simulation box]\n-1.5\n2.5\n-3.5\n4.5\n-5.5\n6.5e1\n"
	cfg, _, err := Preload(writeScene(t, content))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	b := cfg.Bounds
	if b.XMin != -1.5 || b.XMax != 2.5 || b.YMin != -3.5 || b.YMax != 4.5 || b.ZMin != -5.5 || b.ZMax != 65 {
		t.Errorf("unexpected bounds: %+v", b)
	}
}

func TestPreloadTruncatedBoxIsFatal(t *testing.T) {
	_, _, err := Preload(writeScene(t, "[simulation box]\n0\n10\n0\n"))
	if err == nil {
		t.Fatal("expected a fatal error for a truncated box")
	}
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected *FatalError, got %T", err)
	}
	if fatal.Stage != StageSimulationBox {
		t.Errorf("expected stage %q, got %q", StageSimulationBox, fatal.Stage)
	}
}

func TestPreloadNonNumericBoundIsFatal(t *testing.T) {
	_, _, err := Preload(writeScene(t, "[simulation box]\n0\n10\nbogus\n10\n0\n10\n"))
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected *FatalError, got %v", err)
	}
	if fatal.Stage != StageSimulationBox {
		t.Errorf("expected stage %q, got %q", StageSimulationBox, fatal.Stage)
	}
	if fatal.Line != 4 {
		t.Errorf("expected failure on line 4, got line %d", fatal.Line)
	}
}

func TestPreloadMissingFile(t *testing.T) {
	cfg, diags, err := Preload(filepath.Join(t.TempDir(), "no-such-scene.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if cfg != nil || diags != nil {
		t.Error("no partial record should be returned on a fatal error")
	}
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected *FatalError, got %T", err)
	}
	if fatal.Stage != StageOpen {
		t.Errorf("expected stage %q, got %q", StageOpen, fatal.Stage)
	}
}

func TestPreloadPhysicalParameters(t *testing.T) {
	content := "[physical parameters]\n" +
		"mass : 0.0003 // kg per particle\n" +
		"timeStep: 5.0e-6\n" +
		"rho0 :1000\n" +
		"stiffness : 0.75\n" +
		"stiffness : 1.25\n"
	cfg, diags, err := PreloadReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}

	want := map[string]float64{
		"mass":      0.0003,
		"timeStep":  5.0e-6,
		"rho0":      1000,
		"stiffness": 1.25, // last declaration wins
	}
	if !reflect.DeepEqual(cfg.Constants, want) {
		t.Errorf("constants = %v, want %v", cfg.Constants, want)
	}
}

func TestPreloadBadParameterLineIsRecoverable(t *testing.T) {
	content := "[physical parameters]\n" +
		"mass : 0.0003\n" +
		"not a parameter at all\n" +
		"gravity : -9.8\n" + // negative values are outside the grammar
		"rho0 : 1000\n"
	cfg, diags, err := PreloadReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if len(cfg.Constants) != 2 {
		t.Errorf("expected 2 constants, got %v", cfg.Constants)
	}
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", diags)
	}
	if diags[0].Section != SectionPhysicalParams || diags[0].Line != 3 {
		t.Errorf("unexpected first diagnostic: %+v", diags[0])
	}
	if diags[1].Line != 4 {
		t.Errorf("unexpected second diagnostic: %+v", diags[1])
	}
}

func TestPreloadConstantsEmptyWithoutSection(t *testing.T) {
	cfg, _, err := PreloadReader(strings.NewReader("[position]\n1\t2\t3\t0\n"))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if len(cfg.Constants) != 0 {
		t.Errorf("expected empty constants map, got %v", cfg.Constants)
	}
}

func TestPreloadPositionRows(t *testing.T) {
	content := "[position]\n" +
		"0.1\t0.2\t0.3\t0\n" +
		"0.4\t0.5\t0.6\t1\n" +
		"0.7\t0.8\t0.9\t1.0\n" + // type codes are truncated floats
		"1.0\t1.1\t1.2\t2\n" +
		"too\tfew\tfields\n" +
		"1.3\t1.4\t1.5\t7\n" + // unknown type code
		"1.6\t1.7\t1.8\tabc\n"
	cfg, diags, err := PreloadReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if cfg.NumLiquid != 1 || cfg.NumElastic != 2 || cfg.NumBoundary != 1 {
		t.Errorf("counts liquid=%d elastic=%d boundary=%d, want 1/2/1",
			cfg.NumLiquid, cfg.NumElastic, cfg.NumBoundary)
	}
	if cfg.NumTotal != 4 {
		t.Errorf("expected total 4, got %d", cfg.NumTotal)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("counter invariant broken: %v", err)
	}
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %v", diags)
	}
	if diags[1].Line != 7 || !strings.Contains(diags[1].Reason, "unknown particle type 7") {
		t.Errorf("unexpected unknown-type diagnostic: %+v", diags[1])
	}
}

func TestPreloadMembraneRows(t *testing.T) {
	content := "[membranes]\n" +
		"1\t2\t3\n" +
		"4\t5\t6\textra\tfields\tignored\n" +
		"7\t8\n" + // too few fields
		"9\tx\t10\n" + // non-integer
		"11\t12\t13\n"
	cfg, diags, err := PreloadReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if cfg.NumMembranes != 3 {
		t.Errorf("expected 3 membranes, got %d", cfg.NumMembranes)
	}
	if len(diags) != 2 {
		t.Errorf("expected 2 diagnostics, got %v", diags)
	}
}

func TestPreloadEarlyExit(t *testing.T) {
	for _, marker := range []string{"[particleMemIndex]", "[end]"} {
		content := boxBlock +
			"[position]\n" +
			"0\t0\t0\t0\n" +
			marker + "\n" +
			// Everything below must have zero effect on the record.
			"[position]\n" +
			"0\t0\t0\t1\n" +
			"[membranes]\n" +
			"1\t2\t3\n"
		cfg, _, err := PreloadReader(strings.NewReader(content))
		if err != nil {
			t.Fatalf("%s: preload failed: %v", marker, err)
		}
		if cfg.NumTotal != 1 || cfg.NumLiquid != 1 {
			t.Errorf("%s: content after the marker leaked into counts: %+v", marker, cfg)
		}
		if cfg.NumMembranes != 0 {
			t.Errorf("%s: expected 0 membranes, got %d", marker, cfg.NumMembranes)
		}
	}
}

func TestPreloadSkipsCommentsAndBlanks(t *testing.T) {
	content := "// scene header comment\n" +
		"# generator: none\n" +
		"\n" +
		boxBlock +
		"[position]\n" +
		"// a commented-out particle\n" +
		"\n" +
		"0\t0\t0\t0\n"
	cfg, diags, err := PreloadReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
	if cfg.NumTotal != 1 {
		t.Errorf("expected 1 particle, got %d", cfg.NumTotal)
	}
}

func TestPreloadUnknownSectionIsInert(t *testing.T) {
	content := "[future extension]\n" +
		"anything\tgoes\there\n" +
		"[position]\n" +
		"0\t0\t0\t0\n" +
		"[velocity]\n" +
		"0.0\t0.0\t0.0\n" +
		"[connection]\n" +
		"1\t2\t0.5\t0\n"
	cfg, diags, err := PreloadReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics from inert sections, got %v", diags)
	}
	if cfg.NumTotal != 1 {
		t.Errorf("expected 1 particle, got %d", cfg.NumTotal)
	}
}

func TestPreloadIsReproducible(t *testing.T) {
	content := boxBlock +
		"[physical parameters]\n" +
		"mass : 0.0003\n" +
		"junk line\n" +
		"[position]\n" +
		"0\t0\t0\t0\n" +
		"0\t0\t0\t9\n" +
		"[membranes]\n" +
		"1\t2\t3\n"
	path := writeScene(t, content)

	first, firstDiags, err := Preload(path)
	if err != nil {
		t.Fatalf("first preload failed: %v", err)
	}
	second, secondDiags, err := Preload(path)
	if err != nil {
		t.Fatalf("second preload failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("records differ between runs:\n%+v\n%+v", first, second)
	}
	if !reflect.DeepEqual(firstDiags, secondDiags) {
		t.Errorf("diagnostics differ between runs:\n%v\n%v", firstDiags, secondDiags)
	}
}

func TestPreloadLastLineWithoutNewline(t *testing.T) {
	content := "[position]\n0\t0\t0\t0\n0\t0\t0\t2" // no trailing newline
	cfg, _, err := PreloadReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if cfg.NumTotal != 2 || cfg.NumBoundary != 1 {
		t.Errorf("final unterminated row was not counted: %+v", cfg)
	}
}
