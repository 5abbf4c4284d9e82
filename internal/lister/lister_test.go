package lister

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aietrace/common"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xrt.ini")
	if err := os.WriteFile(path, []byte("[AIE_trace_settings]\n"+body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPlan(t *testing.T) {
	path := writeSettings(t, "hw_generation = aie4\nstart_col = 1\nnum_cols = 1\nbroadcast_ids = 2,3\n"+
		"tile_based_aie_tile_metrics = 1,2:functions\n")
	var buf bytes.Buffer
	if err := Run(Config{SettingsPath: path, OutputWriter: &buf}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "aie4; columns 1..1; broadcast 2/3; 1 tiles") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "Op:0; (1,0) PL") || strings.Contains(out, "reset-broadcast") {
		t.Errorf("plan:\n%s", out)
	}
}

func TestRunPlanQuiet(t *testing.T) {
	path := writeSettings(t, "hw_generation = aie2\nnum_cols = 1\nbroadcast_ids = 0,1\n"+
		"tile_based_aie_tile_metrics = 0,2:functions\n")
	tests := []struct {
		name    string
		quiet   bool
		wantOps bool
	}{
		{"verbose", false, true},
		{"quiet", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf, logged bytes.Buffer
			logger := common.NewLogrusLoggerWithWriter(&logged, common.SeverityDebug)
			cfg := Config{SettingsPath: path, Stats: true, Quiet: tt.quiet, OutputWriter: &buf, Logger: logger}
			if err := Run(cfg); err != nil {
				t.Fatal(err)
			}
			out := buf.String()
			if got := strings.Contains(out, "Op:0; "); got != tt.wantOps {
				t.Errorf("calls printed = %v, want %v:\n%s", got, tt.wantOps, out)
			}
			if !strings.Contains(out, "Device calls:-") {
				t.Errorf("statistics missing:\n%s", out)
			}
			if got := strings.Contains(logged.String(), "Op:0; "); got != tt.wantOps {
				t.Errorf("calls logged = %v, want %v:\n%s", got, tt.wantOps, logged.String())
			}
		})
	}
}

func TestRunApply(t *testing.T) {
	path := writeSettings(t, "hw_generation = aie2\nnum_cols = 1\nbroadcast_ids = 0,1\n"+
		"tile_based_aie_tile_metrics = 0,2:functions;0,3:no_such_set\n")
	var buf bytes.Buffer
	if err := Run(Config{SettingsPath: path, Apply: true, Reset: true, OutputWriter: &buf}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Tile (0,2); aie; set functions", "skipped (0,3)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	if err := Run(Config{SettingsPath: filepath.Join(t.TempDir(), "none.ini"), OutputWriter: &bytes.Buffer{}}); err == nil {
		t.Errorf("missing file accepted")
	}
	path := writeSettings(t, "hw_generation = aie2\nbroadcast_ids = 0,1\ntile_based_aie_tile_metrics = 9,9:functions\n")
	if err := Run(Config{SettingsPath: path, OutputWriter: &bytes.Buffer{}}); err == nil {
		t.Errorf("tile outside the array accepted")
	}
}
