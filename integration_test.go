package aietrace_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"

	"aietrace/internal/lister"
)

type jsonRecord struct {
	SessionID string `json:"session_id"`
	Gen       string `json:"hw_generation"`
	Tiles     []struct {
		Column    uint8    `json:"column"`
		Row       uint8    `json:"row"`
		Module    string   `json:"module"`
		MetricSet string   `json:"metric_set"`
		Events    []string `json:"events"`
	} `json:"tiles"`
}

var headerRe = regexp.MustCompile(`(?m)^(\w+); columns (\d+)\.\.(\d+); broadcast \d+/\d+; (\d+) tiles$`)

func run(t *testing.T, cfg lister.Config) string {
	t.Helper()
	var buf bytes.Buffer
	cfg.OutputWriter = &buf
	if err := lister.Run(cfg); err != nil {
		t.Fatalf("lister.Run(%s) failed: %v", cfg.SettingsPath, err)
	}
	return strings.ReplaceAll(buf.String(), "\r\n", "\n")
}

// Every settings file under testdata must plan, configure and reset cleanly,
// and the plan must not depend on the session.
func TestIntegrationSettingsFiles(t *testing.T) {
	tests := []struct {
		file  string
		gen   string
		tiles int
	}{
		{"aie2_mixed.ini", "aie2", 12},
		{"aie1_cores.ini", "aie", 24},
		{"aie2ps_interface.ini", "aie2ps", 4},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join("testdata", tc.file)

			plan := run(t, lister.Config{SettingsPath: path, Reset: true, Stats: true})
			m := headerRe.FindStringSubmatch(plan)
			if m == nil {
				t.Fatalf("no header in:\n%s", plan)
			}
			first, _ := strconv.Atoi(m[2])
			last, _ := strconv.Atoi(m[3])
			if n, _ := strconv.Atoi(m[4]); m[1] != tc.gen || n != tc.tiles {
				t.Errorf("header = %q, want %s with %d tiles", m[0], tc.gen, tc.tiles)
			}
			for _, want := range []string{"Op:0; ", "block", "unblock", "Device calls:-"} {
				if !strings.Contains(plan, want) {
					t.Errorf("plan missing %q", want)
				}
			}
			if again := run(t, lister.Config{SettingsPath: path, Reset: true, Stats: true}); again != plan {
				t.Errorf("plan output is not stable")
			}

			text := run(t, lister.Config{SettingsPath: path, Apply: true, Reset: true})
			configured := strings.Count(text, "\nTile (")
			skipped := strings.Count(text, "\nskipped (")
			if configured+skipped != tc.tiles {
				t.Errorf("%d configured + %d skipped, want %d tiles:\n%s", configured, skipped, tc.tiles, text)
			}

			out := run(t, lister.Config{SettingsPath: path, Apply: true, JSON: true})
			var rec jsonRecord
			if err := json.Unmarshal([]byte(out), &rec); err != nil {
				t.Fatalf("decode: %v\n%s", err, out)
			}
			if rec.Gen != tc.gen || rec.SessionID == "" || len(rec.Tiles) != configured {
				t.Errorf("record: gen %q session %q, %d tiles, want %d", rec.Gen, rec.SessionID, len(rec.Tiles), configured)
			}
			for _, tile := range rec.Tiles {
				if int(tile.Column) < first || int(tile.Column) > last {
					t.Errorf("tile (%d,%d) outside columns %d..%d", tile.Column, tile.Row, first, last)
				}
				if len(tile.Events) == 0 {
					t.Errorf("tile (%d,%d) recorded without events", tile.Column, tile.Row)
				}
			}
		})
	}
}

func TestIntegrationMetricPrecedence(t *testing.T) {
	out := run(t, lister.Config{SettingsPath: filepath.Join("testdata", "aie2_mixed.ini"), Apply: true, JSON: true})
	var rec jsonRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatal(err)
	}
	got := make(map[[2]uint8]string)
	for _, tile := range rec.Tiles {
		got[[2]uint8{tile.Column, tile.Row}] = tile.Module + "/" + tile.MetricSet
	}
	want := map[[2]uint8]string{
		{1, 0}: "interface_tile/input_ports",
		{2, 0}: "interface_tile/output_ports",
		{1, 1}: "memory_tile/input_channels",
		{2, 1}: "memory_tile/output_channels",
		{1, 2}: "aie/s2mm_channels_stalls",
		{1, 3}: "aie/functions",
		{2, 2}: "aie/functions",
		{2, 3}: "aie/all_stalls",
		{2, 5}: "aie/all_stalls",
	}
	for loc, w := range want {
		if got[loc] != w {
			t.Errorf("(%d,%d) = %q, want %q", loc[0], loc[1], got[loc], w)
		}
	}
}

func TestIntegrationBadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	src := "[AIE_trace_settings]\nhw_generation = aie2\nbroadcast_ids = 14\ntile_based_aie_tile_metrics = 1,9:functions\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	err := lister.Run(lister.Config{SettingsPath: path, OutputWriter: &bytes.Buffer{}})
	if err == nil || !strings.Contains(err.Error(), "broadcast_ids") {
		t.Errorf("error = %v", err)
	}
}
