package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/careermap/pkg/pipeline"
	"github.com/matzehuels/careermap/pkg/progress"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

// testEnv writes a config that keeps every file under a temp dir.
func testEnv(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "config.toml")
	body := `
[cache]
dir = "` + filepath.ToSlash(filepath.Join(dir, "cache")) + `"

[progress]
dir = "` + filepath.ToSlash(filepath.Join(dir, "progress")) + `"

[export]
dir = "` + filepath.ToSlash(dir) + `"
`
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir, cfgPath
}

func execute(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandTree(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	want := []string{"serve", "suggest", "roadmap", "export", "tui", "progress", "cache", "config", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	_, cfg := testEnv(t)
	out, err := execute(t, cfg, "suggest", "data")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.Contains(out, "Analyst") {
		t.Errorf("output = %q", out)
	}
}

func TestRoadmapCommandWritesFormats(t *testing.T) {
	dir, cfg := testEnv(t)
	base := filepath.Join(dir, "out", "analyst")

	out, err := execute(t, cfg, "roadmap", "Data", "Analyst", "-f", "json,dot", "-o", base)
	if err != nil {
		t.Fatalf("roadmap: %v", err)
	}
	if !strings.Contains(out, "Data Analyst") {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	var b pipeline.Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if len(b.Roadmap.Skills) == 0 || len(b.Graph.Nodes) != len(b.Roadmap.Skills) {
		t.Errorf("bundle = %d skills, %d nodes", len(b.Roadmap.Skills), len(b.Graph.Nodes))
	}
	if dot, err := os.ReadFile(base + ".dot"); err != nil || !strings.Contains(string(dot), "digraph") {
		t.Errorf("dot = %q, %v", dot, err)
	}

	// The second run is served from the file cache.
	out, err = execute(t, cfg, "roadmap", "Data Analyst", "-o", filepath.Join(dir, "again.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "cached") {
		t.Errorf("second run not cached: %q", out)
	}
}

func TestRoadmapCommandRejectsFormat(t *testing.T) {
	_, cfg := testEnv(t)
	if _, err := execute(t, cfg, "roadmap", "Nurse", "-f", "bmp"); err == nil {
		t.Fatal("expected format error")
	}
}

func TestExportHTML(t *testing.T) {
	dir, cfg := testEnv(t)
	if _, err := execute(t, cfg, "export", "Data Analyst", "--html"); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "career-roadmap-data-analyst.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Required Skills") {
		t.Error("html missing skills section")
	}
}

func TestProgressShowAndClear(t *testing.T) {
	dir, cfg := testEnv(t)

	out, err := execute(t, cfg, "progress", "show")
	if err != nil || !strings.Contains(out, "No saved progress") {
		t.Fatalf("show empty = %q, %v", out, err)
	}

	store, err := progress.NewFileStore(filepath.Join(dir, "progress"))
	if err != nil {
		t.Fatal(err)
	}
	snap := roadmap.Progress{ID: roadmap.DefaultProgressID, Role: "Nurse", Skills: []string{"Patient Care"}}
	if err := store.Save(context.Background(), snap); err != nil {
		t.Fatal(err)
	}

	out, err = execute(t, cfg, "progress", "show")
	if err != nil || !strings.Contains(out, "Nurse") || !strings.Contains(out, "Patient Care") {
		t.Fatalf("show = %q, %v", out, err)
	}

	if _, err := execute(t, cfg, "progress", "clear"); err != nil {
		t.Fatal(err)
	}
	if p, _ := store.Load(context.Background(), roadmap.DefaultProgressID); p != nil {
		t.Error("snapshot not deleted")
	}
}

func TestCachePathAndClear(t *testing.T) {
	dir, cfg := testEnv(t)
	out, err := execute(t, cfg, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != filepath.Join(dir, "cache") {
		t.Errorf("cache path = %q", out)
	}
	if _, err := execute(t, cfg, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	_, cfg := testEnv(t)
	out, err := execute(t, cfg, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "[server]") || !strings.Contains(out, "wkhtmltopdf") {
		t.Errorf("config = %q", out)
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != pipeline.FormatJSON {
		t.Errorf("default = %v", got)
	}
	if got := parseFormats("svg, html,,pdf"); strings.Join(got, ",") != "svg,html,pdf" {
		t.Errorf("parsed = %v", got)
	}
}
