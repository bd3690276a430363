package render

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/matzehuels/careermap/pkg/errors"
)

// fakeTool writes an executable shell script that copies stdin to stdout.
func fakeTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	path := filepath.Join(t.TempDir(), "tool")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHTMLToPDFRunsCommand(t *testing.T) {
	tool := fakeTool(t, "cat")
	out, err := HTMLToPDF(context.Background(), tool, []byte("<p>hi</p>"), PageOptions{})
	if err != nil {
		t.Fatalf("HTMLToPDF() error: %v", err)
	}
	if string(out) != "<p>hi</p>" {
		t.Errorf("output = %q", out)
	}
}

func TestHTMLToPDFCommandFailure(t *testing.T) {
	tool := fakeTool(t, "echo broken >&2; exit 3")
	_, err := HTMLToPDF(context.Background(), tool, []byte("x"), DefaultPageOptions)
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("error = %v, want RENDER_FAILED", err)
	}
}

func TestHTMLToPDFMissingCommand(t *testing.T) {
	_, err := HTMLToPDF(context.Background(), "careermap-no-such-tool", nil, DefaultPageOptions)
	if !errors.Is(err, errors.ErrCodeExportFailed) {
		t.Errorf("error = %v, want EXPORT_FAILED", err)
	}
}
