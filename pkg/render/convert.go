package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/matzehuels/careermap/pkg/errors"
)

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale factor.
// Scale of 2.0 produces a 2x resolution image.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeRenderFailed,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}
	args := append([]string{"-f", format}, extraArgs...)
	return run(ctx, "rsvg-convert", args, svg)
}

// PageOptions controls HTML to PDF page setup.
type PageOptions struct {
	MarginMM    int    // uniform page margin in millimetres
	PageSize    string // e.g. "A4"
	Orientation string // "Portrait" or "Landscape"
}

// DefaultPageOptions are 15mm margins on portrait A4.
var DefaultPageOptions = PageOptions{MarginMM: 15, PageSize: "A4", Orientation: "Portrait"}

// HTMLToPDF converts an HTML document to PDF with the given command, which
// must accept wkhtmltopdf's flags. An empty command means "wkhtmltopdf".
func HTMLToPDF(ctx context.Context, command string, html []byte, opts PageOptions) ([]byte, error) {
	if command == "" {
		command = "wkhtmltopdf"
	}
	if _, err := exec.LookPath(command); err != nil {
		return nil, errors.New(errors.ErrCodeExportFailed,
			"PDF export requires %s. Install with:\n  macOS:  brew install wkhtmltopdf\n  Linux:  apt install wkhtmltopdf", command)
	}
	if opts.PageSize == "" {
		opts = DefaultPageOptions
	}
	m := strconv.Itoa(opts.MarginMM) + "mm"
	args := []string{
		"--quiet",
		"--encoding", "utf-8",
		"--page-size", opts.PageSize,
		"--orientation", opts.Orientation,
		"--margin-top", m, "--margin-right", m, "--margin-bottom", m, "--margin-left", m,
		"-", "-",
	}
	return run(ctx, command, args, html)
}

func run(ctx context.Context, name string, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(stdin)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "%s: %s", name, errBuf.String())
	}
	return out.Bytes(), nil
}
