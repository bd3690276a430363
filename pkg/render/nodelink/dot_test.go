package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/careermap/pkg/graph"
)

func TestToDOT_Basic(t *testing.T) {
	g := graph.Build([]string{"Python", "SQL"}, map[string][]string{"SQL": {"Python"}})

	dot := ToDOT(g, Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"Python" [label="Python", fillcolor="#3498db", color="#0165a8"`) {
		t.Errorf("ToDOT() output missing styled Python node:\n%s", dot)
	}
	if !strings.Contains(dot, `"Python" -> "SQL";`) {
		t.Error("ToDOT() output missing edge")
	}
	if !strings.Contains(dot, `edge [color="#adb5bd", penwidth=3, arrowsize=1.2]`) {
		t.Error("ToDOT() output missing edge defaults")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	g := graph.Build([]string{"Docker"}, nil)

	dot := ToDOT(g, Options{Detailed: true, Title: "DevOps Engineer"})

	if !strings.Contains(dot, `Cloud & DevOps · level 2`) {
		t.Errorf("ToDOT() detailed output missing category:\n%s", dot)
	}
	if !strings.Contains(dot, `label="DevOps Engineer"`) {
		t.Error("ToDOT() output missing title")
	}
}

func TestToDOT_Dangling(t *testing.T) {
	g := graph.Build([]string{"SQL"}, map[string][]string{"SQL": {"Excel"}})

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, `"Excel" [label="Excel", style="rounded,filled,dashed"`) {
		t.Errorf("ToDOT() output missing placeholder:\n%s", dot)
	}
	if !strings.Contains(dot, `"Excel" -> "SQL";`) {
		t.Error("ToDOT() output missing dangling edge")
	}
}

func TestToDOT_QuotesNames(t *testing.T) {
	g := graph.Build([]string{`C "sharp"`}, nil)
	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `"C \"sharp\""`) {
		t.Errorf("ToDOT() did not escape quotes:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() changed svg without viewBox")
	}
}
