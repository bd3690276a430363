package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/careermap/pkg/catalog"
	"github.com/matzehuels/careermap/pkg/controller"
	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/progress"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

type fakePDF struct{}

func (fakePDF) RenderPDF(context.Context, []byte) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func newModel(t *testing.T) (Model, *controller.Controller) {
	t.Helper()
	cat := catalog.New(map[string]catalog.RoleData{
		"Data Analyst": {
			Skills:       []string{"Python", "SQL", "Pandas"},
			Dependencies: map[string][]string{"Pandas": {"Python"}},
		},
		"Data Scientist": {Skills: []string{"Python"}},
	}, []catalog.CourseRecord{
		{Skill: "Python", Course: roadmap.Course{Title: "Python Basics", Platform: "Coursera", Link: "https://example.com"}},
	}, nil)
	ctrl := controller.New(cat, progress.NewMemoryStore(), fakePDF{}, nil)
	return New(context.Background(), ctrl, Options{ExportDir: t.TempDir()}), ctrl
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and runs the resulting command once, feeding its message
// back into the model. Batched and periodic commands are not followed.
func press(m Model, msg tea.Msg) Model {
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	if out := cmd(); out != nil {
		if _, batch := out.(tea.BatchMsg); !batch {
			next, _ = m.Update(out)
			m = next.(Model)
		}
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(key(string(r)))
		m = next.(Model)
	}
	return m
}

func TestSubmitRendersGraph(t *testing.T) {
	m, ctrl := newModel(t)
	m = typeText(m, "Data Analyst")
	m = press(m, key("enter"))

	if m.view == nil {
		t.Fatal("no roadmap after submit")
	}
	out := m.View()
	for _, want := range []string{"Skills Graph", "Python", "Pandas", "← Python", controller.MsgGenerated} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if _, ok := ctrl.State.Current(); !ok {
		t.Error("controller state not set")
	}
}

func TestRenderFailureDropsStaleGraph(t *testing.T) {
	m, _ := newModel(t)
	m = typeText(m, "Data Analyst")
	m = press(m, key("enter"))
	m = press(m, key("tab"))
	if m.view == nil || m.focus != focusSkills {
		t.Fatal("setup: expected a drawn roadmap with skills focused")
	}

	next, _ := m.Update(roadmapMsg{err: errors.New(errors.ErrCodeRenderFailed, "layout failed")})
	m = next.(Model)
	if m.view != nil || m.focus != focusInput {
		t.Errorf("view = %v, focus = %d; want the old graph dropped", m.view, m.focus)
	}
}

func TestSubmitEmptyShowsError(t *testing.T) {
	m, _ := newModel(t)
	m = press(m, key("enter"))
	if m.view != nil {
		t.Fatal("empty role produced a roadmap")
	}
	if !strings.Contains(m.View(), controller.MsgEmptyRole) {
		t.Error("missing empty role notification")
	}
}

func TestSuggestionsAndKeyboard(t *testing.T) {
	m, ctrl := newModel(t)
	ctrl.Suggest(context.Background(), "data")

	m = press(m, key("down"))
	m = press(m, key("enter"))
	if got := m.input.Value(); got != "Data Analyst" {
		t.Errorf("input = %q after picking a suggestion", got)
	}
	if ctrl.Suggester.Visible() {
		t.Error("suggestions still visible")
	}
}

func TestTabsAndCourseModal(t *testing.T) {
	m, ctrl := newModel(t)
	m = typeText(m, "Data Analyst")
	m = press(m, key("enter"))
	m = press(m, key("tab"))
	if m.focus != focusSkills {
		t.Fatal("tab did not focus skills")
	}

	m = press(m, key("t"))
	if !strings.Contains(m.View(), "Current Position") {
		t.Error("timeline tab not rendered")
	}
	m = press(m, key("g"))

	// Rows put Python and SQL first; the cursor starts on Python.
	m = press(m, key("enter"))
	if m.focus != focusModal {
		t.Fatal("enter did not open the modal")
	}
	if !strings.Contains(m.View(), "Python Basics") {
		t.Error("modal missing course")
	}
	m = press(m, key("esc"))
	if _, ok := ctrl.Modal.Current(); ok || m.focus != focusSkills {
		t.Error("esc did not close the modal")
	}
}

func TestExportWritesFile(t *testing.T) {
	m, _ := newModel(t)
	m = typeText(m, "Data Analyst")
	m = press(m, key("enter"))
	m = press(m, key("ctrl+e"))

	path := filepath.Join(m.opts.ExportDir, "career-roadmap-data-analyst.pdf")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	if string(data) != "%PDF-fake" {
		t.Errorf("pdf = %q", data)
	}
	if !strings.Contains(m.View(), controller.MsgExported) {
		t.Error("missing export notification")
	}
}

func TestResumePrefillsInput(t *testing.T) {
	m, ctrl := newModel(t)
	if err := ctrl.Progress.Save(context.Background(), roadmap.Progress{
		ID: roadmap.DefaultProgressID, Role: "Nurse", Skills: []string{},
	}); err != nil {
		t.Fatal(err)
	}
	m = press(m, m.resumeCmd()())
	if m.input.Value() != "Nurse" {
		t.Errorf("input = %q", m.input.Value())
	}
	if !strings.Contains(m.View(), `Found saved progress for "Nurse"`) {
		t.Error("missing resume notification")
	}
}
