// Package tui is the interactive terminal front-end. It renders the state
// held by a controller.Controller and forwards key presses to it.
package tui

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/careermap/pkg/controller"
	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

type focus int

const (
	focusInput focus = iota
	focusSkills
	focusModal
)

// Messages produced by commands.
type (
	suggestionsMsg struct{}
	roadmapMsg     struct {
		view *controller.View
		err  error
	}
	exportMsg struct {
		path string
		err  error
	}
	resumeMsg struct{ progress *roadmap.Progress }
	savedMsg  struct{ err error }
	tickMsg   time.Time
)

// Options configure the model.
type Options struct {
	// ExportDir receives exported PDFs. Empty means the current directory.
	ExportDir string
	// Role prefills the input.
	Role string
}

// Model is the bubbletea model.
type Model struct {
	ctx  context.Context
	ctrl *controller.Controller
	opts Options

	input  textinput.Model
	focus  focus
	view   *controller.View
	order  []int // node indices in display order
	cursor int

	width, height int
	quitting      bool
}

// New returns a model driving ctrl.
func New(ctx context.Context, ctrl *controller.Controller, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a job role, e.g. Data Analyst"
	ti.CharLimit = errors.MaxRoleLength
	ti.Width = 50
	ti.SetValue(opts.Role)
	ti.Focus()

	return Model{
		ctx:   ctx,
		ctrl:  ctrl,
		opts:  opts,
		input: ti,
		focus: focusInput,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.resumeCmd(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) suggestCmd(query string) tea.Cmd {
	return func() tea.Msg {
		m.ctrl.Suggest(m.ctx, query)
		return suggestionsMsg{}
	}
}

func (m Model) submitCmd(role string) tea.Cmd {
	return func() tea.Msg {
		v, err := m.ctrl.Submit(m.ctx, role)
		return roadmapMsg{view: v, err: err}
	}
}

func (m Model) resumeCmd() tea.Cmd {
	return func() tea.Msg {
		p, _ := m.ctrl.Resume(m.ctx)
		return resumeMsg{progress: p}
	}
}

func (m Model) saveCmd() tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: m.ctrl.Save(m.ctx)}
	}
}

func (m Model) exportCmd() tea.Cmd {
	dir := m.opts.ExportDir
	return func() tea.Msg {
		name, data, err := m.ctrl.Export(m.ctx)
		if err != nil {
			return exportMsg{err: err}
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			m.ctrl.Notifier.Show(controller.KindError, controller.MsgExportFailed)
			return exportMsg{err: err}
		}
		return exportMsg{path: path}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		return m, tick()
	case suggestionsMsg, savedMsg, exportMsg:
		return m, nil
	case resumeMsg:
		if msg.progress != nil && m.input.Value() == "" {
			m.input.SetValue(msg.progress.Role)
			m.input.CursorEnd()
		}
		return m, nil
	case roadmapMsg:
		switch {
		case msg.err == nil && msg.view != nil:
			m.setView(msg.view)
		case errors.Is(msg.err, errors.ErrCodeRenderFailed):
			// The new roadmap is current but could not be drawn; the old
			// drawing no longer matches it.
			m.view, m.order, m.cursor = nil, nil, 0
			m.focus = focusInput
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setView(v *controller.View) {
	m.view = v
	m.order = make([]int, len(v.Graph.Nodes))
	for i := range m.order {
		m.order[i] = i
	}
	sort.SliceStable(m.order, func(a, b int) bool {
		return v.Graph.Nodes[m.order[a]].Row < v.Graph.Nodes[m.order[b]].Row
	})
	m.cursor = 0
}

func (m Model) selectedSkill() (string, bool) {
	if m.view == nil || m.cursor < 0 || m.cursor >= len(m.order) {
		return "", false
	}
	return m.view.Graph.Nodes[m.order[m.cursor]].ID, true
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		return m, m.saveCmd()
	case "ctrl+e":
		return m, m.exportCmd()
	}

	switch m.focus {
	case focusModal:
		return m.handleModalKey(msg)
	case focusSkills:
		return m.handleSkillsKey(msg)
	default:
		return m.handleInputKey(msg)
	}
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.ctrl.Suggester
	switch msg.String() {
	case "down":
		s.Down()
		return m, nil
	case "up":
		s.Up()
		return m, nil
	case "esc":
		if s.Visible() {
			s.Escape()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if item, ok := s.Enter(); ok {
			m.input.SetValue(item)
			m.input.CursorEnd()
			return m, nil
		}
		return m, m.submitCmd(m.input.Value())
	case "tab":
		if m.view != nil {
			s.Escape()
			m.focus = focusSkills
			m.input.Blur()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return m, tea.Batch(cmd, m.suggestCmd(after))
	}
	return m, cmd
}

func (m Model) handleSkillsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "/":
		m.focus = focusInput
		return m, m.input.Focus()
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.order)-1 {
			m.cursor++
		}
	case "g":
		m.ctrl.Tabs.Select(controller.TabGraph)
	case "t":
		m.ctrl.Tabs.Select(controller.TabTimeline)
	case "left", "right", "h", "l":
		m.ctrl.Tabs.Toggle()
	case "enter", "c":
		if skill, ok := m.selectedSkill(); ok {
			m.ctrl.ShowCourses(skill)
			m.focus = focusModal
		}
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.ctrl.Modal.Close()
		m.focus = focusSkills
	}
	return m, nil
}

// Run starts the interactive program and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, ctrl *controller.Controller, opts Options) error {
	p := tea.NewProgram(New(ctx, ctrl, opts), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
