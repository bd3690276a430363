package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/careermap/pkg/controller"
	"github.com/matzehuels/careermap/pkg/graph"
	"github.com/matzehuels/careermap/pkg/timeline"
)

const helpLine = "⏎ generate  ↑/↓ suggestions  tab skills  ctrl+s save  ctrl+e export PDF  esc quit"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(styleTitle.Render("Career Roadmap Generator"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderSuggestions())

	if m.view != nil {
		b.WriteString("\n")
		b.WriteString(m.renderTabs())
		b.WriteString("\n")
		var body string
		if m.ctrl.Tabs.Active() == controller.TabTimeline {
			body = renderTimeline(m.view.Timeline)
		} else {
			body = m.renderGraph()
		}
		if details := m.renderDetails(); details != "" {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", details)
		}
		b.WriteString(body)
		b.WriteString("\n")
	}

	if mv, ok := m.ctrl.Modal.Current(); ok {
		b.WriteString("\n")
		b.WriteString(renderModal(mv))
		b.WriteString("\n")
	}

	if n, ok := m.ctrl.Notifier.Current(); ok {
		b.WriteString("\n")
		st := notificationStyle(n.Kind)
		b.WriteString(st.Render(kindGlyph[n.Kind] + " " + n.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render(helpLine))
	return b.String()
}

func (m Model) renderSuggestions() string {
	s := &m.ctrl.Suggester
	if !s.Visible() {
		return ""
	}
	query := s.Query()
	selected := s.Selected()
	var b strings.Builder
	for i, item := range s.Items() {
		prefix := "  "
		if i == selected {
			prefix = styleSelected.Render("▸ ")
		}
		b.WriteString(prefix)
		for _, seg := range controller.Highlight(item, query) {
			if seg.Match {
				b.WriteString(styleMatch.Render(seg.Text))
			} else {
				b.WriteString(styleValue.Render(seg.Text))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []struct {
		tab   controller.Tab
		label string
	}{
		{controller.TabGraph, "Skills Graph"},
		{controller.TabTimeline, "Career Timeline"},
	}
	active := m.ctrl.Tabs.Active()
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if t.tab == active {
			parts[i] = styleTabActive.Render(t.label)
		} else {
			parts[i] = styleTabInactive.Render(t.label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderGraph() string {
	g := m.view.Graph
	prereqs := map[string][]string{}
	for _, e := range g.Edges {
		prereqs[e.To] = append(prereqs[e.To], e.From)
	}

	var b strings.Builder
	row := -1
	for pos, idx := range m.order {
		n := g.Nodes[idx]
		if n.Row != row {
			row = n.Row
			if pos > 0 {
				b.WriteString("\n")
			}
			b.WriteString(styleDim.Render(fmt.Sprintf("Level %d", row+1)))
			b.WriteString("\n")
		}
		b.WriteString(m.renderNode(n, pos == m.cursor && m.focus != focusInput))
		if p := prereqs[n.ID]; len(p) > 0 {
			b.WriteString(styleDim.Render("  ← " + strings.Join(p, ", ")))
		}
		b.WriteString("\n")
	}
	if len(g.Dangling) > 0 {
		b.WriteString("\n")
		b.WriteString(styleDim.Render("Unlisted prerequisites: " + strings.Join(g.Dangling, ", ")))
		b.WriteString("\n")
	}
	return stylePanel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderNode(n graph.Node, selected bool) string {
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(n.Style.Background))
	prefix := "  "
	if selected {
		prefix = styleSelected.Render("▸ ")
		st = st.Bold(true)
	}
	return prefix + st.Render("■ "+n.Label) + styleDim.Render(" ("+n.Category+")")
}

func renderTimeline(stages []timeline.Stage) string {
	var b strings.Builder
	for i, s := range stages {
		if i > 0 {
			b.WriteString(styleDim.Render("   │"))
			b.WriteString("\n")
		}
		b.WriteString(styleValue.Bold(true).Render(fmt.Sprintf("%d. %s", i+1, s.Role)))
		for _, badge := range s.Badges() {
			b.WriteString(" ")
			b.WriteString(styleBadge.Render("[" + badge + "]"))
		}
		b.WriteString("\n")
		b.WriteString("   " + styleDim.Render(s.Description))
		b.WriteString("\n")
		if len(s.Skills) > 0 {
			b.WriteString("   " + styleDim.Render("Skills: "+strings.Join(s.Skills, ", ")))
			b.WriteString("\n")
		}
	}
	return stylePanel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderDetails() string {
	if m.focus == focusInput {
		return ""
	}
	skill, ok := m.selectedSkill()
	if !ok {
		return ""
	}
	d, ok := m.ctrl.Details(skill)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(d.Skill))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Render(d.Category))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(40).Render(d.Description))
	b.WriteString("\n\n")
	b.WriteString(styleValue.Bold(true).Render(d.ResourcesHeading()))
	b.WriteString("\n")
	if len(d.Courses) == 0 {
		b.WriteString(styleDim.Render(controller.NoCoursesText))
	}
	for _, c := range d.Courses {
		b.WriteString("• " + c.Title + styleDim.Render(" ("+c.Platform+")"))
		b.WriteString("\n")
	}
	return stylePanel.Render(strings.TrimRight(b.String(), "\n"))
}

func renderModal(v controller.CourseView) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Learning Resources: " + v.Skill))
	b.WriteString("\n\n")
	if v.Empty() {
		b.WriteString(v.EmptyText)
		b.WriteString("\n")
		b.WriteString(styleDim.Render(controller.NoCoursesHint))
		b.WriteString("\n")
		b.WriteString(controller.SearchLabel + ": " + styleLink.Render(v.SearchURL))
	}
	for i, c := range v.Cards {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(styleValue.Bold(true).Render(c.Title))
		b.WriteString(styleDim.Render("  " + c.Platform))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(60).Render(c.Description))
		b.WriteString("\n")
		b.WriteString(c.LinkLabel + ": " + styleLink.Render(c.Link))
	}
	return styleModal.Render(b.String())
}
