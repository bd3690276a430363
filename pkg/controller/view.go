package controller

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/matzehuels/careermap/pkg/roadmap"
	"github.com/matzehuels/careermap/pkg/skills"
)

// Tab names a roadmap view.
type Tab string

const (
	TabGraph    Tab = "graph"
	TabTimeline Tab = "timeline"
)

// Tabs tracks the active view. The zero value shows the graph.
type Tabs struct {
	mu     sync.Mutex
	active Tab
}

// Active returns the active tab.
func (t *Tabs) Active() Tab {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == "" {
		return TabGraph
	}
	return t.active
}

// Select activates tab. Unknown tabs are ignored and false is returned.
func (t *Tabs) Select(tab Tab) bool {
	if tab != TabGraph && tab != TabTimeline {
		return false
	}
	t.mu.Lock()
	t.active = tab
	t.mu.Unlock()
	return true
}

// Toggle switches between the two tabs and returns the new one.
func (t *Tabs) Toggle() Tab {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == TabTimeline {
		t.active = TabGraph
	} else {
		t.active = TabTimeline
	}
	return t.active
}

// CourseCard is the view-model for one course in the modal.
type CourseCard struct {
	Title       string
	Platform    string
	Description string
	Link        string
	LinkLabel   string
}

// Modal empty-state text.
const (
	NoCoursesHint  = "Try searching online for free resources."
	SearchLabel    = "Search on Google"
	ViewCourseText = "View Course"
)

// CourseView is what the courses modal shows for one skill.
type CourseView struct {
	Skill string
	Cards []CourseCard

	// Set when Cards is empty.
	EmptyText string
	SearchURL string
}

// Empty reports whether the view shows the empty state.
func (v CourseView) Empty() bool { return len(v.Cards) == 0 }

// NewCourseView builds the modal content for skill from courses.
func NewCourseView(skill string, courses []roadmap.Course) CourseView {
	v := CourseView{Skill: skill}
	if len(courses) == 0 {
		v.EmptyText = `No courses found in our database for "` + skill + `".`
		v.SearchURL = SearchURL(skill)
		return v
	}
	desc := "Learn " + strings.ToLower(skill) +
		" with this comprehensive course designed for beginners and intermediate learners."
	for _, c := range courses {
		v.Cards = append(v.Cards, CourseCard{
			Title:       c.Title,
			Platform:    c.Platform,
			Description: desc,
			Link:        c.Link,
			LinkLabel:   ViewCourseText,
		})
	}
	return v
}

// SearchURL returns the web search used when no course is known for skill.
// The skill is escaped as a URI component: spaces become %20 while the
// literal separators around it stay "+".
func SearchURL(skill string) string {
	return "https://www.google.com/search?q=free+" + componentEscaper.Replace(url.QueryEscape(skill)) + "+course"
}

// componentEscaper undoes the form encoding QueryEscape applies beyond
// what a URI component needs.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Modal holds the courses dialog.
type Modal struct {
	mu   sync.Mutex
	view *CourseView
}

// Open shows v, replacing anything already open.
func (m *Modal) Open(v CourseView) {
	m.mu.Lock()
	m.view = &v
	m.mu.Unlock()
}

// Close hides the modal.
func (m *Modal) Close() {
	m.mu.Lock()
	m.view = nil
	m.mu.Unlock()
}

// Current returns the open view, if any.
func (m *Modal) Current() (CourseView, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.view == nil {
		return CourseView{}, false
	}
	return *m.view, true
}

// NoCoursesText is shown in the skill details when a skill has no courses.
const NoCoursesText = "No courses found in our database for this skill."

// SkillDetails is the side panel for a selected skill.
type SkillDetails struct {
	Skill       string
	Category    string
	Icon        string
	Color       string
	Description string
	Courses     []roadmap.Course
}

// ResourcesHeading returns the heading for the course list.
func (d SkillDetails) ResourcesHeading() string {
	return fmt.Sprintf("Learning Resources (%d)", len(d.Courses))
}

// NewSkillDetails builds the details panel for skill within r.
func NewSkillDetails(r roadmap.Roadmap, skill string) SkillDetails {
	c := skills.Classify(skill)
	return SkillDetails{
		Skill:       skill,
		Category:    c.Name,
		Icon:        c.Icon,
		Color:       c.Color,
		Description: skills.Describe(skill),
		Courses:     r.Courses[skill],
	}
}
