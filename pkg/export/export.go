// Package export produces the printable summary of a roadmap.
//
// [Build] shapes a roadmap into a [Document] view-model and [Render] turns
// the document into standalone HTML with inline styles, so any HTML to PDF
// converter produces the same page. The only non-deterministic input is the
// generation time, which callers pass in.
package export

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/matzehuels/careermap/pkg/render"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

// Placeholder and heading text.
const (
	Subtitle          = "Your personalized career development plan"
	UnknownRole       = "Unknown Role"
	NoSkills          = "No skills data available."
	NoProgression     = "No career progression data available."
	DefaultCourseName = "Course Title"
	DefaultPlatform   = "Platform"
	GenericStage      = "Professional development stage in your career journey"
)

// MaxCoursesPerSkill caps the courses listed per skill.
const MaxCoursesPerSkill = 3

var stageDescriptions = []string{
	"Entry-level position focusing on learning fundamentals and gaining experience",
	"Intermediate level with some experience and growing expertise",
	"Advanced level with deep expertise and mentoring responsibilities",
	"Leadership role with technical and people management duties",
	"Strategic role overseeing teams and setting technical direction",
}

// StageDescription returns the positional description for the i-th stage.
func StageDescription(i int) string {
	if i >= 0 && i < len(stageDescriptions) {
		return stageDescriptions[i]
	}
	return GenericStage
}

// Document is the export view-model.
type Document struct {
	Title       string
	Subtitle    string
	Skills      []SkillEntry
	Stages      []StageEntry
	Courses     []CourseGroup
	GeneratedAt time.Time
}

// SkillEntry is one numbered skill.
type SkillEntry struct {
	Number        int
	Name          string
	Prerequisites []string
}

// StageEntry is one numbered progression stage.
type StageEntry struct {
	Number      int
	Name        string
	Description string
}

// CourseGroup lists up to MaxCoursesPerSkill courses for one skill.
type CourseGroup struct {
	Skill   string
	Courses []CourseLine
}

// CourseLine is a course reduced to what the page prints.
type CourseLine struct {
	Title    string
	Platform string
}

// Build shapes r into a document generated at now.
//
// Course groups follow the skill list order, then any other course keys in
// sorted order; skills without courses are left out, and when no skill has
// courses the Courses slice is empty.
func Build(r roadmap.Roadmap, now time.Time) Document {
	doc := Document{
		Title:       "Career Path: " + r.Role,
		Subtitle:    Subtitle,
		GeneratedAt: now,
	}
	if r.Role == "" {
		doc.Title = "Career Path: " + UnknownRole
	}

	for i, s := range r.Skills {
		doc.Skills = append(doc.Skills, SkillEntry{
			Number:        i + 1,
			Name:          s,
			Prerequisites: slices.Clone(r.Dependencies[s]),
		})
	}

	for i, s := range r.Progression {
		doc.Stages = append(doc.Stages, StageEntry{
			Number:      i + 1,
			Name:        s,
			Description: StageDescription(i),
		})
	}

	for _, skill := range courseOrder(r) {
		cs := r.Courses[skill]
		if len(cs) == 0 {
			continue
		}
		g := CourseGroup{Skill: skill}
		for _, c := range cs[:min(len(cs), MaxCoursesPerSkill)] {
			line := CourseLine{Title: c.Title, Platform: c.Platform}
			if line.Title == "" {
				line.Title = DefaultCourseName
			}
			if line.Platform == "" {
				line.Platform = DefaultPlatform
			}
			g.Courses = append(g.Courses, line)
		}
		doc.Courses = append(doc.Courses, g)
	}
	return doc
}

func courseOrder(r roadmap.Roadmap) []string {
	seen := make(map[string]bool, len(r.Courses))
	var order []string
	for _, s := range r.Skills {
		if _, ok := r.Courses[s]; ok && !seen[s] {
			seen[s] = true
			order = append(order, s)
		}
	}
	var rest []string
	for k := range r.Courses {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// PDFRenderer converts an HTML document to PDF.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}

// CommandRenderer renders PDFs with an external wkhtmltopdf-compatible
// command.
type CommandRenderer struct {
	Command string
	Page    render.PageOptions
}

// RenderPDF implements PDFRenderer.
func (c CommandRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	return render.HTMLToPDF(ctx, c.Command, html, c.Page)
}

// PDF builds, renders and converts r in one step and returns the file name
// the result should be saved under.
func PDF(ctx context.Context, pdf PDFRenderer, r roadmap.Roadmap, now time.Time) (string, []byte, error) {
	html, err := Render(Build(r, now))
	if err != nil {
		return "", nil, err
	}
	out, err := pdf.RenderPDF(ctx, html)
	if err != nil {
		return "", nil, err
	}
	return roadmap.Filename(r.Role), out, nil
}
