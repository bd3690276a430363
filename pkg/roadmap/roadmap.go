// Package roadmap defines the career roadmap returned by the roadmap service
// and the small amount of logic that keeps it safe to render.
//
// A [Roadmap] is treated as an immutable value: it is created fresh for every
// generated role and replaced wholesale, never patched in place. [Repair]
// therefore returns a new value instead of modifying its argument.
package roadmap

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/matzehuels/careermap/pkg/errors"
)

// Course is a learning resource attached to a skill.
type Course struct {
	Title    string `json:"course_title"`
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

// Roadmap is the complete plan for one job role.
type Roadmap struct {
	Role         string              `json:"role"`
	Skills       []string            `json:"skills"`
	Dependencies map[string][]string `json:"dependencies"`
	Progression  []string            `json:"progression"`
	Courses      map[string][]Course `json:"courses"`
}

// DefaultProgression is used when a roadmap arrives without progression data.
var DefaultProgression = []string{"Entry Level", "Mid Level", "Senior Level", "Lead Level", "Management"}

// Repair returns a copy of r with missing optional fields replaced by safe
// defaults: an empty dependency map, an empty course map and
// DefaultProgression. Repair never fails; a roadmap without skills is still
// repaired and callers check HasSkills separately.
func Repair(r Roadmap) Roadmap {
	out := r.Clone()
	if out.Dependencies == nil {
		out.Dependencies = map[string][]string{}
	}
	if out.Courses == nil {
		out.Courses = map[string][]Course{}
	}
	if len(out.Progression) == 0 {
		out.Progression = slices.Clone(DefaultProgression)
	}
	return out
}

// HasSkills reports whether the roadmap lists at least one skill.
func (r Roadmap) HasSkills() bool {
	return len(r.Skills) > 0
}

// HasCourses reports whether any skill has at least one course.
func (r Roadmap) HasCourses() bool {
	for _, cs := range r.Courses {
		if len(cs) > 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of r.
func (r Roadmap) Clone() Roadmap {
	out := Roadmap{
		Role:        r.Role,
		Skills:      slices.Clone(r.Skills),
		Progression: slices.Clone(r.Progression),
	}
	if r.Dependencies != nil {
		out.Dependencies = make(map[string][]string, len(r.Dependencies))
		for k, v := range r.Dependencies {
			out.Dependencies[k] = slices.Clone(v)
		}
	}
	if r.Courses != nil {
		out.Courses = make(map[string][]Course, len(r.Courses))
		for k, v := range r.Courses {
			out.Courses[k] = slices.Clone(v)
		}
	}
	return out
}

// DependentSkills returns the keys of the dependency map in sorted order.
// Map iteration order is random, so anything that emits output per
// dependency entry goes through this.
func (r Roadmap) DependentSkills() []string {
	keys := make([]string, 0, len(r.Dependencies))
	for k := range r.Dependencies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dangling lists dependency references, as keys or as prerequisites, to
// skills that do not appear in Skills. The result is sorted and unique.
func (r Roadmap) Dangling() []string {
	known := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		known[s] = true
	}
	seen := map[string]bool{}
	var out []string
	note := func(s string) {
		if !known[s] && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, skill := range r.DependentSkills() {
		note(skill)
		for _, p := range r.Dependencies[skill] {
			note(p)
		}
	}
	sort.Strings(out)
	return out
}

// Validate checks the roadmap's data integrity: the role is present, skills
// are non-empty and unique, and every dependency reference names a listed
// skill. It returns NO_SKILLS or INVALID_ROADMAP errors.
func Validate(r Roadmap) error {
	if strings.TrimSpace(r.Role) == "" {
		return errors.New(errors.ErrCodeInvalidRoadmap, "roadmap has no role")
	}
	if !r.HasSkills() {
		return errors.New(errors.ErrCodeNoSkills, "No skills data found for this role.")
	}
	seen := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		if seen[s] {
			return errors.New(errors.ErrCodeInvalidRoadmap, "duplicate skill %q", s)
		}
		seen[s] = true
	}
	if d := r.Dangling(); len(d) > 0 {
		return errors.New(errors.ErrCodeInvalidRoadmap,
			"dependencies reference unknown skills: %s", strings.Join(d, ", "))
	}
	return nil
}

// Filename returns the PDF file name used when exporting a roadmap for role.
func Filename(role string) string {
	return "career-roadmap-" + Slug(role) + ".pdf"
}

// Slug lowercases role and replaces every whitespace run with a dash.
func Slug(role string) string {
	return strings.ToLower(strings.Join(strings.Fields(role), "-"))
}

// Progress is a saved snapshot of the user's work, offered for resume on the
// next start.
type Progress struct {
	ID        string    `json:"id,omitempty"`
	Role      string    `json:"role"`
	Skills    []string  `json:"skills"`
	Timestamp time.Time `json:"timestamp"`
}

// DefaultProgressID is the key the single saved snapshot is stored under.
const DefaultProgressID = "careerRoadmap"

// Snapshot captures the role and skills of r at time now.
func Snapshot(r Roadmap, now time.Time) Progress {
	return Progress{
		ID:        DefaultProgressID,
		Role:      r.Role,
		Skills:    slices.Clone(r.Skills),
		Timestamp: now.UTC(),
	}
}
