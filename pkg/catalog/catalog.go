package catalog

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

//go:embed data/job_skills.json data/courses.csv
var embedded embed.FS

// RoleData is one curated role record.
type RoleData struct {
	Skills       []string            `json:"skills"`
	Dependencies map[string][]string `json:"dependencies,omitempty"`
	Progression  []string            `json:"progression,omitempty"`
}

// CourseRecord is one row of the course list.
type CourseRecord struct {
	Skill string
	roadmap.Course
}

type role struct {
	name       string
	normalized string
	data       RoleData
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	roles   []role
	courses []CourseRecord
	logger  *log.Logger
}

// New builds a catalog from role records and courses. Roles are kept in
// name order so that partial matches resolve the same way every run.
func New(roles map[string]RoleData, courses []CourseRecord, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Catalog{courses: courses, logger: logger}
	for name, data := range roles {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c.roles = append(c.roles, role{name: name, normalized: NormalizeRole(name), data: data})
	}
	sort.Slice(c.roles, func(i, j int) bool { return c.roles[i].name < c.roles[j].name })
	return c
}

// Default returns the catalog built from the embedded data set.
func Default(logger *log.Logger) (*Catalog, error) {
	return Load("", "", logger)
}

// Load reads role records (JSON object keyed by role) and courses (CSV with
// skill, course_title, platform and link columns). An empty path selects the
// embedded file.
func Load(rolesPath, coursesPath string, logger *log.Logger) (*Catalog, error) {
	rolesRaw, err := readData(rolesPath, "data/job_skills.json")
	if err != nil {
		return nil, err
	}
	coursesRaw, err := readData(coursesPath, "data/courses.csv")
	if err != nil {
		return nil, err
	}

	var roles map[string]RoleData
	if err := json.Unmarshal(rolesRaw, &roles); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse job skills data")
	}
	courses, err := ParseCourses(bytes.NewReader(coursesRaw))
	if err != nil {
		return nil, err
	}

	c := New(roles, courses, logger)
	c.logger.Debug("catalog loaded", "roles", len(c.roles), "courses", len(c.courses))
	return c, nil
}

func readData(path, fallback string) ([]byte, error) {
	if path == "" {
		return embedded.ReadFile(fallback)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read %s", path)
	}
	return data, nil
}

// ParseCourses reads the course CSV. Rows missing a skill, title or platform
// are skipped; the link column is optional.
func ParseCourses(r io.Reader) ([]CourseRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read course header")
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, k := range []string{"skill", "course_title", "platform"} {
		if _, ok := col[k]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "course data missing %q column", k)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []CourseRecord
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read course row")
		}
		c := CourseRecord{
			Skill: field(rec, "skill"),
			Course: roadmap.Course{
				Title:    field(rec, "course_title"),
				Platform: field(rec, "platform"),
				Link:     field(rec, "link"),
			},
		}
		if c.Skill == "" || c.Title == "" || c.Platform == "" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Roles returns the curated role names in sorted order.
func (c *Catalog) Roles() []string {
	out := make([]string, len(c.roles))
	for i, r := range c.roles {
		out[i] = r.name
	}
	return out
}

// CoursesFor returns the courses whose skill contains skill or is contained
// by it, case-insensitively, in list order. The result is never nil.
func (c *Catalog) CoursesFor(skill string) []roadmap.Course {
	out := []roadmap.Course{}
	s := strings.ToLower(skill)
	if s == "" {
		return out
	}
	for _, rec := range c.courses {
		cs := strings.ToLower(rec.Skill)
		if strings.Contains(cs, s) || strings.Contains(s, cs) {
			out = append(out, rec.Course)
		}
	}
	return out
}
