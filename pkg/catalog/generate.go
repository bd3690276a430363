package catalog

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

// Lookup finds the curated record for role: an exact match on the
// normalized name first, then the first record whose normalized name
// contains the query or is contained by it.
func (c *Catalog) Lookup(roleName string) (string, RoleData, bool) {
	q := NormalizeRole(roleName)
	if q == "" {
		return "", RoleData{}, false
	}
	for _, r := range c.roles {
		if r.normalized == q {
			return r.name, r.data, true
		}
	}
	for _, r := range c.roles {
		if strings.Contains(r.normalized, q) || strings.Contains(q, r.normalized) {
			return r.name, r.data, true
		}
	}
	return "", RoleData{}, false
}

// Generate builds the roadmap for a job role.
//
// The role is trimmed and validated. Curated data is used when Lookup finds
// a record with skills; otherwise the roadmap is extracted from the title.
// Missing prerequisites become an empty map, a missing progression becomes
// the five-step ladder for the role, and every skill gets its list of
// matching courses (possibly empty).
func (c *Catalog) Generate(ctx context.Context, roleName string) (roadmap.Roadmap, error) {
	roleName = strings.TrimSpace(roleName)
	if err := errors.ValidateRole(roleName); err != nil {
		return roadmap.Roadmap{}, err
	}
	if err := ctx.Err(); err != nil {
		return roadmap.Roadmap{}, err
	}

	matched, data, ok := c.Lookup(roleName)
	switch {
	case ok && len(data.Skills) > 0:
		c.logger.Debug("using curated role data", "role", roleName, "record", matched)
	case ok:
		c.logger.Debug("curated record has no skills, extracting", "role", roleName, "record", matched)
		data = Extract(roleName)
	default:
		c.logger.Debug("extracting skills from title", "role", roleName)
		data = Extract(roleName)
	}

	if len(data.Skills) == 0 {
		return roadmap.Roadmap{}, errors.New(errors.ErrCodeNoSkills, "No skills found for this role")
	}

	r := roadmap.Roadmap{
		Role:         roleName,
		Skills:       slices.Clone(data.Skills),
		Dependencies: map[string][]string{},
		Progression:  slices.Clone(data.Progression),
		Courses:      make(map[string][]roadmap.Course, len(data.Skills)),
	}
	for k, v := range data.Dependencies {
		r.Dependencies[k] = slices.Clone(v)
	}
	if len(r.Progression) == 0 {
		r.Progression = []string{
			"Junior " + roleName,
			roleName,
			"Senior " + roleName,
			"Lead " + roleName,
			"Manager/Director",
		}
	}
	for _, s := range r.Skills {
		if s != "" {
			r.Courses[s] = c.CoursesFor(s)
		}
	}
	return r, nil
}
