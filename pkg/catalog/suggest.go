package catalog

import "strings"

// MaxSuggestions is the default number of suggestions returned.
const MaxSuggestions = 10

// commonRoles are offered even when no curated record exists.
var commonRoles = []string{
	"Software Engineer", "Frontend Developer", "Backend Developer",
	"Full Stack Developer", "Fullstack Developer", "Mobile Developer", "Data Engineer",
	"Machine Learning Engineer", "Business Analyst", "Product Manager",
	"Project Manager", "Marketing Manager", "UX Designer",
	"DevOps Engineer", "Cloud Engineer", "Security Analyst",
	"Database Administrator", "Network Engineer", "Game Developer",
	"AI Engineer", "Blockchain Developer", "IoT Developer",
	"QA Engineer", "Systems Administrator", "Technical Writer",
	"Data Scientist", "Data Analyst", "UI Designer",
	"Graphic Designer", "Product Designer", "Research Scientist",
	"MLOps Engineer", "Solutions Architect", "Scrum Master",
	"BI Developer", "Data Visualization Specialist", "HR Manager",
	"Financial Analyst", "Content Manager", "Sales Manager",
	"Cybersecurity Analyst", "DevRel Engineer",
}

// Suggest returns up to limit role names matching query, best first.
//
// Candidates are the curated roles followed by a list of common roles. A
// candidate matches when the normalized query is a substring of its
// normalized name. Exact matches rank first, then prefix matches, then the
// rest; ties keep candidate order. An empty query returns an empty list,
// and limit <= 0 means MaxSuggestions.
func (c *Catalog) Suggest(query string, limit int) []string {
	if limit <= 0 {
		limit = MaxSuggestions
	}
	q := NormalizeRole(query)
	if q == "" {
		return []string{}
	}

	var exact, prefix, contains []string
	seen := map[string]bool{}
	consider := func(name, normalized string) {
		if seen[name] || !strings.Contains(normalized, q) {
			return
		}
		seen[name] = true
		switch {
		case normalized == q:
			exact = append(exact, name)
		case strings.HasPrefix(normalized, q):
			prefix = append(prefix, name)
		default:
			contains = append(contains, name)
		}
	}
	for _, r := range c.roles {
		consider(r.name, r.normalized)
	}
	for _, name := range commonRoles {
		consider(name, NormalizeRole(name))
	}

	out := append(append(exact, prefix...), contains...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
