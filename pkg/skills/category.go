package skills

// Category is one of the ten fixed skill categories.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Level int    `json:"level"`
}

// Category names.
const (
	Programming    = "Programming"
	WebDevelopment = "Web Development"
	DataScience    = "Data Science"
	Database       = "Database"
	CloudDevOps    = "Cloud & DevOps"
	Design         = "Design"
	Management     = "Management"
	Marketing      = "Marketing"
	Security       = "Security"
	Common         = "Common"
)

type membership struct {
	category Category
	members  []string
}

// table lists the categories in classification priority order. Common is
// kept separately because it has no members.
var table = []membership{
	{Category{Programming, "#3498db", "fa-code", 1}, []string{
		"Python", "Java", "JavaScript", "C++", "C#", "PHP", "Ruby", "Swift", "Go", "Rust", "TypeScript",
	}},
	{Category{WebDevelopment, "#2ecc71", "fa-globe", 1}, []string{
		"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask",
	}},
	{Category{DataScience, "#9b59b6", "fa-chart-bar", 1}, []string{
		"SQL", "R", "Excel", "Tableau", "Power BI", "Statistics", "Machine Learning", "Deep Learning",
	}},
	{Category{Database, "#e67e22", "fa-database", 2}, []string{
		"MongoDB", "PostgreSQL", "MySQL", "Oracle", "NoSQL", "Redis",
	}},
	{Category{CloudDevOps, "#1abc9c", "fa-cloud", 2}, []string{
		"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "CI/CD", "Linux", "Terraform",
	}},
	{Category{Design, "#e74c3c", "fa-paint-brush", 1}, []string{
		"Figma", "Adobe XD", "Sketch", "Photoshop", "Illustrator", "UI Design", "UX Design",
	}},
	{Category{Management, "#f39c12", "fa-users", 3}, []string{
		"Leadership", "Project Management", "Agile", "Scrum", "Team Management",
	}},
	{Category{Marketing, "#d35400", "fa-bullhorn", 1}, []string{
		"SEO", "SEM", "Google Analytics", "Content Marketing", "Social Media Marketing",
	}},
	{Category{Security, "#34495e", "fa-shield-alt", 2}, []string{
		"Network Security", "Cryptography", "Ethical Hacking", "Penetration Testing",
	}},
}

var common = Category{Common, "#95a5a6", "fa-star", 0}

// index maps an exact skill name to its category. Built once from table;
// a skill listed twice keeps the higher-priority category.
var index = func() map[string]Category {
	m := make(map[string]Category)
	for _, t := range table {
		for _, s := range t.members {
			if _, ok := m[s]; !ok {
				m[s] = t.category
			}
		}
	}
	return m
}()

// Classify returns the category for skill. Matching is exact and case
// sensitive. Unknown skills map to the Common category.
func Classify(skill string) Category {
	if c, ok := index[skill]; ok {
		return c
	}
	return common
}

// Categories returns all ten categories, Common last. The returned slice is
// a copy.
func Categories() []Category {
	out := make([]Category, 0, len(table)+1)
	for _, t := range table {
		out = append(out, t.category)
	}
	return append(out, common)
}

// Lookup returns the category with the given name.
func Lookup(name string) (Category, bool) {
	for _, c := range Categories() {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Members returns the membership list of the named category in priority
// order. Common and unknown names have no members.
func Members(name string) []string {
	for _, t := range table {
		if t.category.Name == name {
			return append([]string(nil), t.members...)
		}
	}
	return nil
}
