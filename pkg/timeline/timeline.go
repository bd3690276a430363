// Package timeline annotates a career progression for display.
//
// Every stage gets badges, a description, a short list of representative
// skills and an icon. The second entry of a progression is always treated as
// the user's current position, whatever the list length.
package timeline

import (
	"fmt"
	"slices"
	"strings"
)

// Badge names.
const (
	BadgeStart   = "Starting Point"
	BadgeCurrent = "Current Position"
	BadgeGoal    = "Goal Position"
)

// Icon identifiers.
const (
	IconTie       = "fa-user-tie"
	IconStar      = "fa-star"
	IconSeedling  = "fa-seedling"
	IconBriefcase = "fa-briefcase"
)

// Stage is the view-model for one progression entry.
type Stage struct {
	Index       int      `json:"index"`
	Role        string   `json:"role"`
	IsStart     bool     `json:"is_start"`
	IsCurrent   bool     `json:"is_current"`
	IsGoal      bool     `json:"is_goal"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Icon        string   `json:"icon"`
}

// Badges returns the stage's badges in display order: start, goal, then
// current.
func (s Stage) Badges() []string {
	var out []string
	if s.IsStart {
		out = append(out, BadgeStart)
	}
	if s.IsGoal {
		out = append(out, BadgeGoal)
	}
	if s.IsCurrent {
		out = append(out, BadgeCurrent)
	}
	return out
}

// Build annotates progression. An empty progression yields an empty
// timeline.
func Build(progression []string) []Stage {
	stages := make([]Stage, len(progression))
	last := len(progression) - 1
	for i, role := range progression {
		stages[i] = Stage{
			Index:       i,
			Role:        role,
			IsStart:     i == 0,
			IsCurrent:   i == 1,
			IsGoal:      i == last,
			Description: Describe(role),
			Skills:      Skills(role),
			Icon:        Icon(role),
		}
	}
	return stages
}

var iconRules = []struct {
	needles []string
	icon    string
}{
	{[]string{"manager", "director"}, IconTie},
	{[]string{"senior"}, IconStar},
	{[]string{"junior"}, IconSeedling},
}

// Icon picks the icon for a stage by substring match on its lowercased
// name. The first matching rule wins.
func Icon(role string) string {
	r := strings.ToLower(role)
	for _, rule := range iconRules {
		for _, n := range rule.needles {
			if strings.Contains(r, n) {
				return rule.icon
			}
		}
	}
	return IconBriefcase
}

var descriptions = map[string]string{
	"Junior Data Analyst":  "Entry-level position focusing on data collection, cleaning, and basic analysis.",
	"Data Analyst":         "Mid-level position responsible for interpreting data and providing insights to drive business decisions.",
	"Senior Data Analyst":  "Experienced position leading complex analysis projects and mentoring junior analysts.",
	"Data Scientist":       "Advanced role involving statistical analysis, machine learning, and predictive modeling.",
	"Data Science Manager": "Leadership position overseeing data science teams and strategic initiatives.",
	"Junior Web Developer": "Entry-level position focusing on website development and maintenance.",
	"Web Developer":        "Mid-level position responsible for building and maintaining websites and web applications.",
	"Senior Web Developer": "Experienced position leading development projects and mentoring junior developers.",
	"Full Stack Developer": "Role involving both front-end and back-end development.",
	"Lead Developer":       "Leadership position overseeing development teams and technical strategy.",
	"UX Designer":          "Professional focused on enhancing user satisfaction by improving the usability and accessibility of products.",
	"Product Manager":      "Professional who leads the development of products from conception to launch.",
	"DevOps Engineer":      "Professional who combines software development and IT operations to shorten the development lifecycle.",
}

// Describe returns the description of a stage. Lookup is by exact name.
func Describe(role string) string {
	if d, ok := descriptions[role]; ok {
		return d
	}
	return fmt.Sprintf("A professional position in your career path focusing on %s responsibilities and growth opportunities.",
		strings.ToLower(role))
}

var roleSkills = map[string][]string{
	"Junior Data Analyst":  {"Excel", "SQL", "Basic Statistics"},
	"Data Analyst":         {"SQL", "Python", "Data Visualization", "Statistics"},
	"Senior Data Analyst":  {"Advanced SQL", "Python", "Machine Learning", "Communication"},
	"Data Scientist":       {"Python", "Machine Learning", "Statistics", "Big Data"},
	"Data Science Manager": {"Leadership", "Strategy", "Communication", "Team Management"},
	"Junior Web Developer": {"HTML", "CSS", "JavaScript"},
	"Web Developer":        {"HTML", "CSS", "JavaScript", "Frameworks"},
	"Senior Web Developer": {"JavaScript", "Architecture", "Best Practices", "Mentoring"},
	"Full Stack Developer": {"Frontend", "Backend", "Databases", "DevOps"},
	"Lead Developer":       {"Architecture", "Leadership", "Strategy", "Mentoring"},
	"UX Designer":          {"User Research", "Wireframing", "Prototyping", "Usability Testing"},
	"Product Manager":      {"Strategy", "Market Research", "Communication", "Leadership"},
	"DevOps Engineer":      {"Linux", "Cloud", "CI/CD", "Automation"},
}

var genericSkills = []string{"Technical Skills", "Soft Skills", "Domain Knowledge"}

// Skills returns representative skills for a stage. The result is a copy.
func Skills(role string) []string {
	if s, ok := roleSkills[role]; ok {
		return slices.Clone(s)
	}
	return slices.Clone(genericSkills)
}
