package skills

import "strings"

// SkillGroup is a named bucket of skills produced by [Group].
type SkillGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// OtherSkills is the bucket for skills no keyword list claims.
const OtherSkills = "Other Skills"

var groupKeywords = []struct {
	name     string
	keywords []string
}{
	{"Programming Languages", []string{"Python", "Java", "JavaScript", "C++", "C#", "PHP", "Ruby", "Swift", "Go", "Rust", "TypeScript", "Kotlin", "Objective-C"}},
	{"Web Technologies", []string{"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask", "jQuery"}},
	{"Frameworks & Libraries", []string{"React Native", "Flutter", "TensorFlow", "PyTorch", "Spring", "Laravel", "Rails"}},
	{"Tools & Platforms", []string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Git", "Linux", "Terraform", "Jenkins"}},
	{"Databases", []string{"SQL", "NoSQL", "MongoDB", "PostgreSQL", "MySQL", "Oracle", "Redis", "Firebase"}},
	{"Soft Skills", []string{"Communication", "Problem Solving", "Teamwork", "Leadership", "Time Management", "Project Management", "Agile", "Scrum"}},
}

// Group buckets skills for summaries. Unlike [Classify] it matches loosely:
// a skill joins the first group holding a keyword that contains the skill or
// is contained by it, case-insensitively. Empty groups are omitted and the
// input order is preserved inside each group.
func Group(skills []string) []SkillGroup {
	buckets := make([][]string, len(groupKeywords)+1)
	for _, s := range skills {
		i := groupOf(s)
		buckets[i] = append(buckets[i], s)
	}

	var out []SkillGroup
	for i, b := range buckets {
		if len(b) == 0 {
			continue
		}
		name := OtherSkills
		if i < len(groupKeywords) {
			name = groupKeywords[i].name
		}
		out = append(out, SkillGroup{Name: name, Skills: b})
	}
	return out
}

func groupOf(skill string) int {
	s := strings.ToLower(skill)
	for i, g := range groupKeywords {
		for _, kw := range g.keywords {
			k := strings.ToLower(kw)
			if strings.Contains(s, k) || strings.Contains(k, s) {
				return i
			}
		}
	}
	return len(groupKeywords)
}
