package catalog

import (
	"slices"
	"sort"
	"strings"
)

type skillCategory struct {
	name     string
	keywords []string
	skills   []string
	prereqs  []string
}

// extractCategories drives keyword extraction. Order matters: a skill that
// appears in several categories takes its prerequisites from the first.
var extractCategories = []skillCategory{
	{"Programming",
		[]string{"programming", "developer", "engineer", "software", "coding"},
		[]string{"Python", "Java", "JavaScript", "C++", "C#", "PHP", "Ruby", "Swift", "Go", "Rust", "TypeScript"},
		[]string{"Communication", "Problem Solving"}},
	{"Web Development",
		[]string{"web", "frontend", "backend", "fullstack", "full stack"},
		[]string{"HTML", "CSS", "JavaScript", "React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask"},
		[]string{"Programming", "Communication"}},
	{"Data Science",
		[]string{"data", "analytics", "analyst", "scientist", "machine learning", "ai"},
		[]string{"SQL", "Python", "R", "Excel", "Tableau", "Power BI", "Statistics", "Machine Learning", "Deep Learning"},
		[]string{"Programming", "Statistics", "Communication"}},
	{"Mobile Development",
		[]string{"mobile", "ios", "android", "app"},
		[]string{"Swift", "Kotlin", "React Native", "Flutter", "Java", "Objective-C"},
		[]string{"Programming", "Communication"}},
	{"Cloud & DevOps",
		[]string{"cloud", "devops", "aws", "azure", "infrastructure"},
		[]string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "CI/CD", "Linux", "Terraform"},
		[]string{"Programming", "Linux", "Communication"}},
	{"Database",
		[]string{"database", "db", "sql", "nosql"},
		[]string{"SQL", "NoSQL", "MongoDB", "PostgreSQL", "MySQL", "Oracle", "Redis"},
		[]string{"Programming", "Communication"}},
	{"Design",
		[]string{"design", "ui", "ux", "graphic", "visual"},
		[]string{"Figma", "Adobe XD", "Sketch", "Photoshop", "Illustrator", "UI Design", "UX Design"},
		[]string{"Communication", "Problem Solving"}},
	{"Management",
		[]string{"manager", "management", "lead", "director", "head"},
		[]string{"Leadership", "Project Management", "Agile", "Scrum", "Communication", "Team Management"},
		[]string{"Communication", "Problem Solving", "Teamwork"}},
	{"Marketing",
		[]string{"marketing", "digital", "seo", "content", "social media"},
		[]string{"SEO", "SEM", "Google Analytics", "Content Marketing", "Social Media Marketing", "Email Marketing"},
		[]string{"Communication", "Problem Solving"}},
	{"Security",
		[]string{"security", "cyber", "hacking", "penetration"},
		[]string{"Network Security", "Cryptography", "Ethical Hacking", "Penetration Testing", "Firewalls"},
		[]string{"Programming", "Communication", "Problem Solving"}},
	{"AI & ML",
		[]string{"ai", "artificial intelligence", "machine learning", "deep learning", "ml"},
		[]string{"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Neural Networks", "AI"},
		[]string{"Programming", "Mathematics", "Communication"}},
	{"Data Engineering",
		[]string{"data engineering", "etl", "pipeline", "warehousing"},
		[]string{"ETL", "Data Warehousing", "Big Data", "Spark", "Hadoop", "Data Pipeline"},
		[]string{"Programming", "Database", "Communication"}},
	{"Blockchain",
		[]string{"blockchain", "cryptocurrency", "smart contract", "web3"},
		[]string{"Blockchain", "Smart Contracts", "Solidity", "Web3", "Cryptocurrency"},
		[]string{"Programming", "Cryptography", "Communication"}},
	{"Game Development",
		[]string{"game", "unity", "unreal", "gaming"},
		[]string{"Unity", "Unreal Engine", "Game Design", "C#", "C++", "3D Modeling"},
		[]string{"Programming", "Design", "Communication"}},
	{"IoT",
		[]string{"iot", "internet of things", "embedded", "sensor"},
		[]string{"IoT", "Arduino", "Raspberry Pi", "Embedded Systems", "Sensor Networks"},
		[]string{"Programming", "Hardware", "Communication"}},
	{"Cybersecurity",
		[]string{"cybersecurity", "security", "ethical hacking", "penetration testing"},
		[]string{"Cybersecurity", "Network Security", "Ethical Hacking", "Penetration Testing", "Cryptography"},
		[]string{"Networking", "Programming", "Communication"}},
	{"Cloud Computing",
		[]string{"cloud computing", "cloud", "aws", "azure", "gcp"},
		[]string{"AWS", "Azure", "Google Cloud", "Cloud Architecture", "Serverless", "Cloud Migration"},
		[]string{"Networking", "Programming", "Communication"}},
}

// CommonSkills are part of every extracted roadmap and have no
// prerequisites.
var CommonSkills = []string{"Communication", "Problem Solving", "Teamwork", "Time Management"}

// Extract derives role data from a job title alone.
//
// The common skills are always included. A category contributes all of its
// skills when one of its keywords occurs in the lowercased title, and any
// skill named in the title is added on its own. Each non-common skill's
// prerequisites come from the first category listing it, filtered to the
// matched skills. Skills are returned sorted.
func Extract(title string) RoleData {
	if strings.TrimSpace(title) == "" {
		title = "Generic Role"
	}
	lower := strings.ToLower(title)

	matched := map[string]bool{}
	for _, s := range CommonSkills {
		matched[s] = true
	}
	for _, cat := range extractCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				for _, s := range cat.skills {
					matched[s] = true
				}
				break
			}
		}
		for _, s := range cat.skills {
			if strings.Contains(lower, strings.ToLower(s)) {
				matched[s] = true
			}
		}
	}

	skillList := make([]string, 0, len(matched))
	for s := range matched {
		skillList = append(skillList, s)
	}
	sort.Strings(skillList)

	deps := make(map[string][]string, len(skillList))
	for _, s := range skillList {
		deps[s] = prerequisitesFor(s, matched)
	}

	return RoleData{
		Skills:       skillList,
		Dependencies: deps,
		Progression:  extractedProgression(title),
	}
}

func prerequisitesFor(skill string, matched map[string]bool) []string {
	out := []string{}
	if slices.Contains(CommonSkills, skill) {
		return out
	}
	candidates := []string{"Communication", "Problem Solving"}
	for _, cat := range extractCategories {
		if slices.Contains(cat.skills, skill) {
			candidates = cat.prereqs
			break
		}
	}
	for _, p := range candidates {
		if matched[p] {
			out = append(out, p)
		}
	}
	return out
}

func extractedProgression(title string) []string {
	area := "Technology"
	if strings.Contains(title, " ") {
		area = strings.SplitN(title, " ", 2)[0]
	}
	return []string{
		"Junior " + title,
		title,
		"Senior " + title,
		"Lead " + title,
		"Manager/Director of " + area,
	}
}
