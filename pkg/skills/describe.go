package skills

import "fmt"

var descriptions = map[string]string{
	"Python":           "A versatile programming language used for web development, data analysis, artificial intelligence, and more.",
	"SQL":              "A domain-specific language used in programming and designed for managing data held in a relational database.",
	"JavaScript":       "A programming language that enables interactive web pages and is an essential part of web applications.",
	"HTML":             "The standard markup language for documents designed to be displayed in a web browser.",
	"CSS":              "A style sheet language used for describing the presentation of a document written in HTML.",
	"React":            "A JavaScript library for building user interfaces, particularly single-page applications.",
	"Node.js":          "A JavaScript runtime built on Chrome's V8 JavaScript engine for building server-side and networking applications.",
	"Excel":            "A spreadsheet program used to store, organize, and analyze data.",
	"Tableau":          "A data visualization tool that is used for data science and business intelligence.",
	"Communication":    "The ability to convey information effectively and efficiently.",
	"Problem Solving":  "The process of finding solutions to complex issues.",
	"Machine Learning": "A subset of artificial intelligence that enables systems to learn and improve from experience.",
	"AWS":              "Amazon Web Services, a comprehensive cloud computing platform.",
	"Docker":           "A platform for developing, shipping, and running applications in containers.",
	"Figma":            "A collaborative web application for interface design.",
	"Leadership":       "The ability to guide, motivate, and inspire a group of people toward a common goal.",
}

// Describe returns a one-sentence description of skill, falling back to a
// generic sentence for skills without a curated entry.
func Describe(skill string) string {
	if d, ok := descriptions[skill]; ok {
		return d
	}
	return fmt.Sprintf("%s is an important skill for your career development. "+
		"Mastering this skill will open up new opportunities and enhance your professional growth.", skill)
}
