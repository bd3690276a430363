package catalog

import "strings"

var roleReplacer = strings.NewReplacer(
	"fullstack", "full stack",
	"full-stack", "full stack",
	"frontend", "front end",
	"front-end", "front end",
	"backend", "back end",
	"back-end", "back end",
)

// NormalizeRole lowercases and trims a role and folds common spelling
// variants ("fullstack", "front-end", "ui ux", ...) so that equivalent
// titles compare equal.
func NormalizeRole(s string) string {
	n := strings.ToLower(strings.TrimSpace(s))
	n = roleReplacer.Replace(n)
	return strings.ReplaceAll(n, "ui ux", "ui/ux")
}
