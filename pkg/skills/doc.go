// Package skills classifies skill names into the fixed roadmap categories.
//
// Each [Category] is an immutable record with a display color, an icon
// identifier and a visual level between 0 and 3. Nine categories own an
// explicit membership list; membership is checked in a fixed priority order
// and the first list that contains the skill wins. Everything else belongs
// to [Common] with level 0, so [Classify] is total.
//
//	cat := skills.Classify("Docker")
//	fmt.Println(cat.Name, cat.Level) // Cloud & DevOps 2
//
// The package also carries the skill description table used by the skill
// details view ([Describe]) and the coarse grouping used by printed
// summaries ([Group]).
package skills
