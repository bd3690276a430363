package cache

import "strings"

// Key kinds, also used as the keyType reported to cache hooks.
const (
	KindRoadmap    = "roadmap"
	KindSuggestion = "suggest"
	KindArtifact   = "artifact"
)

// Keyer derives cache keys.
type Keyer interface {
	// RoadmapKey keys a generated roadmap by its trimmed role. Case is kept,
	// since the roadmap echoes the role's spelling.
	RoadmapKey(role string) string
	// SuggestionKey keys a suggestion list.
	SuggestionKey(query string, limit int) string
	// ArtifactKey keys a rendered output of a roadmap identified by its
	// content hash.
	ArtifactKey(roadmapHash, format string) string
}

// DefaultKeyer hashes its inputs after trimming text arguments. Suggestion
// queries and formats are also lowercased; roles are not, because a cached
// roadmap carries the role and progression titles as first requested.
type DefaultKeyer struct{}

func NewDefaultKeyer() *DefaultKeyer { return &DefaultKeyer{} }

func (DefaultKeyer) RoadmapKey(role string) string {
	return hashKey(KindRoadmap, strings.TrimSpace(role))
}

func (DefaultKeyer) SuggestionKey(query string, limit int) string {
	return hashKey(KindSuggestion, fold(query), limit)
}

func (DefaultKeyer) ArtifactKey(roadmapHash, format string) string {
	return hashKey(KindArtifact, roadmapHash, fold(format))
}

func fold(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

var _ Keyer = DefaultKeyer{}
