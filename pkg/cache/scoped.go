package cache

// ScopedKeyer prefixes every key of an inner Keyer. The server uses it to
// keep datasets loaded from different files apart:
//
//	k := cache.NewScopedKeyer(nil, "data:"+datasetHash[:12]+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or a DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) *ScopedKeyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) RoadmapKey(role string) string {
	return k.prefix + k.inner.RoadmapKey(role)
}

func (k *ScopedKeyer) SuggestionKey(query string, limit int) string {
	return k.prefix + k.inner.SuggestionKey(query, limit)
}

func (k *ScopedKeyer) ArtifactKey(roadmapHash, format string) string {
	return k.prefix + k.inner.ArtifactKey(roadmapHash, format)
}

var _ Keyer = (*ScopedKeyer)(nil)
