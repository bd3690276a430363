package controller

import (
	"slices"
	"strings"
	"sync"
)

// Suggester tracks the autocomplete list for the role input.
//
// Every keystroke calls Begin, which bumps a generation counter. Responses
// are applied with the generation they were requested under; a response for
// an older generation is dropped, so a slow reply can never overwrite the
// list for a newer query.
type Suggester struct {
	mu       sync.Mutex
	gen      uint64
	query    string
	items    []string
	selected int
	visible  bool
}

// Begin registers a new query and returns its generation. ok is false when
// the trimmed query is empty: the list is cleared and hidden and nothing
// should be fetched.
func (s *Suggester) Begin(query string) (gen uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.query = strings.TrimSpace(query)
	if s.query == "" {
		s.reset()
		return s.gen, false
	}
	return s.gen, true
}

// Apply installs items fetched for gen. It reports false, changing nothing,
// when gen is stale. An empty list hides the dropdown.
func (s *Suggester) Apply(gen uint64, items []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.items = slices.Clone(items)
	s.selected = -1
	s.visible = len(s.items) > 0
	return true
}

// Fail records that the fetch for gen failed. The current list is left
// as it is.
func (s *Suggester) Fail(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}

func (s *Suggester) reset() {
	s.items = nil
	s.selected = -1
	s.visible = false
}

// Generation returns the latest generation handed out by Begin.
func (s *Suggester) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Query returns the trimmed query of the latest generation.
func (s *Suggester) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Items returns a copy of the current suggestions.
func (s *Suggester) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Selected returns the focused index, or -1.
func (s *Suggester) Selected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return -1
	}
	return s.selected
}

// Visible reports whether the dropdown is shown.
func (s *Suggester) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Down moves focus to the next item, wrapping to the first.
func (s *Suggester) Down() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.items); n > 0 {
		s.selected++
		if s.selected >= n {
			s.selected = 0
		}
	}
}

// Up moves focus to the previous item, wrapping to the last.
func (s *Suggester) Up() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.items); n > 0 {
		s.selected--
		if s.selected < 0 {
			s.selected = n - 1
		}
	}
}

// Enter picks the focused item. When nothing is focused it reports false
// and the caller submits the form instead.
func (s *Suggester) Enter() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected < 0 || s.selected >= len(s.items) {
		return "", false
	}
	item := s.items[s.selected]
	s.visible = false
	s.selected = -1
	return item, true
}

// Choose picks item i directly, as a mouse click would.
func (s *Suggester) Choose(i int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.items) {
		return "", false
	}
	s.visible = false
	s.selected = -1
	return s.items[i], true
}

// Escape hides the dropdown and keeps the items.
func (s *Suggester) Escape() {
	s.mu.Lock()
	s.visible = false
	s.mu.Unlock()
}

// Segment is a run of suggestion text, marked when it matches the query.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits item into segments, marking every case-insensitive
// occurrence of query. An empty query yields the whole item unmarked.
func Highlight(item, query string) []Segment {
	if query == "" || item == "" {
		return []Segment{{Text: item}}
	}
	lowerItem, lowerQuery := strings.ToLower(item), strings.ToLower(query)
	// Lowercasing can change byte lengths outside ASCII; fall back to no
	// highlighting rather than slicing at the wrong offsets.
	if len(lowerItem) != len(item) || len(lowerQuery) != len(query) {
		return []Segment{{Text: item}}
	}

	var out []Segment
	for rest := 0; rest < len(item); {
		i := strings.Index(lowerItem[rest:], lowerQuery)
		if i < 0 {
			out = append(out, Segment{Text: item[rest:]})
			break
		}
		if i > 0 {
			out = append(out, Segment{Text: item[rest : rest+i]})
		}
		end := rest + i + len(query)
		out = append(out, Segment{Text: item[rest+i : end], Match: true})
		rest = end
	}
	return out
}
