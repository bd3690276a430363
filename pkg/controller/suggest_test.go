package controller

import (
	"reflect"
	"testing"
)

func TestSuggesterStaleResponse(t *testing.T) {
	var s Suggester
	first, _ := s.Begin("da")
	second, _ := s.Begin("dat")

	if !s.Apply(second, []string{"Data Analyst"}) {
		t.Fatal("latest response rejected")
	}
	if s.Apply(first, []string{"Dancer"}) {
		t.Fatal("stale response applied")
	}
	if got := s.Items(); !reflect.DeepEqual(got, []string{"Data Analyst"}) {
		t.Errorf("items = %v", got)
	}
}

func TestSuggesterEmptyQuery(t *testing.T) {
	var s Suggester
	gen, _ := s.Begin("data")
	s.Apply(gen, []string{"Data Analyst"})

	if _, ok := s.Begin("  "); ok {
		t.Fatal("blank query should not fetch")
	}
	if s.Visible() || len(s.Items()) != 0 {
		t.Error("list not cleared")
	}
	// The response for "data" arrives late.
	if s.Apply(gen, []string{"Data Analyst"}) {
		t.Error("late response applied after clear")
	}
}

func TestSuggesterKeyboard(t *testing.T) {
	var s Suggester
	gen, _ := s.Begin("d")
	s.Apply(gen, []string{"a", "b", "c"})

	if s.Selected() != -1 {
		t.Fatalf("initial selection = %d", s.Selected())
	}
	if _, ok := s.Enter(); ok {
		t.Error("Enter with no focus should submit")
	}

	s.Up()
	if s.Selected() != 2 {
		t.Errorf("Up from none = %d, want last", s.Selected())
	}
	s.Down()
	if s.Selected() != 0 {
		t.Errorf("Down from last = %d, want 0", s.Selected())
	}
	s.Down()
	item, ok := s.Enter()
	if !ok || item != "b" {
		t.Errorf("Enter = %q, %v", item, ok)
	}
	if s.Visible() {
		t.Error("list visible after pick")
	}
}

func TestSuggesterEscapeAndChoose(t *testing.T) {
	var s Suggester
	gen, _ := s.Begin("d")
	s.Apply(gen, []string{"a", "b"})

	s.Escape()
	if s.Visible() || len(s.Items()) != 2 {
		t.Error("Escape should hide and keep items")
	}
	if _, ok := s.Choose(5); ok {
		t.Error("out of range choice accepted")
	}
	if item, ok := s.Choose(1); !ok || item != "b" {
		t.Errorf("Choose = %q, %v", item, ok)
	}
}

func TestSuggesterNoItemsIsNoop(t *testing.T) {
	var s Suggester
	s.Down()
	s.Up()
	if s.Selected() != -1 {
		t.Errorf("selection moved with no items: %d", s.Selected())
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		item, query string
		want        []Segment
	}{
		{"Data Analyst", "data", []Segment{{Text: "Data", Match: true}, {Text: " Analyst"}}},
		{"Data Analyst", "a", []Segment{
			{Text: "D"}, {Text: "a", Match: true}, {Text: "t"}, {Text: "a", Match: true},
			{Text: " "}, {Text: "A", Match: true}, {Text: "n"}, {Text: "a", Match: true}, {Text: "lyst"},
		}},
		{"C++ Developer", "c++", []Segment{{Text: "C++", Match: true}, {Text: " Developer"}}},
		{"Nurse", "xyz", []Segment{{Text: "Nurse"}}},
		{"Nurse", "", []Segment{{Text: "Nurse"}}},
	}
	for _, tt := range tests {
		if got := Highlight(tt.item, tt.query); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Highlight(%q, %q) = %+v, want %+v", tt.item, tt.query, got, tt.want)
		}
	}
}
