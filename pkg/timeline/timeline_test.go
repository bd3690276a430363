package timeline

import (
	"reflect"
	"strings"
	"testing"
)

func TestBadgeOrder(t *testing.T) {
	s := Stage{IsStart: true, IsCurrent: true, IsGoal: true}
	want := []string{BadgeStart, BadgeGoal, BadgeCurrent}
	if got := s.Badges(); !reflect.DeepEqual(got, want) {
		t.Errorf("Badges() = %v, want %v", got, want)
	}
}

func TestBuildBadges(t *testing.T) {
	tests := []struct {
		name        string
		progression []string
		want        [][]string
	}{
		{"empty", nil, [][]string{}},
		{"single", []string{"Data Analyst"}, [][]string{{BadgeStart, BadgeGoal}}},
		{"two", []string{"Junior", "Senior"}, [][]string{{BadgeStart}, {BadgeGoal, BadgeCurrent}}},
		{
			"three",
			[]string{"Junior Data Analyst", "Data Analyst", "Senior Data Analyst"},
			[][]string{{BadgeStart}, {BadgeCurrent}, {BadgeGoal}},
		},
		{"five", []string{"a", "b", "c", "d", "e"}, [][]string{{BadgeStart}, {BadgeCurrent}, nil, nil, {BadgeGoal}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := Build(tt.progression)
			if len(stages) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(stages), len(tt.want))
			}
			current := 0
			for i, s := range stages {
				if !reflect.DeepEqual(s.Badges(), tt.want[i]) {
					t.Errorf("stage %d badges = %v, want %v", i, s.Badges(), tt.want[i])
				}
				if s.IsCurrent {
					current++
					if i != 1 {
						t.Errorf("stage %d marked current", i)
					}
				}
			}
			if len(stages) >= 2 && current != 1 {
				t.Errorf("%d stages marked current, want 1", current)
			}
		})
	}
}

func TestIcon(t *testing.T) {
	tests := map[string]string{
		"Data Science Manager":    IconTie,
		"Manager/Director":        IconTie,
		"Senior Data Analyst":     IconStar,
		"Junior Web Developer":    IconSeedling,
		"Senior Manager":          IconTie,
		"Junior Senior Confusion": IconStar,
		"Data Analyst":            IconBriefcase,
		"DIRECTOR of Engineering": IconTie,
	}
	for role, want := range tests {
		if got := Icon(role); got != want {
			t.Errorf("Icon(%q) = %q, want %q", role, got, want)
		}
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe("DevOps Engineer"); !strings.HasPrefix(got, "Professional who combines") {
		t.Errorf("Describe(DevOps Engineer) = %q", got)
	}
	want := "A professional position in your career path focusing on chief llama officer responsibilities and growth opportunities."
	if got := Describe("Chief Llama Officer"); got != want {
		t.Errorf("Describe fallback = %q", got)
	}
}

func TestSkills(t *testing.T) {
	if got := Skills("DevOps Engineer"); !reflect.DeepEqual(got, []string{"Linux", "Cloud", "CI/CD", "Automation"}) {
		t.Errorf("Skills(DevOps Engineer) = %v", got)
	}
	got := Skills("Astronaut")
	if !reflect.DeepEqual(got, []string{"Technical Skills", "Soft Skills", "Domain Knowledge"}) {
		t.Errorf("Skills fallback = %v", got)
	}
	got[0] = "mutated"
	if Skills("Astronaut")[0] != "Technical Skills" {
		t.Error("Skills returned shared storage")
	}
}

func TestBuildScenario(t *testing.T) {
	stages := Build([]string{"Junior Data Analyst", "Data Analyst", "Senior Data Analyst"})
	if stages[0].Icon != IconSeedling || stages[1].Icon != IconBriefcase || stages[2].Icon != IconStar {
		t.Errorf("icons = %s %s %s", stages[0].Icon, stages[1].Icon, stages[2].Icon)
	}
	if stages[0].Skills[0] != "Excel" {
		t.Errorf("stage 0 skills = %v", stages[0].Skills)
	}
}
