package buildinfo

import (
	"strings"
	"testing"
)

func TestGetUsesLdflagValues(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.3", "abc123", "2024-06-01T00:00:00Z"

	i := Get()
	if i.Version != "v1.2.3" || i.Commit != "abc123" || i.Date != "2024-06-01T00:00:00Z" {
		t.Errorf("Get() = %+v", i)
	}
	if !strings.HasPrefix(i.GoVersion, "go") {
		t.Errorf("GoVersion = %q", i.GoVersion)
	}
	if !strings.Contains(String(), "version: v1.2.3") {
		t.Errorf("String() = %q", String())
	}
	if !strings.Contains(Template(), "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}
