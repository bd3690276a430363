package progress

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

// exerciseStore runs the behaviour every Store must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	got, err := s.Load(ctx, "missing")
	if err != nil || got != nil {
		t.Fatalf("Load(missing) = %v, %v; want nil, nil", got, err)
	}

	ts := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	p := roadmap.Progress{ID: "careerRoadmap", Role: "Data Analyst", Skills: []string{"Excel", "SQL"}, Timestamp: ts}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = s.Load(ctx, "careerRoadmap")
	if err != nil || got == nil {
		t.Fatalf("Load = %v, %v", got, err)
	}
	if got.Role != "Data Analyst" || len(got.Skills) != 2 || !got.Timestamp.Equal(ts) {
		t.Errorf("Load = %+v", got)
	}

	p.Role = "Data Scientist"
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save (replace): %v", err)
	}
	got, _ = s.Load(ctx, "careerRoadmap")
	if got == nil || got.Role != "Data Scientist" {
		t.Errorf("replaced snapshot = %+v", got)
	}

	if err := s.Delete(ctx, "careerRoadmap"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := s.Load(ctx, "careerRoadmap"); got != nil {
		t.Errorf("snapshot survived Delete: %+v", got)
	}
	if err := s.Delete(ctx, "careerRoadmap"); err != nil {
		t.Errorf("Delete of missing id: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesSkills(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	skills := []string{"Go"}
	_ = s.Save(ctx, roadmap.Progress{ID: "a", Role: "r", Skills: skills})
	skills[0] = "Rust"
	got, _ := s.Load(ctx, "a")
	if got.Skills[0] != "Go" {
		t.Error("store aliases the caller's slice")
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	exerciseStore(t, s)
}

func TestFileStorePermissionsAndPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "progress")
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s.Dir() != dir {
		t.Errorf("Dir() = %q", s.Dir())
	}
	if err := s.Save(context.Background(), roadmap.Progress{ID: "x", Role: "r"}); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(s.Path("x"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, id := range []string{"../escape", "a/b", ""} {
		if _, err := s.Load(ctx, id); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Load(%q) err = %v", id, err)
		}
		if err := s.Save(ctx, roadmap.Progress{ID: id, Role: "r"}); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Save(%q) err = %v", id, err)
		}
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path("bad"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(context.Background(), "bad"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestPrepare(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))

	p, err := Prepare(roadmap.Progress{Role: "  Web Developer "}, now)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != roadmap.DefaultProgressID {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Role != "Web Developer" {
		t.Errorf("Role = %q", p.Role)
	}
	if p.Skills == nil {
		t.Error("Skills should default to an empty list")
	}
	if !p.Timestamp.Equal(now) || p.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp = %v", p.Timestamp)
	}

	kept := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	p, _ = Prepare(roadmap.Progress{ID: "abc", Role: "r", Timestamp: kept}, now)
	if p.ID != "abc" || !p.Timestamp.Equal(kept) {
		t.Errorf("Prepare overwrote explicit fields: %+v", p)
	}

	if _, err := Prepare(roadmap.Progress{Role: " "}, now); !errors.Is(err, errors.ErrCodeInvalidRole) {
		t.Errorf("blank role err = %v", err)
	}
	if _, err := Prepare(roadmap.Progress{ID: "../x", Role: "r"}, now); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad id err = %v", err)
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if a == b {
		t.Error("NewID repeated")
	}
	if err := errors.ValidateID(a); err != nil {
		t.Errorf("NewID produced an invalid id %q: %v", a, err)
	}
}
