package playink

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "state", "manifest.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRecordAndGet(t *testing.T) {
	s := newTestStore(t)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	if _, ok, err := s.Get("index.html"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v", ok, err)
	}
	if err := s.Record("index.html", "abc", at); err != nil {
		t.Fatalf("Record: %v", err)
	}
	entry, ok, err := s.Get("index.html")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if entry.Hash != "abc" || !entry.BuiltAt.Equal(at) {
		t.Errorf("entry = %+v", entry)
	}

	if err := s.Record("index.html", "def", at.Add(time.Hour)); err != nil {
		t.Fatalf("Record update: %v", err)
	}
	entry, _, _ = s.Get("index.html")
	if entry.Hash != "def" {
		t.Errorf("hash after update = %q", entry.Hash)
	}
}

func TestStorePathsAndForget(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	for _, p := range []string{"sitemap.xml", "docs/intro/index.html", "404.html"} {
		if err := s.Record(p, "h", now); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Forget("sitemap.xml"); err != nil {
		t.Fatalf("Forget: %v", err)
	}
	paths, err := s.Paths()
	if err != nil {
		t.Fatalf("Paths: %v", err)
	}
	want := []string{"404.html", "docs/intro/index.html"}
	if len(paths) != len(want) {
		t.Fatalf("Paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("Paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Record("robots.txt", "r", time.Now()); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, ok, _ := s.Get("robots.txt"); !ok {
		t.Error("entry lost after reopening")
	}
}
