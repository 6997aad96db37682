package main

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestToTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"play-ink", "Play Ink"},
		{"course", "Course"},
		{"a--b", "A  B"},
	}
	for _, tt := range tests {
		if got := toTitle(tt.in); got != tt.want {
			t.Errorf("toTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "playink dev\n" {
		t.Errorf("version output = %q", got)
	}
}

// A freshly scaffolded site must build cleanly with the default flags.
func TestNewThenBuild(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "course")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"new", dir})
	if err := root.Execute(); err != nil {
		t.Fatalf("new: %v", err)
	}

	outDir := filepath.Join(dir, "build")
	root = newRootCmd()
	out.Reset()
	root.SetOut(&out)
	root.SetArgs([]string{
		"build",
		"--config", filepath.Join(dir, "playink.yaml"),
		"--content", filepath.Join(dir, "docs"),
		"--static", filepath.Join(dir, "static"),
		"--out", outDir,
		"--manifest", filepath.Join(dir, ".playink", "manifest.db"),
		"--log-level", "error",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out.String(), "Built ") {
		t.Errorf("unexpected build output %q", out.String())
	}
	for _, f := range []string{"index.html", "docs/intro/index.html", "404.html", "sitemap.xml", "img/social-card.jpg"} {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(f))); err != nil {
			t.Errorf("missing output %s: %v", f, err)
		}
	}
}

// writeDefaultSite lays out the docs and static assets DefaultConfig refers to.
func writeDefaultSite(t *testing.T, dir string) {
	t.Helper()
	var card bytes.Buffer
	if err := jpeg.Encode(&card, image.NewRGBA(image.Rect(0, 0, 1200, 630)), nil); err != nil {
		t.Fatal(err)
	}
	files := map[string][]byte{
		"docs/intro.md":                             []byte("# Course Intro\n"),
		"static/img/favicon.ico":                    []byte("ico"),
		"static/img/logo.svg":                       []byte("<svg/>"),
		"static/img/undraw_docusaurus_mountain.svg": []byte("<svg/>"),
		"static/img/undraw_docusaurus_tree.svg":     []byte("<svg/>"),
		"static/img/undraw_docusaurus_react.svg":    []byte("<svg/>"),
		"static/img/docusaurus-social-card.jpg":     card.Bytes(),
		"static/css/custom.css":                     []byte(":root{}"),
	}
	for name, data := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuildWithoutConfigFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeDefaultSite(t, dir)
	t.Chdir(dir)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"build", "--manifest", "", "--log-level", "error"})
	if err := root.Execute(); err != nil {
		t.Fatalf("build: %v", err)
	}
	page, err := os.ReadFile(filepath.Join(dir, "build", "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(page), "Play ink! together") {
		t.Errorf("homepage should use the built-in site title")
	}
}

func TestBuildWithMissingExplicitConfigFails(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"build", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "--log-level", "error"})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("expected read config error, got %v", err)
	}
}
