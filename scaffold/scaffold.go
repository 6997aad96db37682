// Package scaffold creates a starter documentation site for the playink
// CLI from embedded templates.
package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// Data holds the template variables passed to every scaffold template.
type Data struct {
	ProjectName  string
	SiteName     string
	Organization string
	URL          string
}

var funcs = template.FuncMap{"quote": yamlQuote}

// yamlQuote renders s as a double-quoted YAML scalar. JSON string escapes
// are valid inside YAML double quotes.
func yamlQuote(s string) (string, error) {
	b, err := json.Marshal(s)
	return string(b), err
}

// SocialCardPath is where Create writes the generated social card image.
const SocialCardPath = "static/img/social-card.jpg"

// Create writes a new site into dir, which must not exist yet. It returns
// the created file paths relative to dir.
func Create(dir string, data Data) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("directory %q already exists", dir)
	}

	const root = "templates"
	var created []string
	err := fs.WalkDir(Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = strings.TrimSuffix(relPath, ".tmpl")
		if relPath == "gitignore" {
			relPath = ".gitignore"
		}
		outPath := filepath.Join(dir, relPath)

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Funcs(funcs).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		created = append(created, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return created, err
	}

	card, err := socialCard()
	if err != nil {
		return created, err
	}
	if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(SocialCardPath)), card, 0o644); err != nil {
		return created, fmt.Errorf("create social card: %w", err)
	}
	return append(created, SocialCardPath), nil
}

// socialCard draws a plain 1200x630 card in the site colour.
func socialCard() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 1200, 630))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 0x7d, G: 0x3c, B: 0xcf, A: 0xff}}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode social card: %w", err)
	}
	return buf.Bytes(), nil
}
