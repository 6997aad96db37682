package playink

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// BuildReport summarises one build.
type BuildReport struct {
	Pages     int // HTML pages rendered
	Written   int // files written
	Unchanged int // files skipped because the manifest hash matched
	Removed   int // stale outputs of earlier builds deleted
	Warnings  []string
}

// MissingAssetsError lists static asset references that do not resolve.
type MissingAssetsError struct {
	Paths []string
}

func (e *MissingAssetsError) Error() string {
	return "playink: missing static assets: " + strings.Join(e.Paths, ", ")
}

// Build renders the whole site into the output directory.
func (a *App) Build(ctx context.Context) (BuildReport, error) {
	var report BuildReport
	start := a.now()

	docs, err := a.loadDocs()
	if err != nil {
		return report, err
	}
	warnings, err := ApplyLinkPolicies(&a.Config, a.brokenLinks(docs), a.logger)
	report.Warnings = warnings
	if err != nil {
		return report, err
	}
	if err := a.checkAssets(); err != nil {
		return report, err
	}

	out, err := a.openOutput(&report)
	if err != nil {
		return report, err
	}
	defer out.close()

	if err := a.copyStatic(ctx, out); err != nil {
		return report, err
	}
	css, err := EmbeddedAssets.ReadFile("embedded/playink.css")
	if err != nil {
		return report, err
	}
	if err := out.write(bundledStylesheet, css); err != nil {
		return report, err
	}
	code, err := codeCSS(a.Config.ThemeConfig.Prism)
	if err != nil {
		return report, err
	}
	if err := out.write(codeStylesheet, code); err != nil {
		return report, err
	}

	for _, locale := range a.Config.I18n.Locales {
		dir := a.localeDir(locale)
		if err := a.writePage(ctx, out, dir+"index.html", a.homePage(locale, docs)); err != nil {
			return report, err
		}
		for _, d := range docs.List() {
			if err := a.writePage(ctx, out, dir+docRoute(d.ID)+"index.html", a.docPage(locale, d, docs)); err != nil {
				return report, err
			}
		}
	}
	if err := a.writePage(ctx, out, "404.html", a.notFoundPage(a.Config.I18n.DefaultLocale)); err != nil {
		return report, err
	}

	sitemap, err := a.sitemapXML(docs)
	if err != nil {
		return report, fmt.Errorf("playink: sitemap: %w", err)
	}
	if err := out.write("sitemap.xml", sitemap); err != nil {
		return report, err
	}
	if err := out.write("robots.txt", a.robotsTxt()); err != nil {
		return report, err
	}

	if err := out.prune(); err != nil {
		return report, err
	}

	a.logger.Info().
		Int("pages", report.Pages).
		Int("written", report.Written).
		Int("unchanged", report.Unchanged).
		Int("removed", report.Removed).
		Int("warnings", len(report.Warnings)).
		Dur("took", a.now().Sub(start)).
		Str("out", a.outDir).
		Msg("build finished")
	return report, nil
}

func (a *App) writePage(ctx context.Context, out *output, rel string, cmp templ.Component) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := cmp.Render(ctx, &buf); err != nil {
		return fmt.Errorf("playink: render %s: %w", rel, err)
	}
	out.report.Pages++
	return out.write(rel, buf.Bytes())
}

// assetRefs lists every static asset the configuration and features point at.
func (a *App) assetRefs() []string {
	cfg := &a.Config
	refs := []string{cfg.Favicon, cfg.Theme.CustomCSS, cfg.ThemeConfig.Image, cfg.ThemeConfig.Navbar.Logo.Src}
	for _, f := range a.Features {
		refs = append(refs, f.Icon)
	}
	return refs
}

func (a *App) checkAssets() error {
	var missing []string
	for _, ref := range a.assetRefs() {
		if ref == "" || IsExternal(ref) {
			continue
		}
		if _, err := fs.Stat(a.static, staticPath(ref)); err != nil {
			missing = append(missing, ref)
		}
	}
	if len(missing) > 0 {
		return &MissingAssetsError{Paths: missing}
	}
	return nil
}

func staticPath(ref string) string {
	return path.Clean(strings.TrimPrefix(ref, "/"))
}

func (a *App) copyStatic(ctx context.Context, out *output) error {
	card := ""
	if img := a.Config.ThemeConfig.Image; img != "" && !IsExternal(img) {
		card = staticPath(img)
	}
	err := fs.WalkDir(a.static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return ctx.Err()
		}
		data, err := fs.ReadFile(a.static, p)
		if err != nil {
			return err
		}
		if p == card {
			if data, err = processSocialCard(data, p); err != nil {
				return err
			}
		}
		return out.write(p, data)
	})
	if err != nil {
		return fmt.Errorf("playink: copy static: %w", err)
	}
	return nil
}

// output writes build files, consulting the manifest when one is open.
type output struct {
	root    string
	store   *Store
	seen    map[string]struct{}
	report  *BuildReport
	builtAt time.Time
}

func (a *App) openOutput(report *BuildReport) (*output, error) {
	if err := os.MkdirAll(a.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("playink: create output dir: %w", err)
	}
	out := &output{
		root:    a.outDir,
		seen:    make(map[string]struct{}),
		report:  report,
		builtAt: a.now(),
	}
	if a.manifestPath != "" {
		store, err := NewStore(a.manifestPath)
		if err != nil {
			return nil, fmt.Errorf("playink: open manifest: %w", err)
		}
		out.store = store
	}
	return out, nil
}

func (o *output) close() {
	if o.store != nil {
		o.store.Close()
	}
}

func (o *output) write(rel string, data []byte) error {
	o.seen[rel] = struct{}{}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	dst := filepath.Join(o.root, filepath.FromSlash(rel))

	if o.store != nil {
		prev, ok, err := o.store.Get(rel)
		if err != nil {
			return fmt.Errorf("playink: manifest lookup %s: %w", rel, err)
		}
		if ok && prev.Hash == hash {
			if _, err := os.Stat(dst); err == nil {
				o.report.Unchanged++
				return nil
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("playink: write %s: %w", rel, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("playink: write %s: %w", rel, err)
	}
	o.report.Written++
	if o.store != nil {
		if err := o.store.Record(rel, hash, o.builtAt); err != nil {
			return fmt.Errorf("playink: manifest record %s: %w", rel, err)
		}
	}
	return nil
}

// prune deletes outputs recorded by earlier builds that this build did not
// produce.
func (o *output) prune() error {
	if o.store == nil {
		return nil
	}
	paths, err := o.store.Paths()
	if err != nil {
		return fmt.Errorf("playink: manifest list: %w", err)
	}
	for _, p := range paths {
		if _, ok := o.seen[p]; ok {
			continue
		}
		err := os.Remove(filepath.Join(o.root, filepath.FromSlash(p)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("playink: remove stale %s: %w", p, err)
		}
		if err := o.store.Forget(p); err != nil {
			return fmt.Errorf("playink: manifest forget %s: %w", p, err)
		}
		o.report.Removed++
	}
	return nil
}
