// Package playink builds the Play ink! course documentation site: it reads
// the site configuration, renders the docs tree and the homepage feature
// cards, checks links according to the configured policies and writes a
// static site. A development server renders the same pages on demand.
//
// Users provide their own templ components via the ViewFuncs struct; the
// views package ships the default set.
package playink

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ViewFuncs holds the components the engine calls when rendering pages.
type ViewFuncs struct {
	Home     func(s Shell, features []Feature, start Link) templ.Component
	Doc      func(s Shell, doc Doc, sidebar []Doc) templ.Component
	NotFound func(s Shell) templ.Component
}

// App wires the configuration, content, views and output together.
type App struct {
	Config   SiteConfig
	Views    ViewFuncs
	Features []Feature

	Echo  *echo.Echo
	Cache *DocCache

	content      fs.FS
	static       fs.FS
	outDir       string
	manifestPath string
	addr         string
	cacheTTL     time.Duration
	watch        []string
	logger       zerolog.Logger
	now          func() time.Time
}

// Option configures additional App behavior.
type Option func(*App)

// WithContent sets the docs tree (default the "docs" directory).
func WithContent(fsys fs.FS) Option {
	return func(a *App) { a.content = fsys }
}

// WithStatic sets the static asset root (default the "static" directory).
func WithStatic(fsys fs.FS) Option {
	return func(a *App) { a.static = fsys }
}

// WithOutputDir sets the build output directory (default "build").
func WithOutputDir(dir string) Option {
	return func(a *App) { a.outDir = dir }
}

// WithManifest enables incremental builds backed by a SQLite manifest at
// path. An empty path disables the manifest.
func WithManifest(path string) Option {
	return func(a *App) { a.manifestPath = path }
}

// WithAddr sets the development server listen address (default ":3000").
func WithAddr(addr string) Option {
	return func(a *App) { a.addr = addr }
}

// WithFeatures replaces the homepage feature cards.
func WithFeatures(features []Feature) Option {
	return func(a *App) { a.Features = features }
}

// WithDocCacheTTL sets how long the development server keeps the docs tree.
func WithDocCacheTTL(ttl time.Duration) Option {
	return func(a *App) { a.cacheTTL = ttl }
}

// WithWatch makes the development server drop its cached docs tree as soon
// as anything under dirs changes.
func WithWatch(dirs ...string) Option {
	return func(a *App) { a.watch = dirs }
}

// WithLogger sets the logger (default the global zerolog logger).
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithClock sets the time source used for the copyright year and manifest.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New creates an App. The configuration gets its defaults applied and is
// validated once here.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) (*App, error) {
	cfg.setDefaults()
	if views.Home == nil || views.Doc == nil || views.NotFound == nil {
		return nil, errors.New("playink: Home, Doc and NotFound views are required")
	}

	a := &App{
		Config:   cfg,
		Views:    views,
		Features: DefaultFeatures(),
		content:  os.DirFS("docs"),
		static:   os.DirFS("static"),
		outDir:   "build",
		addr:     ":3000",
		cacheTTL: 2 * time.Second,
		logger:   log.Logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.Config.validate(a.logger); err != nil {
		return nil, err
	}
	if a.outDir == "" {
		return nil, fmt.Errorf("playink: output directory is required")
	}
	a.logger.Debug().Object("site", &a.Config).Msg("site configuration loaded")
	return a, nil
}

func (a *App) loadDocs() (*DocSet, error) {
	return LoadDocs(a.content, a.Config.Docs.EditURL, a.Config.BaseURL)
}

// brokenLinks collects every broken link in the docs and the configuration.
func (a *App) brokenLinks(docs *DocSet) []BrokenLink {
	return CheckLinks(&a.Config, docs, a.static)
}
