package playink

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler builds the development server routes and middleware. Serve calls
// it; tests use it with httptest.
func (a *App) Handler() *echo.Echo {
	a.Cache = NewDocCache(a.loadDocsForServe, a.cacheTTL)
	a.Echo = echo.New()
	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	a.setupMiddleware()
	a.setupRoutes()
	return a.Echo
}

// Serve runs the development server until ctx is cancelled. Broken links
// and missing assets are logged rather than fatal.
func (a *App) Serve(ctx context.Context) error {
	if err := a.checkAssets(); err != nil {
		a.logger.Warn().Err(err).Msg("static assets")
	}
	e := a.Handler()

	if len(a.watch) > 0 {
		go func() {
			err := watchDirs(ctx, a.logger, a.watch, func(string) { a.Cache.Invalidate() })
			if err != nil {
				a.logger.Error().Err(err).Msg("file watcher")
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("shutdown")
		}
	}()

	a.logger.Info().Str("addr", a.addr).Str("base", a.Config.BaseURL).Msg("serving")
	if err := e.Start(a.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) loadDocsForServe() (*DocSet, error) {
	docs, err := a.loadDocs()
	if err != nil {
		return nil, err
	}
	for _, b := range a.brokenLinks(docs) {
		a.logger.Warn().Str("source", b.Source).Str("target", b.Target).Msg("broken " + b.Kind.String())
	}
	return docs, nil
}
