package playink

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) setupRoutes() {
	e := a.Echo
	root := e.Group(strings.TrimSuffix(a.Config.BaseURL, "/"))

	root.GET("/"+bundledStylesheet, a.handleBundledCSS)
	root.GET("/"+codeStylesheet, a.handleCodeCSS)
	root.GET("/sitemap.xml", a.handleSitemap)
	root.GET("/robots.txt", a.handleRobots)

	for _, locale := range a.Config.I18n.Locales {
		g := root
		if dir := a.localeDir(locale); dir != "" {
			g = root.Group("/" + strings.TrimSuffix(dir, "/"))
		}
		g.GET("/", a.handleHome(locale))
		g.GET("/docs/*", a.handleDoc(locale))
	}

	root.StaticFS("/", a.static)
}

func (a *App) handleHome(locale string) echo.HandlerFunc {
	return func(c echo.Context) error {
		docs, err := a.Cache.Docs()
		if err != nil {
			return err
		}
		return Render(c, a.homePage(locale, docs))
	}
}

func (a *App) handleDoc(locale string) echo.HandlerFunc {
	return func(c echo.Context) error {
		docs, err := a.Cache.Docs()
		if err != nil {
			return err
		}
		id := strings.Trim(c.Param("*"), "/")
		doc, ok := docs.Get(id)
		if !ok {
			return echo.ErrNotFound
		}
		return Render(c, a.docPage(locale, doc, docs))
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	docs, err := a.Cache.Docs()
	if err != nil {
		return err
	}
	body, err := a.sitemapXML(docs)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, a.robotsTxt())
}

func (a *App) handleBundledCSS(c echo.Context) error {
	css, err := EmbeddedAssets.ReadFile("embedded/playink.css")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", css)
}

func (a *App) handleCodeCSS(c echo.Context) error {
	css, err := codeCSS(a.Config.ThemeConfig.Prism)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", css)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.notFoundPage(a.Config.I18n.DefaultLocale))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.logger.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
