package playink

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// localeDir is the output directory (relative to the site base) of locale.
func (a *App) localeDir(locale string) string {
	if locale == a.Config.I18n.DefaultLocale {
		return ""
	}
	return locale + "/"
}

func (a *App) homePage(locale string, docs *DocSet) templ.Component {
	cfg := &a.Config
	title := cfg.Title
	if cfg.Tagline != "" {
		title += " · " + cfg.Tagline
	}
	s := a.shell(locale, "", PageMeta{Title: title})
	return a.Views.Home(s, a.Features, startLink(cfg, docs, s.Base))
}

func (a *App) docPage(locale string, doc Doc, docs *DocSet) templ.Component {
	s := a.shell(locale, docRoute(doc.ID), PageMeta{
		Title:       doc.Title + " | " + a.Config.Title,
		Description: doc.Description,
		OGType:      "article",
	})
	return a.Views.Doc(s, doc, docs.List())
}

func (a *App) notFoundPage(locale string) templ.Component {
	s := a.shell(locale, "404.html", PageMeta{Title: "Page Not Found | " + a.Config.Title})
	s.Meta.URL = ""
	return a.Views.NotFound(s)
}

// startLink is the hero call to action: the first navbar doc entry that
// exists, else the first doc in the sidebar.
func startLink(cfg *SiteConfig, docs *DocSet, base string) Link {
	for _, item := range cfg.ThemeConfig.Navbar.Items {
		if item.Type == "doc" && docs.Has(item.DocID) {
			return Link{Label: item.Label, Href: DocPath(base, item.DocID)}
		}
	}
	if list := docs.List(); len(list) > 0 {
		return Link{Label: "Get started", Href: DocPath(base, list[0].ID)}
	}
	return Link{}
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
