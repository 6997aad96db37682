package views

import (
	"bytes"
	"context"

	"github.com/a-h/templ"

	"github.com/threechain/playink"
)

// Layout wraps body in the full page frame: head, navbar and footer.
func Layout(s playink.Shell, body templ.Component) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<!DOCTYPE html>`)
		buf.WriteString(`<html lang="` + esc(s.Lang) + `"`)
		buf.WriteString(` data-code-theme="` + esc(s.CodeTheme) + `" data-code-theme-dark="` + esc(s.CodeDarkTheme) + `">`)
		writeHead(buf, s)
		buf.WriteString(`<body>`)
		if err := Navbar(s).Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString(`<div class="main-wrapper">`)
		if body != nil {
			if err := body.Render(ctx, buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</div>`)
		if err := Footer(s.Footer).Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString(`</body></html>`)
		return nil
	})
}

func writeHead(buf *bytes.Buffer, s playink.Shell) {
	m := s.Meta
	buf.WriteString(`<head>`)
	buf.WriteString(`<meta charset="utf-8"/>`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	buf.WriteString(`<meta name="color-scheme" content="light dark"/>`)
	buf.WriteString(`<title>` + esc(m.Title) + `</title>`)
	if m.Description != "" {
		buf.WriteString(`<meta name="description" content="` + esc(m.Description) + `"/>`)
		buf.WriteString(`<meta property="og:description" content="` + esc(m.Description) + `"/>`)
	}
	buf.WriteString(`<meta property="og:title" content="` + esc(m.Title) + `"/>`)
	buf.WriteString(`<meta property="og:type" content="` + esc(m.OGType) + `"/>`)
	if m.URL != "" {
		buf.WriteString(`<link rel="canonical" href="` + esc(m.URL) + `"/>`)
		buf.WriteString(`<meta property="og:url" content="` + esc(m.URL) + `"/>`)
	}
	if s.SocialImage != "" {
		buf.WriteString(`<meta property="og:image" content="` + esc(s.SocialImage) + `"/>`)
		buf.WriteString(`<meta name="twitter:card" content="summary_large_image"/>`)
		buf.WriteString(`<meta name="twitter:image" content="` + esc(s.SocialImage) + `"/>`)
	}
	if s.Favicon != "" {
		buf.WriteString(`<link rel="icon" href="` + esc(s.Favicon) + `"/>`)
	}
	for _, css := range s.Stylesheets {
		buf.WriteString(`<link rel="stylesheet" href="` + esc(css) + `"/>`)
	}
	if s.JSONLD != "" {
		// encoding/json escapes <, > and & so the block cannot close the script.
		buf.WriteString(`<script type="application/ld+json">` + s.JSONLD + `</script>`)
	}
	buf.WriteString(`</head>`)
}

// Navbar renders the brand, the left and right link regions and, for
// multi-locale sites, the locale dropdown.
func Navbar(s playink.Shell) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<nav class="navbar" aria-label="Main"><div class="navbar__inner">`)

		buf.WriteString(`<div class="navbar__items">`)
		buf.WriteString(`<a class="navbar__brand" href="` + esc(s.Brand.Href) + `">`)
		if s.LogoSrc != "" {
			buf.WriteString(`<img class="navbar__logo" src="` + esc(s.LogoSrc) + `" alt="` + esc(s.LogoAlt) + `"/>`)
		}
		buf.WriteString(`<b class="navbar__title">` + esc(s.Brand.Label) + `</b></a>`)
		for _, l := range s.Nav.Left {
			writeLink(buf, "navbar__item navbar__link", l.Href, l.Label, l.External)
		}
		buf.WriteString(`</div>`)

		buf.WriteString(`<div class="navbar__items navbar__items--right">`)
		for _, l := range s.Nav.Right {
			writeLink(buf, "navbar__item navbar__link", l.Href, l.Label, l.External)
		}
		if s.ShowLocaleSelector {
			buf.WriteString(`<div class="navbar__item dropdown dropdown--right"><span class="navbar__link">` + esc(s.Lang) + `</span><ul class="dropdown__menu">`)
			for _, l := range s.Locales {
				class := "dropdown__link"
				if l.Active {
					class += " dropdown__link--active"
				}
				buf.WriteString(`<li><a class="` + class + `" lang="` + esc(l.Locale) + `" href="` + esc(l.Href) + `">` + esc(l.Locale) + `</a></li>`)
			}
			buf.WriteString(`</ul></div>`)
		}
		buf.WriteString(`</div>`)

		buf.WriteString(`</div></nav>`)
		return nil
	})
}

// Footer renders the link columns and the copyright line.
func Footer(f playink.Footer) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		class := "footer"
		if f.Style == "dark" {
			class += " footer--dark"
		}
		buf.WriteString(`<footer class="` + class + `"><div class="container">`)
		if len(f.Columns) > 0 {
			buf.WriteString(`<div class="row footer__links">`)
			for _, col := range f.Columns {
				buf.WriteString(`<div class="col footer__col">`)
				buf.WriteString(`<div class="footer__title">` + esc(col.Title) + `</div>`)
				buf.WriteString(`<ul class="footer__items">`)
				for _, l := range col.Links {
					buf.WriteString(`<li class="footer__item">`)
					writeLink(buf, "footer__link-item", l.Href, l.Label, l.External)
					buf.WriteString(`</li>`)
				}
				buf.WriteString(`</ul></div>`)
			}
			buf.WriteString(`</div>`)
		}
		if f.Copyright != "" {
			buf.WriteString(`<div class="footer__copyright">` + esc(f.Copyright) + `</div>`)
		}
		buf.WriteString(`</div></footer>`)
		return nil
	})
}
