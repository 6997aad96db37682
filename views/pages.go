package views

import (
	"bytes"
	"context"

	"github.com/a-h/templ"

	"github.com/threechain/playink"
)

// Views returns the default set of page components.
func Views() playink.ViewFuncs {
	return playink.ViewFuncs{
		Home:     Home,
		Doc:      Doc,
		NotFound: NotFound,
	}
}

// Home is the landing page: hero banner followed by the feature cards.
func Home(s playink.Shell, features []playink.Feature, start playink.Link) templ.Component {
	return Layout(s, component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<header class="hero hero--primary heroBanner"><div class="container">`)
		buf.WriteString(`<h1 class="hero__title">` + esc(s.SiteTitle) + `</h1>`)
		if s.Tagline != "" {
			buf.WriteString(`<p class="hero__subtitle">` + esc(s.Tagline) + `</p>`)
		}
		if start.Href != "" {
			buf.WriteString(`<div class="buttons">`)
			writeLink(buf, "button button--secondary button--lg", start.Href, start.Label, start.External)
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`</div></header>`)
		buf.WriteString(`<main>`)
		if err := FeatureList(s.AssetBase, features).Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString(`</main>`)
		return nil
	}))
}

// Doc renders a documentation page with its sidebar.
func Doc(s playink.Shell, doc playink.Doc, sidebar []playink.Doc) templ.Component {
	return Layout(s, component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<div class="docs-wrapper"><aside class="docs-sidebar"><ul class="menu__list">`)
		for _, d := range sidebar {
			class := "menu__link"
			if d.ID == doc.ID {
				class += " menu__link--active"
			}
			buf.WriteString(`<li class="menu__list-item">`)
			writeLink(buf, class, playink.DocPath(s.Base, d.ID), d.Title, false)
			buf.WriteString(`</li>`)
		}
		buf.WriteString(`</ul></aside>`)
		buf.WriteString(`<main class="docs-main"><article class="markdown">`)
		// Doc HTML comes from goldmark with raw HTML disabled.
		buf.WriteString(doc.HTML)
		buf.WriteString(`</article>`)
		if doc.EditURL != "" {
			buf.WriteString(`<div class="theme-edit-this-page">`)
			writeLink(buf, "edit-link", doc.EditURL, "Edit this page", true)
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`</main></div>`)
		return nil
	}))
}

// NotFound is the 404 page.
func NotFound(s playink.Shell) templ.Component {
	return Layout(s, component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<main class="container margin-vert--xl"><h1 class="hero__title">Page Not Found</h1>`)
		buf.WriteString(`<p>We could not find what you were looking for.</p>`)
		buf.WriteString(`<p>`)
		writeLink(buf, "button button--primary", s.Base, "Back to "+s.SiteTitle, false)
		buf.WriteString(`</p></main>`)
		return nil
	}))
}
