package playink

import "strings"

// bundledStylesheet is the grid and card stylesheet shipped with playink.
const bundledStylesheet = "assets/playink.css"

// ResolveNavbar turns configured navbar items into links, split by
// position. Relative order within each region matches the input.
func ResolveNavbar(items []NavItem, base string) NavLinks {
	var nav NavLinks
	for _, item := range items {
		var link Link
		if item.Type == "doc" {
			link = Link{Label: item.Label, Href: DocPath(base, item.DocID)}
		} else {
			link = resolveTarget(base, item.Label, item.To, item.Href)
		}
		if item.Position == PositionRight {
			nav.Right = append(nav.Right, link)
		} else {
			nav.Left = append(nav.Left, link)
		}
	}
	return nav
}

// ResolveFooter maps footer link groups to columns in configured order.
func ResolveFooter(cfg FooterConfig, base string, year int) Footer {
	footer := Footer{
		Style:     cfg.Style,
		Copyright: expandYear(cfg.Copyright, year),
	}
	for _, group := range cfg.Links {
		col := FooterColumn{Title: group.Title}
		for _, item := range group.Items {
			col.Links = append(col.Links, resolveTarget(base, item.Label, item.To, item.Href))
		}
		footer.Columns = append(footer.Columns, col)
	}
	return footer
}

// DocPath is the URL path of a doc page under base.
func DocPath(base, id string) string {
	return PagePath(base, "docs", id)
}

func resolveTarget(base, label, to, href string) Link {
	switch {
	case href != "":
		return Link{Label: label, Href: href, External: IsExternal(href)}
	case IsExternal(to):
		return Link{Label: label, Href: to, External: true}
	default:
		return Link{Label: label, Href: base + strings.TrimPrefix(to, "/")}
	}
}

// shell assembles the page frame for locale. page is the locale-relative
// path of the page ("" for the homepage, "docs/intro/" for a doc).
func (a *App) shell(locale, page string, meta PageMeta) Shell {
	cfg := &a.Config
	siteBase := cfg.BaseURL
	base := LocaleBase(siteBase, cfg.I18n, locale)

	meta.URL = siteOrigin(cfg) + base + page
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	if meta.Description == "" {
		meta.Description = cfg.Tagline
	}

	s := Shell{
		Lang:      locale,
		Base:      base,
		AssetBase: siteBase,
		SiteTitle: cfg.Title,
		Tagline:   cfg.Tagline,
		Meta:      meta,
		Favicon:   AssetURL(siteBase, cfg.Favicon),
		JSONLD:    WebsiteJsonLD(cfg, locale),

		Brand:   Link{Label: cfg.ThemeConfig.Navbar.Title, Href: base},
		LogoSrc: AssetURL(siteBase, cfg.ThemeConfig.Navbar.Logo.Src),
		LogoAlt: cfg.ThemeConfig.Navbar.Logo.Alt,
		Nav:     ResolveNavbar(cfg.ThemeConfig.Navbar.Items, base),

		ShowLocaleSelector: ShowLocaleSelector(cfg.I18n),
		Footer:             ResolveFooter(cfg.ThemeConfig.Footer, base, a.now().Year()),

		CodeTheme:     cfg.ThemeConfig.Prism.Theme,
		CodeDarkTheme: cfg.ThemeConfig.Prism.DarkTheme,
	}
	s.Stylesheets = append(s.Stylesheets, AssetURL(siteBase, bundledStylesheet), AssetURL(siteBase, codeStylesheet))
	if cfg.Theme.CustomCSS != "" {
		s.Stylesheets = append(s.Stylesheets, AssetURL(siteBase, cfg.Theme.CustomCSS))
	}
	if img := cfg.ThemeConfig.Image; img != "" {
		if IsExternal(img) {
			s.SocialImage = img
		} else {
			s.SocialImage = siteOrigin(cfg) + AssetURL(siteBase, img)
		}
	}
	if s.ShowLocaleSelector {
		for _, l := range cfg.I18n.Locales {
			s.Locales = append(s.Locales, LocaleLink{
				Locale: l,
				Href:   LocaleBase(siteBase, cfg.I18n, l) + page,
				Active: l == locale,
			})
		}
	}
	return s
}
