package playink

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestActiveLocale(t *testing.T) {
	single := I18nConfig{DefaultLocale: "en", Locales: []string{"en"}}
	if got := ActiveLocale(single, ""); got != "en" {
		t.Errorf("ActiveLocale = %q, want en", got)
	}
	if got := ActiveLocale(single, "fr"); got != "en" {
		t.Errorf("unconfigured locale should fall back, got %q", got)
	}
	if ShowLocaleSelector(single) {
		t.Error("single-locale site must not render a locale selector")
	}

	multi := I18nConfig{DefaultLocale: "en", Locales: []string{"en", "zh-Hans"}}
	if got := ActiveLocale(multi, "zh-Hans"); got != "zh-Hans" {
		t.Errorf("ActiveLocale = %q, want zh-Hans", got)
	}
	if !ShowLocaleSelector(multi) {
		t.Error("multi-locale site should render a locale selector")
	}
	if got := LocaleBase("/", multi, "en"); got != "/" {
		t.Errorf("LocaleBase(default) = %q", got)
	}
	if got := LocaleBase("/course/", multi, "zh-Hans"); got != "/course/zh-Hans/" {
		t.Errorf("LocaleBase(zh-Hans) = %q", got)
	}
}

func TestResolveNavbarKeepsOrderPerRegion(t *testing.T) {
	items := []NavItem{
		{Href: "https://github.com/x", Label: "GitHub", Position: PositionRight},
		{Type: "doc", DocID: "intro", Label: "Course Intro", Position: PositionLeft},
		{To: "/docs/primer/", Label: "Primer", Position: PositionLeft},
		{Href: "https://twitter.com/ink_lang", Label: "Twitter", Position: PositionRight},
	}
	nav := ResolveNavbar(items, "/course/")

	wantLeft := []Link{
		{Label: "Course Intro", Href: "/course/docs/intro/"},
		{Label: "Primer", Href: "/course/docs/primer/"},
	}
	wantRight := []Link{
		{Label: "GitHub", Href: "https://github.com/x", External: true},
		{Label: "Twitter", Href: "https://twitter.com/ink_lang", External: true},
	}
	if diff := cmp.Diff(wantLeft, nav.Left); diff != "" {
		t.Errorf("Left mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRight, nav.Right); diff != "" {
		t.Errorf("Right mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFooter(t *testing.T) {
	cfg := DefaultConfig()
	footer := ResolveFooter(cfg.ThemeConfig.Footer, "/", 2023)

	if footer.Style != "dark" {
		t.Errorf("Style = %q", footer.Style)
	}
	if footer.Copyright != "Copyright © 2023 Kaichao Sun." {
		t.Errorf("Copyright = %q", footer.Copyright)
	}
	titles := []string{"Docs", "Community", "More"}
	if len(footer.Columns) != len(titles) {
		t.Fatalf("columns = %+v", footer.Columns)
	}
	for i, title := range titles {
		if footer.Columns[i].Title != title {
			t.Errorf("column %d = %q, want %q", i, footer.Columns[i].Title, title)
		}
	}
	doc := footer.Columns[0].Links[0]
	if doc.Href != "https://use.ink/" || !doc.External {
		t.Errorf("absolute to should be external: %+v", doc)
	}
	community := footer.Columns[1].Links
	if len(community) != 2 || community[0].Label != "Stack Exchange" || community[1].Label != "Twitter" {
		t.Errorf("community links = %+v", community)
	}
}

func TestShell(t *testing.T) {
	a := &App{
		Config: DefaultConfig(),
		now:    func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
	s := a.shell("en", "docs/intro/", PageMeta{Title: "Course Intro | Play ink! together"})

	if s.Lang != "en" || s.Base != "/" {
		t.Errorf("Lang/Base = %q/%q", s.Lang, s.Base)
	}
	if s.ShowLocaleSelector || len(s.Locales) != 0 {
		t.Error("single-locale site should not list locales")
	}
	if s.Meta.URL != "https://play-ink.vercel.app/docs/intro/" {
		t.Errorf("canonical = %q", s.Meta.URL)
	}
	if s.Meta.Description != "Build with Rust and Substrate" {
		t.Errorf("description should default to tagline, got %q", s.Meta.Description)
	}
	if s.SocialImage != "https://play-ink.vercel.app/img/docusaurus-social-card.jpg" {
		t.Errorf("SocialImage = %q", s.SocialImage)
	}
	if s.Favicon != "/img/favicon.ico" || s.LogoSrc != "/img/logo.svg" {
		t.Errorf("asset paths = %q, %q", s.Favicon, s.LogoSrc)
	}
	want := []string{"/assets/playink.css", "/assets/code.css", "/css/custom.css"}
	if diff := cmp.Diff(want, s.Stylesheets); diff != "" {
		t.Errorf("Stylesheets mismatch (-want +got):\n%s", diff)
	}
	if s.Footer.Copyright != "Copyright © 2025 Kaichao Sun." {
		t.Errorf("Copyright = %q", s.Footer.Copyright)
	}
	if s.CodeTheme != "github" || s.CodeDarkTheme != "dracula" {
		t.Errorf("code themes = %q/%q", s.CodeTheme, s.CodeDarkTheme)
	}
	if !strings.Contains(s.JSONLD, `"inLanguage":"en"`) {
		t.Errorf("JSONLD = %s", s.JSONLD)
	}
}

func TestShellMultiLocale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.I18n.Locales = []string{"en", "zh-Hans"}
	a := &App{Config: cfg, now: time.Now}

	s := a.shell("zh-Hans", "docs/intro/", PageMeta{Title: "x"})
	if s.Base != "/zh-Hans/" || s.AssetBase != "/" {
		t.Errorf("Base/AssetBase = %q/%q", s.Base, s.AssetBase)
	}
	if s.Nav.Left[0].Href != "/zh-Hans/docs/intro/" {
		t.Errorf("doc link = %q", s.Nav.Left[0].Href)
	}
	if !s.ShowLocaleSelector || len(s.Locales) != 2 {
		t.Fatalf("locales = %+v", s.Locales)
	}
	if s.Locales[0].Href != "/docs/intro/" || s.Locales[0].Active {
		t.Errorf("en link = %+v", s.Locales[0])
	}
	if s.Locales[1].Href != "/zh-Hans/docs/intro/" || !s.Locales[1].Active {
		t.Errorf("zh-Hans link = %+v", s.Locales[1])
	}
}

func TestAssetURLAndPagePath(t *testing.T) {
	if got := AssetURL("/course/", "/img/logo.svg"); got != "/course/img/logo.svg" {
		t.Errorf("AssetURL = %q", got)
	}
	if got := AssetURL("/", "https://cdn.example.com/a.png"); got != "https://cdn.example.com/a.png" {
		t.Errorf("AssetURL external = %q", got)
	}
	if got := PagePath("/", "docs", "primer/erc20"); got != "/docs/primer/erc20/" {
		t.Errorf("PagePath = %q", got)
	}
	if got := BuildURL("https://play-ink.vercel.app", "docs", "intro"); got != "https://play-ink.vercel.app/docs/intro/" {
		t.Errorf("BuildURL = %q", got)
	}
}
