package playink

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// LinkPolicy selects how the builder reacts to a broken link.
type LinkPolicy string

const (
	LinkIgnore LinkPolicy = "ignore"
	LinkLog    LinkPolicy = "log"
	LinkWarn   LinkPolicy = "warn"
	LinkThrow  LinkPolicy = "throw"
)

var linkPolicies = []LinkPolicy{LinkIgnore, LinkLog, LinkWarn, LinkThrow}

// Navbar item positions.
const (
	PositionLeft  = "left"
	PositionRight = "right"
)

// SiteConfig is the site-wide, build-time description of the documentation
// site: metadata, navigation, footer, theme and i18n.
type SiteConfig struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Favicon string `yaml:"favicon"`

	URL     string `yaml:"url"`     // production origin, e.g. https://play-ink.vercel.app
	BaseURL string `yaml:"baseUrl"` // path the site is served under (default "/")

	OrganizationName string `yaml:"organizationName"`
	ProjectName      string `yaml:"projectName"`

	OnBrokenLinks         LinkPolicy `yaml:"onBrokenLinks"`         // default throw
	OnBrokenMarkdownLinks LinkPolicy `yaml:"onBrokenMarkdownLinks"` // default warn

	I18n        I18nConfig  `yaml:"i18n"`
	Docs        DocsConfig  `yaml:"docs"`
	Theme       ThemeConfig `yaml:"theme"`
	ThemeConfig ThemeOpts   `yaml:"themeConfig"`
}

type I18nConfig struct {
	DefaultLocale string   `yaml:"defaultLocale"`
	Locales       []string `yaml:"locales"`
}

type DocsConfig struct {
	// EditURL is prefixed to "docs/<source path>" to build "Edit this page" links.
	EditURL string `yaml:"editUrl"`
}

type ThemeConfig struct {
	CustomCSS string `yaml:"customCss"`
}

type ThemeOpts struct {
	Image  string       `yaml:"image"` // social card
	Navbar NavbarConfig `yaml:"navbar"`
	Footer FooterConfig `yaml:"footer"`
	Prism  PrismConfig  `yaml:"prism"`
}

type NavbarConfig struct {
	Title string    `yaml:"title"`
	Logo  Logo      `yaml:"logo"`
	Items []NavItem `yaml:"items"`
}

type Logo struct {
	Alt string `yaml:"alt"`
	Src string `yaml:"src"`
}

// NavItem is either a doc reference (Type "doc" with DocID) or a link with
// exactly one of To (internal path) and Href (external URL).
type NavItem struct {
	Type     string `yaml:"type"`
	DocID    string `yaml:"docId"`
	To       string `yaml:"to"`
	Href     string `yaml:"href"`
	Label    string `yaml:"label"`
	Position string `yaml:"position"`
}

type FooterConfig struct {
	Style     string        `yaml:"style"`
	Links     []FooterGroup `yaml:"links"`
	Copyright string        `yaml:"copyright"` // "{year}" expands to the build year
}

type FooterGroup struct {
	Title string       `yaml:"title"`
	Items []FooterLink `yaml:"items"`
}

type FooterLink struct {
	Label string `yaml:"label"`
	To    string `yaml:"to"`
	Href  string `yaml:"href"`
}

// PrismConfig names the light and dark code colour schemes.
type PrismConfig struct {
	Theme     string `yaml:"theme"`
	DarkTheme string `yaml:"darkTheme"`
}

// CodeThemes lists the colour scheme names accepted by PrismConfig.
var CodeThemes = []string{
	"github", "dracula", "duotoneDark", "duotoneLight", "nightOwl", "nightOwlLight",
	"oceanicNext", "okaidia", "oneDark", "oneLight", "palenight", "shadesOfPurple",
	"synthwave84", "ultramin", "vsDark", "vsLight",
}

func (c *SiteConfig) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "/"
	}
	if c.OnBrokenLinks == "" {
		c.OnBrokenLinks = LinkThrow
	}
	if c.OnBrokenMarkdownLinks == "" {
		c.OnBrokenMarkdownLinks = LinkWarn
	}
	if len(c.I18n.Locales) == 0 {
		if c.I18n.DefaultLocale == "" {
			c.I18n.DefaultLocale = "en"
		}
		c.I18n.Locales = []string{c.I18n.DefaultLocale}
	}
	if c.I18n.DefaultLocale == "" {
		c.I18n.DefaultLocale = c.I18n.Locales[0]
	}
	if c.ThemeConfig.Navbar.Title == "" {
		c.ThemeConfig.Navbar.Title = c.Title
	}
	for i := range c.ThemeConfig.Navbar.Items {
		if c.ThemeConfig.Navbar.Items[i].Position == "" {
			c.ThemeConfig.Navbar.Items[i].Position = PositionLeft
		}
	}
	if c.ThemeConfig.Footer.Style == "" {
		c.ThemeConfig.Footer.Style = "light"
	}
	if c.ThemeConfig.Prism.Theme == "" {
		c.ThemeConfig.Prism.Theme = "github"
	}
	if c.ThemeConfig.Prism.DarkTheme == "" {
		c.ThemeConfig.Prism.DarkTheme = "dracula"
	}
}

// DefaultConfig returns the Play ink! course site configuration.
func DefaultConfig() SiteConfig {
	cfg := SiteConfig{
		Title:   "Play ink! together",
		Tagline: "Build with Rust and Substrate",
		Favicon: "img/favicon.ico",

		URL:     "https://play-ink.vercel.app/",
		BaseURL: "/",

		OrganizationName: "threechain",
		ProjectName:      "play-ink",

		OnBrokenLinks:         LinkThrow,
		OnBrokenMarkdownLinks: LinkWarn,

		I18n: I18nConfig{
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},
		Docs: DocsConfig{
			EditURL: "https://github.com/facebook/docusaurus/tree/main/packages/create-docusaurus/templates/shared/",
		},
		Theme: ThemeConfig{CustomCSS: "css/custom.css"},
		ThemeConfig: ThemeOpts{
			Image: "img/docusaurus-social-card.jpg",
			Navbar: NavbarConfig{
				Title: "Play ink!",
				Logo:  Logo{Alt: "Play ink! Logo", Src: "img/logo.svg"},
				Items: []NavItem{
					{Type: "doc", DocID: "intro", Position: PositionLeft, Label: "Course Intro"},
					{Href: "https://github.com/kaichaosun/play-ink", Label: "GitHub", Position: PositionRight},
				},
			},
			Footer: FooterConfig{
				Style: "dark",
				Links: []FooterGroup{
					{Title: "Docs", Items: []FooterLink{
						{Label: "Documentation", To: "https://use.ink/"},
					}},
					{Title: "Community", Items: []FooterLink{
						{Label: "Stack Exchange", Href: "https://substrate.stackexchange.com/"},
						{Label: "Twitter", Href: "https://twitter.com/ink_lang"},
					}},
					{Title: "More", Items: []FooterLink{
						{Label: "GitHub", Href: "https://github.com/paritytech/ink"},
					}},
				},
				Copyright: "Copyright © {year} Kaichao Sun.",
			},
			Prism: PrismConfig{Theme: "github", DarkTheme: "dracula"},
		},
	}
	return cfg
}

// LoadConfig reads a YAML site configuration, applies defaults and validates
// it. Unknown keys are rejected.
func LoadConfig(path string) (SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("playink: read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML site configuration bytes; see LoadConfig.
func ParseConfig(data []byte) (SiteConfig, error) {
	var cfg SiteConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("playink: decode config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// Copyright returns the footer copyright line for the given build time.
func (c *SiteConfig) Copyright(now time.Time) string {
	return expandYear(c.ThemeConfig.Footer.Copyright, now.Year())
}

// MarshalZerologObject logs the identifying part of the configuration.
func (c *SiteConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("title", c.Title).
		Str("url", c.URL).
		Str("baseUrl", c.BaseURL).
		Strs("locales", c.I18n.Locales).
		Str("onBrokenLinks", string(c.OnBrokenLinks)).
		Str("onBrokenMarkdownLinks", string(c.OnBrokenMarkdownLinks))
}
