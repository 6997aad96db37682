package playink

// Feature is one homepage highlight card.
type Feature struct {
	Title string
	// Icon references an image under the static root, e.g. "img/undraw_docusaurus_tree.svg".
	Icon string
	// Description is an inline markup fragment (bold, italic, code, links).
	Description string
}

// Doc is a single rendered documentation page.
type Doc struct {
	ID          string
	Title       string
	Description string
	Position    int    // sidebar_position, 0 when unset
	Source      string // path relative to the content root, e.g. "intro.md"
	HTML        string
	EditURL     string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Link is a resolved navigation target.
type Link struct {
	Label    string
	Href     string
	External bool
}

// NavLinks holds the navbar entries split by region, each in configured order.
type NavLinks struct {
	Left  []Link
	Right []Link
}

type FooterColumn struct {
	Title string
	Links []Link
}

type Footer struct {
	Style     string
	Columns   []FooterColumn
	Copyright string
}

// LocaleLink points at the same page in another configured locale.
type LocaleLink struct {
	Locale string
	Href   string
	Active bool
}

// Shell is everything a view needs to draw the page frame: head tags,
// navbar and footer.
type Shell struct {
	Lang string
	// Base is the path prefix for the active locale, always ending in "/".
	Base string
	// AssetBase prefixes static assets, which are shared by all locales.
	AssetBase string

	SiteTitle string
	Tagline   string
	Meta      PageMeta

	Favicon     string
	Stylesheets []string
	SocialImage string // absolute URL
	JSONLD      string

	Brand   Link
	LogoSrc string
	LogoAlt string
	Nav     NavLinks

	ShowLocaleSelector bool
	Locales            []LocaleLink

	Footer Footer

	CodeTheme     string
	CodeDarkTheme string
}
