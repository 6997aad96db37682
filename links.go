package playink

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// BrokenLinkKind separates the two link policies.
type BrokenLinkKind int

const (
	// BrokenInternalLink is a navbar, footer or doc link to a page that is
	// not built. Governed by OnBrokenLinks.
	BrokenInternalLink BrokenLinkKind = iota
	// BrokenMarkdownLink is a doc link to a markdown file that does not
	// exist. Governed by OnBrokenMarkdownLinks.
	BrokenMarkdownLink
)

func (k BrokenLinkKind) String() string {
	if k == BrokenMarkdownLink {
		return "markdown link"
	}
	return "link"
}

type BrokenLink struct {
	Kind   BrokenLinkKind
	Source string // doc source path or config location
	Target string
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("broken %s %q in %s", b.Kind, b.Target, b.Source)
}

// BrokenLinksError is returned when a "throw" policy matched at least one
// broken link.
type BrokenLinksError struct {
	Links []BrokenLink
}

func (e *BrokenLinksError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "playink: %d broken link(s):", len(e.Links))
	for _, l := range e.Links {
		sb.WriteString("\n - ")
		sb.WriteString(l.String())
	}
	return sb.String()
}

// generatedFiles are the non-page files every build writes under the base.
var generatedFiles = []string{"404.html", "sitemap.xml", "robots.txt", bundledStylesheet, codeStylesheet}

// linkResolver decides whether a path relative to the site base points at
// something the built site contains: a page, a generated file or a file
// of the static tree.
type linkResolver struct {
	docs   *DocSet
	static fs.FS
}

func (r linkResolver) resolves(p string) bool {
	p, _, _ = strings.Cut(p, "#")
	p, _, _ = strings.Cut(p, "?")
	p = strings.TrimPrefix(p, "/")
	if !isFilePath(p) {
		return r.docs.isRoute(p)
	}
	if dir, ok := strings.CutSuffix(p, "index.html"); ok && r.docs.isRoute(dir) {
		return true
	}
	if slices.Contains(generatedFiles, p) {
		return true
	}
	if r.static == nil {
		return false
	}
	_, err := fs.Stat(r.static, staticPath(p))
	return err == nil
}

// CheckLinks reports every broken link of the site: unresolved markdown
// links between docs, absolute doc body links, and navbar and footer
// entries pointing at docs, paths or static files that do not exist.
// Navbar and footer "to" values are relative to the site base.
func CheckLinks(cfg *SiteConfig, docs *DocSet, static fs.FS) []BrokenLink {
	r := linkResolver{docs: docs, static: static}
	broken := append([]BrokenLink(nil), docs.Broken...)

	for _, l := range docs.Links {
		if !r.resolves(l.Path) {
			broken = append(broken, BrokenLink{Kind: BrokenInternalLink, Source: l.Source, Target: l.Target})
		}
	}
	for i, item := range cfg.ThemeConfig.Navbar.Items {
		src := fmt.Sprintf("themeConfig/navbar/items[%d]", i)
		switch {
		case item.Type == "doc":
			if !docs.Has(item.DocID) {
				broken = append(broken, BrokenLink{Kind: BrokenInternalLink, Source: src, Target: "doc:" + item.DocID})
			}
		case item.To != "" && !IsExternal(item.To):
			if !r.resolves(item.To) {
				broken = append(broken, BrokenLink{Kind: BrokenInternalLink, Source: src, Target: item.To})
			}
		}
	}
	for i, group := range cfg.ThemeConfig.Footer.Links {
		for j, item := range group.Items {
			if item.To == "" || IsExternal(item.To) {
				continue
			}
			if !r.resolves(item.To) {
				broken = append(broken, BrokenLink{
					Kind:   BrokenInternalLink,
					Source: fmt.Sprintf("themeConfig/footer/links[%d]/items[%d]", i, j),
					Target: item.To,
				})
			}
		}
	}
	return broken
}

// ApplyLinkPolicies logs, collects or rejects broken links according to the
// configured policies. Links under a warn policy are returned as warnings;
// any link under a throw policy yields a *BrokenLinksError.
func ApplyLinkPolicies(cfg *SiteConfig, broken []BrokenLink, logger zerolog.Logger) ([]string, error) {
	var warnings []string
	var fatal []BrokenLink
	for _, b := range broken {
		policy := cfg.OnBrokenLinks
		if b.Kind == BrokenMarkdownLink {
			policy = cfg.OnBrokenMarkdownLinks
		}
		switch policy {
		case LinkIgnore:
		case LinkLog:
			logger.Info().Str("source", b.Source).Str("target", b.Target).Msg("broken " + b.Kind.String())
		case LinkWarn:
			logger.Warn().Str("source", b.Source).Str("target", b.Target).Msg("broken " + b.Kind.String())
			warnings = append(warnings, b.String())
		default:
			fatal = append(fatal, b)
		}
	}
	if len(fatal) > 0 {
		return warnings, &BrokenLinksError{Links: fatal}
	}
	return warnings, nil
}
