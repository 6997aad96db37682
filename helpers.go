package playink

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash
// when segments are given.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AssetURL joins a root-relative base ("/" or "/docs/") with a static asset
// path. Absolute URLs are returned unchanged.
func AssetURL(base, asset string) string {
	if asset == "" || IsExternal(asset) {
		return asset
	}
	return base + strings.TrimPrefix(asset, "/")
}

// PagePath joins base with a page path and keeps directory style URLs.
func PagePath(base string, segments ...string) string {
	p := path.Join(append([]string{base}, segments...)...)
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// IsExternal reports whether s carries a scheme or is protocol relative.
func IsExternal(s string) bool {
	if strings.HasPrefix(s, "//") {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(cfg *SiteConfig, lang string) string {
	data := map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       cfg.Title,
		"url":        BuildURL(siteOrigin(cfg), cfg.BaseURL),
		"inLanguage": lang,
	}
	if cfg.Tagline != "" {
		data["description"] = cfg.Tagline
	}
	if cfg.OrganizationName != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.OrganizationName,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func siteOrigin(cfg *SiteConfig) string {
	return strings.TrimSuffix(cfg.URL, "/")
}

func expandYear(s string, year int) string {
	return strings.ReplaceAll(s, "{year}", strconv.Itoa(year))
}
