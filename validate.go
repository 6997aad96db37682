package playink

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ValidationErrors collects every configuration problem found in one pass.
type ValidationErrors struct {
	errors []error
	logger zerolog.Logger
}

func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the collected problems in the order they were found.
func (v *ValidationErrors) Errors() []error {
	return v.errors
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func (v *ValidationErrors) fail(path string, value any, format string, args ...any) {
	err := fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...))
	v.logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
	v.Add(err)
}

func (v *ValidationErrors) ok(path string, value any) {
	v.logger.Debug().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func (v *ValidationErrors) requireString(path, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.fail(path, value, "is required")
		return false
	}
	v.ok(path, value)
	return true
}

func requireOneOf[T comparable](v *ValidationErrors, path string, value T, allowed []T) bool {
	if slices.Contains(allowed, value) {
		v.ok(path, value)
		return true
	}
	v.fail(path, value, "must be one of %v (got %v)", allowed, value)
	return false
}

func (v *ValidationErrors) requireAbsoluteURL(path, value string) bool {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v.fail(path, value, "must be an absolute http(s) URL")
		return false
	}
	v.ok(path, value)
	return true
}

// Validate checks every field of the configuration and returns a
// *ValidationErrors when anything is wrong. Document ids are checked later
// against the content tree. Fields are logged to the global logger.
func (c *SiteConfig) Validate() error {
	return c.validate(log.Logger)
}

func (c *SiteConfig) validate(logger zerolog.Logger) error {
	v := &ValidationErrors{logger: logger}

	v.requireString("title", c.Title)
	v.requireString("organizationName", c.OrganizationName)
	v.requireString("projectName", c.ProjectName)

	if v.requireAbsoluteURL("url", c.URL) {
		u, _ := url.Parse(c.URL)
		if u.Path != "" && u.Path != "/" {
			v.fail("url", c.URL, "must not contain a path, use baseUrl instead")
		}
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		v.fail("baseUrl", c.BaseURL, "must start and end with /")
	} else {
		v.ok("baseUrl", c.BaseURL)
	}

	requireOneOf(v, "onBrokenLinks", c.OnBrokenLinks, linkPolicies)
	requireOneOf(v, "onBrokenMarkdownLinks", c.OnBrokenMarkdownLinks, linkPolicies)

	c.I18n.validate(v, "i18n")

	if c.Docs.EditURL != "" {
		v.requireAbsoluteURL("docs/editUrl", c.Docs.EditURL)
	}

	nav := c.ThemeConfig.Navbar
	for i, item := range nav.Items {
		item.validate(v, fmt.Sprintf("themeConfig/navbar/items[%d]", i))
	}

	footer := c.ThemeConfig.Footer
	requireOneOf(v, "themeConfig/footer/style", footer.Style, []string{"light", "dark"})
	for i, group := range footer.Links {
		gp := fmt.Sprintf("themeConfig/footer/links[%d]", i)
		v.requireString(gp+"/title", group.Title)
		for j, link := range group.Items {
			lp := fmt.Sprintf("%s/items[%d]", gp, j)
			v.requireString(lp+"/label", link.Label)
			if (link.To == "") == (link.Href == "") {
				v.fail(lp, link, "exactly one of to and href is required")
			}
		}
	}

	requireOneOf(v, "themeConfig/prism/theme", c.ThemeConfig.Prism.Theme, CodeThemes)
	requireOneOf(v, "themeConfig/prism/darkTheme", c.ThemeConfig.Prism.DarkTheme, CodeThemes)

	if v.HasErrors() {
		return v
	}
	return nil
}

func (c I18nConfig) validate(v *ValidationErrors, path string) {
	if len(c.Locales) == 0 {
		v.fail(path+"/locales", c.Locales, "at least one locale is required")
		return
	}
	seen := make(map[string]bool, len(c.Locales))
	for i, l := range c.Locales {
		lp := fmt.Sprintf("%s/locales[%d]", path, i)
		if !v.requireString(lp, l) {
			continue
		}
		if err := checkPathSegments(l); err != nil || strings.Contains(l, "/") {
			v.fail(lp, l, "must be a single path segment")
			continue
		}
		if seen[l] {
			v.fail(lp, l, "duplicate locale")
		}
		seen[l] = true
	}
	requireOneOf(v, path+"/defaultLocale", c.DefaultLocale, c.Locales)
}

func (n NavItem) validate(v *ValidationErrors, path string) {
	v.requireString(path+"/label", n.Label)
	requireOneOf(v, path+"/position", n.Position, []string{PositionLeft, PositionRight})
	switch n.Type {
	case "doc":
		v.requireString(path+"/docId", n.DocID)
	case "":
		if (n.To == "") == (n.Href == "") {
			v.fail(path, n, "exactly one of to and href is required")
		}
	default:
		v.fail(path+"/type", n.Type, "must be doc or empty")
	}
}
