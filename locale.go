package playink

import "slices"

// ActiveLocale returns requested when it is configured, otherwise the
// default locale.
func ActiveLocale(c I18nConfig, requested string) string {
	if requested != "" && slices.Contains(c.Locales, requested) {
		return requested
	}
	return c.DefaultLocale
}

// ShowLocaleSelector reports whether the navbar offers a locale dropdown.
// A single-locale site renders none.
func ShowLocaleSelector(c I18nConfig) bool {
	return len(c.Locales) > 1
}

// LocaleBase returns the path prefix pages of locale are served under. The
// default locale lives at baseURL, the others at baseURL + locale + "/".
func LocaleBase(baseURL string, c I18nConfig, locale string) string {
	if locale == c.DefaultLocale {
		return baseURL
	}
	return baseURL + locale + "/"
}
