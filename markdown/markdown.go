// Package markdown formats short inline markup fragments, such as homepage
// feature descriptions, as escaped HTML.
//
// Supported: **bold**, __bold__, *em*, _em_, `code` and [text](url); a
// trailing ^ after a link, [text](url)^, opens it in a new tab. Everything
// else is escaped. Full documents go through goldmark instead.
package markdown

import (
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Underscore emphasis needs word boundaries so snake_case names survive.
var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`\b__(.+?)__\b`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`\b_([^_]+)_\b`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
)

// Inline returns a templ.Component that writes FormatInline(s).
func Inline(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, FormatInline(s))
		return err
	})
}

// ApplyOutsideTags applies fn only to text segments outside HTML tags, so
// the emphasis patterns never touch attribute values.
func ApplyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// FormatInline escapes s and applies inline formatting.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)

	// Code spans become placeholders first so nothing inside them is
	// formatted, links included.
	var code []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		code = append(code, "<code>"+match[1]+"</code>")
		return "\x00IC" + strconv.Itoa(len(code)-1) + "\x00"
	})

	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		if len(match) < 3 {
			return m
		}
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := ""
		if len(match) >= 4 && match[3] == "^" {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + match[1] + `</a>`
	})

	escaped = ApplyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})

	for i, c := range code {
		escaped = strings.Replace(escaped, "\x00IC"+strconv.Itoa(i)+"\x00", c, 1)
	}
	return escaped
}

// SafeURL validates and escapes a URL for use in an href. Relative and
// fragment URLs pass; absolute URLs must use http, https, mailto or tel.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") || strings.HasPrefix(val, "./") || strings.HasPrefix(val, "../") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
