package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"text *italic* more", "text <em>italic</em> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineKeepsSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"use ink_env and ink_lang crates", "use ink_env and ink_lang crates"},
		{"call set_code_hash from a__b__c", "call set_code_hash from a__b__c"},
		{"the _new_ ink_storage layout", "the <em>new</em> ink_storage layout"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineNested(t *testing.T) {
	got := FormatInline("**bold *italic* text**")
	want := "<strong>bold <em>italic</em> text</strong>"
	if got != want {
		t.Errorf("FormatInline = %q, want %q", got, want)
	}
}

func TestFormatInlineEscapesMarkup(t *testing.T) {
	got := FormatInline(`<script>alert("x")</script> & more`)
	if strings.Contains(got, "<script>") {
		t.Errorf("FormatInline should escape raw HTML, got %q", got)
	}
	if !strings.Contains(got, "&amp; more") {
		t.Errorf("FormatInline should escape ampersands, got %q", got)
	}
}

func TestFormatInlinePlainTextUnchanged(t *testing.T) {
	input := "Primer course provides the basic resources to get familiar with ink! tools."
	if got := FormatInline(input); got != input {
		t.Errorf("FormatInline(%q) = %q", input, got)
	}
}

func TestFormatInlineLinkWithUnderscoresInURL(t *testing.T) {
	got := FormatInline("[docs](https://example.com/some_long_path)")
	want := `<a href="https://example.com/some_long_path">docs</a>`
	if got != want {
		t.Errorf("FormatInline = %q, want %q", got, want)
	}
}

func TestFormatInlineLinkNewTab(t *testing.T) {
	got := FormatInline("see [ink!](https://use.ink/)^ now")
	if !strings.Contains(got, `target="_blank"`) || !strings.Contains(got, `rel="noopener noreferrer"`) {
		t.Errorf("expected new-tab attributes, got %q", got)
	}
	if strings.Contains(got, "^") {
		t.Errorf("caret should be consumed, got %q", got)
	}
}

func TestFormatInlineUnsafeLinkDropsHref(t *testing.T) {
	got := FormatInline("[click](javascript:alert(1))")
	if strings.Contains(got, "href") {
		t.Errorf("unsafe scheme must not produce a link, got %q", got)
	}
}

func TestFormatInlineCode(t *testing.T) {
	got := FormatInline("run `cargo contract **build**` first")
	want := "run <code>cargo contract **build**</code> first"
	if got != want {
		t.Errorf("FormatInline = %q, want %q", got, want)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/docs/intro/", "/docs/intro/"},
		{"#section", "#section"},
		{"../intro/", "../intro/"},
		{"https://use.ink/", "https://use.ink/"},
		{"mailto:hi@example.com", "mailto:hi@example.com"},
		{"javascript:alert(1)", ""},
		{"ftp://example.com", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.in); got != tt.want {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInlineComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Inline("**ink!**").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.String(); got != "<strong>ink!</strong>" {
		t.Errorf("Inline rendered %q", got)
	}
}
