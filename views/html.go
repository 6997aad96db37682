// Package views holds the templ components that draw the documentation
// site: page frame, homepage, feature cards, docs and the 404 page.
//
// Components buffer their output and write it in one call, so a failed
// child never leaves half a page on the writer.
package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

func component(fn func(ctx context.Context, buf *bytes.Buffer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := fn(ctx, &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func writeLink(buf *bytes.Buffer, class, href, label string, external bool) {
	buf.WriteString(`<a class="` + class + `" href="` + esc(href) + `"`)
	if external {
		buf.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	buf.WriteString(`>` + esc(label) + `</a>`)
}
