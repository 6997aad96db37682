package views

import (
	"bytes"
	"context"

	"github.com/a-h/templ"

	"github.com/threechain/playink"
	"github.com/threechain/playink/markdown"
)

// FeatureList renders features as a row of uniform cards, in input order.
// base prefixes icon paths. An empty slice renders an empty row.
func FeatureList(base string, features []playink.Feature) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<section class="features"><div class="container"><div class="row">`)
		for _, f := range features {
			if err := Feature(base, f).Render(ctx, buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</div></div></section>`)
		return nil
	})
}

// Feature renders a single card: centred icon, heading and description.
func Feature(base string, f playink.Feature) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<div class="col col--4">`)
		buf.WriteString(`<div class="text--center">`)
		if f.Icon != "" {
			buf.WriteString(`<img class="featureSvg" role="img" alt="" src="` + esc(playink.AssetURL(base, f.Icon)) + `"/>`)
		}
		buf.WriteString(`</div>`)
		buf.WriteString(`<div class="text--center padding-horiz--md">`)
		buf.WriteString(`<h3>` + esc(f.Title) + `</h3>`)
		buf.WriteString(`<p>`)
		if err := markdown.Inline(f.Description).Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString(`</p></div></div>`)
		return nil
	})
}
