package playink

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemapXML lists every page of every locale.
func (a *App) sitemapXML(docs *DocSet) ([]byte, error) {
	origin := siteOrigin(&a.Config)
	var urls []sitemapURL
	for _, locale := range a.Config.I18n.Locales {
		base := LocaleBase(a.Config.BaseURL, a.Config.I18n, locale)
		urls = append(urls, sitemapURL{Loc: origin + base})
		for _, d := range docs.List() {
			urls = append(urls, sitemapURL{Loc: origin + DocPath(base, d.ID)})
		}
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(sitemap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *App) robotsTxt() []byte {
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s%ssitemap.xml\n",
		siteOrigin(&a.Config), a.Config.BaseURL))
}
