package playink_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/threechain/playink"
)

func serveSite(t *testing.T, cfg playink.SiteConfig) http.Handler {
	t.Helper()
	return newSite(t, cfg, siteContent(), siteStatic(t), t.TempDir(), "").Handler()
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServeHome(t *testing.T) {
	rec := get(serveSite(t, playink.DefaultConfig()), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("security headers not set")
	}
	if !strings.Contains(rec.Body.String(), "<h3>Use case driven</h3>") {
		t.Error("feature cards missing")
	}
}

func TestServeDoc(t *testing.T) {
	h := serveSite(t, playink.DefaultConfig())

	rec := get(h, "/docs/primer/erc20/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<title>ERC-20 | Play ink! together</title>") {
		t.Error("doc page not rendered")
	}

	rec = get(h, "/docs/intro")
	if rec.Code != http.StatusMovedPermanently || rec.Header().Get("Location") != "/docs/intro/" {
		t.Errorf("got %d %q, want redirect to /docs/intro/", rec.Code, rec.Header().Get("Location"))
	}
}

func TestServeNotFound(t *testing.T) {
	h := serveSite(t, playink.DefaultConfig())
	for _, target := range []string{"/docs/ghost/", "/nowhere.png"} {
		rec := get(h, target)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", target, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), "Page Not Found") {
			t.Errorf("%s: expected the 404 page", target)
		}
	}
}

func TestServeStaticAndGenerated(t *testing.T) {
	h := serveSite(t, playink.DefaultConfig())

	if rec := get(h, "/css/custom.css"); rec.Code != http.StatusOK || rec.Body.String() != ":root{}" {
		t.Errorf("static css = %d %q", rec.Code, rec.Body.String())
	}
	if rec := get(h, "/assets/playink.css"); rec.Code != http.StatusOK || rec.Body.Len() == 0 {
		t.Errorf("bundled css = %d", rec.Code)
	}
	if rec := get(h, "/assets/code.css"); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), ".chroma") {
		t.Errorf("code css = %d", rec.Code)
	}
	rec := get(h, "/sitemap.xml")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<loc>https://play-ink.vercel.app/docs/intro/</loc>") {
		t.Errorf("sitemap = %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Cache-Control") != "no-cache" {
		t.Errorf("Cache-Control = %q", rec.Header().Get("Cache-Control"))
	}
	if rec := get(h, "/robots.txt"); !strings.Contains(rec.Body.String(), "User-agent: *") {
		t.Errorf("robots.txt = %q", rec.Body.String())
	}
}

func TestServeBaseURLAndLocale(t *testing.T) {
	cfg := playink.DefaultConfig()
	cfg.BaseURL = "/course/"
	cfg.I18n.Locales = []string{"en", "fr"}
	h := serveSite(t, cfg)

	rec := get(h, "/course/fr/docs/intro/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<html lang="fr"`) {
		t.Error("expected fr page")
	}
	if !strings.Contains(body, `href="/course/fr/docs/primer/erc20/"`) {
		t.Error("links should stay under the locale base")
	}
	if rec := get(h, "/course/img/logo.svg"); rec.Code != http.StatusOK {
		t.Errorf("static under base = %d", rec.Code)
	}
}
