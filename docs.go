package playink

import (
	"bytes"
	"fmt"
	"io/fs"
	"math"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// docMatter is the YAML front matter accepted at the top of a doc.
type docMatter struct {
	ID              string `yaml:"id"`
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	SidebarPosition int    `yaml:"sidebar_position"`
}

// DocSet is the loaded content tree. Docs are kept in sidebar order.
type DocSet struct {
	docs     []Doc
	byID     map[string]int
	bySource map[string]int

	// Broken lists markdown links inside doc bodies that did not resolve.
	Broken []BrokenLink
	// Links lists the absolute links into the site found in doc bodies.
	// They are checked against pages and static files by CheckLinks.
	Links []DocLink
}

// DocLink is an absolute link from a doc body into the site.
type DocLink struct {
	Source string // doc source path
	Target string // link as written
	Path   string // target relative to the site base
}

// Get returns the doc with the given id.
func (s *DocSet) Get(id string) (Doc, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Doc{}, false
	}
	return s.docs[i], true
}

// Has reports whether a doc with id exists.
func (s *DocSet) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// List returns all docs in sidebar order.
func (s *DocSet) List() []Doc {
	return s.docs
}

// Len returns the number of docs.
func (s *DocSet) Len() int {
	return len(s.docs)
}

// Code blocks are highlighted with CSS classes; the colours come from the
// code stylesheet so light and dark schemes can both apply.
var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

var titleCaser = cases.Title(language.English)

type parsedDoc struct {
	doc  Doc
	src  []byte
	root ast.Node
}

// LoadDocs reads every *.md file in fsys, parses its front matter, rewrites
// links between docs and renders the bodies to HTML. editURL, when set,
// is used to build "Edit this page" links. baseURL is the site base path,
// used to recognise absolute links that point into the site.
func LoadDocs(fsys fs.FS, editURL, baseURL string) (*DocSet, error) {
	var parsed []*parsedDoc
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		pd, err := parseDoc(p, raw)
		if err != nil {
			return err
		}
		if editURL != "" {
			pd.doc.EditURL = strings.TrimSuffix(editURL, "/") + "/docs/" + p
		}
		parsed = append(parsed, pd)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("playink: load docs: %w", err)
	}

	set := &DocSet{
		byID:     make(map[string]int, len(parsed)),
		bySource: make(map[string]int, len(parsed)),
	}
	for i, pd := range parsed {
		if j, dup := set.byID[pd.doc.ID]; dup {
			return nil, fmt.Errorf("playink: load docs: duplicate doc id %q in %s and %s",
				pd.doc.ID, parsed[j].doc.Source, pd.doc.Source)
		}
		set.byID[pd.doc.ID] = i
		set.bySource[pd.doc.Source] = i
	}

	for _, pd := range parsed {
		set.rewriteLinks(pd, parsed, baseURL)
		var buf bytes.Buffer
		if err := markdownEngine.Renderer().Render(&buf, pd.src, pd.root); err != nil {
			return nil, fmt.Errorf("playink: render %s: %w", pd.doc.Source, err)
		}
		pd.doc.HTML = buf.String()
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		pi, pj := sidebarKey(parsed[i].doc), sidebarKey(parsed[j].doc)
		if pi != pj {
			return pi < pj
		}
		return parsed[i].doc.Title < parsed[j].doc.Title
	})
	for i, pd := range parsed {
		set.docs = append(set.docs, pd.doc)
		set.byID[pd.doc.ID] = i
		set.bySource[pd.doc.Source] = i
	}
	return set, nil
}

func sidebarKey(d Doc) int {
	if d.Position == 0 {
		return math.MaxInt
	}
	return d.Position
}

func parseDoc(source string, raw []byte) (*parsedDoc, error) {
	var fm docMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("front matter %s: %w", source, err)
	}

	dir := path.Dir(source)
	id := strings.TrimSuffix(source, path.Ext(source))
	if fm.ID != "" {
		id = fm.ID
		if dir != "." {
			id = dir + "/" + fm.ID
		}
	}
	if err := checkPathSegments(id); err != nil {
		return nil, fmt.Errorf("doc id %q in %s: %w", id, source, err)
	}

	root := markdownEngine.Parser().Parse(text.NewReader(body))
	title := fm.Title
	if title == "" {
		title = firstHeading(root, body)
	}
	if title == "" {
		name := strings.NewReplacer("-", " ", "_", " ").Replace(path.Base(id))
		title = titleCaser.String(name)
	}

	return &parsedDoc{
		doc: Doc{
			ID:          id,
			Title:       title,
			Description: fm.Description,
			Position:    fm.SidebarPosition,
			Source:      source,
		},
		src:  body,
		root: root,
	}, nil
}

func firstHeading(root ast.Node, src []byte) string {
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			return strings.TrimSpace(nodeText(h, src))
		}
	}
	return ""
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// rewriteLinks points links to other markdown files at the rendered doc
// URL (relative, so it works under any base or locale). Unresolved
// markdown links go to s.Broken, absolute site links to s.Links.
func (s *DocSet) rewriteLinks(pd *parsedDoc, all []*parsedDoc, baseURL string) {
	_ = ast.Walk(pd.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		link, ok := n.(*ast.Link)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		dest := string(link.Destination)
		if dest == "" || strings.HasPrefix(dest, "#") || IsExternal(dest) {
			return ast.WalkContinue, nil
		}
		target, frag, _ := strings.Cut(dest, "#")
		if frag != "" {
			frag = "#" + frag
		}

		if strings.EqualFold(path.Ext(target), ".md") {
			var resolved string
			if strings.HasPrefix(target, "/") {
				resolved = path.Clean(strings.TrimPrefix(target, "/"))
			} else {
				resolved = path.Join(path.Dir(pd.doc.Source), target)
			}
			i, ok := s.bySource[resolved]
			if !ok {
				s.Broken = append(s.Broken, BrokenLink{Kind: BrokenMarkdownLink, Source: pd.doc.Source, Target: dest})
				return ast.WalkContinue, nil
			}
			link.Destination = []byte(relativeURL(docRoute(pd.doc.ID), docRoute(all[i].doc.ID)) + frag)
			return ast.WalkContinue, nil
		}

		if strings.HasPrefix(target, "/") {
			s.Links = append(s.Links, DocLink{Source: pd.doc.Source, Target: dest, Path: trimBase(target, baseURL)})
		}
		return ast.WalkContinue, nil
	})
}

// trimBase makes an absolute site path relative to base. Both "/play/x"
// and "/play" are under base "/play/".
func trimBase(target, base string) string {
	if rest, ok := strings.CutPrefix(target, base); ok {
		return rest
	}
	if target == strings.TrimSuffix(base, "/") {
		return ""
	}
	return target
}

// checkPathSegments rejects ids and locale codes that would not map to a
// directory inside the output root.
func checkPathSegments(p string) error {
	if p == "" {
		return fmt.Errorf("must not be empty")
	}
	if strings.HasPrefix(p, "/") || strings.Contains(p, `\`) {
		return fmt.Errorf("must be a relative slash separated path")
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "":
			return fmt.Errorf("must not contain empty path segments")
		case ".", "..":
			return fmt.Errorf("must not contain %q segments", seg)
		}
	}
	return nil
}

// isRoute reports whether p (relative to the site base, leading slash) is
// a page the builder produces.
func (s *DocSet) isRoute(p string) bool {
	p = strings.Trim(p, "/")
	if p == "" {
		return true
	}
	id, ok := strings.CutPrefix(p, "docs/")
	return ok && s.Has(id)
}

func isFilePath(p string) bool {
	return path.Ext(p) != ""
}

func docRoute(id string) string {
	return "docs/" + id + "/"
}

// relativeURL returns the path from page directory from to page directory to.
func relativeURL(from, to string) string {
	rel, err := filepath.Rel(filepath.FromSlash(strings.TrimSuffix(from, "/")), filepath.FromSlash(strings.TrimSuffix(to, "/")))
	if err != nil {
		return "/" + to
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return "./"
	}
	return rel + "/"
}
