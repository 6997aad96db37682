package playink

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeStylesheet holds the colours for highlighted code blocks.
const codeStylesheet = "assets/code.css"

// chromaStyles maps the accepted code theme names onto the closest
// highlighter style.
var chromaStyles = map[string]string{
	"github":         "github",
	"dracula":        "dracula",
	"duotoneDark":    "paraiso-dark",
	"duotoneLight":   "paraiso-light",
	"nightOwl":       "monokai",
	"nightOwlLight":  "monokailight",
	"oceanicNext":    "nord",
	"okaidia":        "monokai",
	"oneDark":        "doom-one",
	"oneLight":       "friendly",
	"palenight":      "witchhazel",
	"shadesOfPurple": "rrt",
	"synthwave84":    "fruity",
	"ultramin":       "bw",
	"vsDark":         "xcode-dark",
	"vsLight":        "vs",
}

func chromaStyle(theme string) *chroma.Style {
	if name, ok := chromaStyles[theme]; ok {
		return styles.Get(name)
	}
	return styles.Fallback
}

// codeCSS renders the code stylesheet: the light theme by default and the
// dark theme under prefers-color-scheme: dark.
func codeCSS(p PrismConfig) ([]byte, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, chromaStyle(p.Theme)); err != nil {
		return nil, fmt.Errorf("playink: code theme %s: %w", p.Theme, err)
	}
	buf.WriteString("@media (prefers-color-scheme: dark) {\n")
	if err := formatter.WriteCSS(&buf, chromaStyle(p.DarkTheme)); err != nil {
		return nil, fmt.Errorf("playink: code theme %s: %w", p.DarkTheme, err)
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
