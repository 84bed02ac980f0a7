// Package render turns card text into sanitized HTML. Markdown follows GFM;
// math between $...$, \(...\), $$...$$ or \[...\] is escaped and wrapped in
// <span class="math inline"> or <div class="math display"> so the browser can
// typeset it.
package render

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/gohugoio/hugo-goldmark-extensions/passthrough"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/andrewpaige1/flashdeck/models"
)

var mathClass = regexp.MustCompile(`^math (inline|display)$`)

// Extensions is the Markdown dialect used for card text.
func Extensions() []goldmark.Extender {
	return []goldmark.Extender{
		extension.GFM,
		passthrough.New(passthrough.Config{
			InlineDelimiters: []passthrough.Delimiters{
				{Open: "$", Close: "$"},
				{Open: `\(`, Close: `\)`},
			},
			BlockDelimiters: []passthrough.Delimiters{
				{Open: "$$", Close: "$$"},
				{Open: `\[`, Close: `\]`},
			},
		}),
	}
}

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(Extensions()...),
		// Registered ahead of the passthrough extension's raw writers
		goldmark.WithRendererOptions(renderer.WithNodeRenderers(util.Prioritized(mathRenderer{}, 50))),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(mathClass).OnElements("span", "div")

	return &Renderer{md: md, policy: policy}
}

// HTML renders one piece of card text.
func (r *Renderer) HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Flashcard renders both sides of a card.
func (r *Renderer) Flashcard(card models.Flashcard) (models.RenderedFlashcard, error) {
	question, err := r.HTML(card.Question)
	if err != nil {
		return models.RenderedFlashcard{}, err
	}
	answer, err := r.HTML(card.Answer)
	if err != nil {
		return models.RenderedFlashcard{}, err
	}
	return models.RenderedFlashcard{ID: card.ID, Question: question, Answer: answer}, nil
}

// mathRenderer writes math with its delimiters, HTML-escaped.
type mathRenderer struct{}

func (mathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(passthrough.KindPassthroughInline, renderInlineMath)
	reg.Register(passthrough.KindPassthroughBlock, renderBlockMath)
}

func renderInlineMath(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*passthrough.PassthroughInline)
	_, _ = w.WriteString(`<span class="math inline">`)
	_, _ = w.Write(util.EscapeHTML(n.Segment.Value(source)))
	_, _ = w.WriteString("</span>")
	return ast.WalkSkipChildren, nil
}

func renderBlockMath(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(`<div class="math display">`)
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}
	_, _ = w.WriteString("</div>\n")
	return ast.WalkSkipChildren, nil
}
