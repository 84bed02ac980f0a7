package tui

import (
	"fmt"
	"strings"

	"github.com/gohugoio/hugo-goldmark-extensions/passthrough"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/andrewpaige1/flashdeck/render"
)

// markdown renders card text for the terminal. It parses the same dialect as
// the HTML renderer and maps emphasis, code and lists onto lipgloss styles.
// Math is shown as written.
type markdown struct {
	md goldmark.Markdown
}

func newMarkdown() *markdown {
	return &markdown{md: goldmark.New(goldmark.WithExtensions(render.Extensions()...))}
}

func (m *markdown) Render(src string) string {
	source := []byte(src)
	doc := m.md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	m.blocks(&b, doc, source)
	return strings.TrimRight(b.String(), "\n")
}

func (m *markdown) blocks(b *strings.Builder, parent ast.Node, source []byte) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		m.block(b, n, source)
	}
}

func (m *markdown) block(b *strings.Builder, n ast.Node, source []byte) {
	switch n := n.(type) {
	case *ast.Paragraph:
		b.WriteString(m.inlines(n, source) + "\n\n")
	case *ast.TextBlock:
		b.WriteString(m.inlines(n, source) + "\n")
	case *ast.Heading:
		b.WriteString(mdHeadingStyle.Render(m.inlines(n, source)) + "\n\n")
	case *ast.List:
		m.list(b, n, source)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		b.WriteString(mdCodeStyle.Render(strings.TrimRight(lines(n, source), "\n")) + "\n\n")
	case *passthrough.PassthroughBlock:
		b.WriteString(mdMathStyle.Render(strings.TrimSpace(lines(n, source))) + "\n\n")
	case *ast.Blockquote:
		var inner strings.Builder
		m.blocks(&inner, n, source)
		for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
			b.WriteString(mdQuoteStyle.Render("│ "+line) + "\n")
		}
		b.WriteString("\n")
	case *ast.ThematicBreak:
		b.WriteString("────────\n\n")
	case *east.Table:
		m.table(b, n, source)
	case *ast.HTMLBlock:
		// Raw HTML is dropped, as in the HTML renderer
	default:
		m.blocks(b, n, source)
	}
}

func (m *markdown) list(b *strings.Builder, list *ast.List, source []byte) {
	i := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d. ", i)
			i++
		}

		var inner strings.Builder
		m.blocks(&inner, item, source)
		body := strings.TrimRight(inner.String(), "\n")
		indent := strings.Repeat(" ", len([]rune(marker)))
		b.WriteString(marker + strings.ReplaceAll(body, "\n", "\n"+indent) + "\n")
	}
	b.WriteString("\n")
}

func (m *markdown) table(b *strings.Builder, table *east.Table, source []byte) {
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, m.inlines(cell, source))
		}
		line := strings.Join(cells, " │ ")
		if _, header := row.(*east.TableHeader); header {
			line = mdHeadingStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func (m *markdown) inlines(parent ast.Node, source []byte) string {
	var b strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		b.WriteString(m.inline(n, source))
	}
	return b.String()
}

func (m *markdown) inline(n ast.Node, source []byte) string {
	switch n := n.(type) {
	case *ast.Text:
		s := string(n.Segment.Value(source))
		switch {
		case n.HardLineBreak():
			s += "\n"
		case n.SoftLineBreak():
			s += " "
		}
		return s
	case *ast.String:
		return string(n.Value)
	case *ast.Emphasis:
		if n.Level >= 2 {
			return mdStrongStyle.Render(m.inlines(n, source))
		}
		return mdEmphasisStyle.Render(m.inlines(n, source))
	case *ast.CodeSpan:
		return mdCodeStyle.Render(rawText(n, source))
	case *passthrough.PassthroughInline:
		return mdMathStyle.Render(string(n.Segment.Value(source)))
	case *east.Strikethrough:
		return mdStrikeStyle.Render(m.inlines(n, source))
	case *east.TaskCheckBox:
		if n.IsChecked {
			return "[x] "
		}
		return "[ ] "
	case *ast.Link:
		label := m.inlines(n, source)
		return mdLinkStyle.Render(label) + " (" + string(n.Destination) + ")"
	case *ast.AutoLink:
		return mdLinkStyle.Render(string(n.URL(source)))
	case *ast.Image:
		return "[image: " + m.inlines(n, source) + "]"
	case *ast.RawHTML:
		return ""
	default:
		return m.inlines(n, source)
	}
}

// rawText concatenates the text under n without styling.
func rawText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
		case *ast.String:
			b.Write(c.Value)
		default:
			b.WriteString(rawText(c, source))
		}
	}
	return b.String()
}

// lines joins the raw source lines of a block node.
func lines(n ast.Node, source []byte) string {
	var b strings.Builder
	segments := n.Lines()
	for i := 0; i < segments.Len(); i++ {
		line := segments.At(i)
		b.Write(line.Value(source))
	}
	return b.String()
}
