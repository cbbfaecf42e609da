// Package rst converts Markdown descriptions into reStructuredText.
//
// Only the constructs that show up in example docstrings are covered:
// paragraphs, emphasis, inline code, links, images, headings, lists,
// code blocks, block quotes and rules. Anything else degrades to its
// escaped text.
package rst

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/mattn/go-runewidth"
)

const extensions = parser.NoIntraEmphasis | parser.FencedCode | parser.Autolink |
	parser.Strikethrough | parser.SpaceHeadings | parser.BackslashLineBreak

// headingChars underline headings by level.
var headingChars = []byte{'=', '-', '~', '^', '"', '\''}

// FromMarkdown renders src as reStructuredText. The result has no leading
// or trailing whitespace; empty input yields "".
func FromMarkdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	doc := markdown.Parse(parser.NormalizeNewlines([]byte(src)), parser.NewWithExtensions(extensions))
	return strings.TrimSpace(renderBlocks(doc.GetChildren(), "\n\n"))
}

func renderBlocks(nodes []ast.Node, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if block := strings.TrimRight(renderBlock(node), " \n"); block != "" {
			parts = append(parts, block)
		}
	}
	return strings.Join(parts, sep)
}

func renderBlock(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Paragraph:
		if img, ok := soleImage(n); ok {
			return imageDirective(img)
		}
		return renderInline(n.Children)
	case *ast.Heading:
		title := strings.ReplaceAll(renderInline(n.Children), "\n", " ")
		level := min(max(n.Level, 1), len(headingChars))
		return title + "\n" + strings.Repeat(string(headingChars[level-1]), max(runewidth.StringWidth(title), 1))
	case *ast.List:
		return renderList(n)
	case *ast.CodeBlock:
		return codeBlock(n)
	case *ast.BlockQuote:
		return indent(renderBlocks(n.Children, "\n\n"), "    ", "    ")
	case *ast.HorizontalRule:
		return "----"
	case *ast.HTMLBlock:
		return ".. raw:: html\n\n" + indent(strings.TrimRight(string(n.Literal), "\n"), "    ", "    ")
	default:
		if c := node.AsContainer(); c != nil {
			return renderBlocks(c.Children, "\n\n")
		}
		return escape(string(node.AsLeaf().Literal))
	}
}

func renderList(list *ast.List) string {
	ordered := list.ListFlags&ast.ListTypeOrdered != 0
	number := list.Start
	if number <= 0 {
		number = 1
	}

	items := make([]string, 0, len(list.Children))
	for _, child := range list.Children {
		marker := "- "
		if ordered {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		body := renderBlocks(child.GetChildren(), "\n\n")
		items = append(items, indent(body, marker, strings.Repeat(" ", len(marker))))
	}

	if list.Tight {
		return strings.Join(items, "\n")
	}
	return strings.Join(items, "\n\n")
}

func codeBlock(block *ast.CodeBlock) string {
	code := strings.TrimRight(string(block.Literal), "\n")
	lang, _, _ := strings.Cut(strings.TrimSpace(string(block.Info)), " ")

	header := "::"
	if lang != "" {
		header = ".. code-block:: " + lang
	}
	return header + "\n\n" + indent(code, "    ", "    ")
}

// soleImage reports whether a paragraph holds a single image and nothing else.
func soleImage(p *ast.Paragraph) (*ast.Image, bool) {
	var img *ast.Image
	for _, child := range p.Children {
		switch c := child.(type) {
		case *ast.Image:
			if img != nil {
				return nil, false
			}
			img = c
		case *ast.Text:
			if strings.TrimSpace(string(c.Literal)) != "" {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return img, img != nil
}

func imageDirective(img *ast.Image) string {
	out := ".. image:: " + string(img.Destination)
	if alt := plainText(img); alt != "" {
		out += "\n   :alt: " + alt
	}
	return out
}

// indent prefixes the first line with first and the non-empty following
// lines with rest.
func indent(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			lines[i] = first + line
		case line != "":
			lines[i] = rest + line
		}
	}
	return strings.Join(lines, "\n")
}

// inline accumulates inline markup. RST only recognises inline markup at
// word boundaries, so markup glued to a word is separated with an escaped
// space.
type inline struct {
	b           strings.Builder
	afterMarkup bool
}

func renderInline(nodes []ast.Node) string {
	var w inline
	w.nodes(nodes)
	return strings.TrimSpace(w.b.String())
}

func (w *inline) nodes(nodes []ast.Node) {
	for _, node := range nodes {
		w.node(node)
	}
}

func (w *inline) node(node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		w.text(escape(string(n.Literal)))
	case *ast.Emph:
		w.markup("*", plainInline(n.Children), "*")
	case *ast.Strong:
		w.markup("**", plainInline(n.Children), "**")
	case *ast.Code:
		w.markup("``", string(n.Literal), "``")
	case *ast.Link:
		dest := string(n.Destination)
		text := plainInline(n.Children)
		if text == "" || text == escape(dest) {
			w.text(dest)
			return
		}
		w.markup("`", text+" <"+dest+">", "`_")
	case *ast.Image:
		w.markup("`", escape(plainText(n))+" <"+string(n.Destination)+">", "`_")
	case *ast.Hardbreak, *ast.Softbreak:
		w.text("\n")
	case *ast.HTMLSpan:
		w.text(escape(string(n.Literal)))
	default:
		if c := node.AsContainer(); c != nil {
			w.nodes(c.Children)
			return
		}
		w.text(escape(string(node.AsLeaf().Literal)))
	}
}

func (w *inline) text(s string) {
	if s == "" {
		return
	}
	if w.afterMarkup {
		if r, _ := utf8.DecodeRuneInString(s); isWordRune(r) {
			w.b.WriteString(`\ `)
		}
		w.afterMarkup = false
	}
	w.b.WriteString(s)
}

func (w *inline) markup(open, body, end string) {
	if strings.TrimSpace(body) == "" {
		w.text(body)
		return
	}
	if prev := lastRune(w.b.String()); isWordRune(prev) || w.afterMarkup {
		w.b.WriteString(`\ `)
	}
	w.b.WriteString(open + body + end)
	w.afterMarkup = true
}

// plainInline renders children as escaped text, flattening nested markup
// that RST cannot nest.
func plainInline(nodes []ast.Node) string {
	var b strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case *ast.Code:
			b.WriteString(escape(string(n.Literal)))
		default:
			if c := node.AsContainer(); c != nil {
				b.WriteString(plainInline(c.Children))
				continue
			}
			b.WriteString(escape(string(node.AsLeaf().Literal)))
		}
	}
	return b.String()
}

// plainText returns the unescaped text of a node's descendants.
func plainText(node ast.Node) string {
	var b strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if leaf := n.AsLeaf(); leaf != nil && entering {
			b.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return b.String()
}

// escape backslash-escapes characters that start RST inline markup.
// A trailing underscore would turn a word into a reference.
func escape(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch r {
		case '\\', '*', '`', '|':
			b.WriteByte('\\')
		case '_':
			next, _ := utf8.DecodeRuneInString(s[i+1:])
			if i+1 == len(s) || !isWordRune(next) {
				b.WriteByte('\\')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
