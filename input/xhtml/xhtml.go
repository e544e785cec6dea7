package xhtml

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cords"
	"github.com/npillmayer/puashape/core"
	"github.com/npillmayer/puashape/engine/glyphing/indic"
	"golang.org/x/net/html"
)

// DefaultSkip selects elements whose text content is never converted.
const DefaultSkip = "script, style, code, pre"

// Converter converts the text nodes of HTML documents.
type Converter struct {
	doc  *indic.Document
	skip cascadia.Selector
}

// NewConverter creates a converter for documents tracked by doc. skip is a
// CSS selector for elements to leave alone; if empty, DefaultSkip is used.
// If doc is nil, the global document is used.
func NewConverter(doc *indic.Document, skip string) (*Converter, error) {
	if doc == nil {
		doc = indic.Global()
	}
	if strings.TrimSpace(skip) == "" {
		skip = DefaultSkip
	}
	sel, err := cascadia.Compile(skip)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid skip selector %q", skip)
	}
	return &Converter{doc: doc, skip: sel}, nil
}

// Shape reads an HTML document from r and writes it to w, with the text
// converted to PUA-coded form.
func (c *Converter) Shape(r io.Reader, w io.Writer) error {
	return c.convert(r, w, c.doc.ProcessText)
}

// Restore reads an HTML document with PUA-coded text from r and writes it
// to w, with the text converted back to Unicode. Scripts are detected from
// the code-points of the scripts' Unicode blocks remaining in the coded text.
func (c *Converter) Restore(r io.Reader, w io.Writer) error {
	return c.convert(r, w, c.doc.RestoreText)
}

func (c *Converter) convert(r io.Reader, w io.Writer, f func(string) string) error {
	root, err := html.Parse(r)
	if err != nil {
		return core.WrapError(err, core.EMALFORMED, "cannot parse HTML input")
	}
	text, err := c.Text(root)
	if err != nil {
		return err
	}
	if text.IsVoid() {
		tracer().Infof("document has no convertible text")
	} else {
		c.doc.Detect(text.String())
		n := 0
		err = text.EachLeaf(func(l cords.Leaf, pos uint64) error {
			leaf := l.(*Leaf)
			leaf.node.Data = f(leaf.content)
			n++
			return nil
		})
		if err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot convert text nodes")
		}
		tracer().Debugf("converted %d text nodes", n)
	}
	if err := html.Render(w, root); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write HTML output")
	}
	return nil
}

// Text collects the convertible text nodes below n into a cord, one leaf
// per text node.
func (c *Converter) Text(n *html.Node) (cords.Cord, error) {
	b := cords.NewBuilder()
	if err := c.collectText(n, b); err != nil {
		return cords.Cord{}, core.WrapError(err, core.EINTERNAL, "cannot collect document text")
	}
	return b.Cord(), nil
}

func (c *Converter) collectText(n *html.Node, b *cords.Builder) error {
	switch n.Type {
	case html.ElementNode:
		if c.skip.Match(n) {
			tracer().Debugf("skipping <%s>", n.Data)
			return nil
		}
	case html.TextNode:
		if n.Data == "" {
			return nil
		}
		return b.Append(&Leaf{node: n, content: n.Data})
	case html.CommentNode, html.DoctypeNode:
		return nil
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := c.collectText(ch, b); err != nil {
			return err
		}
	}
	return nil
}

// ---------------------------------------------------------------------------

// Leaf is the leaf type for cords of document text. It refers to the text
// node its content has been taken from.
type Leaf struct {
	node    *html.Node
	content string
}

// Weight of a leaf is its string length in bytes.
func (l Leaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l Leaf) String() string {
	return l.content
}

// Split splits a leaf at byte position i. Both halves refer to the same
// text node.
func (l Leaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return &Leaf{node: l.node, content: l.content[:i]},
		&Leaf{node: l.node, content: l.content[i:]}
}

// Substring returns the bytes [i…j) of a leaf's content.
func (l Leaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

// Node returns the text node of a leaf.
func (l Leaf) Node() *html.Node {
	return l.node
}

var _ cords.Leaf = Leaf{}

// Shape converts the text of the HTML document read from r to PUA-coded
// form and writes the document to w. skip is a selector as for NewConverter.
func Shape(r io.Reader, w io.Writer, doc *indic.Document, skip string) error {
	c, err := NewConverter(doc, skip)
	if err != nil {
		return err
	}
	return c.Shape(r, w)
}

// Restore is the inverse of Shape.
func Restore(r io.Reader, w io.Writer, doc *indic.Document, skip string) error {
	c, err := NewConverter(doc, skip)
	if err != nil {
		return err
	}
	return c.Restore(r, w)
}
