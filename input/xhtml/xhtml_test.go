package xhtml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/puashape/core"
	"github.com/npillmayer/puashape/engine/glyphing/indic"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var page = `<html><head><title>धर्म</title><style>p { color: red }</style></head>
<body><p class="x">धर्म <b>क्षत्रिय</b></p><code>धर्म</code><!-- धर्म -->
<script>var s = "धर्म";</script></body></html>`

func render(t *testing.T, s string) string {
	root, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, html.Render(&out, root))
	return out.String()
}

func TestShapeDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.xhtml")
	defer teardown()
	//
	doc := indic.NewDocument(nil)
	c, err := NewConverter(doc, "")
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, c.Shape(strings.NewReader(page), &out))
	shaped := out.String()
	assert.True(t, doc.Contains(indic.Devanagari))
	dharma := "ध\ue000म"
	assert.Contains(t, shaped, "<title>"+dharma+"</title>")
	assert.Contains(t, shaped, `<p class="x">`+dharma+" <b>\ue026ि\ue028य</b></p>")
	assert.Contains(t, shaped, "<code>धर्म</code>")
	assert.Contains(t, shaped, "<!-- धर्म -->")
	assert.Contains(t, shaped, `var s = "धर्म";`)
	//
	var back bytes.Buffer
	require.NoError(t, c.Restore(strings.NewReader(shaped), &back))
	assert.Equal(t, render(t, page), back.String())
}

func TestSkipSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.xhtml")
	defer teardown()
	//
	c, err := NewConverter(indic.NewDocument(nil), "p.x")
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, c.Shape(strings.NewReader(page), &out))
	assert.Contains(t, out.String(), `<p class="x">धर्म <b>क्षत्रिय</b></p>`)
	assert.Contains(t, out.String(), "<code>ध\ue000म</code>")
	//
	_, err = NewConverter(nil, "p[")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestDocumentText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.xhtml")
	defer teardown()
	//
	c, err := NewConverter(nil, "")
	require.NoError(t, err)
	root, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	text, err := c.Text(root)
	require.NoError(t, err)
	assert.Equal(t, "धर्म\nधर्म क्षत्रिय\n", text.String())
	var nodes []string
	text.EachLeaf(func(l cords.Leaf, pos uint64) error {
		leaf := l.(*Leaf)
		nodes = append(nodes, leaf.Node().Parent.Data)
		return nil
	})
	assert.Equal(t, []string{"title", "html", "p", "b", "body"}, nodes)
}

func TestLeafSplit(t *testing.T) {
	leaf := Leaf{content: "धर्म"}
	assert.Equal(t, uint64(12), leaf.Weight())
	l, r := leaf.Split(6)
	assert.Equal(t, "धर", l.String())
	assert.Equal(t, "्म", r.String())
	assert.Equal(t, []byte("र्"), leaf.Substring(3, 9))
}

func TestShapeAndRestore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.xhtml")
	defer teardown()
	//
	doc := indic.NewDocument(nil)
	in := "<p>தமிழ் கொ</p>"
	var shaped, restored bytes.Buffer
	require.NoError(t, Shape(strings.NewReader(in), &shaped, doc, ""))
	assert.Contains(t, shaped.String(), "<p>தமி\uec11 \u0bc6\u0b95\u0bbe</p>")
	require.NoError(t, Restore(&shaped, &restored, doc, ""))
	assert.Equal(t, render(t, in), restored.String())
	//
	err := Shape(strings.NewReader(in), &shaped, doc, "p[")
	assert.Error(t, err)
}
