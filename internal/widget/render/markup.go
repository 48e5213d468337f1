package render

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/format"
)

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "wbr": true,
}

var booleanAttrs = map[string]bool{
	"disabled": true, "selected": true, "checked": true, "hidden": true,
}

// Markup serialises nodes to HTML. Text nodes go through format.EscapeText
// and attribute values through format.EscapeAttr.
func Markup(nodes ...*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n)
	}
	return b.String()
}

// Write streams the serialised nodes to w.
func Write(w io.Writer, nodes ...*html.Node) error {
	_, err := io.WriteString(w, Markup(nodes...))
	return err
}

func writeNode(b *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.TextNode:
		b.WriteString(format.EscapeText(n.Data))
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(b, c)
		}
	case html.ElementNode:
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			if a.Val == "" && booleanAttrs[a.Key] {
				continue
			}
			b.WriteString(`="`)
			b.WriteString(format.EscapeAttr(a.Val))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if voidElements[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteByte('>')
	}
}
