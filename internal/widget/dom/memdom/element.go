package memdom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/dom"
)

// Element is a handle on a node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

var _ dom.Element = (*Element)(nil)

// Node returns the underlying tree node.
func (e *Element) Node() *html.Node { return e.node }

func (e *Element) QuerySelector(selector string) dom.Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	found := goquery.NewDocumentFromNode(e.node).Find(selector)
	if found.Length() == 0 {
		return nil
	}
	return e.doc.wrap(found.Get(0))
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	found := goquery.NewDocumentFromNode(e.node).Find(selector)
	out := make([]dom.Element, 0, found.Length())
	for _, n := range found.Nodes {
		out = append(out, e.doc.wrap(n))
	}
	return out
}

func (e *Element) Closest(selector string) dom.Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for n := e.node; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		if goquery.NewDocumentFromNode(n).Is(selector) {
			return e.doc.wrap(n)
		}
	}
	return nil
}

func (e *Element) Attr(name string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return attr(e.node, name)
}

func (e *Element) SetAttr(name, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	setAttr(e.node, name, value)
}

func (e *Element) RemoveAttr(name string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	removeAttr(e.node, name)
}

func (e *Element) HasClass(name string) bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, _ := attr(e.node, "class")
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) AddClass(name string) {
	e.ToggleClass(name, true)
}

func (e *Element) RemoveClass(name string) {
	e.ToggleClass(name, false)
}

func (e *Element) ToggleClass(name string, on bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, _ := attr(e.node, "class")
	var kept []string
	present := false
	for _, c := range strings.Fields(v) {
		if c == name {
			present = true
			if !on {
				continue
			}
		}
		kept = append(kept, c)
	}
	if on && !present {
		kept = append(kept, name)
	}
	setAttr(e.node, "class", strings.Join(kept, " "))
}

func (e *Element) Value() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.node.Data != "select" {
		v, _ := attr(e.node, "value")
		return v
	}
	if e.doc.unselected[e.node] {
		return ""
	}
	var first, selected *html.Node
	goquery.NewDocumentFromNode(e.node).Find("option").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		n := s.Get(0)
		if first == nil {
			first = n
		}
		if _, ok := attr(n, "selected"); ok {
			selected = n
			return false
		}
		return true
	})
	if selected == nil {
		selected = first
	}
	if selected == nil {
		return ""
	}
	if v, ok := attr(selected, "value"); ok {
		return v
	}
	return textOf(selected)
}

func (e *Element) SetValue(value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.node.Data != "select" {
		setAttr(e.node, "value", value)
		return
	}
	matched := false
	goquery.NewDocumentFromNode(e.node).Find("option").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if v, _ := attr(n, "value"); v == value && !matched {
			matched = true
			setAttr(n, "selected", "")
		} else {
			removeAttr(n, "selected")
		}
	})
	if matched {
		delete(e.doc.unselected, e.node)
	} else {
		e.doc.unselected[e.node] = true
	}
}

func (e *Element) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return textOf(e.node)
}

func (e *Element) SetText(text string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.clear()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *Element) Style(property string) string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, _ := attr(e.node, "style")
	for _, decl := range parseStyle(v) {
		if decl[0] == property {
			return decl[1]
		}
	}
	return ""
}

func (e *Element) SetStyle(property, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, _ := attr(e.node, "style")
	var parts []string
	replaced := false
	for _, decl := range parseStyle(v) {
		if decl[0] == property {
			replaced = true
			if value == "" {
				continue
			}
			decl[1] = value
		}
		parts = append(parts, decl[0]+": "+decl[1])
	}
	if !replaced && value != "" {
		parts = append(parts, property+": "+value)
	}
	if len(parts) == 0 {
		removeAttr(e.node, "style")
		return
	}
	setAttr(e.node, "style", strings.Join(parts, "; ")+";")
}

func (e *Element) Replace(nodes ...*html.Node) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.clear()
	for _, n := range nodes {
		if n != nil {
			e.node.AppendChild(n)
		}
	}
}

func (e *Element) Append(node *html.Node) dom.Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.node.AppendChild(node)
	return e.doc.wrap(node)
}

func (e *Element) Remove() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.node.Parent == nil {
		return
	}
	e.node.Parent.RemoveChild(e.node)
	e.doc.release(e.node)
}

func (e *Element) ScrollIntoView() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.doc.scrolled[e.node]++
}

func (e *Element) On(eventType string, fn dom.Listener) func() {
	return e.doc.on(e.node, eventType, fn)
}

// clear detaches every child; the caller holds the document lock.
func (e *Element) clear() {
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
		e.doc.release(c)
	}
}

func setAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttr(n *html.Node, name string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != name {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textOf(c))
	}
	return b.String()
}

func parseStyle(v string) [][2]string {
	var out [][2]string
	for _, decl := range strings.Split(v, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out = append(out, [2]string{strings.TrimSpace(name), strings.TrimSpace(value)})
	}
	return out
}
