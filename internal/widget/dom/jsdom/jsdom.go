//go:build js && wasm

// Package jsdom implements dom.Document on top of the browser DOM.
package jsdom

import (
	"strings"
	"syscall/js"

	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/dom"
	"github.com/betona1/cafe24-staff-review/internal/widget/render"
)

// Document wraps the global document object.
type Document struct {
	v js.Value
}

var _ dom.Document = (*Document)(nil)

// Global returns the page document.
func Global() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{doc: d, v: v}
}

func (d *Document) GetElementByID(id string) dom.Element {
	return d.wrap(d.v.Call("getElementById", id))
}

func (d *Document) Body() dom.Element {
	return d.wrap(d.v.Get("body"))
}

func (d *Document) On(eventType string, fn dom.Listener) func() {
	return d.listen(d.v, eventType, fn)
}

func (d *Document) listen(target js.Value, eventType string, fn dom.Listener) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		ev := args[0]
		out := dom.Event{Type: eventType}
		if t := ev.Get("target"); t.Type() == js.TypeObject {
			if t.Get("nodeType").Int() != 1 {
				t = t.Get("parentElement")
			}
			out.Target = d.wrap(t)
		}
		if k := ev.Get("key"); k.Type() == js.TypeString {
			out.Key = k.String()
		}
		fn(out)
		return nil
	})
	target.Call("addEventListener", eventType, cb)
	return func() {
		target.Call("removeEventListener", eventType, cb)
		cb.Release()
	}
}

// fragment parses serialised nodes through a template element.
func (d *Document) fragment(nodes ...*html.Node) js.Value {
	tpl := d.v.Call("createElement", "template")
	tpl.Set("innerHTML", render.Markup(nodes...))
	return tpl.Get("content")
}

// Element wraps a browser element.
type Element struct {
	doc *Document
	v   js.Value
}

var _ dom.Element = (*Element)(nil)

func (e *Element) QuerySelector(selector string) dom.Element {
	return e.doc.wrap(e.v.Call("querySelector", selector))
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	list := e.v.Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, e.doc.wrap(list.Index(i)))
	}
	return out
}

func (e *Element) Closest(selector string) dom.Element {
	return e.doc.wrap(e.v.Call("closest", selector))
}

func (e *Element) Attr(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e *Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }
func (e *Element) RemoveAttr(name string)     { e.v.Call("removeAttribute", name) }

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) AddClass(name string)    { e.v.Get("classList").Call("add", name) }
func (e *Element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

func (e *Element) ToggleClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

func (e *Element) Value() string {
	if v := e.v.Get("value"); v.Type() == js.TypeString {
		return v.String()
	}
	return ""
}

func (e *Element) SetValue(value string) { e.v.Set("value", value) }
func (e *Element) Text() string          { return e.v.Get("textContent").String() }
func (e *Element) SetText(text string)   { e.v.Set("textContent", text) }

func (e *Element) Style(property string) string {
	return e.v.Get("style").Call("getPropertyValue", property).String()
}

func (e *Element) SetStyle(property, value string) {
	style := e.v.Get("style")
	if strings.TrimSpace(value) == "" {
		style.Call("removeProperty", property)
		return
	}
	style.Call("setProperty", property, value)
}

// Replace sets innerHTML; the browser drops listeners of the old subtree.
func (e *Element) Replace(nodes ...*html.Node) {
	e.v.Set("innerHTML", render.Markup(nodes...))
}

func (e *Element) Append(node *html.Node) dom.Element {
	child := e.doc.fragment(node).Get("firstElementChild")
	if child.IsNull() {
		return nil
	}
	e.v.Call("appendChild", child)
	return e.doc.wrap(child)
}

func (e *Element) Remove() { e.v.Call("remove") }

func (e *Element) ScrollIntoView() {
	opts := js.Global().Get("Object").New()
	opts.Set("behavior", "smooth")
	opts.Set("block", "start")
	e.v.Call("scrollIntoView", opts)
}

func (e *Element) On(eventType string, fn dom.Listener) func() {
	return e.doc.listen(e.v, eventType, fn)
}
