// Package dom is the slice of the host document the widget works against.
// The browser implementation lives in jsdom; memdom is an in-memory tree
// used by tests and headless previews.
package dom

import "golang.org/x/net/html"

// Event is a DOM event as seen by a listener.
type Event struct {
	Type   string
	Target Element
	Key    string
}

// Listener receives dispatched events.
type Listener func(Event)

// Element is a live handle on a document element. Lookups return a nil
// Element when nothing matches.
type Element interface {
	QuerySelector(selector string) Element
	QuerySelectorAll(selector string) []Element
	// Closest returns the element itself or its nearest ancestor matching selector.
	Closest(selector string) Element

	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
	ToggleClass(name string, on bool)

	// Value is the current value of form controls; for a select it is the
	// value of the selected option.
	Value() string
	SetValue(value string)
	Text() string
	SetText(text string)
	Style(property string) string
	// SetStyle sets an inline style property; an empty value removes it.
	SetStyle(property, value string)

	// Replace swaps every child for nodes. Listeners registered inside the
	// replaced subtree are released.
	Replace(nodes ...*html.Node)
	Append(node *html.Node) Element
	Remove()
	ScrollIntoView()

	On(eventType string, fn Listener) (off func())
}

// Document is the host page.
type Document interface {
	GetElementByID(id string) Element
	Body() Element
	On(eventType string, fn Listener) (off func())
}
