// Package memdom implements dom.Document over an x/net/html tree. Selectors
// are evaluated with goquery and events bubble from the target to the
// document root.
package memdom

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/dom"
)

type listener struct {
	id        uint64
	eventType string
	fn        dom.Listener
}

// Document is an in-memory host page. It is safe for concurrent use; event
// listeners run without the document lock held.
type Document struct {
	mu        sync.Mutex
	root      *html.Node
	nextID    uint64
	listeners map[*html.Node][]listener
	scrolled  map[*html.Node]int
	// unselected marks select elements whose value was set to a missing option.
	unselected map[*html.Node]bool
}

var _ dom.Document = (*Document)(nil)

// Parse builds a document from an HTML page or fragment.
func Parse(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("memdom: parse: %w", err)
	}
	return &Document{
		root:       root,
		listeners:  map[*html.Node][]listener{},
		scrolled:   map[*html.Node]int{},
		unselected: map[*html.Node]bool{},
	}, nil
}

// MustParse is Parse for fixed markup; it panics on error.
func MustParse(markup string) *Document {
	doc, err := Parse(markup)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d *Document) wrap(n *html.Node) dom.Element {
	if n == nil {
		return nil
	}
	return &Element{doc: d, node: n}
}

// GetElementByID returns the first element with the id, or nil.
func (d *Document) GetElementByID(id string) dom.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrap(find(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	}))
}

// Body returns the body element.
func (d *Document) Body() dom.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrap(find(d.root, func(n *html.Node) bool { return n.Data == "body" }))
}

// On registers a document level listener.
func (d *Document) On(eventType string, fn dom.Listener) func() {
	return d.on(d.root, eventType, fn)
}

func (d *Document) on(n *html.Node, eventType string, fn dom.Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	d.listeners[n] = append(d.listeners[n], listener{id: id, eventType: eventType, fn: fn})
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		kept := d.listeners[n][:0]
		for _, l := range d.listeners[n] {
			if l.id != id {
				kept = append(kept, l)
			}
		}
		if len(kept) == 0 {
			delete(d.listeners, n)
			return
		}
		d.listeners[n] = kept
	}
}

// ListenerCount returns the number of listeners registered anywhere in the document.
func (d *Document) ListenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	count := 0
	for _, ls := range d.listeners {
		count += len(ls)
	}
	return count
}

// Dispatch fires ev at target and bubbles it up to the document.
func (d *Document) Dispatch(target dom.Element, ev dom.Event) {
	start := d.root
	if target != nil {
		start = nodeOf(target)
		ev.Target = target
	}

	d.mu.Lock()
	var chain []dom.Listener
	for n := start; n != nil; n = n.Parent {
		for _, l := range d.listeners[n] {
			if l.eventType == ev.Type {
				chain = append(chain, l.fn)
			}
		}
	}
	d.mu.Unlock()

	for _, fn := range chain {
		fn(ev)
	}
}

// Click dispatches a click on el.
func (d *Document) Click(el dom.Element) {
	d.Dispatch(el, dom.Event{Type: "click"})
}

// Change sets the control value and dispatches a change event.
func (d *Document) Change(el dom.Element, value string) {
	el.SetValue(value)
	d.Dispatch(el, dom.Event{Type: "change"})
}

// KeyDown dispatches a keydown at the body.
func (d *Document) KeyDown(key string) {
	d.Dispatch(d.Body(), dom.Event{Type: "keydown", Key: key})
}

// Scrolled reports how often ScrollIntoView was called on el.
func (d *Document) Scrolled(el dom.Element) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scrolled[nodeOf(el)]
}

// HTML serialises the whole document.
func (d *Document) HTML() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var b strings.Builder
	if err := html.Render(&b, d.root); err != nil {
		return ""
	}
	return b.String()
}

// Find runs a goquery selection over the live tree. Callers must not read
// the selection while the document is being mutated.
func (d *Document) Find(selector string) *goquery.Selection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return goquery.NewDocumentFromNode(d.root).Find(selector)
}

// release drops the listeners and scroll marks of a detached subtree.
func (d *Document) release(n *html.Node) {
	delete(d.listeners, n)
	delete(d.scrolled, n)
	delete(d.unselected, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.release(c)
	}
}

func nodeOf(el dom.Element) *html.Node {
	if e, ok := el.(*Element); ok && e != nil {
		return e.node
	}
	return nil
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
