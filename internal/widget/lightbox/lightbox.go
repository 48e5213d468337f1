// Package lightbox shows full-size review images in a modal overlay. At most
// one overlay exists per document; opening a new image closes the old one.
package lightbox

import (
	"sync"

	"github.com/betona1/cafe24-staff-review/internal/widget/dom"
	"github.com/betona1/cafe24-staff-review/internal/widget/render"
)

// Lightbox owns the overlay of one document.
type Lightbox struct {
	doc dom.Document

	mu           sync.Mutex
	overlay      dom.Element
	url          string
	prevOverflow string
	offs         []func()
}

// New returns a lightbox for doc. Most callers want ForDocument.
func New(doc dom.Document) *Lightbox {
	return &Lightbox{doc: doc}
}

var (
	registryMu sync.Mutex
	registry   = map[dom.Document]*Lightbox{}
)

// ForDocument returns the lightbox shared by every widget on doc. The
// document implementation must be a comparable (pointer) type.
func ForDocument(doc dom.Document) *Lightbox {
	registryMu.Lock()
	defer registryMu.Unlock()
	if lb, ok := registry[doc]; ok {
		return lb
	}
	lb := New(doc)
	registry[doc] = lb
	return lb
}

// Open shows url, closing any overlay that is already open.
func (l *Lightbox) Open(url string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closeLocked()

	body := l.doc.Body()
	if body == nil || url == "" {
		return
	}
	overlay := body.Append(render.Lightbox(url))
	if overlay == nil {
		return
	}
	l.overlay = overlay
	l.url = url
	l.prevOverflow = body.Style("overflow")
	body.SetStyle("overflow", "hidden")
	l.offs = append(l.offs,
		overlay.On("click", l.onClick),
		l.doc.On("keydown", l.onKey),
	)
}

// Close removes the overlay and restores page scrolling. Closing a closed
// lightbox does nothing.
func (l *Lightbox) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeLocked()
}

func (l *Lightbox) closeLocked() {
	if l.overlay == nil {
		return
	}
	for _, off := range l.offs {
		off()
	}
	l.offs = nil
	l.overlay.Remove()
	l.overlay = nil
	l.url = ""
	if body := l.doc.Body(); body != nil {
		body.SetStyle("overflow", l.prevOverflow)
	}
	l.prevOverflow = ""
}

// IsOpen reports whether an overlay is showing.
func (l *Lightbox) IsOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.overlay != nil
}

// URL returns the image currently shown, or "".
func (l *Lightbox) URL() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.url
}

// Clicks on the backdrop or the close button dismiss; clicks on the image do not.
func (l *Lightbox) onClick(ev dom.Event) {
	if ev.Target == nil {
		return
	}
	if ev.Target.HasClass(render.ClassLightbox) || ev.Target.Closest("."+render.ClassLightboxClose) != nil {
		l.Close()
	}
}

func (l *Lightbox) onKey(ev dom.Event) {
	if ev.Key == "Escape" {
		l.Close()
	}
}
