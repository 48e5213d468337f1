package lightbox

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betona1/cafe24-staff-review/internal/widget/dom/memdom"
	"github.com/betona1/cafe24-staff-review/internal/widget/render"
)

func newDoc() *memdom.Document {
	return memdom.MustParse(`<html><body style="overflow: auto;"><div id="app"></div></body></html>`)
}

func TestOpenReplacesExistingOverlay(t *testing.T) {
	t.Parallel()

	doc := newDoc()
	lb := New(doc)

	lb.Open("https://cdn.example.com/uploads/a.jpg")
	lb.Open("https://cdn.example.com/uploads/b.jpg")

	overlays := doc.Find("." + render.ClassLightbox)
	require.Equal(t, 1, overlays.Length())
	require.Equal(t, "https://cdn.example.com/uploads/b.jpg", overlays.Find("."+render.ClassLightboxImage).AttrOr("src", ""))
	require.Equal(t, "https://cdn.example.com/uploads/b.jpg", lb.URL())
	require.Equal(t, "hidden", doc.Body().Style("overflow"))
	require.Equal(t, 2, doc.ListenerCount(), "one overlay click and one document keydown listener")
}

func TestDismissal(t *testing.T) {
	t.Parallel()

	cases := map[string]func(doc *memdom.Document){
		"escape": func(doc *memdom.Document) { doc.KeyDown("Escape") },
		"close button": func(doc *memdom.Document) {
			doc.Click(doc.Body().QuerySelector("." + render.ClassLightboxClose))
		},
		"backdrop": func(doc *memdom.Document) {
			doc.Click(doc.Body().QuerySelector("." + render.ClassLightbox))
		},
	}
	for name, dismiss := range cases {
		dismiss := dismiss
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := newDoc()
			lb := New(doc)
			lb.Open("a.jpg")
			require.True(t, lb.IsOpen())

			dismiss(doc)

			require.False(t, lb.IsOpen())
			require.Zero(t, doc.Find("."+render.ClassLightbox).Length())
			require.Equal(t, "auto", doc.Body().Style("overflow"))
			require.Zero(t, doc.ListenerCount())
		})
	}
}

func TestImageClickAndOtherKeysKeepOverlay(t *testing.T) {
	t.Parallel()

	doc := newDoc()
	lb := New(doc)
	lb.Open("a.jpg")

	doc.Click(doc.Body().QuerySelector("." + render.ClassLightboxImage))
	doc.KeyDown("Enter")
	require.True(t, lb.IsOpen())

	lb.Close()
	lb.Close()
	require.False(t, lb.IsOpen())
}

func TestForDocumentShared(t *testing.T) {
	t.Parallel()

	doc := newDoc()
	require.Same(t, ForDocument(doc), ForDocument(doc))
	require.NotSame(t, ForDocument(doc), ForDocument(newDoc()))
}
