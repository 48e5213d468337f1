package render

import (
	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

// Widget renders the full layout: summary, gallery, filter bar, review list
// and pagination. A product without reviews renders only the empty notice.
func Widget(p *review.Page, v View) []*html.Node {
	if p == nil || p.TotalReviews == 0 {
		return []*html.Node{Empty()}
	}
	list := appendAll(el("div", attrs("class", "srw-review-list", "id", ReviewListID)), List(p, v))
	pager := el("div", attrs("id", PaginationAreaID), Pagination(p, v))

	nodes := []*html.Node{Summary(p)}
	if gallery := Gallery(p, v); gallery != nil {
		nodes = append(nodes, gallery)
	}
	return append(nodes, FilterBar(p, v), list, pager)
}

// Lightbox renders the full-size image overlay.
func Lightbox(url string) *html.Node {
	return el("div", attrs(
		"class", ClassLightbox,
		"role", "dialog",
		"aria-modal", "true",
		"aria-label", labelLightbox,
	),
		el("img", attrs("class", ClassLightboxImage, "src", url, "alt", labelReviewImage)),
		el("button", attrs("type", "button", "class", ClassLightboxClose, "aria-label", labelClose), text(glyphClose)),
	)
}
