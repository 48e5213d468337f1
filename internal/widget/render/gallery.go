package render

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

// Gallery renders the photo strip, or nil when the product has no photos.
func Gallery(p *review.Page, v View) *html.Node {
	if len(p.AllPhotoURLs) == 0 {
		return nil
	}
	count := p.PhotoReviewCount
	if count == 0 {
		count = len(p.AllPhotoURLs)
	}

	strip := el("div", attrs("class", "srw-gallery-strip"))
	for _, path := range p.AllPhotoURLs {
		full := v.ImageURL(path)
		strip.AppendChild(el("img", attrs(
			"class", ClassGalleryThumb,
			"src", full,
			"alt", labelGalleryAlt,
			AttrFullURL, full,
			"loading", "lazy",
		)))
	}

	return el("div", attrs("class", "srw-photo-gallery"),
		el("div", attrs("class", "srw-gallery-title"),
			text(labelPhotoReviews+" "),
			el("span", nil, text(strconv.Itoa(count))),
		),
		strip,
	)
}
