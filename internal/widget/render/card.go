package render

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/format"
	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

// Card renders one review.
func Card(r review.Review, v View) *html.Node {
	card := el("div", attrs("class", "srw-review-card"))
	if r.ID > 0 {
		card.Attr = append(card.Attr, html.Attribute{Key: "data-review-id", Val: strconv.FormatInt(r.ID, 10)})
	}

	info := el("div", attrs("class", "srw-author-info"),
		el("span", attrs("class", "srw-review-author"), text(r.Author)),
	)
	if r.IsStaffPick {
		info.AppendChild(el("span", attrs("class", "srw-badge"), text(labelStaffPick)))
	}
	info.AppendChild(el("span", attrs("class", "srw-review-date"), text(format.Date(r.CreatedAt))))

	card.AppendChild(el("div", attrs("class", "srw-card-header"),
		el("div", attrs("class", "srw-avatar", "style", "background-color: "+format.AvatarColor(r.Author)),
			text(format.Initial(r.Author)),
		),
		info,
	))
	card.AppendChild(Stars(r.Rating, "srw-review-stars"))

	if r.Title != "" {
		card.AppendChild(el("div", attrs("class", "srw-review-title"), text(r.Title)))
	}

	if content := format.Normalize(r.Content); content != "" {
		shown, cut := format.Truncate(content, format.ContentMaxLength)
		body := el("div", attrs("class", ClassContent), text(shown))
		if cut {
			body.Attr = attrs("class", classes(ClassContent, ClassCollapsed), AttrFullText, content)
		}
		card.AppendChild(body)
		if cut {
			card.AppendChild(el("button", attrs("type", "button", "class", ClassMoreButton), text(labelShowMore)))
		}
	}

	if len(r.Images) > 0 {
		images := el("div", attrs("class", "srw-review-images"))
		for _, img := range r.Images {
			full := v.ImageURL(img.FilePath)
			alt := img.OriginalName
			if alt == "" {
				alt = labelReviewImage
			}
			images.AppendChild(el("img", attrs(
				"class", ClassThumbnail,
				"src", full,
				"alt", alt,
				AttrFullURL, full,
				"loading", "lazy",
			)))
		}
		card.AppendChild(images)
	}

	return card
}

// List renders the cards of the page, or the no-match notice when the page is empty.
func List(p *review.Page, v View) []*html.Node {
	if p == nil || len(p.Items) == 0 {
		return []*html.Node{NoMatch()}
	}
	cards := make([]*html.Node, 0, len(p.Items))
	for _, item := range p.Items {
		cards = append(cards, Card(item, v))
	}
	return cards
}
