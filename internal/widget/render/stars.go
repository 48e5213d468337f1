package render

import (
	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/format"
)

// Stars renders the five rating glyphs. A half star is two overlapping
// glyphs; the stylesheet clips the filled one to half width.
func Stars(rating float64, extraClass string) *html.Node {
	box := el("div", attrs("class", classes("srw-stars", extraClass)))
	for _, glyph := range format.Stars(rating) {
		box.AppendChild(star(glyph))
	}
	return box
}

func star(g format.Glyph) *html.Node {
	switch g {
	case format.GlyphFull:
		return el("span", attrs("class", "srw-star srw-star-filled", "aria-hidden", "true"), text(glyphStarFilled))
	case format.GlyphHalf:
		return el("span", attrs("class", "srw-star srw-star-half", "aria-hidden", "true"),
			el("span", attrs("class", "srw-star-half-filled"), text(glyphStarFilled)),
			el("span", attrs("class", "srw-star-half-empty"), text(glyphStarFilled)),
		)
	default:
		return el("span", attrs("class", "srw-star srw-star-empty", "aria-hidden", "true"), text(glyphStarEmpty))
	}
}
