package render

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

// BarWidth is the distribution bar width in percent: count relative to the
// largest bucket, zero when every bucket is empty.
func BarWidth(count, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(count) / float64(max) * 100
}

// Summary renders the average score, its stars and the per-star distribution.
func Summary(p *review.Page) *html.Node {
	avg := p.AverageRating
	dist := p.RatingDistribution
	max := dist.Max()

	left := el("div", attrs("class", "srw-summary-left"),
		el("div", attrs("class", "srw-summary-score"), text(strconv.FormatFloat(avg, 'f', 1, 64))),
		Stars(avg, "srw-summary-stars"),
		el("div", attrs("class", "srw-summary-count"), text(reviewCountLabel(p.TotalReviews))),
	)

	right := el("div", attrs("class", "srw-summary-right"))
	for star := 5; star >= 1; star-- {
		count := dist.Count(star)
		width := strconv.FormatFloat(BarWidth(count, max), 'f', 1, 64)
		right.AppendChild(el("div", attrs("class", "srw-dist-row", "data-star", strconv.Itoa(star)),
			el("span", attrs("class", "srw-dist-label"), text(strconv.Itoa(star))),
			el("div", attrs("class", "srw-dist-bar-bg"),
				el("div", attrs("class", "srw-dist-bar-fill", "style", "width: "+width+"%")),
			),
			el("span", attrs("class", "srw-dist-count"), text(strconv.Itoa(count))),
		))
	}

	return el("div", attrs("class", "srw-summary"), left, right)
}
