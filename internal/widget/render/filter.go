package render

import (
	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

// FilterBar renders the all/photo tabs and the sort selector for the current view.
func FilterBar(p *review.Page, v View) *html.Node {
	tabs := el("div", attrs("class", "srw-filter-tabs"),
		filterTab(FilterAll, allTabLabel(p.TotalReviews), !v.PhotoOnly()),
		filterTab(FilterPhoto, photoTabLabel(p.PhotoReviewCount), v.PhotoOnly()),
	)

	sel := el("select", attrs("class", ClassSortSelect, "aria-label", labelSort))
	for _, s := range review.Sorts {
		opt := el("option", attrs("value", string(s)), text(sortLabels[s]))
		if s == v.Sort() {
			opt.Attr = append(opt.Attr, html.Attribute{Key: "selected"})
		}
		sel.AppendChild(opt)
	}

	return el("div", attrs("class", "srw-filter-bar"), tabs, sel)
}

func filterTab(filter, label string, active bool) *html.Node {
	class := ClassFilterTab
	if active {
		class = classes(ClassFilterTab, ClassActive)
	}
	return el("button", attrs("type", "button", "class", class, AttrFilter, filter), text(label))
}

// TabActive reports whether the tab for filter should carry the active class.
func TabActive(filter string, photoOnly bool) bool {
	if filter == FilterPhoto {
		return photoOnly
	}
	return !photoOnly
}
