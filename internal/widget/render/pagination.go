package render

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

// WindowSize is the maximum number of page buttons shown at once.
const WindowSize = 5

// Window returns the first and last page button of the sliding window around
// current. The window holds up to WindowSize pages inside [1, totalPages].
func Window(current, totalPages int) (start, end int) {
	start = max(1, current-2)
	end = min(totalPages, start+WindowSize-1)
	start = max(1, end-WindowSize+1)
	return start, end
}

// Pagination renders prev/next and the numbered window, or nil when there is
// at most one page.
func Pagination(p *review.Page, v View) *html.Node {
	totalPages := p.TotalPages(v.PerPage())
	if totalPages <= 1 {
		return nil
	}
	current := p.CurrentPage()

	nav := el("div", attrs("class", "srw-pagination"))

	prev := el("button", attrs(
		"type", "button",
		"class", "srw-page-btn srw-page-prev",
		AttrPage, strconv.Itoa(current-1),
		"aria-label", labelPrevPage,
	), text(glyphPrev))
	if current <= 1 {
		prev.Attr = append(prev.Attr, html.Attribute{Key: "disabled"})
	}
	nav.AppendChild(prev)

	start, end := Window(current, totalPages)
	for page := start; page <= end; page++ {
		btn := el("button", attrs(
			"type", "button",
			"class", classes(ClassPageButton, "srw-page-number", activeIf(page == current)),
			AttrPage, strconv.Itoa(page),
		), text(strconv.Itoa(page)))
		if page == current {
			btn.Attr = append(btn.Attr, html.Attribute{Key: "aria-current", Val: "page"})
		}
		nav.AppendChild(btn)
	}

	next := el("button", attrs(
		"type", "button",
		"class", "srw-page-btn srw-page-next",
		AttrPage, strconv.Itoa(current+1),
		"aria-label", labelNextPage,
	), text(glyphNext))
	if current >= totalPages {
		next.Attr = append(next.Attr, html.Attribute{Key: "disabled"})
	}
	nav.AppendChild(next)

	return nav
}

func activeIf(on bool) string {
	if on {
		return ClassPageActive
	}
	return ""
}
