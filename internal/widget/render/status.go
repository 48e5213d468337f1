package render

import "golang.org/x/net/html"

// Loading is the spinner shown while a request is in flight.
func Loading() *html.Node {
	return el("div", attrs("class", "srw-loading"),
		el("div", attrs("class", "srw-spinner")),
		el("span", attrs("class", "srw-loading-text"), text(labelLoading)),
	)
}

// Empty replaces the whole widget when the product has no reviews.
func Empty() *html.Node {
	return el("div", attrs("class", "srw-empty"),
		el("span", attrs("class", "srw-empty-text"), text(labelEmpty)),
	)
}

// NoMatch fills the review list when the current filter matches nothing.
func NoMatch() *html.Node {
	return el("div", attrs("class", "srw-empty"),
		el("span", attrs("class", "srw-empty-text"), text(labelNoMatch)),
	)
}

// Error is shown when reviews could not be loaded.
func Error() *html.Node {
	return el("div", attrs("class", "srw-error"),
		el("span", attrs("class", "srw-error-text"), text(labelError)),
	)
}
