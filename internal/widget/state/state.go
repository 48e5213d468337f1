// Package state holds the mutable view state of one embedded widget.
package state

import (
	"strings"

	"github.com/betona1/cafe24-staff-review/internal/widget/format"
	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

// Config seeds a State. ServerBaseURL and ProductID cannot change afterwards.
type Config struct {
	ServerBaseURL string
	ProductID     string
	PerPage       int
}

// State is the single view record of a widget instance. It is not safe for
// concurrent use; the owning controller serialises access.
type State struct {
	serverBaseURL string
	productID     string
	perPage       int

	page         int
	sort         review.Sort
	photoOnly    bool
	last         *review.Page
	renderedOnce bool
}

// New builds the initial state: page 1, latest first, all reviews.
func New(cfg Config) *State {
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = review.DefaultPerPage
	}
	return &State{
		serverBaseURL: strings.TrimRight(strings.TrimSpace(cfg.ServerBaseURL), "/"),
		productID:     strings.TrimSpace(cfg.ProductID),
		perPage:       perPage,
		page:          1,
		sort:          review.SortLatest,
	}
}

func (s *State) ServerBaseURL() string { return s.serverBaseURL }
func (s *State) ProductID() string     { return s.productID }
func (s *State) PerPage() int          { return s.perPage }
func (s *State) Page() int             { return s.page }
func (s *State) Sort() review.Sort     { return s.sort }
func (s *State) PhotoOnly() bool       { return s.photoOnly }
func (s *State) RenderedOnce() bool    { return s.renderedOnce }

// Last returns the most recent successful response, or nil.
func (s *State) Last() *review.Page { return s.last }

// SetSort switches the ordering and returns to the first page. Unsupported
// values leave the state untouched and report false.
func (s *State) SetSort(value review.Sort) bool {
	sort, ok := review.ParseSort(string(value))
	if !ok {
		return false
	}
	s.sort = sort
	s.page = 1
	return true
}

// SetPhotoOnly toggles the photo filter and returns to the first page.
func (s *State) SetPhotoOnly(on bool) {
	s.photoOnly = on
	s.page = 1
}

// SetPage moves to page n. Non-positive pages are ignored.
func (s *State) SetPage(n int) bool {
	if n < 1 {
		return false
	}
	s.page = n
	return true
}

// Store replaces the last response wholesale.
func (s *State) Store(page *review.Page) {
	s.last = page
}

// MarkRendered records that the full widget layout has been rendered.
func (s *State) MarkRendered() {
	s.renderedOnce = true
}

// Query snapshots the request parameters for the current view.
func (s *State) Query() review.Query {
	return review.Query{
		ProductID: s.productID,
		Page:      s.page,
		PerPage:   s.perPage,
		Sort:      s.sort,
		PhotoOnly: s.photoOnly,
	}
}

// ImageURL resolves an upload path against the widget server.
func (s *State) ImageURL(path string) string {
	return format.ImageURL(s.serverBaseURL, path)
}
