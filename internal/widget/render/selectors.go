package render

// Element ids and class names shared with the controller.
const (
	ReviewListID     = "srw-review-list"
	PaginationAreaID = "srw-pagination-area"

	ClassWidget        = "srw-widget"
	ClassActive        = "srw-active"
	ClassFilterTab     = "srw-filter-tab"
	ClassSortSelect    = "srw-sort-select"
	ClassGalleryThumb  = "srw-gallery-thumb"
	ClassThumbnail     = "srw-thumbnail"
	ClassMoreButton    = "srw-more-btn"
	ClassContent       = "srw-review-content"
	ClassCollapsed     = "srw-content-collapsed"
	ClassPageButton    = "srw-page-btn"
	ClassPageActive    = "srw-page-active"
	ClassLightbox      = "srw-lightbox"
	ClassLightboxImage = "srw-lightbox-img"
	ClassLightboxClose = "srw-lightbox-close"

	AttrFilter   = "data-filter"
	AttrFullURL  = "data-full-url"
	AttrFullText = "data-full-text"
	AttrPage     = "data-page"

	FilterAll   = "all"
	FilterPhoto = "photo"
)
