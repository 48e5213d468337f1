// Package review defines the data exchanged with the widget review API.
package review

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPerPage is the number of reviews requested per page.
const DefaultPerPage = 5

// Sort enumerates the orderings accepted by the review API.
type Sort string

const (
	SortLatest     Sort = "latest"
	SortRatingHigh Sort = "rating_high"
	SortRatingLow  Sort = "rating_low"
)

// Sorts lists every supported ordering in display order.
var Sorts = []Sort{SortLatest, SortRatingHigh, SortRatingLow}

// ParseSort converts a raw value into a Sort, reporting whether it is supported.
func ParseSort(value string) (Sort, bool) {
	switch s := Sort(strings.TrimSpace(value)); s {
	case SortLatest, SortRatingHigh, SortRatingLow:
		return s, true
	default:
		return "", false
	}
}

// Image is a photo attached to a review.
type Image struct {
	FilePath     string `json:"file_path" yaml:"file_path"`
	OriginalName string `json:"original_name,omitempty" yaml:"original_name"`
}

// Review is a single customer or staff review.
type Review struct {
	ID          int64   `json:"id,omitempty" yaml:"id"`
	Author      string  `json:"author" yaml:"author"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Title       string  `json:"title,omitempty" yaml:"title"`
	Content     string  `json:"content,omitempty" yaml:"content"`
	CreatedAt   string  `json:"created_at" yaml:"created_at"`
	IsStaffPick bool    `json:"is_staff_pick" yaml:"is_staff_pick"`
	Images      []Image `json:"images" yaml:"images"`
}

// HasImages reports whether the review carries at least one photo.
func (r Review) HasImages() bool {
	return len(r.Images) > 0
}

// Distribution counts reviews per star level.
type Distribution struct {
	Star1 int `json:"star_1"`
	Star2 int `json:"star_2"`
	Star3 int `json:"star_3"`
	Star4 int `json:"star_4"`
	Star5 int `json:"star_5"`
}

// Count returns the number of reviews for the star level; unknown levels count as zero.
func (d Distribution) Count(star int) int {
	switch star {
	case 1:
		return d.Star1
	case 2:
		return d.Star2
	case 3:
		return d.Star3
	case 4:
		return d.Star4
	case 5:
		return d.Star5
	default:
		return 0
	}
}

// Add increments the bucket for star; out of range levels are ignored.
func (d *Distribution) Add(star int) {
	switch star {
	case 1:
		d.Star1++
	case 2:
		d.Star2++
	case 3:
		d.Star3++
	case 4:
		d.Star4++
	case 5:
		d.Star5++
	}
}

// Max returns the largest bucket.
func (d Distribution) Max() int {
	max := 0
	for star := 1; star <= 5; star++ {
		if c := d.Count(star); c > max {
			max = c
		}
	}
	return max
}

// Page is one response of the widget review endpoint. A Page is never
// modified after it has been decoded.
type Page struct {
	TotalReviews       int          `json:"total_reviews"`
	Total              int          `json:"total"`
	Page               int          `json:"page"`
	PerPage            int          `json:"per_page"`
	AverageRating      float64      `json:"average_rating"`
	RatingDistribution Distribution `json:"rating_distribution"`
	AllPhotoURLs       []string     `json:"all_photo_urls"`
	PhotoReviewCount   int          `json:"photo_review_count"`
	Items              []Review     `json:"items"`
}

// TotalPages returns ceil(total / perPage), falling back to fallbackPerPage
// when the response omits per_page.
func (p *Page) TotalPages(fallbackPerPage int) int {
	if p == nil {
		return 0
	}
	perPage := p.PerPage
	if perPage <= 0 {
		perPage = fallbackPerPage
	}
	if perPage <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total + perPage - 1) / perPage
}

// CurrentPage returns the response page number, defaulting to 1.
func (p *Page) CurrentPage() int {
	if p == nil || p.Page < 1 {
		return 1
	}
	return p.Page
}

// ErrInvalidPage is wrapped by Validate failures.
var ErrInvalidPage = errors.New("review: invalid page")

// Validate rejects payloads that cannot be rendered faithfully.
func (p *Page) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: empty payload", ErrInvalidPage)
	}
	var problems []string
	if p.TotalReviews < 0 {
		problems = append(problems, "total_reviews")
	}
	if p.Total < 0 {
		problems = append(problems, "total")
	}
	if p.PhotoReviewCount < 0 {
		problems = append(problems, "photo_review_count")
	}
	if !validRating(p.AverageRating) {
		problems = append(problems, "average_rating")
	}
	for i, item := range p.Items {
		if !validRating(item.Rating) {
			problems = append(problems, fmt.Sprintf("items[%d].rating", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPage, strings.Join(problems, ", "))
	}
	return nil
}

func validRating(r float64) bool {
	return !math.IsNaN(r) && r >= 0 && r <= 5
}

// Query is the set of parameters sent with every review request.
type Query struct {
	ProductID string
	Page      int
	PerPage   int
	Sort      Sort
	PhotoOnly bool
}

// Values encodes the query string parameters of the widget endpoint.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("per_page", strconv.Itoa(q.PerPage))
	v.Set("sort", string(q.Sort))
	v.Set("photo_only", strconv.FormatBool(q.PhotoOnly))
	return v
}

// Path returns the endpoint path for the product, escaping the identifier.
func (q Query) Path() string {
	return "/api/widget/reviews/" + url.PathEscape(q.ProductID)
}
