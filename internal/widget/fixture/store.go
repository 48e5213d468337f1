// Package fixture serves review pages from static YAML data. It backs the
// preview server and tests with the same contract as the production review API.
package fixture

import (
	"bytes"
	"cmp"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

// MaxPerPage is the largest page size the API accepts.
const MaxPerPage = 50

// ErrInvalidQuery is returned for out of range paging or unknown sort values.
var ErrInvalidQuery = errors.New("fixture: invalid query")

//go:embed data/reviews.yaml
var defaultFixtures []byte

// Product is the fixture record of one product.
type Product struct {
	Name    string          `yaml:"name"`
	Reviews []review.Review `yaml:"reviews"`
}

type document struct {
	Products map[string]Product `yaml:"products"`
}

// Store answers review queries from memory.
type Store struct {
	products map[string]Product
}

// Default returns the store built from the embedded fixtures.
func Default() (*Store, error) {
	return Load(bytes.NewReader(defaultFixtures))
}

// LoadFile reads fixtures from a YAML file.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes fixtures and validates every rating.
func Load(r io.Reader) (*Store, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	products := make(map[string]Product, len(doc.Products))
	for id, p := range doc.Products {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, errors.New("fixture: empty product id")
		}
		for i, r := range p.Reviews {
			if math.IsNaN(r.Rating) || r.Rating < 0 || r.Rating > 5 {
				return nil, fmt.Errorf("fixture: product %s review %d: rating %v out of range", id, i, r.Rating)
			}
		}
		products[id] = p
	}
	return &Store{products: products}, nil
}

// ProductIDs lists the known products in order.
func (s *Store) ProductIDs() []string {
	ids := make([]string, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Fetch implements the widget fetcher contract on top of Query.
func (s *Store) Fetch(ctx context.Context, q review.Query) (*review.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Query(q)
}

// Query returns one page of reviews. Aggregates (total_reviews, average,
// distribution, photos) always cover every review of the product; total
// counts the reviews left after the photo filter. Unknown products yield an
// empty page.
func (s *Store) Query(q review.Query) (*review.Page, error) {
	if q.Page < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1", ErrInvalidQuery)
	}
	if q.PerPage < 1 || q.PerPage > MaxPerPage {
		return nil, fmt.Errorf("%w: per_page must be between 1 and %d", ErrInvalidQuery, MaxPerPage)
	}
	sortBy := q.Sort
	if sortBy == "" {
		sortBy = review.SortLatest
	}
	if _, ok := review.ParseSort(string(sortBy)); !ok {
		return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidQuery, q.Sort)
	}

	all := slices.Clone(s.products[strings.TrimSpace(q.ProductID)].Reviews)
	sortReviews(all, review.SortLatest)

	page := &review.Page{
		TotalReviews: len(all),
		Page:         q.Page,
		PerPage:      q.PerPage,
		AllPhotoURLs: []string{},
		Items:        []review.Review{},
	}

	var sum float64
	var filtered []review.Review
	for _, r := range all {
		sum += r.Rating
		page.RatingDistribution.Add(int(math.Round(r.Rating)))
		if r.HasImages() {
			page.PhotoReviewCount++
			for _, img := range r.Images {
				page.AllPhotoURLs = append(page.AllPhotoURLs, img.FilePath)
			}
		}
		if !q.PhotoOnly || r.HasImages() {
			filtered = append(filtered, r)
		}
	}
	if len(all) > 0 {
		page.AverageRating = math.Round(sum/float64(len(all))*10) / 10
	}

	sortReviews(filtered, sortBy)
	page.Total = len(filtered)

	offset := (q.Page - 1) * q.PerPage
	if offset < len(filtered) {
		end := min(offset+q.PerPage, len(filtered))
		page.Items = append(page.Items, filtered[offset:end]...)
	}
	return page, nil
}

// sortReviews orders reviews in place. Ties fall back to newest first.
func sortReviews(reviews []review.Review, by review.Sort) {
	slices.SortStableFunc(reviews, func(a, b review.Review) int {
		switch by {
		case review.SortRatingHigh:
			if a.Rating != b.Rating {
				return cmp.Compare(b.Rating, a.Rating)
			}
		case review.SortRatingLow:
			if a.Rating != b.Rating {
				return cmp.Compare(a.Rating, b.Rating)
			}
		}
		return createdAt(b).Compare(createdAt(a))
	})
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func createdAt(r review.Review) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(r.CreatedAt)); err == nil {
			return t
		}
	}
	return time.Time{}
}
