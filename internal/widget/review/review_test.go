package review

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	t.Parallel()

	for _, s := range Sorts {
		got, ok := ParseSort(string(s))
		require.True(t, ok)
		require.Equal(t, s, got)
	}
	_, ok := ParseSort("oldest")
	require.False(t, ok)
	_, ok = ParseSort("")
	require.False(t, ok)
}

func TestPageDecodeMissingDistributionKeys(t *testing.T) {
	t.Parallel()

	payload := `{
		"total_reviews": 3,
		"total": 3,
		"page": 1,
		"per_page": 5,
		"average_rating": 4.3,
		"rating_distribution": {"star_5": 2, "star_3": 1},
		"all_photo_urls": ["a.jpg"],
		"photo_review_count": 1,
		"items": [{"author": "kim", "rating": 5, "created_at": "2024-01-01", "is_staff_pick": true,
			"images": [{"file_path": "a.jpg", "original_name": "a.jpg"}]}]
	}`

	var page Page
	require.NoError(t, json.Unmarshal([]byte(payload), &page))
	require.NoError(t, page.Validate())
	require.Equal(t, 2, page.RatingDistribution.Count(5))
	require.Equal(t, 0, page.RatingDistribution.Count(4))
	require.Equal(t, 1, page.RatingDistribution.Count(3))
	require.Equal(t, 0, page.RatingDistribution.Count(9))
	require.Equal(t, 2, page.RatingDistribution.Max())
	require.True(t, page.Items[0].IsStaffPick)
	require.True(t, page.Items[0].HasImages())
}

func TestPageTotalPages(t *testing.T) {
	t.Parallel()

	require.Equal(t, 9, (&Page{Total: 42, PerPage: 5}).TotalPages(5))
	require.Equal(t, 1, (&Page{Total: 5, PerPage: 5}).TotalPages(5))
	require.Equal(t, 2, (&Page{Total: 6}).TotalPages(5))
	require.Equal(t, 0, (&Page{Total: 0, PerPage: 5}).TotalPages(5))
	require.Equal(t, 0, (*Page)(nil).TotalPages(5))
	require.Equal(t, 1, (&Page{}).CurrentPage())
}

func TestPageValidate(t *testing.T) {
	t.Parallel()

	err := (&Page{TotalReviews: -1, AverageRating: 7, Items: []Review{{Rating: math.NaN()}}}).Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidPage))
	require.Contains(t, err.Error(), "total_reviews")
	require.Contains(t, err.Error(), "average_rating")
	require.Contains(t, err.Error(), "items[0].rating")

	require.Error(t, (*Page)(nil).Validate())
	require.NoError(t, (&Page{}).Validate())
}

func TestQueryEncoding(t *testing.T) {
	t.Parallel()

	q := Query{ProductID: "P 12/3", Page: 2, PerPage: 5, Sort: SortRatingLow, PhotoOnly: true}
	require.Equal(t, "/api/widget/reviews/P%2012%2F3", q.Path())
	require.Equal(t, "page=2&per_page=5&photo_only=true&sort=rating_low", q.Values().Encode())
}
