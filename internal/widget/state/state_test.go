package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := New(Config{ServerBaseURL: " https://reviews.example.com/ ", ProductID: " 1024 "})
	require.Equal(t, "https://reviews.example.com", s.ServerBaseURL())
	require.Equal(t, "1024", s.ProductID())
	require.Equal(t, review.DefaultPerPage, s.PerPage())
	require.Equal(t, 1, s.Page())
	require.Equal(t, review.SortLatest, s.Sort())
	require.False(t, s.PhotoOnly())
	require.False(t, s.RenderedOnce())
	require.Nil(t, s.Last())
	require.Equal(t, "https://reviews.example.com/uploads/a.jpg", s.ImageURL("a.jpg"))
}

func TestTransitionsResetPage(t *testing.T) {
	t.Parallel()

	s := New(Config{ProductID: "1"})

	require.True(t, s.SetPage(4))
	require.Equal(t, 4, s.Page())

	require.True(t, s.SetSort(review.SortRatingHigh))
	require.Equal(t, 1, s.Page(), "sort change returns to first page")
	require.Equal(t, review.SortRatingHigh, s.Sort())

	require.True(t, s.SetPage(3))
	s.SetPhotoOnly(true)
	require.Equal(t, 1, s.Page(), "filter change returns to first page")
	require.True(t, s.PhotoOnly())
}

func TestInvalidTransitionsAreNoOps(t *testing.T) {
	t.Parallel()

	s := New(Config{ProductID: "1"})
	require.True(t, s.SetPage(2))

	require.False(t, s.SetPage(0))
	require.False(t, s.SetPage(-3))
	require.Equal(t, 2, s.Page())

	require.False(t, s.SetSort("oldest"))
	require.Equal(t, review.SortLatest, s.Sort())
	require.Equal(t, 2, s.Page())
}

func TestQuerySnapshot(t *testing.T) {
	t.Parallel()

	s := New(Config{ProductID: "P-9", PerPage: 10})
	s.SetPhotoOnly(true)
	s.SetSort(review.SortRatingLow)
	s.SetPage(3)

	require.Equal(t, review.Query{
		ProductID: "P-9",
		Page:      3,
		PerPage:   10,
		Sort:      review.SortRatingLow,
		PhotoOnly: true,
	}, s.Query())

	page := &review.Page{TotalReviews: 1}
	s.Store(page)
	s.MarkRendered()
	require.Same(t, page, s.Last())
	require.True(t, s.RenderedOnce())
}
