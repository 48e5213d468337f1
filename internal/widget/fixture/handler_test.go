package fixture

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := chi.NewRouter()
	NewHandler(defaultStore(t), nil).Routes(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandlerServesPage(t *testing.T) {
	t.Parallel()

	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/api/widget/reviews/1001?page=2&per_page=5&sort=latest&photo_only=false")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page review.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Equal(t, 2, page.Page)
	require.Equal(t, 5, page.PerPage)
	require.Equal(t, []int64{106, 107, 108, 109, 110}, ids(page.Items))
}

func TestHandlerDefaults(t *testing.T) {
	t.Parallel()

	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/api/widget/reviews/1002")
	require.NoError(t, err)
	defer resp.Body.Close()

	var page review.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Equal(t, 1, page.Page)
	require.Equal(t, review.DefaultPerPage, page.PerPage)
	require.Equal(t, 2, page.TotalReviews)
}

func TestHandlerValidation(t *testing.T) {
	t.Parallel()

	srv := newServer(t)
	cases := map[string]string{
		"page=0":         "page",
		"per_page=51":    "per_page",
		"per_page=x":     "per_page",
		"sort=oldest":    "sort",
		"photo_only=yes": "photo_only",
	}
	for query, field := range cases {
		resp, err := http.Get(srv.URL + "/api/widget/reviews/1001?" + query)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, query)
		require.Equal(t, "validation_error", body["error"], query)
		require.Equal(t, field, body["field"], query)
	}
}
