package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/betona1/cafe24-staff-review/internal/widget/fixture"
	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := fixture.Default()
	require.NoError(t, err)
	router := chi.NewRouter()
	fixture.NewHandler(store, nil).Routes(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchDecodesPage(t *testing.T) {
	t.Parallel()

	srv := fixtureServer(t)
	c, err := New(srv.URL+"/", srv.Client())
	require.NoError(t, err)

	page, err := c.Fetch(context.Background(), review.Query{ProductID: "1001", Page: 1, PerPage: 5, Sort: review.SortLatest})
	require.NoError(t, err)
	require.Equal(t, 12, page.TotalReviews)
	require.Len(t, page.Items, 5)
	require.Equal(t, "김민지", page.Items[0].Author)
	require.Equal(t, "1001/ring-front.jpg", page.Items[0].Images[0].FilePath)
}

func TestFetchBuildsRequest(t *testing.T) {
	t.Parallel()

	var gotPath, gotRawPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRawPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_reviews":0,"total":0,"page":2,"per_page":5,"average_rating":0,"rating_distribution":{},"all_photo_urls":[],"photo_review_count":0,"items":[]}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, nil)
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), review.Query{ProductID: "a/b c", Page: 2, PerPage: 5, Sort: review.SortRatingLow, PhotoOnly: true})
	require.NoError(t, err)

	require.Equal(t, "/api/widget/reviews/a/b c", gotPath)
	require.Equal(t, "/api/widget/reviews/a%2Fb%20c", gotRawPath)
	require.Equal(t, "page=2&per_page=5&photo_only=true&sort=rating_low", gotQuery)
}

func TestFetchTransportFailures(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		status int
		body   string
	}{
		"server error":   {status: http.StatusInternalServerError, body: `{"error":"internal_error","message":"boom"}`},
		"not found":      {status: http.StatusNotFound},
		"garbled json":   {status: http.StatusOK, body: `{"items": [`},
		"invalid rating": {status: http.StatusOK, body: `{"total_reviews":1,"total":1,"average_rating":9,"items":[]}`},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			c, err := New(srv.URL, srv.Client())
			require.NoError(t, err)
			page, err := c.Fetch(context.Background(), review.Query{ProductID: "1", Page: 1, PerPage: 5, Sort: review.SortLatest})
			require.Nil(t, page)
			require.ErrorIs(t, err, ErrTransport)

			var te *TransportError
			require.True(t, errors.As(err, &te))
			if tc.status != http.StatusOK {
				require.Equal(t, tc.status, te.Status)
			}
		})
	}
}

func TestFetchNetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, nil)
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), review.Query{ProductID: "1", Page: 1, PerPage: 5})
	require.ErrorIs(t, err, ErrTransport)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	require.Zero(t, te.Status)
}

func TestNewValidatesBaseURL(t *testing.T) {
	t.Parallel()

	_, err := New("  ", nil)
	require.Error(t, err)
	_, err = New("/relative", nil)
	require.Error(t, err)
}

func TestFetchRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, srv.Client())
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), review.Query{ProductID: "1001", Page: 1, PerPage: 5})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "client.Fetch", spans[0].Name())
	require.Equal(t, codes.Error, spans[0].Status().Code)
}
