package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteErrorEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := NewError("invalid_query", "per_page must be\nbetween 1 and 50", http.StatusBadRequest).
		WithDetails(map[string]any{"field": "per_page"})
	WriteError(context.Background(), rec, err)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "invalid_query", body["error"])
	require.Equal(t, "per_page must be between 1 and 50", body["message"])
	require.Equal(t, "per_page", body["field"])
	require.EqualValues(t, 400, body["status"])
	require.NotContains(t, body, "request_id")
}

func TestNewErrorDefaultsStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, http.StatusInternalServerError, NewError("x", "y", 0).Status)
}

func TestWriteJSONKeepsMarkup(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, map[string]string{"content": "<b>"})
	require.JSONEq(t, `{"content":"<b>"}`, rec.Body.String())
	require.Contains(t, rec.Body.String(), "<b>")
}
