package fixture

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/betona1/cafe24-staff-review/internal/platform/httpx"
	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

// Handler exposes a Store as the widget review endpoint.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler constructs the HTTP handler for store.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger.Named("fixture")}
}

// Routes registers GET /api/widget/reviews/{productID}.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/api/widget/reviews/{productID}", h.reviews)
}

func (h *Handler) reviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := chi.URLParam(r, "productID")
	if unescaped, err := url.PathUnescape(productID); err == nil {
		productID = unescaped
	}

	q, field, err := parseQuery(r.URL.Query())
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("validation_error", err.Error(), http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"field": field}))
		return
	}
	q.ProductID = productID

	page, err := h.store.Query(q)
	if err != nil {
		status := http.StatusInternalServerError
		code := "internal_error"
		if errors.Is(err, ErrInvalidQuery) {
			status = http.StatusUnprocessableEntity
			code = "validation_error"
		}
		h.logger.Warn("review query failed", zap.String("product_id", productID), zap.Error(err))
		httpx.WriteError(ctx, w, httpx.NewError(code, err.Error(), status))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	httpx.WriteJSON(w, http.StatusOK, page)
}

func parseQuery(values url.Values) (review.Query, string, error) {
	q := review.Query{Page: 1, PerPage: review.DefaultPerPage, Sort: review.SortLatest}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, "page", errors.New("page must be an integer of at least 1")
		}
		q.Page = n
	}
	if raw := strings.TrimSpace(values.Get("per_page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxPerPage {
			return q, "per_page", errors.New("per_page must be an integer between 1 and 50")
		}
		q.PerPage = n
	}
	if raw := values.Get("sort"); raw != "" {
		s, ok := review.ParseSort(raw)
		if !ok {
			return q, "sort", errors.New("sort must be one of latest, rating_high, rating_low")
		}
		q.Sort = s
	}
	if raw := strings.TrimSpace(values.Get("photo_only")); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return q, "photo_only", errors.New("photo_only must be a boolean")
		}
		q.PhotoOnly = on
	}
	return q, "", nil
}
