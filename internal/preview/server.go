// Package preview serves a host page that embeds the review widget, the
// widget assets and the fixture review API, for local development.
package preview

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/betona1/cafe24-staff-review/internal/platform/httpx"
	"github.com/betona1/cafe24-staff-review/internal/platform/observability"
	"github.com/betona1/cafe24-staff-review/internal/widget/fixture"
	"github.com/betona1/cafe24-staff-review/public"
)

// Config holds runtime options for the preview server.
type Config struct {
	Address   string
	ProductID string
	PerPage   int
	// ServerURL is the review API the widget calls; empty means this server.
	ServerURL    string
	WASMPath     string
	WASMExecPath string
	// UploadsDir serves real images; without it placeholders are generated.
	UploadsDir   string
	Store        *fixture.Store
	Logger       *zap.Logger
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	router, err := NewRouter(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  durationOr(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout: durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  60 * time.Second,
	}, nil
}

// NewRouter builds the route tree.
func NewRouter(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("preview: fixture store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("preview: embed static: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.TraceMiddleware())
	router.Use(observability.RequestLoggerMiddleware(logger))
	router.Use(observability.RecoveryMiddleware(logger))
	router.Use(chimw.Timeout(60 * time.Second))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Get("/", hostPageHandler(cfg))
	router.Handle("/static/*", http.StripPrefix("/static", staticAssets(staticContent)))
	router.Get("/widget.wasm", fileHandler(cfg.WASMPath, "application/wasm"))
	router.Get("/wasm_exec.js", fileHandler(cfg.WASMExecPath, "text/javascript; charset=utf-8"))
	router.Get("/uploads/*", uploadsHandler(cfg.UploadsDir))

	router.Group(func(r chi.Router) {
		r.Use(allowAnyOrigin)
		fixture.NewHandler(cfg.Store, logger).Routes(r)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(r.Context(), w, httpx.NewError("not_found", "resource not found", http.StatusNotFound))
	})

	return router, nil
}

func hostPageHandler(cfg Config) http.HandlerFunc {
	products := cfg.Store.ProductIDs()
	return func(w http.ResponseWriter, r *http.Request) {
		productID := strings.TrimSpace(r.URL.Query().Get("product"))
		if productID == "" {
			productID = cfg.ProductID
		}
		data := HostPageData{
			ProductID: productID,
			Products:  products,
			ServerURL: cfg.ServerURL,
			PerPage:   cfg.PerPage,
		}
		w.Header().Set("Cache-Control", "no-store")
		templ.Handler(HostPage(data)).ServeHTTP(w, r)
	}
}

func fileHandler(path, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(path) == "" {
			notBuilt(w, r, "asset path is not configured")
			return
		}
		f, err := os.Open(path)
		if err != nil {
			notBuilt(w, r, "asset is not available: run the wasm build first")
			return
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil || info.IsDir() {
			notBuilt(w, r, "asset is not a file")
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	}
}

func notBuilt(w http.ResponseWriter, r *http.Request, message string) {
	httpx.WriteError(r.Context(), w, httpx.NewError("asset_missing", message, http.StatusNotFound))
}

// allowAnyOrigin lets storefront pages on other hosts call the fixture API.
func allowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
