package preview

import (
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/betona1/cafe24-staff-review/internal/widget/format"
)

// uploadsHandler serves review images from dir. Without a directory every
// path gets a placeholder SVG labelled with the file name.
func uploadsHandler(dir string) http.HandlerFunc {
	if strings.TrimSpace(dir) != "" {
		files := http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir)))
		return files.ServeHTTP
	}
	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Base(chi.URLParam(r, "*"))
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=300")
		_, _ = w.Write([]byte(placeholderSVG(name)))
	}
}

func placeholderSVG(label string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg" width="480" height="480" viewBox="0 0 480 480">` +
		`<rect width="480" height="480" fill="#EEE"/>` +
		`<text x="240" y="248" font-family="sans-serif" font-size="22" text-anchor="middle" fill="#888">` +
		format.EscapeText(label) + `</text></svg>`
}
