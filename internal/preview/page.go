package preview

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
)

// HostPageData feeds the preview storefront page.
type HostPageData struct {
	ProductID string
	Products  []string
	ServerURL string
	PerPage   int
}

// HostPage renders a minimal storefront product page with the widget
// container and loader script, the way a merchant embeds it.
func HostPage(data HostPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(data.ProductID)
		sw := &stickyWriter{w: w}

		sw.write(`<!doctype html><html lang="ko"><head><meta charset="utf-8">`)
		sw.write(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		sw.write(`<title>리뷰 위젯 미리보기 - ` + id + `</title>`)
		sw.write(`<link rel="stylesheet" href="/static/widget.css"></head><body>`)

		sw.write(`<nav class="preview-products">`)
		for _, p := range data.Products {
			class := ""
			if p == data.ProductID {
				class = ` class="is-current"`
			}
			sw.write(`<a href="/?product=` + templ.EscapeString(url.QueryEscape(p)) + `"` + class + `>` + templ.EscapeString(p) + `</a> `)
		}
		sw.write(`</nav>`)

		sw.write(`<main><h1>상품 ` + id + `</h1>`)
		sw.write(`<div id="staff-review-widget" data-product-id="` + id + `"></div></main>`)

		sw.write(`<script src="/wasm_exec.js"></script>`)
		sw.write(`<script src="/static/widget.js" data-wasm="/widget.wasm"`)
		if data.ServerURL != "" {
			sw.write(` data-server="` + templ.EscapeString(data.ServerURL) + `"`)
		}
		if data.PerPage > 0 {
			sw.write(` data-per-page="` + strconv.Itoa(data.PerPage) + `"`)
		}
		sw.write(` data-log-level="debug"></script></body></html>`)
		return sw.err
	})
}

// stickyWriter keeps the first write error and skips later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}
