// Package public embeds the widget stylesheet and loader script.
package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticFS returns the embedded files rooted at static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
