// Package format holds the pure helpers shared by the widget renderer:
// escaping, dates, avatar colours, star glyphs and content truncation.
package format

import "strings"

var (
	textReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\u00a0", "&nbsp;",
	)
	attrReplacer = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"'", "&#39;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// EscapeText escapes s for use as element text content, producing the same
// representation a browser emits when serialising a text node.
func EscapeText(s string) string {
	if s == "" {
		return ""
	}
	return textReplacer.Replace(s)
}

// EscapeAttr escapes s for use inside a double- or single-quoted attribute value.
func EscapeAttr(s string) string {
	if s == "" {
		return ""
	}
	return attrReplacer.Replace(s)
}
