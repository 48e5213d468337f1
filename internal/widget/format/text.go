package format

import "golang.org/x/text/unicode/norm"

const (
	// ContentMaxLength is the number of characters shown before a review body collapses.
	ContentMaxLength = 150
	// Ellipsis marks truncated content.
	Ellipsis = "..."
)

// Normalize returns s in Unicode NFC so that composed scripts count one
// character per visible glyph.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Truncate cuts s to max characters and appends Ellipsis. The boolean reports
// whether anything was cut; s is returned untouched otherwise.
func Truncate(s string, max int) (string, bool) {
	if max < 0 {
		max = 0
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i] + Ellipsis, true
		}
		count++
	}
	return s, false
}

// ImageURL resolves a stored upload path against the widget server.
func ImageURL(serverBaseURL, path string) string {
	return serverBaseURL + "/uploads/" + path
}
