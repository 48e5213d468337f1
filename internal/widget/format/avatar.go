package format

import (
	"unicode/utf16"
)

// AvatarPalette is the fixed set of avatar background colours.
var AvatarPalette = [...]string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// AvatarColor maps an author name to a palette colour. The mapping is stable
// for a given name; different names may share a colour.
func AvatarColor(name string) string {
	if name == "" {
		return AvatarPalette[0]
	}
	var hash int32
	for _, unit := range utf16.Encode([]rune(name)) {
		hash = int32(unit) + ((hash << 5) - hash)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return AvatarPalette[h%int64(len(AvatarPalette))]
}

// Initial returns the first character of the author name, or "?" when empty.
func Initial(name string) string {
	name = Normalize(name)
	for _, r := range name {
		return string(r)
	}
	return "?"
}
