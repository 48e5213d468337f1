package format

// MaxStars is the number of glyphs in every star rating.
const MaxStars = 5

// Glyph is one position of a star rating.
type Glyph int

const (
	GlyphEmpty Glyph = iota
	GlyphHalf
	GlyphFull
)

func (g Glyph) String() string {
	switch g {
	case GlyphFull:
		return "full"
	case GlyphHalf:
		return "half"
	default:
		return "empty"
	}
}

// Stars computes the glyph for each position i = 1..5: full when rating >= i,
// half when rating >= i-0.5, otherwise empty.
func Stars(rating float64) [MaxStars]Glyph {
	var glyphs [MaxStars]Glyph
	for i := 1; i <= MaxStars; i++ {
		pos := float64(i)
		switch {
		case rating >= pos:
			glyphs[i-1] = GlyphFull
		case rating >= pos-0.5:
			glyphs[i-1] = GlyphHalf
		default:
			glyphs[i-1] = GlyphEmpty
		}
	}
	return glyphs
}
