package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeTextAndAttrAreDistinct(t *testing.T) {
	t.Parallel()

	input := `<b>"Tom" & 'Jerry'</b>`

	require.Equal(t, `&lt;b&gt;"Tom" &amp; 'Jerry'&lt;/b&gt;`, EscapeText(input))
	require.Equal(t, `&lt;b&gt;&quot;Tom&quot; &amp; &#39;Jerry&#39;&lt;/b&gt;`, EscapeAttr(input))
	require.Equal(t, "a&nbsp;b", EscapeText("a b"))
	require.Empty(t, EscapeText(""))
	require.Empty(t, EscapeAttr(""))
}

func TestDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "rfc3339", input: "2024-03-05T10:20:30Z", want: "2024-03-05"},
		{name: "rfc3339 with offset", input: "2024-03-05T23:59:00+09:00", want: "2024-03-05"},
		{name: "iso without zone", input: "2024-03-05T10:20:30.123456", want: "2024-03-05"},
		{name: "python str datetime", input: "2024-03-05 10:20:30", want: "2024-03-05"},
		{name: "python str datetime micros", input: "2024-03-05 10:20:30.654321", want: "2024-03-05"},
		{name: "date only", input: "2024-03-05", want: "2024-03-05"},
		{name: "unparsable passthrough", input: "yesterday", want: "yesterday"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Date(tc.input))
		})
	}
}

func TestAvatarColorStableAndInPalette(t *testing.T) {
	t.Parallel()

	names := []string{"김민수", "Alice", "bob", "이", "a very long author name that overflows the hash"}
	for _, name := range names {
		first := AvatarColor(name)
		require.Equal(t, first, AvatarColor(name), "colour must be stable for %q", name)
		require.Contains(t, AvatarPalette[:], first)
	}
	require.Equal(t, AvatarPalette[0], AvatarColor(""))
}

func TestInitial(t *testing.T) {
	t.Parallel()

	require.Equal(t, "김", Initial("김민수"))
	require.Equal(t, "A", Initial("Alice"))
	require.Equal(t, "?", Initial(""))
	// Decomposed Hangul is composed before taking the first character.
	require.Equal(t, "\uD55C", Initial("\u1112\u1161\u11AB\uAE00"))
}

func TestStars(t *testing.T) {
	t.Parallel()

	count := func(glyphs [MaxStars]Glyph) (full, half, empty int) {
		for _, g := range glyphs {
			switch g {
			case GlyphFull:
				full++
			case GlyphHalf:
				half++
			default:
				empty++
			}
		}
		return
	}

	tests := []struct {
		rating            float64
		full, half, empty int
	}{
		{rating: 0, full: 0, half: 0, empty: 5},
		{rating: 0.5, full: 0, half: 1, empty: 4},
		{rating: 3.5, full: 3, half: 1, empty: 1},
		{rating: 3.4, full: 3, half: 0, empty: 2},
		{rating: 4.2, full: 4, half: 0, empty: 1},
		{rating: 4.6, full: 4, half: 1, empty: 0},
		{rating: 5, full: 5, half: 0, empty: 0},
	}
	for _, tc := range tests {
		full, half, empty := count(Stars(tc.rating))
		require.Equal(t, tc.full, full, "full stars for %.1f", tc.rating)
		require.Equal(t, tc.half, half, "half stars for %.1f", tc.rating)
		require.Equal(t, tc.empty, empty, "empty stars for %.1f", tc.rating)
	}

	for r := 0.0; r <= 5.0; r += 0.1 {
		full, half, empty := count(Stars(r))
		require.Equal(t, MaxStars, full+half+empty)
	}

	glyphs := Stars(3.5)
	require.Equal(t, [MaxStars]Glyph{GlyphFull, GlyphFull, GlyphFull, GlyphHalf, GlyphEmpty}, glyphs)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	exact := strings.Repeat("a", ContentMaxLength)
	out, cut := Truncate(exact, ContentMaxLength)
	require.False(t, cut)
	require.Equal(t, exact, out)

	over := exact + "b"
	out, cut = Truncate(over, ContentMaxLength)
	require.True(t, cut)
	require.Equal(t, exact+Ellipsis, out)

	korean := strings.Repeat("가", ContentMaxLength+1)
	out, cut = Truncate(korean, ContentMaxLength)
	require.True(t, cut)
	require.Equal(t, strings.Repeat("가", ContentMaxLength)+Ellipsis, out)

	out, cut = Truncate("", ContentMaxLength)
	require.False(t, cut)
	require.Empty(t, out)
}

func TestImageURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://reviews.example.com/uploads/2024/01/a.jpg", ImageURL("https://reviews.example.com", "2024/01/a.jpg"))
	require.Equal(t, "/uploads/a.jpg", ImageURL("", "a.jpg"))
}
