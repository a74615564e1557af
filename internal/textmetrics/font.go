package textmetrics

// glyphWidths holds the advance of each glyph in the chat bitmap font, without
// the inter-character gap.
var glyphWidths = map[rune]int{
	'A': 6, 'B': 5, 'C': 5, 'D': 5, 'E': 4, 'F': 4, 'G': 6, 'H': 5, 'I': 1,
	'J': 5, 'K': 5, 'L': 4, 'M': 7, 'N': 6, 'O': 6, 'P': 5, 'Q': 6, 'R': 5,
	'S': 5, 'T': 3, 'U': 6, 'V': 5, 'W': 7, 'X': 5, 'Y': 5, 'Z': 5,

	'a': 5, 'b': 5, 'c': 4, 'd': 5, 'e': 5, 'f': 4, 'g': 5, 'h': 5, 'i': 1,
	'j': 4, 'k': 4, 'l': 1, 'm': 7, 'n': 5, 'o': 5, 'p': 5, 'q': 5, 'r': 3,
	's': 5, 't': 3, 'u': 5, 'v': 5, 'w': 5, 'x': 5, 'y': 5, 'z': 5,

	'0': 6, '1': 4, '2': 6, '3': 5, '4': 5, '5': 5, '6': 6, '7': 5, '8': 6, '9': 6,

	' ': 1, ':': 1, ';': 2, '"': 3, '@': 11, '!': 1, '.': 1, '\'': 2, ',': 2,
	'(': 2, ')': 2, '+': 5, '-': 4, '=': 6, '?': 6, '*': 7, '/': 4, '$': 6,
	'£': 8, '^': 6, '{': 3, '}': 3, '[': 3, ']': 3, '&': 9, '#': 11, '°': 4,
	'\u00a0': 1,
}

const (
	// Gap is added after every glyph.
	Gap = 2
	// FallbackWidth is used for glyphs missing from the table.
	FallbackWidth = 5
	// IconWidth is the advance of one inline <img=N> icon.
	IconWidth = 13
	// LineHeight is the pixel height of one rendered chat line.
	LineHeight = 14
)

// GlyphWidth returns the advance of r including the gap, and whether r was
// found in the table.
func GlyphWidth(r rune) (int, bool) {
	if w, ok := glyphWidths[r]; ok {
		return w + Gap, true
	}
	return FallbackWidth + Gap, false
}
