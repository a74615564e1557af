package textmetrics

import (
	"strings"

	"cleanchat/internal/markup"
)

// Width measures text in pixels. Color and style markers are free, each icon
// costs IconWidth and the <lt>/<gt> escapes measure as the literal character.
func Width(text string) int {
	if text == "" {
		return 0
	}
	if !strings.ContainsRune(text, '<') {
		return plainWidth(text)
	}
	total := 0
	for _, tok := range markup.Tokenize(text) {
		if !tok.Tag {
			total += plainWidth(tok.Text)
			continue
		}
		total += tagWidth(tok.Text)
	}
	return total
}

func tagWidth(tag string) int {
	if _, ok := markup.IconID(tag); ok {
		return IconWidth
	}
	switch tag {
	case "<lt>":
		w, _ := GlyphWidth('<')
		return w
	case "<gt>":
		w, _ := GlyphWidth('>')
		return w
	}
	return 0
}

func plainWidth(text string) int {
	total := 0
	for _, r := range text {
		w, _ := GlyphWidth(r)
		total += w
	}
	return total
}

// SpaceWidth is the cost of one literal space.
func SpaceWidth() int {
	w, _ := GlyphWidth(' ')
	return w
}

// Spaces returns n literal spaces.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
