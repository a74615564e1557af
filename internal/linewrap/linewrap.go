// Package linewrap reproduces how the host breaks a chat message across
// lines so that message heights can be computed without rendering.
package linewrap

import (
	"strings"
	"unicode/utf8"

	"cleanchat/internal/markup"
	"cleanchat/internal/textmetrics"
)

// Split cuts text before every <br> marker and every space or non-breaking
// space. Markers never get split. Joining the chunks reproduces text.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	var chunks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
	}
	for _, tok := range markup.Tokenize(text) {
		if tok.Tag {
			if tok.Text == markup.BreakTag {
				flush()
			}
			cur.WriteString(tok.Text)
			continue
		}
		for _, r := range tok.Text {
			if isBreakingSpace(r) {
				flush()
			}
			cur.WriteRune(r)
		}
	}
	flush()
	return chunks
}

// LineCount returns how many lines text occupies in a box availableWidth
// pixels wide. While the first line is no wider than indentPx, chunks are
// appended to it regardless of fit. The result is always at least one.
func LineCount(text string, availableWidth, indentPx int) int {
	lines := 1
	current := ""
	for _, chunk := range Split(text) {
		if strings.HasPrefix(chunk, markup.BreakTag) {
			lines++
			current = strings.TrimPrefix(chunk, markup.BreakTag)
			continue
		}
		candidate := current + chunk
		if current == "" || textmetrics.Width(candidate) < availableWidth {
			current = candidate
			continue
		}
		if lines == 1 && textmetrics.Width(current) <= indentPx {
			current = candidate
			continue
		}
		lines++
		current = dropLeadingSpace(chunk)
	}
	return lines
}

func isBreakingSpace(r rune) bool {
	return r == ' ' || r == markup.NoBreakSpace
}

func dropLeadingSpace(chunk string) string {
	r, size := utf8.DecodeRuneInString(chunk)
	if isBreakingSpace(r) {
		return chunk[size:]
	}
	return chunk
}
