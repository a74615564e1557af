package linewrap

import (
	"strings"
	"testing"

	"cleanchat/internal/textmetrics"
)

func TestSplitKeepsDelimiterWithFollowingChunk(t *testing.T) {
	text := "hello big<br>wide world"
	chunks := Split(text)
	want := []string{"hello", " big", "<br>wide", " world"}
	if len(chunks) != len(want) {
		t.Fatalf("unexpected chunks: %#v", chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Fatalf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
	if strings.Join(chunks, "") != text {
		t.Fatalf("chunks do not rejoin to input")
	}
}

func TestSplitDoesNotCutInsideMarkers(t *testing.T) {
	text := "a <col=ff0000>b c</col> d"
	chunks := Split(text)
	if strings.Join(chunks, "") != text {
		t.Fatalf("chunks do not rejoin to input: %#v", chunks)
	}
	for _, chunk := range chunks {
		if strings.Count(chunk, "<") != strings.Count(chunk, ">") {
			t.Fatalf("chunk splits a marker: %q", chunk)
		}
	}
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %#v", chunks)
	}
}

func TestLineCountEmptyIsOneLine(t *testing.T) {
	if got := LineCount("", 100, 0); got != 1 {
		t.Fatalf("expected 1 line, got %d", got)
	}
}

func TestLineCountFitsOnOneLine(t *testing.T) {
	texts := []string{"hi", "a short message", "[06:01] Zezima: buying gf"}
	for _, text := range texts {
		w := textmetrics.Width(text) + 1
		if got := LineCount(text, w, 0); got != 1 {
			t.Errorf("LineCount(%q, %d, 0) = %d, want 1", text, w, got)
		}
	}
}

func TestLineCountWraps(t *testing.T) {
	// each "aaaa" is 28px and each " aaaa" is 31px
	text := "aaaa aaaa aaaa"
	if got := LineCount(text, 60, 0); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
	if got := LineCount(text, 40, 0); got != 3 {
		t.Fatalf("expected 3 lines, got %d", got)
	}
}

func TestLineCountBreakMarkerForcesNewLine(t *testing.T) {
	if got := LineCount("a<br>b<br>c", 1000, 0); got != 3 {
		t.Fatalf("expected 3 lines, got %d", got)
	}
}

func TestLineCountOversizedChunkOverflows(t *testing.T) {
	long := strings.Repeat("m", 40)
	if got := LineCount(long, 50, 0); got != 1 {
		t.Fatalf("expected a lone oversized word to stay on one line, got %d", got)
	}
	if got := LineCount("hi "+long+" hi", 50, 0); got != 3 {
		t.Fatalf("expected oversized word on its own line, got %d", got)
	}
}

func TestLineCountIndentKeepsFirstLineGrowing(t *testing.T) {
	indent := textmetrics.Spaces(10)
	text := indent + "aaaa aaaa"
	indentPx := textmetrics.Width(indent)
	// the indent alone is 30px, wider than the box
	if got := LineCount(text, 25, indentPx); got != 2 {
		t.Fatalf("expected indent to stay on the first line, got %d", got)
	}
}

func TestLineCountIgnoresMarkers(t *testing.T) {
	plain := "the quick brown fox jumps over the lazy dog"
	marked := "<col=ff0000>the</col> quick <u>brown</u> fox<col=00ff00> jumps over</col> the lazy dog"
	for _, width := range []int{30, 60, 90, 150, 400} {
		if a, b := LineCount(plain, width, 0), LineCount(marked, width, 0); a != b {
			t.Errorf("width %d: plain=%d marked=%d", width, a, b)
		}
	}
}
