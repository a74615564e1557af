package markup

import (
	"strings"
	"testing"
)

func TestRemoveTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "color tags",
			input:    "<col=ff0000>[Clan]</col> hello",
			expected: "[Clan] hello",
		},
		{
			name:     "icon tag",
			input:    "<img=2>Zezima",
			expected: "Zezima",
		},
		{
			name:     "escaped angle brackets",
			input:    "a <lt>3 b<gt>",
			expected: "a <3 b>",
		},
		{
			name:     "plain text unchanged",
			input:    "[06:01] hi",
			expected: "[06:01] hi",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveTags(tt.input); got != tt.expected {
				t.Errorf("RemoveTags(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	input := "<col=00ff00>[06:01]</col> <img=3>name<br>tail"
	tokens := Tokenize(input)
	var b strings.Builder
	tags := 0
	for _, tok := range tokens {
		b.WriteString(tok.Text)
		if tok.Tag {
			tags++
		}
	}
	if b.String() != input {
		t.Fatalf("tokens do not rejoin to input: %q", b.String())
	}
	if tags != 4 {
		t.Fatalf("expected 4 tags, got %d", tags)
	}
}

func TestSanitizeName(t *testing.T) {
	if got := SanitizeName("<col=ff>Clan Name</col> "); got != "Clan Name" {
		t.Fatalf("unexpected sanitized name: %q", got)
	}
}

func TestChannelPatternToleratesMarkers(t *testing.T) {
	pattern := ChannelPattern("Clan Name")
	tests := []struct {
		input string
		match bool
	}{
		{input: "[06:01] [Clan Name] ", match: true},
		{input: "[06:01] <col=ff0000>[Clan Name]</col>", match: true},
		{input: "[Clan<col=ff> Name]", match: true},
		{input: "[Clan Names]", match: false},
		{input: "[Other]", match: false},
	}
	for _, tt := range tests {
		if got := pattern.MatchString(tt.input); got != tt.match {
			t.Errorf("ChannelPattern.MatchString(%q) = %v, want %v", tt.input, got, tt.match)
		}
	}
}

func TestChannelPatternQuotesMeta(t *testing.T) {
	pattern := ChannelPattern("a.b")
	if pattern.MatchString("[axb]") {
		t.Fatalf("expected dot to be literal")
	}
	if !pattern.MatchString("[a.b]") {
		t.Fatalf("expected literal match")
	}
}

func TestIconID(t *testing.T) {
	if id, ok := IconID("<img=12>"); !ok || id != 12 {
		t.Fatalf("unexpected icon id: %d ok=%v", id, ok)
	}
	if _, ok := IconID("<col=12>"); ok {
		t.Fatalf("expected color tag to be rejected")
	}
}

func TestSanitizers(t *testing.T) {
	tests := []struct {
		name      string
		sanitizer Sanitizer
		input     string
		want      string
	}{
		{name: "plain", sanitizer: Plain, input: "<col=ff>[Clan\u00a0Name]</col> ", want: "[Clan Name] "},
		{name: "name", sanitizer: Name, input: " <img=3>Clan\u00a0Name ", want: "Clan Name"},
		{name: "lines", sanitizer: Lines, input: "You are now a guest of x.<br><col=ff>To talk</col>", want: "You are now a guest of x.\nTo talk"},
		{name: "escapes", sanitizer: Plain, input: "<lt>3<gt><custom>", want: "<3>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sanitizer.Sanitize(tc.input); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
