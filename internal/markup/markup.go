package markup

import (
	"regexp"
	"strings"
)

type Token struct {
	Text string
	Tag  bool
}

// Tokenize splits input into plain text runs and markers. Joining the token
// texts reproduces input.
func Tokenize(input string) []Token {
	if input == "" {
		return nil
	}
	locs := AnyTagPattern.Pattern.FindAllStringIndex(input, -1)
	tokens := make([]Token, 0, 2*len(locs)+1)
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			tokens = append(tokens, Token{Text: input[prev:loc[0]]})
		}
		tokens = append(tokens, Token{Text: input[loc[0]:loc[1]], Tag: true})
		prev = loc[1]
	}
	if prev < len(input) {
		tokens = append(tokens, Token{Text: input[prev:]})
	}
	return tokens
}

// SanitizeName strips markers and normalizes non-breaking spaces so that
// names observed in different places compare equal.
func SanitizeName(input string) string {
	return Name.Sanitize(input)
}

func Brackets(name string) string {
	return "[" + name + "]"
}

// ChannelPattern matches "[name]" inside marked-up text, tolerating markers
// between any two characters and either kind of space where name has one.
func ChannelPattern(name string) *regexp.Regexp {
	const gap = `(?:<[^<>]*>)*`
	var b strings.Builder
	b.WriteString(`\[`)
	b.WriteString(gap)
	for _, r := range name {
		if r == ' ' || r == NoBreakSpace {
			b.WriteString(`[ \x{00A0}]`)
		} else {
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
		b.WriteString(gap)
	}
	b.WriteString(`\]`)
	return regexp.MustCompile(b.String())
}

type Sanitizer interface {
	Sanitize(input string) string
}

type SanitizerFunc func(string) string

func (f SanitizerFunc) Sanitize(input string) string {
	return f(input)
}

type ChainedSanitizer struct {
	sanitizers []Sanitizer
}

func NewChainedSanitizer(sanitizers ...Sanitizer) *ChainedSanitizer {
	return &ChainedSanitizer{sanitizers: sanitizers}
}

func (c *ChainedSanitizer) Sanitize(input string) string {
	for _, s := range c.sanitizers {
		input = s.Sanitize(input)
	}
	return input
}

var (
	// Plain strips every marker and turns non-breaking spaces into spaces.
	Plain Sanitizer = NewChainedSanitizer(SanitizerFunc(RemoveTags), SanitizerFunc(normalizeSpaces))
	// Name is Plain without surrounding whitespace.
	Name Sanitizer = NewChainedSanitizer(Plain, SanitizerFunc(strings.TrimSpace))
	// Lines strips every marker, keeping line breaks as newlines.
	Lines Sanitizer = NewChainedSanitizer(SanitizerFunc(breaksToNewlines), SanitizerFunc(RemoveTags))
)

func normalizeSpaces(input string) string {
	return strings.ReplaceAll(input, string(NoBreakSpace), " ")
}

func breaksToNewlines(input string) string {
	return strings.ReplaceAll(input, BreakTag, "\n")
}
