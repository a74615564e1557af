package markup

import "regexp"

type TagPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

var IconTagPattern = &TagPattern{
	Name:    "Icon",
	Pattern: regexp.MustCompile(`<img=([0-9]+)>`),
}

// AnyTagPattern matches every marker, known or not.
var AnyTagPattern = &TagPattern{
	Name:    "Any",
	Pattern: regexp.MustCompile(`<[^<>]*>`),
}

const (
	escapedLT = "<lt>"
	escapedGT = "<gt>"
	BreakTag  = "<br>"
)

// NoBreakSpace is the host's non-breaking space.
const NoBreakSpace = '\u00a0'

// RemoveTags strips every marker from input. The <lt> and <gt> escapes
// become the literal characters.
func RemoveTags(input string) string {
	return AnyTagPattern.Pattern.ReplaceAllStringFunc(input, func(tag string) string {
		switch tag {
		case escapedLT:
			return "<"
		case escapedGT:
			return ">"
		default:
			return ""
		}
	})
}

// IconID reports the image index of an <img=N> marker.
func IconID(tag string) (int, bool) {
	m := IconTagPattern.Pattern.FindStringSubmatch(tag)
	if m == nil || m[0] != tag {
		return 0, false
	}
	id := 0
	for _, r := range m[1] {
		id = id*10 + int(r-'0')
	}
	return id, true
}
