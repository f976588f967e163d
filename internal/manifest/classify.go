package manifest

import "strings"

// LineType is the category of a raw manifest line
type LineType int

// Line categories
const (
	LineData LineType = iota
	LineDirective
	LineComment
	LineBlank
)

func (t LineType) String() string {
	switch t {
	case LineDirective:
		return "directive"
	case LineComment:
		return "comment"
	case LineBlank:
		return "blank"
	default:
		return "data"
	}
}

// Classify categorizes a single line. Anything that is not a directive,
// comment or blank line is data, which the parser ignores.
func Classify(line string) LineType {
	switch {
	case strings.HasPrefix(line, directivePrefix):
		return LineDirective
	case strings.HasPrefix(line, "#"), strings.HasPrefix(line, ";"):
		return LineComment
	case strings.TrimSpace(line) == "":
		return LineBlank
	default:
		return LineData
	}
}
