package manifest

import (
	"errors"
	"strconv"
	"strings"
)

const (
	directivePrefix    = "## "
	directiveSeparator = ": "
)

var errBoolToken = errors.New(`expected "true" or "false"`)

// SplitDirective splits a "## Name: Value" line at the first ": " after the
// prefix. The value is returned verbatim and may contain further separators.
func SplitDirective(line string) (name, value string, ok bool) {
	rest, found := strings.CutPrefix(line, directivePrefix)
	if !found {
		return "", "", false
	}
	return strings.Cut(rest, directiveSeparator)
}

// parseAPIVersion reads one version, or two separated by a single space.
// Anything else, including a third number, rejects the whole value so the
// manifest keeps its previous APIVersion.
func parseAPIVersion(value string) (uint32, *uint32, error) {
	left, right, twoValues := strings.Cut(value, " ")
	primary, err := parseUint32(left)
	if err != nil {
		return 0, nil, err
	}
	if !twoValues {
		return primary, nil, nil
	}
	secondary, err := parseUint32(right)
	if err != nil {
		return 0, nil, err
	}
	return primary, &secondary, nil
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errBoolToken
	}
}
