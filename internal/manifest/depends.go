package manifest

import "strings"

// comparators may appear in any combination between a name and its version
const comparators = "<=>"

// ParseDependencies parses the value of a DependsOn or OptionalDependsOn
// directive. Tokens are separated by single spaces and have the form
// Name[<comparators><version>], e.g. "LibAddonMenu-2.0>=32 LibDialog".
//
// Tokens with an empty name are dropped without a problem. A version that is
// not a non-negative integer is reported as InvalidValue and the entry is kept
// without a version. The comparator run is kept in Op but carries no
// meaning. Order and duplicates are preserved.
func ParseDependencies(directive, value string) ([]Dependency, Problems) {
	deps := []Dependency{}
	var problems Problems

	for _, token := range strings.Split(value, " ") {
		name, op, version, constrained := splitDependencyToken(token)
		if strings.TrimSpace(name) == "" {
			continue
		}

		dep := Dependency{Title: name}
		if constrained {
			n, err := parseUint32(version)
			if err != nil {
				problems = append(problems, NewInvalidValue(directive, token, err))
			} else {
				dep.Version = &n
				dep.Op = op
			}
		}
		deps = append(deps, dep)
	}

	return deps, problems
}

// splitDependencyToken cuts a token at its first run of comparator characters
func splitDependencyToken(token string) (name, op, version string, constrained bool) {
	start := strings.IndexAny(token, comparators)
	if start < 0 {
		return token, "", "", false
	}
	end := start
	for end < len(token) && strings.IndexByte(comparators, token[end]) >= 0 {
		end++
	}
	return token[:start], token[start:end], token[end:], true
}
