package manifest

import "strings"

// Validate runs the end-of-stream checks and appends one error per failed
// check. All checks run regardless of earlier results; only Errors is modified.
func Validate(m *Manifest) {
	if strings.TrimSpace(m.Title) == "" {
		m.Errors = append(m.Errors, NewMissingDirective(DirectiveTitle))
	}
	if strings.TrimSpace(m.Author) == "" {
		m.Errors = append(m.Errors, NewMissingDirective(DirectiveAuthor))
	}
	if m.APIVersion < MinAPIVersion {
		m.Errors = append(m.Errors, NewAPIMinimumVersion(m.APIVersion))
	}
}
