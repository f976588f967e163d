package manifest

import (
	"strings"
	"unicode/utf8"

	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

const byteOrderMark = "\ufeff"

// Accumulator applies manifest lines, one at a time, to a single Manifest.
// It never fails: every anomaly becomes an entry in Errors or Warnings.
// An Accumulator belongs to one parse and is not safe for concurrent use.
type Accumulator struct {
	manifest *Manifest
	full     bool
	logger   *utils.Logger
	line     int
	finished bool
}

// NewAccumulator creates an accumulator writing into m. A nil m starts
// from New(). fullValidation enables length limits and the final Validate.
func NewAccumulator(m *Manifest, fullValidation bool, logger *utils.Logger) *Accumulator {
	if m == nil {
		m = New()
	}
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Accumulator{
		manifest: m,
		full:     fullValidation,
		logger:   logger,
	}
}

// Manifest returns the record being built
func (a *Accumulator) Manifest() *Manifest {
	return a.manifest
}

// Lines returns the number of lines processed so far
func (a *Accumulator) Lines() int {
	return a.line
}

// ProcessLine classifies line and applies it to the manifest
func (a *Accumulator) ProcessLine(line string) {
	a.line++
	line = a.checkEncoding(line)

	switch Classify(line) {
	case LineDirective:
		a.processDirective(line)
	case LineComment:
		if a.full {
			if n := utf8.RuneCountInString(line); n > MaxCommentRunes {
				a.addError(NewCommentLength(n))
			}
		}
	case LineBlank, LineData:
	}
}

// Finish runs Validate once when full validation is enabled and returns the
// manifest. Further calls return the same manifest without validating again.
func (a *Accumulator) Finish() *Manifest {
	if a.finished {
		return a.manifest
	}
	a.finished = true
	if a.full {
		before := len(a.manifest.Errors)
		Validate(a.manifest)
		a.logger.Debug().
			Int("errors", len(a.manifest.Errors)-before).
			Msg("Validation finished")
	}
	return a.manifest
}

// checkEncoding strips a leading byte order mark. Encoding problems are
// errors under full validation and warnings otherwise.
func (a *Accumulator) checkEncoding(line string) string {
	report := a.addWarning
	if a.full {
		report = a.addError
	}
	if a.line == 1 && strings.HasPrefix(line, byteOrderMark) {
		report(NewEncoding(a.line, "byte order mark"))
		line = strings.TrimPrefix(line, byteOrderMark)
	}
	if !utf8.ValidString(line) {
		report(NewEncoding(a.line, "invalid UTF-8"))
	}
	return line
}

func (a *Accumulator) processDirective(line string) {
	name, value, ok := SplitDirective(line)
	if !ok {
		a.addError(NewInvalidDirective(line))
		return
	}
	if a.full && len(line) > MaxDirectiveLineBytes {
		a.addError(NewLineLength(len(line)))
	}
	a.dispatch(name, value)
}

func (a *Accumulator) dispatch(name, value string) {
	m := a.manifest

	switch name {
	case DirectiveTitle:
		if a.full {
			if n := utf8.RuneCountInString(value); n > MaxTitleRunes {
				a.addError(NewTitleLength(n))
			}
		}
		m.Title = value
	case DirectiveAuthor:
		m.Author = value
	case DirectiveAPIVersion:
		primary, secondary, err := parseAPIVersion(value)
		if err != nil {
			a.addError(NewInvalidValue(name, value, err))
			return
		}
		m.APIVersion = primary
		if secondary != nil {
			m.APIVersion2 = secondary
		}
	case DirectiveAddOnVersion:
		n, err := parseUint32(value)
		if err != nil {
			a.addError(NewInvalidValue(name, value, err))
			return
		}
		m.AddOnVersion = &n
	case DirectiveVersion:
		m.Version = ptr(value)
	case DirectiveDependsOn:
		deps, problems := ParseDependencies(name, value)
		m.DependsOn = append(m.DependsOn, deps...)
		a.addErrors(problems)
	case DirectiveOptionalDependsOn:
		deps, problems := ParseDependencies(name, value)
		m.OptionalDependsOn = append(m.OptionalDependsOn, deps...)
		a.addErrors(problems)
	case DirectiveIsLibrary:
		b, err := parseBool(value)
		if err != nil {
			a.addError(NewInvalidValue(name, value, err))
			return
		}
		m.IsLibrary = &b
	default:
		// Credits, Contributors, SavedVariables and friends are legal
		a.addWarning(NewUnmappedDirective(name, value))
		return
	}

	a.logger.Debug().
		Int("line", a.line).
		Str("directive", name).
		Msg("Directive applied")
}

func (a *Accumulator) addError(problem Problem) {
	a.manifest.Errors = append(a.manifest.Errors, problem)
	a.logger.Debug().
		Int("line", a.line).
		Str("kind", problem.Kind().String()).
		Msg(problem.Error())
}

func (a *Accumulator) addWarning(problem Problem) {
	a.manifest.Warnings = append(a.manifest.Warnings, problem)
	a.logger.Debug().
		Int("line", a.line).
		Str("kind", problem.Kind().String()).
		Msg(problem.Error())
}

func (a *Accumulator) addErrors(problems Problems) {
	for _, problem := range problems {
		a.addError(problem)
	}
}
