package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the manifest package. Every Problem matches exactly
// one of them with errors.Is.
var (
	// ErrMissingDirective indicates a required directive is absent or empty
	ErrMissingDirective = errors.New("missing required directive")

	// ErrInvalidDirective indicates a "## " line that is not "## Name: Value"
	ErrInvalidDirective = errors.New("invalid directive")

	// ErrUnknownDirective is reserved for a stricter directive ruleset
	ErrUnknownDirective = errors.New("unknown directive")

	// ErrUnmappedDirective indicates a well-formed directive with an unrecognized name
	ErrUnmappedDirective = errors.New("unmapped directive")

	// ErrEncoding indicates the input is not UTF-8 without a byte order mark
	ErrEncoding = errors.New("manifest file must be UTF-8 without BOM")

	// ErrLineLength indicates a directive line longer than MaxDirectiveLineBytes
	ErrLineLength = errors.New("directive line too long")

	// ErrCommentLength indicates a comment line longer than MaxCommentRunes
	ErrCommentLength = errors.New("comment line too long")

	// ErrTitleLength indicates a title longer than MaxTitleRunes
	ErrTitleLength = errors.New("title too long")

	// ErrAPIMinimumVersion indicates an APIVersion below MinAPIVersion
	ErrAPIMinimumVersion = errors.New("api version below minimum")

	// ErrInvalidValue indicates a directive value that could not be converted
	ErrInvalidValue = errors.New("invalid directive value")

	// ErrReadLine indicates the line source failed
	ErrReadLine = errors.New("error reading line")

	// ErrUnknown is the catch-all problem
	ErrUnknown = errors.New("unknown manifest error")
)

// Kind identifies the variant of a Problem
type Kind int

// Problem kinds
const (
	KindUnknown Kind = iota
	KindMissingDirective
	KindInvalidDirective
	KindUnknownDirective
	KindUnmappedDirective
	KindEncoding
	KindLineLength
	KindCommentLength
	KindTitleLength
	KindAPIMinimumVersion
	KindInvalidValue
	KindReadLine
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindMissingDirective:  "missing_directive",
	KindInvalidDirective:  "invalid_directive",
	KindUnknownDirective:  "unknown_directive",
	KindUnmappedDirective: "unmapped_directive",
	KindEncoding:          "encoding",
	KindLineLength:        "line_length",
	KindCommentLength:     "comment_length",
	KindTitleLength:       "title_length",
	KindAPIMinimumVersion: "api_minimum_version",
	KindInvalidValue:      "invalid_value",
	KindReadLine:          "read_line",
}

// String returns the snake_case name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names
// decode to KindUnknown.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	*k = KindUnknown
	return nil
}

// Problem is a single error or warning recorded while parsing. The set of
// implementations is closed; use a type switch or errors.As to read the payload.
type Problem interface {
	error
	Kind() Kind
	sealed()
}

// MissingDirectiveError reports a required directive that was never set
type MissingDirectiveError struct {
	Directive string
}

func (e *MissingDirectiveError) Error() string {
	return fmt.Sprintf("missing required directive: %s", e.Directive)
}

func (e *MissingDirectiveError) Kind() Kind           { return KindMissingDirective }
func (e *MissingDirectiveError) Is(target error) bool { return target == ErrMissingDirective }
func (e *MissingDirectiveError) sealed()              {}

// NewMissingDirective creates a MissingDirectiveError
func NewMissingDirective(directive string) *MissingDirectiveError {
	return &MissingDirectiveError{Directive: directive}
}

// InvalidDirectiveError reports a directive line that does not match the grammar
type InvalidDirectiveError struct {
	Line string
}

func (e *InvalidDirectiveError) Error() string {
	return fmt.Sprintf("invalid directive: %s", e.Line)
}

func (e *InvalidDirectiveError) Kind() Kind           { return KindInvalidDirective }
func (e *InvalidDirectiveError) Is(target error) bool { return target == ErrInvalidDirective }
func (e *InvalidDirectiveError) sealed()              {}

// NewInvalidDirective creates an InvalidDirectiveError
func NewInvalidDirective(line string) *InvalidDirectiveError {
	return &InvalidDirectiveError{Line: line}
}

// UnknownDirectiveError is reserved; the current ruleset never records it
type UnknownDirectiveError struct {
	Directive string
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("unknown directive: %s", e.Directive)
}

func (e *UnknownDirectiveError) Kind() Kind           { return KindUnknownDirective }
func (e *UnknownDirectiveError) Is(target error) bool { return target == ErrUnknownDirective }
func (e *UnknownDirectiveError) sealed()              {}

// NewUnknownDirective creates an UnknownDirectiveError
func NewUnknownDirective(directive string) *UnknownDirectiveError {
	return &UnknownDirectiveError{Directive: directive}
}

// UnmappedDirectiveError reports a directive name outside the recognized set.
// It is always recorded as a warning.
type UnmappedDirectiveError struct {
	Directive string
	Value     string
}

func (e *UnmappedDirectiveError) Error() string {
	return fmt.Sprintf("unmapped directive: %s", e.Directive)
}

func (e *UnmappedDirectiveError) Kind() Kind           { return KindUnmappedDirective }
func (e *UnmappedDirectiveError) Is(target error) bool { return target == ErrUnmappedDirective }
func (e *UnmappedDirectiveError) sealed()              {}

// NewUnmappedDirective creates an UnmappedDirectiveError
func NewUnmappedDirective(directive, value string) *UnmappedDirectiveError {
	return &UnmappedDirectiveError{Directive: directive, Value: value}
}

// EncodingError reports a byte order mark or invalid UTF-8 on a line
type EncodingError struct {
	Line   int
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s, line %d: %s", ErrEncoding, e.Line, e.Reason)
}

func (e *EncodingError) Kind() Kind           { return KindEncoding }
func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }
func (e *EncodingError) sealed()              {}

// NewEncoding creates an EncodingError
func NewEncoding(line int, reason string) *EncodingError {
	return &EncodingError{Line: line, Reason: reason}
}

// LineLengthError reports a directive line exceeding MaxDirectiveLineBytes
type LineLengthError struct {
	Length int
}

func (e *LineLengthError) Error() string {
	return fmt.Sprintf("directive lines beyond %d bytes will have ignored data, line length: %d", MaxDirectiveLineBytes, e.Length)
}

func (e *LineLengthError) Kind() Kind           { return KindLineLength }
func (e *LineLengthError) Is(target error) bool { return target == ErrLineLength }
func (e *LineLengthError) sealed()              {}

// NewLineLength creates a LineLengthError
func NewLineLength(length int) *LineLengthError {
	return &LineLengthError{Length: length}
}

// CommentLengthError reports a comment line exceeding MaxCommentRunes
type CommentLengthError struct {
	Length int
}

func (e *CommentLengthError) Error() string {
	return fmt.Sprintf("comment lines are restricted to %d characters, line length: %d", MaxCommentRunes, e.Length)
}

func (e *CommentLengthError) Kind() Kind           { return KindCommentLength }
func (e *CommentLengthError) Is(target error) bool { return target == ErrCommentLength }
func (e *CommentLengthError) sealed()              {}

// NewCommentLength creates a CommentLengthError
func NewCommentLength(length int) *CommentLengthError {
	return &CommentLengthError{Length: length}
}

// TitleLengthError reports a title exceeding MaxTitleRunes
type TitleLengthError struct {
	Length int
}

func (e *TitleLengthError) Error() string {
	return fmt.Sprintf("Title length limited to %d characters, current length: %d", MaxTitleRunes, e.Length)
}

func (e *TitleLengthError) Kind() Kind           { return KindTitleLength }
func (e *TitleLengthError) Is(target error) bool { return target == ErrTitleLength }
func (e *TitleLengthError) sealed()              {}

// NewTitleLength creates a TitleLengthError
func NewTitleLength(length int) *TitleLengthError {
	return &TitleLengthError{Length: length}
}

// APIMinimumVersionError reports an APIVersion below MinAPIVersion
type APIMinimumVersionError struct {
	Version uint32
}

func (e *APIMinimumVersionError) Error() string {
	return fmt.Sprintf("APIVersion must be at least %d, provided: %d", MinAPIVersion, e.Version)
}

func (e *APIMinimumVersionError) Kind() Kind           { return KindAPIMinimumVersion }
func (e *APIMinimumVersionError) Is(target error) bool { return target == ErrAPIMinimumVersion }
func (e *APIMinimumVersionError) sealed()              {}

// NewAPIMinimumVersion creates an APIMinimumVersionError
func NewAPIMinimumVersion(version uint32) *APIMinimumVersionError {
	return &APIMinimumVersionError{Version: version}
}

// InvalidValueError reports a directive value that failed conversion.
// The directive is skipped; the rest of the manifest is unaffected.
type InvalidValueError struct {
	Directive string
	Value     string
	Err       error
}

func (e *InvalidValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Directive, e.Err)
	}
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Directive)
}

func (e *InvalidValueError) Unwrap() error        { return e.Err }
func (e *InvalidValueError) Kind() Kind           { return KindInvalidValue }
func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }
func (e *InvalidValueError) sealed()              {}

// NewInvalidValue creates an InvalidValueError
func NewInvalidValue(directive, value string, err error) *InvalidValueError {
	return &InvalidValueError{Directive: directive, Value: value, Err: err}
}

// ReadLineError wraps a failure of the line source
type ReadLineError struct {
	Err error
}

func (e *ReadLineError) Error() string {
	return fmt.Sprintf("error reading line: %v", e.Err)
}

func (e *ReadLineError) Unwrap() error        { return e.Err }
func (e *ReadLineError) Kind() Kind           { return KindReadLine }
func (e *ReadLineError) Is(target error) bool { return target == ErrReadLine }
func (e *ReadLineError) sealed()              {}

// NewReadLine creates a ReadLineError
func NewReadLine(err error) *ReadLineError {
	return &ReadLineError{Err: err}
}

// UnknownError is the reserved catch-all problem
type UnknownError struct{}

func (e *UnknownError) Error() string        { return ErrUnknown.Error() }
func (e *UnknownError) Kind() Kind           { return KindUnknown }
func (e *UnknownError) Is(target error) bool { return target == ErrUnknown }
func (e *UnknownError) sealed()              {}

// NewUnknown creates an UnknownError
func NewUnknown() *UnknownError {
	return &UnknownError{}
}

// Problems is an ordered list of problems
type Problems []Problem

// Kinds returns the kind of every problem in order
func (p Problems) Kinds() []Kind {
	kinds := make([]Kind, len(p))
	for i, problem := range p {
		kinds[i] = problem.Kind()
	}
	return kinds
}

// Err joins all problems into a single error, or returns nil if there are none
func (p Problems) Err() error {
	if len(p) == 0 {
		return nil
	}
	errs := make([]error, len(p))
	for i, problem := range p {
		errs[i] = problem
	}
	return errors.Join(errs...)
}
