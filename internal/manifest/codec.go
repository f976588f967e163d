package manifest

import (
	"encoding/json"
	"errors"
)

// problemRecord is the serialized form of a Problem. Message is always
// present; the payload fields are set according to Kind.
type problemRecord struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Message   string `json:"message" yaml:"message"`
	Directive string `json:"directive,omitempty" yaml:"directive,omitempty"`
	Value     string `json:"value,omitempty" yaml:"value,omitempty"`
	Line      string `json:"line,omitempty" yaml:"line,omitempty"`
	LineNo    int    `json:"line_no,omitempty" yaml:"line_no,omitempty"`
	Length    int    `json:"length,omitempty" yaml:"length,omitempty"`
	Version   uint32 `json:"version,omitempty" yaml:"version,omitempty"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Cause     string `json:"cause,omitempty" yaml:"cause,omitempty"`
}

func encodeProblem(problem Problem) problemRecord {
	rec := problemRecord{Kind: problem.Kind(), Message: problem.Error()}

	switch e := problem.(type) {
	case *MissingDirectiveError:
		rec.Directive = e.Directive
	case *InvalidDirectiveError:
		rec.Line = e.Line
	case *UnknownDirectiveError:
		rec.Directive = e.Directive
	case *UnmappedDirectiveError:
		rec.Directive = e.Directive
		rec.Value = e.Value
	case *EncodingError:
		rec.LineNo = e.Line
		rec.Reason = e.Reason
	case *LineLengthError:
		rec.Length = e.Length
	case *CommentLengthError:
		rec.Length = e.Length
	case *TitleLengthError:
		rec.Length = e.Length
	case *APIMinimumVersionError:
		rec.Version = e.Version
	case *InvalidValueError:
		rec.Directive = e.Directive
		rec.Value = e.Value
		if e.Err != nil {
			rec.Cause = e.Err.Error()
		}
	case *ReadLineError:
		if e.Err != nil {
			rec.Cause = e.Err.Error()
		}
	}
	return rec
}

// decodeProblem rebuilds a Problem. Wrapped causes come back as plain
// errors carrying the original message.
func decodeProblem(rec problemRecord) Problem {
	var cause error
	if rec.Cause != "" {
		cause = errors.New(rec.Cause)
	}

	switch rec.Kind {
	case KindMissingDirective:
		return NewMissingDirective(rec.Directive)
	case KindInvalidDirective:
		return NewInvalidDirective(rec.Line)
	case KindUnknownDirective:
		return NewUnknownDirective(rec.Directive)
	case KindUnmappedDirective:
		return NewUnmappedDirective(rec.Directive, rec.Value)
	case KindEncoding:
		return NewEncoding(rec.LineNo, rec.Reason)
	case KindLineLength:
		return NewLineLength(rec.Length)
	case KindCommentLength:
		return NewCommentLength(rec.Length)
	case KindTitleLength:
		return NewTitleLength(rec.Length)
	case KindAPIMinimumVersion:
		return NewAPIMinimumVersion(rec.Version)
	case KindInvalidValue:
		return NewInvalidValue(rec.Directive, rec.Value, cause)
	case KindReadLine:
		return NewReadLine(cause)
	default:
		return NewUnknown()
	}
}

func (p Problems) records() []problemRecord {
	out := make([]problemRecord, len(p))
	for i, problem := range p {
		out[i] = encodeProblem(problem)
	}
	return out
}

// MarshalJSON renders each problem as an object with kind, message and payload
func (p Problems) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.records())
}

// UnmarshalJSON decodes the output of MarshalJSON
func (p *Problems) UnmarshalJSON(data []byte) error {
	var recs []problemRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return err
	}
	out := make(Problems, len(recs))
	for i, rec := range recs {
		out[i] = decodeProblem(rec)
	}
	*p = out
	return nil
}

// MarshalYAML renders problems the same way as MarshalJSON
func (p Problems) MarshalYAML() (interface{}, error) {
	return p.records(), nil
}
