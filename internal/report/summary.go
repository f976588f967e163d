package report

import (
	"fmt"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
)

// Summary counts the outcome of a set of parses
type Summary struct {
	Total int `json:"total" yaml:"total"`
	// Valid manifests have no errors
	Valid int `json:"valid" yaml:"valid"`
	// Invalid manifests were read completely but have errors
	Invalid int `json:"invalid" yaml:"invalid"`
	// Failed documents could not be read or parsed to the end, or were
	// rejected by a version constraint
	Failed   int `json:"failed" yaml:"failed"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Cached   int `json:"cached" yaml:"cached"`
}

// Summarize counts results
func Summarize(results []*domain.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil || r.Manifest == nil:
			s.Failed++
		case r.Manifest.HasErrors():
			s.Invalid++
		default:
			s.Valid++
		}
		if r.Manifest != nil {
			s.Warnings += len(r.Manifest.Warnings)
		}
		if r.CacheHit {
			s.Cached++
		}
	}
	return s
}

// OK reports whether every manifest passed. With strict set, warnings
// count as failures too.
func (s Summary) OK(strict bool) bool {
	if s.Invalid > 0 || s.Failed > 0 {
		return false
	}
	return !strict || s.Warnings == 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d manifests: %d valid, %d invalid, %d failed, %d warnings",
		s.Total, s.Valid, s.Invalid, s.Failed, s.Warnings)
}
