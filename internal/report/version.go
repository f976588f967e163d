package report

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
	"github.com/quantmind-br/esomanifest-go/internal/manifest"
)

// VersionInfo describes the human readable Version of a manifest
type VersionInfo struct {
	Raw string `json:"raw" yaml:"raw"`
	// Semver is true when Raw parses as a semantic version, leniently
	Semver bool `json:"semver" yaml:"semver"`
	// Canonical is the normalized form, e.g. "2.0" becomes "2.0.0"
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
}

// CheckVersion inspects the Version directive. It returns nil when the
// manifest has none.
func CheckVersion(m *manifest.Manifest) *VersionInfo {
	if m == nil || m.Version == nil {
		return nil
	}

	info := &VersionInfo{Raw: *m.Version}
	v, err := semver.NewVersion(info.Raw)
	if err != nil {
		return info
	}
	info.Semver = true
	info.Canonical = v.String()
	return info
}

// SatisfiesVersion reports whether the manifest Version matches a semver
// constraint such as ">= 2.0, < 3". Manifests without a semantic Version
// never match.
func SatisfiesVersion(m *manifest.Manifest, constraint string) (bool, error) {
	c, err := parseConstraint(constraint)
	if err != nil {
		return false, err
	}
	return satisfies(m, c), nil
}

// ApplyConstraint marks every successfully parsed result whose Version does
// not satisfy constraint as failed with ErrVersionMismatch and returns the
// number marked. An empty constraint marks nothing; results that already
// failed are left alone.
func ApplyConstraint(results []*domain.Result, constraint string) (int, error) {
	if constraint == "" {
		return 0, nil
	}
	c, err := parseConstraint(constraint)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, r := range results {
		if r == nil || r.Err != nil || r.Manifest == nil || satisfies(r.Manifest, c) {
			continue
		}
		raw := "none"
		if r.Manifest.Version != nil {
			raw = *r.Manifest.Version
		}
		r.Err = fmt.Errorf("%w: %s not in %q", domain.ErrVersionMismatch, raw, constraint)
		marked++
	}
	return marked, nil
}

func parseConstraint(constraint string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return c, nil
}

func satisfies(m *manifest.Manifest, c *semver.Constraints) bool {
	info := CheckVersion(m)
	if info == nil || !info.Semver {
		return false
	}
	v, err := semver.NewVersion(info.Raw)
	if err != nil {
		return false
	}
	return c.Check(v)
}
