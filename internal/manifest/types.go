package manifest

import (
	"slices"
	"strconv"
)

// Limits and thresholds applied under full validation
const (
	// MaxDirectiveLineBytes is the longest directive line the game reads completely
	MaxDirectiveLineBytes = 301
	// MaxCommentRunes is the longest allowed comment line
	MaxCommentRunes = 1024
	// MaxTitleRunes is the longest allowed Title value
	MaxTitleRunes = 64
	// MinAPIVersion is the lowest APIVersion accepted by the game client
	MinAPIVersion = 100003
)

// Recognized directive names
const (
	DirectiveTitle             = "Title"
	DirectiveAuthor            = "Author"
	DirectiveAPIVersion        = "APIVersion"
	DirectiveAddOnVersion      = "AddOnVersion"
	DirectiveVersion           = "Version"
	DirectiveDependsOn         = "DependsOn"
	DirectiveOptionalDependsOn = "OptionalDependsOn"
	DirectiveIsLibrary         = "IsLibrary"
)

// Dependency is a required or optional addon named in DependsOn or OptionalDependsOn
type Dependency struct {
	// Title is the folder name of the dependency, never empty
	Title string `json:"title" yaml:"title"`
	// Version is the version attached to the constraint. Nil accepts any version.
	Version *uint32 `json:"version,omitempty" yaml:"version,omitempty"`
	// Op is the comparator run written before Version (">=", "<=", "<<>"...).
	// It is kept for display only and is empty when Version is nil.
	Op string `json:"op,omitempty" yaml:"op,omitempty"`
}

// String renders the dependency the way it is written in a manifest. A
// version without a recorded comparator is shown with ">=".
func (d Dependency) String() string {
	if d.Version == nil {
		return d.Title
	}
	op := d.Op
	if op == "" {
		op = ">="
	}
	return d.Title + op + strconv.FormatUint(uint64(*d.Version), 10)
}

// Equal reports whether two dependencies have the same title and version.
// The comparator is ignored.
func (d Dependency) Equal(other Dependency) bool {
	return d.Title == other.Title && equalPtr(d.Version, other.Version)
}

// Manifest is the parsed content of an addon manifest file
type Manifest struct {
	// Title is the display name of the addon (e.g. SkyShards)
	Title string `json:"title" yaml:"title"`
	// Author is the free-text author credit
	Author string `json:"author" yaml:"author"`
	// APIVersion is the game API version the addon targets (e.g. 101037)
	APIVersion uint32 `json:"api_version" yaml:"api_version"`
	// APIVersion2 is the optional second supported API version
	APIVersion2 *uint32 `json:"api_version_2,omitempty" yaml:"api_version_2,omitempty"`
	// AddOnVersion is a positive integer used by the game to compare releases
	AddOnVersion *uint32 `json:"addon_version,omitempty" yaml:"addon_version,omitempty"`
	// Version is the human readable release identifier (e.g. 2.0.2)
	Version *string `json:"version,omitempty" yaml:"version,omitempty"`
	// DependsOn lists addons that must be present for this addon to load
	DependsOn []Dependency `json:"depends_on" yaml:"depends_on"`
	// OptionalDependsOn lists addons that load first when present
	OptionalDependsOn []Dependency `json:"optional_depends_on" yaml:"optional_depends_on"`
	// IsLibrary marks library or support addons
	IsLibrary *bool `json:"is_library,omitempty" yaml:"is_library,omitempty"`

	// Errors collected during parsing and validation
	Errors Problems `json:"errors" yaml:"errors"`
	// Warnings collected during parsing; informational only
	Warnings Problems `json:"warnings" yaml:"warnings"`
}

// New returns an empty manifest
func New() *Manifest {
	return &Manifest{
		DependsOn:         []Dependency{},
		OptionalDependsOn: []Dependency{},
		Errors:            Problems{},
		Warnings:          Problems{},
	}
}

// HasErrors reports whether any error was recorded
func (m *Manifest) HasErrors() bool {
	return len(m.Errors) > 0
}

// HasWarnings reports whether any warning was recorded
func (m *Manifest) HasWarnings() bool {
	return len(m.Warnings) > 0
}

// Dependencies returns required dependencies followed by optional ones
func (m *Manifest) Dependencies() []Dependency {
	all := make([]Dependency, 0, len(m.DependsOn)+len(m.OptionalDependsOn))
	all = append(all, m.DependsOn...)
	return append(all, m.OptionalDependsOn...)
}

// SupportsAPIVersion reports whether either declared API version equals v
func (m *Manifest) SupportsAPIVersion(v uint32) bool {
	if m.APIVersion == v {
		return true
	}
	return m.APIVersion2 != nil && *m.APIVersion2 == v
}

// Equivalent compares the metadata fields of two manifests. Errors and
// Warnings are not part of the comparison.
func (m *Manifest) Equivalent(other *Manifest) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Title == other.Title &&
		m.Author == other.Author &&
		m.APIVersion == other.APIVersion &&
		equalPtr(m.APIVersion2, other.APIVersion2) &&
		equalPtr(m.AddOnVersion, other.AddOnVersion) &&
		equalPtr(m.Version, other.Version) &&
		slices.EqualFunc(m.DependsOn, other.DependsOn, Dependency.Equal) &&
		slices.EqualFunc(m.OptionalDependsOn, other.OptionalDependsOn, Dependency.Equal) &&
		equalPtr(m.IsLibrary, other.IsLibrary)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func ptr[T any](v T) *T {
	return &v
}
