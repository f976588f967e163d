package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dep(title string, version ...uint32) Dependency {
	d := Dependency{Title: title}
	if len(version) > 0 {
		d.Version = ptr(version[0])
		d.Op = ">="
	}
	return d
}

func depOp(title, op string, version uint32) Dependency {
	return Dependency{Title: title, Op: op, Version: ptr(version)}
}

func TestParseDependencies(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []Dependency
	}{
		{"bare name", "LibLibrary", []Dependency{dep("LibLibrary")}},
		{"greater or equal", "LibLibrary>=20", []Dependency{dep("LibLibrary", 20)}},
		{
			"mixed list",
			"LibLibrary>=10 CustomAddon LibOther<=5",
			[]Dependency{dep("LibLibrary", 10), dep("CustomAddon"), depOp("LibOther", "<=", 5)},
		},
		{
			"any comparator run",
			"A=5 B>3 C=>7 D<<>2",
			[]Dependency{depOp("A", "=", 5), depOp("B", ">", 3), depOp("C", "=>", 7), depOp("D", "<<>", 2)},
		},
		{"duplicates kept", "A A>=2", []Dependency{dep("A"), dep("A", 2)}},
		{"extra spaces dropped", "A  B ", []Dependency{dep("A"), dep("B")}},
		{"empty name dropped", ">=5 B", []Dependency{dep("B")}},
		{"empty value", "", []Dependency{}},
		{"names with dashes and dots", "LibAddonMenu-2.0>=32", []Dependency{dep("LibAddonMenu-2.0", 32)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, problems := ParseDependencies(DirectiveDependsOn, tt.value)
			assert.Empty(t, problems)
			assert.Equal(t, tt.want, deps)
		})
	}
}

func TestParseDependencies_InvalidVersion(t *testing.T) {
	deps, problems := ParseDependencies(DirectiveOptionalDependsOn, "LibA>=x LibB>=3")

	assert.Equal(t, []Dependency{dep("LibA"), dep("LibB", 3)}, deps)
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems[0], ErrInvalidValue)

	var invalid *InvalidValueError
	require.ErrorAs(t, problems[0], &invalid)
	assert.Equal(t, DirectiveOptionalDependsOn, invalid.Directive)
	assert.Equal(t, "LibA>=x", invalid.Value)
}

func TestParseDependencies_MissingVersionAfterComparator(t *testing.T) {
	deps, problems := ParseDependencies(DirectiveDependsOn, "LibA>=")

	assert.Equal(t, []Dependency{dep("LibA")}, deps)
	require.Len(t, problems, 1)
	assert.Equal(t, KindInvalidValue, problems[0].Kind())
}
