package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectInput(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "A.txt")
	archive := filepath.Join(dir, "A.ZIP")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	require.NoError(t, os.WriteFile(archive, nil, 0644))

	tests := []struct {
		name string
		path string
		want InputType
	}{
		{"file", file, InputFile},
		{"archive", archive, InputArchive},
		{"directory", dir, InputDirectory},
		{"missing", filepath.Join(dir, "nope"), InputUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectInput(tt.path))
		})
	}
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	addons := filepath.Join(dir, "AddOns")
	writeManifest(t, filepath.Join(addons, "B", "B.txt"), "")
	writeManifest(t, filepath.Join(addons, "A", "A.txt"), "")
	single := writeManifest(t, filepath.Join(dir, "single.txt"), "")

	got, err := ExpandInputs([]string{single, addons})
	require.NoError(t, err)
	assert.Equal(t, []string{
		single,
		filepath.Join(addons, "A", "A.txt"),
		filepath.Join(addons, "B", "B.txt"),
	}, got)

	_, err = ExpandInputs([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func writeManifest(t *testing.T, p, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}
