package version_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/esomanifest-go/pkg/version"
)

func setVersion(t *testing.T, v, built, commit string) {
	t.Helper()
	origV, origB, origC := version.Version, version.BuildTime, version.Commit
	t.Cleanup(func() { version.Version, version.BuildTime, version.Commit = origV, origB, origC })
	version.Version, version.BuildTime, version.Commit = v, built, commit
}

func TestGet(t *testing.T) {
	setVersion(t, "0.4.0", "2026-10-01T00:00:00Z", "c0ffee")

	info := version.Get()
	require.Equal(t, "0.4.0", info.Version)
	require.Equal(t, "2026-10-01T00:00:00Z", info.BuildTime)
	require.Equal(t, "c0ffee", info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}

func TestStrings(t *testing.T) {
	setVersion(t, "0.4.0", "2026-10-01T00:00:00Z", "c0ffee")

	assert.Equal(t, "0.4.0", version.Short())
	assert.Contains(t, version.Full(), "esomanifest 0.4.0 (commit: c0ffee, built: 2026-10-01T00:00:00Z")
	assert.Equal(t, version.Full(), version.Get().String())
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "esomanifest", version.Name)
	assert.NotEmpty(t, version.Short())
}
