package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ArchiveExt is the extension of packaged addon archives
const ArchiveExt = ".zip"

// EnsureDir ensures a directory exists, creating it if necessary
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// IsArchive reports whether path names a zip archive
func IsArchive(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ArchiveExt)
}

// AddonName returns the addon folder name for a manifest or archive path,
// e.g. "AddOns/SkyShards/SkyShards.txt" and "SkyShards-10.30.zip" both
// yield the base name without extension.
func AddonName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
