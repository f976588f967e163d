// Package source reads addon manifests from plain files and zip archives.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

// MaxManifestBytes is the largest manifest Load reads
const MaxManifestBytes = 4 << 20

// ErrTooLarge indicates a manifest above MaxManifestBytes
var ErrTooLarge = errors.New("manifest too large")

// Options configures how a manifest is read
type Options struct {
	// Encoding is "", "utf-8", "auto" or a WHATWG label such as "windows-1252"
	Encoding string
	// Entry selects the manifest inside an archive; empty picks the first
	// "<Dir>/<Dir>.txt" entry
	Entry string
}

// Load reads the manifest at path. A ".zip" path is opened as an addon
// archive. Failures are returned as *domain.SourceError.
func Load(p string, opts Options) (*domain.Document, error) {
	if utils.IsArchive(p) {
		return loadArchive(p, opts)
	}
	return loadFile(p, opts)
}

func loadFile(p string, opts Options) (*domain.Document, error) {
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = domain.ErrNotFound
		}
		return nil, domain.NewSourceError(p, "", err)
	}
	defer f.Close()

	content, err := readLimited(f)
	if err != nil {
		return nil, domain.NewSourceError(p, "", err)
	}
	return newDocument(p, "", content, opts)
}

func loadArchive(p string, opts Options) (*domain.Document, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = domain.ErrNotFound
		}
		return nil, domain.NewSourceError(p, "", err)
	}
	defer zr.Close()

	file, err := findEntry(zr.File, opts.Entry)
	if err != nil {
		return nil, domain.NewSourceError(p, opts.Entry, err)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, domain.NewSourceError(p, file.Name, err)
	}
	defer rc.Close()

	content, err := readLimited(rc)
	if err != nil {
		return nil, domain.NewSourceError(p, file.Name, err)
	}
	return newDocument(p, file.Name, content, opts)
}

// ArchiveEntries lists the manifest entries of a zip archive in name order
func ArchiveEntries(p string) ([]string, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, domain.NewSourceError(p, "", err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		if IsManifestEntry(f.Name) {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// IsManifestEntry reports whether name has the form "<Dir>/<Dir>.txt",
// optionally below a single wrapping folder
func IsManifestEntry(name string) bool {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	parts := strings.Split(name, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	dir, file := parts[len(parts)-2], parts[len(parts)-1]
	return file == dir+".txt"
}

func findEntry(files []*zip.File, want string) (*zip.File, error) {
	var candidates []*zip.File
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		if want != "" {
			if f.Name == want {
				return f, nil
			}
			continue
		}
		if IsManifestEntry(f.Name) {
			candidates = append(candidates, f)
		}
	}
	if want != "" {
		return nil, fmt.Errorf("entry %q: %w", want, domain.ErrNotFound)
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoManifest
	}

	// the shallowest entry is the addon itself, deeper ones are bundled libraries
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := strings.Count(candidates[i].Name, "/"), strings.Count(candidates[j].Name, "/")
		if di != dj {
			return di < dj
		}
		return candidates[i].Name < candidates[j].Name
	})
	return candidates[0], nil
}

func readLimited(r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxManifestBytes+1))
	if err != nil {
		return nil, err
	}
	if len(content) > MaxManifestBytes {
		return nil, ErrTooLarge
	}
	return content, nil
}

func newDocument(p, entry string, content []byte, opts Options) (*domain.Document, error) {
	decoded, name, err := Decode(content, opts.Encoding)
	if err != nil {
		return nil, domain.NewSourceError(p, entry, err)
	}
	return &domain.Document{
		Path:     p,
		Entry:    entry,
		Content:  decoded,
		Encoding: name,
	}, nil
}
