package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

// Discover returns the manifests below root in path order.
//
// A file root is returned as is. In a directory, every "<Dir>/<Dir>.txt"
// and every zip archive counts; libraries nested inside an addon folder
// are included.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			err = domain.ErrNotFound
		}
		return nil, domain.NewSourceError(root, "", err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && len(d.Name()) > 0 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if utils.IsArchive(p) || isManifestFile(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewSourceError(root, "", err)
	}

	sort.Strings(paths)
	return paths, nil
}

func isManifestFile(p string) bool {
	return filepath.Ext(p) == ".txt" && utils.AddonName(p) == filepath.Base(filepath.Dir(p))
}
