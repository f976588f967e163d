package app

import (
	"fmt"
	"os"

	"github.com/quantmind-br/esomanifest-go/internal/source"
	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

// InputType represents the kind of path given on the command line
type InputType string

const (
	InputFile      InputType = "file"
	InputArchive   InputType = "archive"
	InputDirectory InputType = "directory"
	InputUnknown   InputType = "unknown"
)

// DetectInput determines how a path is read
func DetectInput(path string) InputType {
	info, err := os.Stat(path)
	if err != nil {
		return InputUnknown
	}
	switch {
	case info.IsDir():
		return InputDirectory
	case utils.IsArchive(path):
		return InputArchive
	case info.Mode().IsRegular():
		return InputFile
	default:
		return InputUnknown
	}
}

// ExpandInputs resolves directories to the manifests they contain. Files
// and archives are kept in the given order.
func ExpandInputs(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		switch DetectInput(p) {
		case InputDirectory:
			found, err := source.Discover(p)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
		case InputFile, InputArchive:
			out = append(out, p)
		default:
			return nil, fmt.Errorf("unsupported input: %s", p)
		}
	}
	return out, nil
}
