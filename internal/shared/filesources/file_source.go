package filesources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrInvalidDir = errors.New("invalid source directory")
	ErrDirMissing = errors.New("source directory does not exist")
)

// FileSource lists the event files of a single input directory.
// Directories are read-only for the lifetime of a run.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) (*FileSource, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: directory cannot be empty", ErrInvalidDir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidDir, err)
	}

	return &FileSource{dir: absDir}, nil
}

// List returns the full paths of all regular files directly inside the
// source directory. The order is the directory order; callers that need
// timestamp order sort the result themselves.
func (s *FileSource) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirMissing, s.dir)
		}
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, entry.Name()))
	}

	return paths, nil
}
