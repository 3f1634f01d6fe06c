package locate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/nao1215/printcheck/internal/model"
)

// DefaultExtension is the model file extension searched for.
const DefaultExtension = ".stl"

// ErrNotDirectory is returned when the scan root does not exist or is not a
// directory.
var ErrNotDirectory = errors.New("not a valid directory")

// Option configures Find.
type Option func(*finder)

// WithExtension sets the file extension to match, e.g. ".stl".
func WithExtension(ext string) Option {
	return func(f *finder) {
		if ext != "" {
			f.ext = strings.ToLower(ext)
		}
	}
}

// WithLogger sets the logger used for skipped directories.
func WithLogger(logger *slog.Logger) Option {
	return func(f *finder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

type finder struct {
	ext    string
	logger *slog.Logger
}

// ValidateRoot checks that root exists and is a directory.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", root, ErrNotDirectory)
	}
	return nil
}

// Find returns all model files under root in discovery order.
// Sub-directories that cannot be read are logged and skipped.
func Find(root string, opts ...Option) ([]model.ModelFile, error) {
	f := &finder{
		ext:    DefaultExtension,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := ValidateRoot(root); err != nil {
		return nil, err
	}

	var files []model.ModelFile
	err := godirwalk.Walk(root, &godirwalk.Options{
		Unsorted: true,
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			if !de.IsRegular() && !de.IsSymlink() {
				return nil
			}
			if !strings.HasSuffix(strings.ToLower(de.Name()), f.ext) {
				return nil
			}
			files = append(files, model.NewModelFile(root, osPathname))
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			f.logger.Warn("skipping unreadable path", "path", osPathname, "error", err)
			return godirwalk.SkipNode
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

// Sort orders files by folder, then by file name.
func Sort(files []model.ModelFile) {
	slices.SortStableFunc(files, Compare)
}

// Compare orders two files by (folder, name).
func Compare(a, b model.ModelFile) int {
	if c := strings.Compare(a.Folder(), b.Folder()); c != 0 {
		return c
	}
	return strings.Compare(a.Name(), b.Name())
}
