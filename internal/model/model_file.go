package model

import (
	"path/filepath"
)

// RootFolder is the folder name reported for files that sit directly in the
// scan root.
const RootFolder = "."

// ModelFile is a 3D model file found under the scan root.
// It is immutable once discovered.
type ModelFile struct {
	// Path is the file path as discovered, i.e. Root joined with the
	// relative location of the file.
	Path string `json:"path"`

	// Root is the scan root the file was discovered under.
	Root string `json:"root"`
}

// NewModelFile returns a ModelFile for path discovered under root.
func NewModelFile(root, path string) ModelFile {
	return ModelFile{
		Path: filepath.Clean(path),
		Root: filepath.Clean(root),
	}
}

// Name returns the base name of the file, e.g. "part[a].stl".
func (f ModelFile) Name() string {
	return filepath.Base(f.Path)
}

// Folder returns the parent directory of the file relative to Root using
// forward slashes. Files directly under Root return RootFolder.
func (f ModelFile) Folder() string {
	rel, err := filepath.Rel(f.Root, filepath.Dir(f.Path))
	if err != nil {
		return filepath.ToSlash(filepath.Dir(f.Path))
	}
	return filepath.ToSlash(rel)
}

// QualifiedName returns the folder-qualified file name, e.g. "B/base.stl".
func (f ModelFile) QualifiedName() string {
	return f.Folder() + "/" + f.Name()
}
