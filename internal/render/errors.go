package render

import "errors"

var (
	// ErrEmptyMesh is returned when a file contains no triangles.
	ErrEmptyMesh = errors.New("mesh has no triangles")

	// ErrDegenerateMesh is returned when a mesh has no extent to frame.
	ErrDegenerateMesh = errors.New("mesh has zero size")

	// ErrRendererPanic wraps a panic raised while loading or drawing a mesh.
	ErrRendererPanic = errors.New("renderer panic")
)
