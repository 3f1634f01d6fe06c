package model

import (
	"errors"
	"fmt"
)

// Tint is the flat colour a preview is rendered with.
type Tint int

const (
	// TintDefault is the near-black colour used for unmarked files.
	TintDefault Tint = iota
	// TintRed is used for files whose name carries the "[a]" marker.
	TintRed
	// TintWhite is used for files whose name carries the "[c]" marker.
	TintWhite
)

// String returns the colour name.
func (t Tint) String() string {
	switch t {
	case TintRed:
		return "red"
	case TintWhite:
		return "white"
	default:
		return "black"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tint) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ErrUnknownTint is returned when a colour name does not name a Tint.
var ErrUnknownTint = errors.New("unknown tint")

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the names
// returned by String.
func (t *Tint) UnmarshalText(text []byte) error {
	switch string(text) {
	case "red":
		*t = TintRed
	case "white":
		*t = TintWhite
	case "black":
		*t = TintDefault
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTint, text)
	}
	return nil
}

// ErrNoPreview is used when a failed RenderResult carries no error of its own.
var ErrNoPreview = errors.New("preview not created")

// RenderResult is the outcome of rendering one ModelFile.
// It is either a generated image or a failure with its reason.
type RenderResult struct {
	// ImagePath is the PNG written to scratch storage. Empty on failure.
	ImagePath string `json:"image_path,omitempty"`

	// Width and Height are the pixel dimensions of the image.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Tint is the colour the model was rendered with.
	Tint Tint `json:"tint"`

	// Triangles is the number of triangles that were rasterized.
	Triangles int `json:"triangles,omitempty"`

	// Err is the reason the preview could not be created.
	Err error `json:"-"`
}

// Rendered returns a successful result.
func Rendered(imagePath string, width, height int, tint Tint) RenderResult {
	return RenderResult{
		ImagePath: imagePath,
		Width:     width,
		Height:    height,
		Tint:      tint,
	}
}

// Failed returns a failed result.
func Failed(err error) RenderResult {
	if err == nil {
		err = ErrNoPreview
	}
	return RenderResult{Err: err}
}

// OK reports whether a preview image was produced.
func (r RenderResult) OK() bool {
	return r.Err == nil && r.ImagePath != ""
}

// Error returns the failure text, or an empty string on success.
func (r RenderResult) Error() string {
	if r.OK() {
		return ""
	}
	if r.Err == nil {
		return ErrNoPreview.Error()
	}
	return r.Err.Error()
}
