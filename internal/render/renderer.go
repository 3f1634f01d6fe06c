package render

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"

	"github.com/nao1215/printcheck/internal/model"
)

// Rendering defaults.
const (
	// DefaultSize is the preview width and height in pixels.
	DefaultSize = 200

	// DefaultSupersample is the scale factor of the internal render target.
	DefaultSupersample = 4

	// DefaultFovy is the vertical field of view in degrees.
	DefaultFovy = 40
)

// Lighting and background.
var (
	// Background is the light grey behind the model.
	Background = fauxgl.HexColor("dcdcdc")

	ambientLight = fauxgl.Color{R: 0.3, G: 0.3, B: 0.3, A: 1}
	diffuseLight = fauxgl.Color{R: 0.7, G: 0.7, B: 0.7, A: 1}
)

// Renderer renders STL files to PNG previews.
// A Renderer holds no per-file state and can be shared between goroutines.
type Renderer struct {
	size           int
	supersample    int
	simplifyAbove  int
	simplifyFactor float64
	palette        Palette
	logger         *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize sets the preview width and height in pixels.
func WithSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.size = size
		}
	}
}

// WithSupersample sets the internal render scale used for anti-aliasing.
func WithSupersample(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.supersample = n
		}
	}
}

// WithSimplify decimates meshes with more than above triangles, keeping
// factor of them. Zero above disables decimation.
func WithSimplify(above int, factor float64) Option {
	return func(r *Renderer) {
		r.simplifyAbove = above
		r.simplifyFactor = factor
	}
}

// WithPalette sets the marker colours.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		size:        DefaultSize,
		supersample: DefaultSupersample,
		palette:     DefaultPalette(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the preview width and height in pixels.
func (r *Renderer) Size() int {
	return r.size
}

// Render renders file and writes the preview PNG to out.
// Failures are returned as a failed result, never as a panic.
func (r *Renderer) Render(file model.ModelFile, out string) (result model.RenderResult) {
	defer func() {
		if p := recover(); p != nil {
			result = model.Failed(fmt.Errorf("%w: %v", ErrRendererPanic, p))
		}
	}()

	mesh, err := fauxgl.LoadSTL(file.Path)
	if err != nil {
		return model.Failed(fmt.Errorf("failed to load mesh: %w", err))
	}

	tint := TintFor(file.Name())
	img, triangles, err := r.Draw(mesh, tint)
	if err != nil {
		return model.Failed(err)
	}

	if err := fauxgl.SavePNG(out, img); err != nil {
		return model.Failed(fmt.Errorf("failed to write preview: %w", err))
	}

	r.logger.Debug("rendered preview",
		"file", file.QualifiedName(),
		"tint", tint.String(),
		"triangles", triangles,
	)

	result = model.Rendered(out, r.size, r.size, tint)
	result.Triangles = triangles
	return result
}

// Draw rasterizes mesh in the colour of tint and returns the downscaled
// image together with the number of triangles drawn.
func (r *Renderer) Draw(mesh *fauxgl.Mesh, tint model.Tint) (image.Image, int, error) {
	if mesh == nil || len(mesh.Triangles) == 0 {
		return nil, 0, ErrEmptyMesh
	}

	mesh = decimate(mesh, r.simplifyAbove, r.simplifyFactor)

	frame, err := FrameMesh(mesh)
	if err != nil {
		return nil, 0, err
	}
	eye, up := frame.Camera()

	near := frame.Scale * 0.01
	far := frame.Distance() + frame.Scale*4
	matrix := fauxgl.LookAt(eye, frame.Center, up).Perspective(DefaultFovy, 1, near, far)

	shader := fauxgl.NewPhongShader(matrix, eye.Sub(frame.Center).Normalize(), eye)
	shader.ObjectColor = r.palette.Color(tint)
	shader.AmbientColor = ambientLight
	shader.DiffuseColor = diffuseLight
	shader.SpecularPower = 0

	px := r.size * r.supersample
	ctx := fauxgl.NewContext(px, px)
	ctx.ClearColorBufferWith(Background)
	ctx.Cull = fauxgl.CullNone
	ctx.Shader = shader
	ctx.DrawMesh(mesh)

	img := resize.Resize(uint(r.size), uint(r.size), ctx.Image(), resize.Bilinear)
	return img, len(mesh.Triangles), nil
}
