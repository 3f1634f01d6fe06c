package config

import (
	"path/filepath"
	"regexp"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "printcheck"

	// DefaultOutputFile is the checklist file name written to the base directory.
	DefaultOutputFile = "STL_Checklist_Structured.xlsx"

	// DefaultLogDir is the directory, relative to the base directory, that
	// receives the run log.
	DefaultLogDir = "logs"

	// DefaultExtension is the model file extension searched for.
	DefaultExtension = ".stl"

	// DefaultSize is the preview width and height in pixels.
	DefaultSize = 200

	// DefaultSupersample renders at 4x the preview size before downscaling.
	DefaultSupersample = 4

	// DefaultJobs renders one file at a time.
	DefaultJobs = 1

	// DefaultSimplifyAbove is the triangle count above which meshes are
	// decimated before rendering. Zero disables decimation.
	DefaultSimplifyAbove = 250000

	// DefaultSimplifyFactor is the fraction of triangles kept by decimation.
	DefaultSimplifyFactor = 0.25

	// DefaultColorA is the mild red used for files marked "[a]".
	DefaultColorA = "b40000"

	// DefaultColorC is the white used for files marked "[c]".
	DefaultColorC = "ffffff"

	// DefaultColor is the mild black used for unmarked files.
	DefaultColor = "323232"
)

var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Colors holds the hex colours used for the filename markers.
type Colors struct {
	MarkedA string `yaml:"marked_a,omitempty"`
	MarkedC string `yaml:"marked_c,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// Config holds all configuration options for a checklist run.
// It is populated from defaults, the optional config file and CLI flags, and
// passed explicitly to the pipeline.
type Config struct {
	// Root is the directory scanned for model files.
	Root string

	// BaseDir is where the checklist and the logs directory are written.
	// Empty means the current working directory.
	BaseDir string

	// OutputFile is the checklist file name or path. Relative paths are
	// resolved against BaseDir.
	OutputFile string

	// LogDir is the run log directory. Relative paths are resolved against
	// BaseDir.
	LogDir string

	// PreviewDir, when set, keeps the preview images in this directory
	// instead of a temporary directory that is removed after the run.
	PreviewDir string

	// Extension is the model file extension, matched case-insensitively.
	Extension string

	// Size is the preview width and height in pixels.
	Size int

	// Supersample is the rendering scale factor used for anti-aliasing.
	Supersample int

	// Jobs is the number of files rendered concurrently.
	Jobs int

	// SimplifyAbove is the triangle count above which meshes are decimated.
	SimplifyAbove int

	// SimplifyFactor is the fraction of triangles kept when decimating.
	SimplifyFactor float64

	// Colors are the marker colours.
	Colors Colors

	// ShowProgress enables the progress bar.
	ShowProgress bool

	// Verbose enables debug logging on the console.
	Verbose bool

	// MarkdownSummary prints the run summary as Markdown.
	MarkdownSummary bool

	// JSONSummary prints the run summary as JSON.
	JSONSummary bool

	// ConfigFilePath is the configuration file given with --config.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputFile:     DefaultOutputFile,
		LogDir:         DefaultLogDir,
		Extension:      DefaultExtension,
		Size:           DefaultSize,
		Supersample:    DefaultSupersample,
		Jobs:           DefaultJobs,
		SimplifyAbove:  DefaultSimplifyAbove,
		SimplifyFactor: DefaultSimplifyFactor,
		Colors: Colors{
			MarkedA: DefaultColorA,
			MarkedC: DefaultColorC,
			Default: DefaultColor,
		},
		ShowProgress: true,
	}
}

// Apply overrides the configuration with the non-zero values of f.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Output != "" {
		c.OutputFile = f.Output
	}
	if f.LogDir != "" {
		c.LogDir = f.LogDir
	}
	if f.PreviewDir != "" {
		c.PreviewDir = f.PreviewDir
	}
	if f.Extension != "" {
		c.Extension = f.Extension
	}
	if f.Size != 0 {
		c.Size = f.Size
	}
	if f.Supersample != 0 {
		c.Supersample = f.Supersample
	}
	if f.Jobs != 0 {
		c.Jobs = f.Jobs
	}
	if f.SimplifyAbove != 0 {
		c.SimplifyAbove = f.SimplifyAbove
	}
	if f.SimplifyFactor != 0 {
		c.SimplifyFactor = f.SimplifyFactor
	}
	if f.Colors.MarkedA != "" {
		c.Colors.MarkedA = f.Colors.MarkedA
	}
	if f.Colors.MarkedC != "" {
		c.Colors.MarkedC = f.Colors.MarkedC
	}
	if f.Colors.Default != "" {
		c.Colors.Default = f.Colors.Default
	}
}

// OutputPath returns the checklist path resolved against BaseDir.
func (c *Config) OutputPath() string {
	return c.resolve(c.OutputFile)
}

// LogPath returns the run log directory resolved against BaseDir.
func (c *Config) LogPath() string {
	return c.resolve(c.LogDir)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// XDGConfigDir returns the XDG config directory for printcheck.
// On Linux: ~/.config/printcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Root == "" {
		return ErrNoDirectory
	}
	if c.OutputFile == "" {
		return ErrEmptyOutput
	}
	if c.Size <= 0 {
		return ErrInvalidSize
	}
	if c.Supersample <= 0 {
		return ErrInvalidSupersample
	}
	if c.Jobs <= 0 {
		return ErrInvalidJobs
	}
	if len(c.Extension) < 2 || c.Extension[0] != '.' {
		return ErrInvalidExtension
	}
	if c.SimplifyFactor <= 0 || c.SimplifyFactor > 1 {
		return ErrInvalidSimplifyFactor
	}
	for _, hex := range []string{c.Colors.MarkedA, c.Colors.MarkedC, c.Colors.Default} {
		if !hexColorPattern.MatchString(hex) {
			return ErrInvalidColor
		}
	}
	if c.JSONSummary && c.MarkdownSummary {
		return ErrConflictingSummaryFormats
	}
	return nil
}
