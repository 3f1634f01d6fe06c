package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is().
var (
	// ErrNoDirectory is returned when no STL directory was given or entered.
	ErrNoDirectory = errors.New("no STL directory specified")

	// ErrInvalidSize is returned when the preview size is not positive.
	ErrInvalidSize = errors.New("invalid preview size: must be positive")

	// ErrInvalidSupersample is returned when the supersampling factor is not positive.
	ErrInvalidSupersample = errors.New("invalid supersample factor: must be positive")

	// ErrInvalidJobs is returned when the number of render jobs is not positive.
	ErrInvalidJobs = errors.New("invalid jobs: must be positive")

	// ErrInvalidExtension is returned when the model file extension is empty
	// or does not start with a dot.
	ErrInvalidExtension = errors.New("invalid extension: must start with '.'")

	// ErrInvalidSimplifyFactor is returned when the decimation factor is not
	// within (0, 1].
	ErrInvalidSimplifyFactor = errors.New("invalid simplify factor: must be in (0, 1]")

	// ErrInvalidColor is returned when a colour override is not a 3 or 6
	// digit hex value.
	ErrInvalidColor = errors.New("invalid color: must be a hex value like 'b40000'")

	// ErrConflictingSummaryFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingSummaryFormats = errors.New("conflicting summary formats: --json and --markdown cannot be used together")

	// ErrEmptyOutput is returned when the output file name is empty.
	ErrEmptyOutput = errors.New("output file name must not be empty")
)
