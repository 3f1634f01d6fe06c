package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")

	// ErrEmptyAnswer is returned by the directory validator for blank input.
	ErrEmptyAnswer = errors.New("a directory path is required")
)

// DirectoryMessage is the question asked when no directory was given.
const DirectoryMessage = "Please enter the path to the folder containing the STL files:"

// InputConfig configures a text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Driver abstracts the terminal implementation.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

type surveyDriver struct {
	opts []survey.AskOpt
}

// NewSurveyDriver returns a Driver that prompts on the terminal. opts are
// passed to every question, e.g. survey.WithStdio.
func NewSurveyDriver(opts ...survey.AskOpt) Driver {
	return &surveyDriver{opts: opts}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	p := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	opts := append([]survey.AskOpt(nil), d.opts...)
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(p, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// Directory asks for the folder containing the model files and returns the
// cleaned answer. Whether the path is a directory is left to the caller.
func Directory(ctx context.Context, d Driver) (string, error) {
	answer, err := d.Input(ctx, InputConfig{
		Message:   DirectoryMessage,
		Help:      "All STL files below this folder are added to the checklist.",
		Validator: validateAnswer,
	})
	if err != nil {
		return "", err
	}
	return CleanPath(answer), nil
}

// CleanPath trims whitespace and the quotes terminals add to dropped paths.
func CleanPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return s
}

func validateAnswer(s string) error {
	if CleanPath(s) == "" {
		return ErrEmptyAnswer
	}
	return nil
}
