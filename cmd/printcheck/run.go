package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/printcheck/internal/config"
	"github.com/nao1215/printcheck/internal/locate"
	"github.com/nao1215/printcheck/internal/log"
	"github.com/nao1215/printcheck/internal/pipeline"
	"github.com/nao1215/printcheck/internal/prompt"
	"github.com/nao1215/printcheck/internal/report"
)

// newPromptDriver returns the driver used to ask for the folder.
var newPromptDriver = func() prompt.Driver {
	return prompt.NewSurveyDriver()
}

// runRootCmd executes a checklist run.
func runRootCmd(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, err := resolveRoot(ctx, args)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd, root)
	if err != nil {
		return err
	}

	if err := locate.ValidateRoot(cfg.Root); err != nil {
		return &exitError{
			msg: fmt.Sprintf("The specified path '%s' is not a valid directory. Exiting.", cfg.Root),
			err: err,
		}
	}

	logger, runLog := log.NewRunLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	var barOut io.Writer
	if cfg.ShowProgress {
		barOut = cmd.ErrOrStderr()
	}

	runner := pipeline.NewRunner(cfg,
		pipeline.WithRunLogger(logger, runLog),
		pipeline.WithProgress(pipeline.NewConsoleProgress(cmd.OutOrStdout(), barOut)),
	)

	outcome, err := runner.Run(ctx)
	if outcome != nil {
		if _, werr := summaryWriter(cmd.OutOrStdout(), cfg).Write(outcome.Summary); werr != nil {
			err = errors.Join(err, werr)
		}
	}
	return err
}

// resolveRoot returns the folder argument, or asks for it.
func resolveRoot(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return prompt.Directory(ctx, newPromptDriver())
}

// summaryWriter returns the writer for the end-of-run output.
func summaryWriter(out io.Writer, cfg *config.Config) report.Writer {
	simple := report.NewSimpleWriter(out, report.WithVerbose(cfg.Verbose))
	switch {
	case cfg.JSONSummary:
		return report.NewMultiWriter(simple, report.NewJSONWriter(out, report.WithPrettyPrint()))
	case cfg.MarkdownSummary:
		return report.NewMultiWriter(simple, report.NewMarkdownWriter(out))
	default:
		return simple
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and the
// flags that were set explicitly, in that order of precedence.
func buildConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Root = root
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly given file must exist; otherwise a missing file is fine.
	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		cfg.Apply(file)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		if cfg.OutputFile, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if cfg.BaseDir, err = flags.GetString("base-dir"); err != nil {
		return nil, err
	}
	if flags.Changed("preview-dir") {
		if cfg.PreviewDir, err = flags.GetString("preview-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("size") {
		if cfg.Size, err = flags.GetInt("size"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("ext") {
		if cfg.Extension, err = flags.GetString("ext"); err != nil {
			return nil, err
		}
	}

	noProgress, err := flags.GetBool("no-progress")
	if err != nil {
		return nil, err
	}
	cfg.ShowProgress = !noProgress

	if cfg.MarkdownSummary, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.JSONSummary, err = flags.GetBool("json"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}
