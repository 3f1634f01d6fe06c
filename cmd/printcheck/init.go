package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/printcheck/internal/config"
	"github.com/nao1215/printcheck/internal/log"
)

//go:embed templates/printcheck.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a printcheck configuration file",
		Long: `Init writes a commented .printcheck.yaml to the current directory.

The file documents every setting with its default value: preview size,
render quality, parallel jobs, output locations and marker colours.

Examples:
  # Create .printcheck.yaml in current directory
  printcheck init

  # Create config file at a specific path
  printcheck init -o ~/.config/printcheck/config.yaml

  # Force overwrite existing file
  printcheck init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/printcheck.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	logger.Debug("configuration template written",
		"path", outputPath,
		"bytes", len(content),
		"overwrite", force,
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to change settings such as:")
	fmt.Fprintln(out, "  - Preview size and render quality")
	fmt.Fprintln(out, "  - Number of parallel render jobs")
	fmt.Fprintln(out, "  - Marker colours for [a] and [c] files")

	return nil
}
