package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/printcheck/internal/config"
)

// NewRootCmd creates the root command for printcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printcheck [stl-dir]",
		Short: "Create a visual review checklist for a folder of STL files",
		Long: `printcheck renders a preview of every STL file below a folder and writes
an xlsx checklist with one section per sub-folder, the preview image and
empty "Checked and Available" / "Not Needed" columns for the reviewer.

Files whose name contains [a] are drawn red, files containing [c] white,
all others near-black. Files that cannot be rendered are listed in a
warning block at the top of the sheet.

If no folder is given, printcheck asks for one.

Examples:
  # Create STL_Checklist_Structured.xlsx for ./Stls
  printcheck ./Stls

  # Render four files at a time and keep the preview images
  printcheck -j 4 -P previews ./Stls

  # Print a Markdown run report after the summary line
  printcheck -m ./Stls`,
		Args:          cobra.MaximumNArgs(1),
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Checklist file name or path (relative to --base-dir)")
	cmd.Flags().StringP("base-dir", "B", "",
		"Directory for the checklist and the logs folder (default: current directory)")
	cmd.Flags().StringP("preview-dir", "P", "",
		"Keep preview images in this directory instead of a temporary one")
	cmd.Flags().IntP("size", "s", config.DefaultSize,
		"Preview width and height in pixels")
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs,
		"Number of files rendered concurrently")
	cmd.Flags().StringP("ext", "x", config.DefaultExtension,
		"Model file extension, matched case-insensitively (.STL and .Stl files are included)")
	cmd.Flags().Bool("no-progress", false,
		"Do not show the progress bar")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .printcheck.yaml in current directory or XDG config)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print a Markdown run report (mutually exclusive with --json)")
	cmd.Flags().Bool("json", false,
		"Print a JSON run report (mutually exclusive with --markdown)")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// exitError is an error whose message is printed verbatim.
type exitError struct {
	msg string
	err error
}

func (e *exitError) Error() string {
	return e.msg
}

func (e *exitError) Unwrap() error {
	return e.err
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, exit.msg)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
