package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ignaskar/pngcoder/internal/infra/configfs"
	"github.com/ignaskar/pngcoder/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "pngcoder",
		Short:        "pngcoder — hide, read, and strip payloads in PNG chunks",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			// Log into the workspace when there is one; outside a workspace
			// only --debug warrants creating a log directory.
			finder := configfs.NewFinder()
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				cleanup, _ = logger.Setup(logger.Config{Root: root, Debug: debug})
			} else if debug {
				cleanup, _ = logger.Setup(logger.Config{Root: wd, Debug: debug})
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .pngcoder/logs/pngcoder.log")

	cmd.AddCommand(encodeCmd())
	cmd.AddCommand(decodeCmd())
	cmd.AddCommand(removeCmd())
	cmd.AddCommand(printCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
