package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/infra/fsworkspace"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a pngcoder workspace (pngcoder.yaml, journal and log dirs)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := strings.TrimSpace(path)
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = wd
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}

			ini := fsworkspace.NewInitializer()
			if err := ini.Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Workspace ready at %s", abs))
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Workspace root (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing pngcoder.yaml")
	return c
}
