package cli

import (
	"github.com/spf13/cobra"

	"github.com/ignaskar/pngcoder/internal/usecase"
)

func printCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "print <file>",
		Short: "List every chunk in a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]

			ictx, err := loadImageCtx(file)
			if err != nil {
				return err
			}

			f := format
			if f == "" {
				f = ictx.cfg.Output.Format
			}

			uc := usecase.NewPrint(ictx.images)
			img, err := uc.Execute(cmd.Context(), file)
			if err != nil {
				return err
			}

			return printImage(cmd.OutOrStdout(), file, img, f)
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: table|plain|json (default from pngcoder.yaml)")
	return c
}
