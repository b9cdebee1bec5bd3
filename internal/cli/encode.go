package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignaskar/pngcoder/internal/infra/logger"
	"github.com/ignaskar/pngcoder/internal/usecase"
)

func encodeCmd() *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "encode <file> <chunk-type> <message>",
		Short: "Hide a message in a PNG file as a new chunk",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, typeStr, message := args[0], args[1], args[2]

			ictx, err := loadImageCtx(file)
			if err != nil {
				return err
			}

			uc := usecase.NewEncode(ictx.images, ictx.journal)
			id, err := uc.Execute(cmd.Context(), file, typeStr, message, output)
			if err != nil {
				return err
			}

			logger.L().Info("encode.completed",
				"file", file,
				"type", typeStr,
				"bytes", len(message),
				"journal_id", id,
			)

			out := output
			if out == "" {
				out = file
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Encoded %d byte(s) into a %s chunk of %s", len(message), typeStr, out))
			return nil
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "Write the result to this path instead of overwriting <file>")
	return c
}
