package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignaskar/pngcoder/internal/infra/logger"
	"github.com/ignaskar/pngcoder/internal/usecase"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <chunk-type>",
		Short: "Delete the first chunk of the given type from a PNG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, typeStr := args[0], args[1]

			ictx, err := loadImageCtx(file)
			if err != nil {
				return err
			}

			uc := usecase.NewRemove(ictx.images, ictx.journal)
			chunk, id, err := uc.Execute(cmd.Context(), file, typeStr)
			if err != nil {
				return err
			}

			logger.L().Info("remove.completed",
				"file", file,
				"type", typeStr,
				"bytes", chunk.Length(),
				"journal_id", id,
			)

			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Removed %s chunk (%d byte(s)) from %s", typeStr, chunk.Length(), file))
			return nil
		},
	}
}
