package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignaskar/pngcoder/internal/infra/logger"
	"github.com/ignaskar/pngcoder/internal/usecase"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file> <chunk-type>",
		Short: "Print the message hidden in the first chunk of the given type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, typeStr := args[0], args[1]

			ictx, err := loadImageCtx(file)
			if err != nil {
				return err
			}

			uc := usecase.NewDecode(ictx.images)
			msg, err := uc.Execute(cmd.Context(), file, typeStr)
			if err != nil {
				return err
			}

			logger.L().Info("decode.completed", "file", file, "type", typeStr, "bytes", len(msg))

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
