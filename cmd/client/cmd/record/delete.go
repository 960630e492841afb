package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Удалить запись",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, records, err := recordsFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := records.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("ошибка удаления записи: %w", err)
		}

		output.Success(cmd.OutOrStdout(), "Запись %d удалена", id)
		return nil
	},
}
