package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
)

var showPassword bool

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Просмотреть запись",
	Long:  `Просмотр записи по ID. Пароль показывается только с флагом --show.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, records, err := recordsFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		cred, err := records.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		return output.Credential(cmd.OutOrStdout(), output.Format(cmd), cred, showPassword)
	},
}

func init() {
	GetCmd.Flags().BoolVarP(&showPassword, "show", "s", false, "показать пароль")
}
