package auth

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
	"passkeeper/internal/app/client"
	"passkeeper/internal/domain/access"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние хранилища и шлюза доступа",
	// Статус доступен без пароля, иначе первый запуск не увидеть
	Annotations: map[string]string{client.SkipGateAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		state, err := app.State(cmd.Context())
		if err != nil {
			return err
		}

		if output.Format(cmd) == output.FormatJSON {
			return output.JSON(cmd.OutOrStdout(), state)
		}

		gate := "пароль задан"
		if state.Gate == access.StateFirstTime {
			gate = "первый запуск"
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Шлюз доступа:\t%s\n", gate)
		fmt.Fprintf(w, "Хранение пароля:\t%s\n", state.Scheme)
		fmt.Fprintf(w, "Хранилище:\t%s (%s)\n", state.Driver, state.Storage)
		if state.DataPath != "" {
			fmt.Fprintf(w, "Файл базы:\t%s\n", state.DataPath)
		}
		if state.Unlocked {
			fmt.Fprintf(w, "Записей:\t%d\n", state.RecordsCount)
		} else {
			fmt.Fprintf(w, "Записи:\tзаблокированы\n")
		}
		return w.Flush()
	},
}
