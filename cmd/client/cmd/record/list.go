package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long:  `Все записи в порядке добавления. Пароли не выводятся.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, records, err := recordsFrom(cmd)
		if err != nil {
			return err
		}

		creds, err := records.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка записей: %w", err)
		}

		return output.Credentials(cmd.OutOrStdout(), output.Format(cmd), creds)
	},
}

var SearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Поиск записей по названию",
	Long:  `Поиск подстроки в названии без учета регистра. Пустой запрос возвращает все записи.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, records, err := recordsFrom(cmd)
		if err != nil {
			return err
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		}

		creds, err := records.Search(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("ошибка поиска: %w", err)
		}

		return output.Credentials(cmd.OutOrStdout(), output.Format(cmd), creds)
	},
}
