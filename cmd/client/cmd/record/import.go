package record

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
	"passkeeper/internal/app/client"
	"passkeeper/internal/domain/transfer"
)

var ImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Загрузить записи из CSV",
	Long: `Загрузка CSV с заголовком. Обязательные колонки: title, username, password;
необязательные: email, notes. Колонка url игнорируется.

Файл загружается целиком или не загружается вовсе: при ошибке в любой
строке ни одна запись не добавляется.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		svc, err := app.Transfer()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("ошибка открытия файла: %w", err)
		}
		defer f.Close()

		ids, err := svc.Import(cmd.Context(), f)
		var importErr *transfer.ImportError
		if errors.As(err, &importErr) {
			for _, line := range importErr.Lines {
				output.Warn(cmd.ErrOrStderr(), "%s", line)
			}
			return fmt.Errorf("файл отклонен, записи не добавлены")
		}
		if err != nil {
			return fmt.Errorf("ошибка импорта: %w", err)
		}

		output.Success(cmd.OutOrStdout(), "Загружено записей: %d", len(ids))
		return nil
	},
}
