package record

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
	"passkeeper/internal/app/client"
	"passkeeper/internal/domain/access"
)

var (
	exportDir   string
	exportLabel string
)

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Выгрузить все записи в CSV",
	Long: `Выгрузка всех записей в файл <label>_<время в мс>.csv.
Перед выгрузкой пароль доступа запрашивается повторно.

Файл содержит пароли в открытом виде.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		svc, err := app.Transfer()
		if err != nil {
			return err
		}

		dir, label := app.Config().ExportDir, app.Config().ExportLabel
		if exportDir != "" {
			dir = exportDir
		}
		if exportLabel != "" {
			label = exportLabel
		}

		passphrase := app.Config().Passphrase
		if passphrase == "" {
			if passphrase, err = app.Prompter().Secret("Подтвердите пароль доступа: "); err != nil {
				return err
			}
		}

		path, count, err := svc.ExportFile(cmd.Context(), dir, label, passphrase)
		if errors.Is(err, access.ErrWrongPassphrase) {
			return fmt.Errorf("неверный пароль доступа, экспорт отменен")
		}
		if err != nil {
			return fmt.Errorf("ошибка экспорта: %w", err)
		}

		output.Success(cmd.OutOrStdout(), "Выгружено записей: %d", count)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		output.Warn(cmd.ErrOrStderr(), "Файл содержит пароли в открытом виде")
		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "директория для файла (по умолчанию EXPORT_DIR)")
	ExportCmd.Flags().StringVarP(&exportLabel, "label", "l", "", "префикс имени файла (по умолчанию EXPORT_LABEL)")
}
