package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/auth"
	"passkeeper/cmd/client/cmd/output"
	"passkeeper/cmd/client/cmd/record"
	"passkeeper/internal/app/client"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Задать пароль доступа при первом запуске",
	Long: `Команда init выполняет первоначальную настройку:
создает хранилище и задает пароль доступа.

Пока пароль не задан, принимается "admin". После init запасной пароль
больше не действует.`,
	Annotations: map[string]string{client.SkipGateAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		first, err := app.Gate().IsFirstTime(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка чтения хранилища: %w", err)
		}
		if !first {
			fmt.Fprintln(cmd.OutOrStdout(), "Пароль доступа уже задан.")
			return nil
		}

		if err := app.Authenticate(cmd.Context(), app.Prompter(), cmd.ErrOrStderr()); err != nil {
			return err
		}

		output.Success(cmd.OutOrStdout(), "Пароль доступа сохранен")
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Что дальше:")
		fmt.Fprintln(cmd.OutOrStdout(), "1. Добавьте запись: passkeeper record add --name GitHub --username me")
		fmt.Fprintln(cmd.OutOrStdout(), "2. Или загрузите CSV: passkeeper record import backup.csv")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Добавляем команды шлюза доступа
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)
	auth.AuthCmd.AddCommand(auth.ChangePasswordCmd)

	// Добавляем команды работы с записями
	rootCmd.AddCommand(record.RecordCmd)
	record.RecordCmd.AddCommand(record.AddCmd)
	record.RecordCmd.AddCommand(record.ListCmd)
	record.RecordCmd.AddCommand(record.SearchCmd)
	record.RecordCmd.AddCommand(record.GetCmd)
	record.RecordCmd.AddCommand(record.UpdateCmd)
	record.RecordCmd.AddCommand(record.DeleteCmd)
	record.RecordCmd.AddCommand(record.CopyCmd)
	record.RecordCmd.AddCommand(record.ImportCmd)
	record.RecordCmd.AddCommand(record.ExportCmd)
}
