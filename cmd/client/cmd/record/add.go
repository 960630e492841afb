package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
	"passkeeper/internal/domain/record"
)

var addFields record.NewCredential

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить учетную запись",
	Long: `Добавление записи. Название, логин и пароль обязательны.

Если --password не указан, пароль запрашивается без отображения.`,
	Example: `  passkeeper record add --name GitHub --username alice --email alice@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, records, err := recordsFrom(cmd)
		if err != nil {
			return err
		}

		fields := addFields
		if fields.Password == "" {
			if fields.Password, err = app.Prompter().Secret("Пароль записи: "); err != nil {
				return err
			}
		}

		id, err := records.Add(cmd.Context(), fields)
		if err != nil {
			return fmt.Errorf("ошибка добавления записи: %w", err)
		}

		output.Success(cmd.OutOrStdout(), "Запись %q добавлена, ID: %d", fields.Name, id)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addFields.Name, "name", "n", "", "название записи")
	AddCmd.Flags().StringVarP(&addFields.Username, "username", "u", "", "логин")
	AddCmd.Flags().StringVarP(&addFields.Password, "password", "p", "", "пароль (небезопасно: попадет в историю shell)")
	AddCmd.Flags().StringVarP(&addFields.Email, "email", "e", "", "email")
	AddCmd.Flags().StringVar(&addFields.Note, "note", "", "заметка")
}
