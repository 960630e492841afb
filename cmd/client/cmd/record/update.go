package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
	"passkeeper/internal/domain/record"
)

var (
	updateFields      record.NewCredential
	updateAskPassword bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить запись",
	Long: `Изменение записи по ID. Поля, не указанные флагами, остаются прежними.
Дата создания не меняется.`,
	Example: `  passkeeper record update 3 --username bob --ask-password`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, records, err := recordsFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		current, err := records.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		fields := mergeFields(cmd, current.Fields(), updateFields)
		if updateAskPassword {
			if fields.Password, err = app.Prompter().Secret("Новый пароль записи: "); err != nil {
				return err
			}
		}

		if err := records.Update(cmd.Context(), id, fields); err != nil {
			return fmt.Errorf("ошибка обновления записи: %w", err)
		}

		output.Success(cmd.OutOrStdout(), "Запись %d обновлена", id)
		return nil
	},
}

// mergeFields берет из patch только поля, явно заданные флагами
func mergeFields(cmd *cobra.Command, base, patch record.NewCredential) record.NewCredential {
	flags := cmd.Flags()
	if flags.Changed("name") {
		base.Name = patch.Name
	}
	if flags.Changed("username") {
		base.Username = patch.Username
	}
	if flags.Changed("password") {
		base.Password = patch.Password
	}
	if flags.Changed("email") {
		base.Email = patch.Email
	}
	if flags.Changed("note") {
		base.Note = patch.Note
	}
	return base
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateFields.Name, "name", "n", "", "новое название")
	UpdateCmd.Flags().StringVarP(&updateFields.Username, "username", "u", "", "новый логин")
	UpdateCmd.Flags().StringVarP(&updateFields.Password, "password", "p", "", "новый пароль")
	UpdateCmd.Flags().StringVarP(&updateFields.Email, "email", "e", "", "новый email (пустая строка очищает)")
	UpdateCmd.Flags().StringVar(&updateFields.Note, "note", "", "новая заметка (пустая строка очищает)")
	UpdateCmd.Flags().BoolVar(&updateAskPassword, "ask-password", false, "запросить новый пароль без отображения")
}
