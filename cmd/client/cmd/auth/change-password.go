package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
	"passkeeper/internal/app/client"
	"passkeeper/internal/domain/access"
)

var ChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Изменить пароль доступа",
	Long: `Смена пароля доступа. Требует текущий пароль, новый пароль и его повтор.

При неудаче сохраненный пароль не меняется.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		p := app.Prompter()
		oldValue, err := p.Secret("Текущий пароль: ")
		if err != nil {
			return err
		}
		newValue, err := p.Secret("Новый пароль: ")
		if err != nil {
			return err
		}
		confirm, err := p.Secret("Повторите новый пароль: ")
		if err != nil {
			return err
		}

		err = app.Gate().Change(cmd.Context(), oldValue, newValue, confirm)
		switch {
		case errors.Is(err, access.ErrWrongPassphrase):
			return fmt.Errorf("текущий пароль неверен")
		case err != nil:
			return err
		}

		output.Success(cmd.OutOrStdout(), "Пароль доступа изменен")
		return nil
	},
}
