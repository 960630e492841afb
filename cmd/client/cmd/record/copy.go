package record

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
	"passkeeper/internal/app/client/clipboard"
)

var (
	copyField  string
	copyNoWait bool
)

var CopyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Скопировать пароль или логин в буфер обмена",
	Long: `Копирует пароль (или логин с --field username) в буфер обмена.

Команда ждет CLIPBOARD_TIMEOUT_SECONDS и очищает буфер, если в нем все еще
лежит скопированное значение. Ctrl+C очищает буфер сразу.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, records, err := recordsFrom(cmd)
		if err != nil {
			return err
		}
		if !clipboard.Supported() {
			return fmt.Errorf("буфер обмена недоступен в этой системе")
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		cred, err := records.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		var value string
		switch copyField {
		case "password":
			value = cred.Password
		case "username":
			value = cred.Username
		default:
			return fmt.Errorf("неизвестное поле %q (password, username)", copyField)
		}

		timeout := app.Config().ClipboardTimeout
		if copyNoWait {
			timeout = 0
		}

		cb := app.Clipboard()
		done, err := cb.Copy(value, timeout)
		if err != nil {
			return err
		}

		if timeout == 0 {
			output.Success(cmd.OutOrStdout(), "%s записи %q скопирован", fieldTitle(copyField), cred.Name)
			return nil
		}
		output.Success(cmd.OutOrStdout(), "%s записи %q скопирован, буфер очистится через %s",
			fieldTitle(copyField), cred.Name, timeout)

		interrupt, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		select {
		case <-done:
		case <-interrupt.Done():
			if err := cb.ClearNow(); err != nil {
				return err
			}
		}
		output.Warn(cmd.OutOrStdout(), "Буфер обмена очищен")
		return nil
	},
}

func fieldTitle(field string) string {
	if field == "username" {
		return "Логин"
	}
	return "Пароль"
}

func init() {
	CopyCmd.Flags().StringVar(&copyField, "field", "password", "что копировать (password, username)")
	CopyCmd.Flags().BoolVar(&copyNoWait, "no-wait", false, "не ждать и не очищать буфер")
}
