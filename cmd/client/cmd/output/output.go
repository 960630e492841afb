// Package output печатает результаты команд в выбранном формате.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"passkeeper/internal/domain/record"
)

const (
	FormatSimple = "simple"
	FormatTable  = "table"
	FormatJSON   = "json"
)

const dateLayout = "2006-01-02 15:04"

// Format возвращает значение глобального флага --format
func Format(cmd *cobra.Command) string {
	if f := cmd.Flag("format"); f != nil {
		return f.Value.String()
	}
	return FormatSimple
}

func Success(w io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(w, "✓ "+format+"\n", args...)
}

func Warn(w io.Writer, format string, args ...any) {
	color.New(color.FgYellow).Fprintf(w, "! "+format+"\n", args...)
}

func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Credentials печатает список без паролей (кроме json)
func Credentials(w io.Writer, format string, creds []record.Credential) error {
	switch format {
	case FormatJSON:
		if creds == nil {
			creds = []record.Credential{}
		}
		return JSON(w, creds)
	case FormatTable:
		return credentialsTable(w, creds)
	default:
		return credentialsSimple(w, creds)
	}
}

func credentialsSimple(w io.Writer, creds []record.Credential) error {
	if len(creds) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	fmt.Fprintf(w, "Найдено записей: %d\n\n", len(creds))
	for i, c := range creds {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, c.Name, c.Username)
		fmt.Fprintf(w, "   ID: %d | Создано: %s\n", c.ID, c.CreatedAt.Local().Format(dateLayout))
	}
	return nil
}

func credentialsTable(w io.Writer, creds []record.Credential) error {
	if len(creds) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tНазвание\tЛогин\tEmail\tСоздано\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t---\t---\t\n")
	for _, c := range creds {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			c.ID,
			truncate(c.Name, 30),
			truncate(c.Username, 30),
			truncate(c.Email, 30),
			c.CreatedAt.Local().Format(dateLayout),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nВсего записей: %d\n", len(creds))
	return nil
}

// Credential печатает одну запись. Пароль скрыт, пока не задан showPassword.
func Credential(w io.Writer, format string, c *record.Credential, showPassword bool) error {
	if format == FormatJSON {
		view := *c
		if !showPassword {
			view.Password = mask
		}
		return JSON(w, view)
	}

	password := mask
	if showPassword {
		password = c.Password
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", c.ID)
	fmt.Fprintf(tw, "Название:\t%s\n", c.Name)
	fmt.Fprintf(tw, "Логин:\t%s\n", c.Username)
	fmt.Fprintf(tw, "Пароль:\t%s\n", password)
	if c.Email != "" {
		fmt.Fprintf(tw, "Email:\t%s\n", c.Email)
	}
	if c.Note != "" {
		fmt.Fprintf(tw, "Заметка:\t%s\n", c.Note)
	}
	fmt.Fprintf(tw, "Создано:\t%s\n", c.CreatedAt.Local().Format(dateLayout))
	return tw.Flush()
}

const mask = "********"

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
