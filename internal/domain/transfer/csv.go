// Package transfer реализует экспорт и импорт учетных записей в CSV.
package transfer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"passkeeper/internal/domain/errs"
	"passkeeper/internal/domain/record"
)

const DefaultLabel = "passwords_backup"

// Колонки файла экспорта, порядок фиксирован.
var exportHeader = []string{"name", "username", "password", "email", "note"}

// Колонки импорта. Ключ - имя в заголовке файла, значение - каноническое имя.
var importColumns = map[string]string{
	"title":    "title",
	"name":     "title",
	"username": "username",
	"password": "password",
	"url":      "url",
	"notes":    "notes",
	"note":     "notes",
	"email":    "email",
}

var requiredColumns = []string{"title", "username", "password"}

var ErrNoRows = &errs.DomainError{
	Err:     errs.ErrValidation,
	Code:    "no_rows",
	Message: "csv file has no data rows",
}

// ImportError перечисляет все строки, не прошедшие проверку.
// Строки нумеруются с единицы, заголовок не считается.
type ImportError struct {
	Lines []string
}

func (e *ImportError) Error() string {
	return strings.Join(e.Lines, "\n")
}

func (e *ImportError) Unwrap() error {
	return errs.ErrValidation
}

// FileName возвращает имя файла экспорта вида <label>_<epoch-millis>.csv
func FileName(label string, t time.Time) string {
	if strings.TrimSpace(label) == "" {
		label = DefaultLabel
	}
	return label + "_" + strconv.FormatInt(t.UnixMilli(), 10) + ".csv"
}

// Export пишет заголовок и по одной строке на запись.
// Каждое поле заключается в кавычки, кавычки внутри удваиваются.
// Переводы строк \r\n внутри полей записываются как \n: при чтении
// encoding/csv все равно приводит их к \n.
func Export(w io.Writer, creds []record.Credential) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(exportHeader, ",") + "\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, c := range creds {
		row := []string{c.Name, c.Username, c.Password, c.Email, c.Note}
		for i, field := range row {
			row[i] = quote(field)
		}
		if _, err := bw.WriteString(strings.Join(row, ",") + "\n"); err != nil {
			return fmt.Errorf("write row %d: %w", c.ID, err)
		}
	}

	return bw.Flush()
}

func quote(field string) string {
	field = strings.ReplaceAll(field, "\r\n", "\n")
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Parse читает CSV с заголовком и возвращает записи для импорта.
// Если хотя бы одна строка без title, username или password,
// импорт отклоняется целиком с *ImportError.
func Parse(r io.Reader) ([]record.NewCredential, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w: %w", errs.ErrValidation, err)
	}

	columns := mapHeader(header)

	var (
		items []record.NewCredential
		lines []string
		row   int
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w: %w", errs.ErrValidation, err)
		}
		if blank(fields) {
			continue
		}
		row++

		values := make(map[string]string, len(columns))
		for i, name := range columns {
			if name != "" && i < len(fields) {
				values[name] = fields[i]
			}
		}

		var missing []string
		for _, name := range requiredColumns {
			if strings.TrimSpace(values[name]) == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			lines = append(lines, diagnostic(row, missing))
			continue
		}

		items = append(items, record.NewCredential{
			Name:     values["title"],
			Username: values["username"],
			Password: values["password"],
			Email:    values["email"],
			Note:     values["notes"],
		})
	}

	if len(lines) > 0 {
		return nil, &ImportError{Lines: lines}
	}
	if row == 0 {
		return nil, ErrNoRows
	}
	return items, nil
}

// mapHeader сопоставляет позиции колонок каноническим именам.
// Незнакомые колонки получают пустое имя и игнорируются.
func mapHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = importColumns[strings.ToLower(strings.TrimSpace(h))]
	}
	return columns
}

// skipBOM отбрасывает метку порядка байт UTF-8, которую добавляют табличные редакторы.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && string(b) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}
	return br
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func diagnostic(row int, missing []string) string {
	verb := "is"
	if len(missing) > 1 {
		verb = "are"
	}
	return fmt.Sprintf("row %d: %s %s required", row, strings.Join(missing, ", "), verb)
}
