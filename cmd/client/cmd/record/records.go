package record

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"passkeeper/internal/app/client"
	"passkeeper/internal/domain/record"
)

// RecordCmd - родительская команда для всех операций с записями
var RecordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"records"},
	Short:   "Управление записями",
	Long:    `Добавление, просмотр, поиск, изменение и удаление учетных записей, импорт и экспорт CSV.`,
}

func recordsFrom(cmd *cobra.Command) (*client.App, record.Servicer, error) {
	app, err := client.FromContext(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	records, err := app.Records()
	if err != nil {
		return nil, nil, err
	}
	return app, records, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("неверный ID записи: %q", arg)
	}
	return id, nil
}
