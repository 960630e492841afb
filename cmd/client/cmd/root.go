package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"passkeeper/cmd/client/cmd/output"
	"passkeeper/internal/app/client"
	"passkeeper/internal/app/client/config"
	"passkeeper/internal/utils/logger"
)

var (
	cfgFile string
	format  string
	app     *client.App
)

var rootCmd = &cobra.Command{
	Use:   "passkeeper",
	Short: "Passkeeper - локальный менеджер паролей",
	Long: `Passkeeper хранит учетные записи (название, логин, пароль, email, заметка)
в локальной базе и открывает к ним доступ только после ввода пароля доступа.

При первом запуске пароль доступа задается; до этого принимается пароль "admin".`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	err := rootCmd.Execute()
	if app != nil {
		app.Shutdown()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	switch format {
	case output.FormatSimple, output.FormatTable, output.FormatJSON:
	default:
		return fmt.Errorf("неизвестный формат вывода %q", format)
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log := logger.New(cfg.Env)
	app = client.New(cfg, log)
	cmd.SetContext(client.WithApp(cmd.Context(), app))

	// Один prompter на процесс: при чтении из pipe буфер первого
	// reader-а уже содержит строки, нужные следующим запросам
	app.SetPrompter(client.NewTermPrompter(os.Stdin, cmd.ErrOrStderr()))

	if cmd.Annotations[client.SkipGateAnnotation] == "true" {
		return nil
	}

	return app.Authenticate(cmd.Context(), app.Prompter(), cmd.ErrOrStderr())
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", output.FormatSimple, "формат вывода (simple, table, json)")
}
