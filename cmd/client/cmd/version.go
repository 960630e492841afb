package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Заполняются через -ldflags "-X passkeeper/cmd/client/cmd.version=..."
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Версия клиента",
	// Без конфигурации и пароля доступа
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "passkeeper %s (%s)\n", version, commit)
	},
}
