package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для операций с паролем доступа
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление паролем доступа",
	Long:  `Состояние хранилища и смена пароля доступа.`,
}
