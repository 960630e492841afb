// Package access реализует проверку пароля доступа к хранилищу.
package access

const (
	// FallbackPassphrase сравнивается с попыткой, пока пароль не задан.
	FallbackPassphrase = "admin"

	KeyPassphrase = "accessPassword"
	KeyScheme     = "accessPasswordScheme"
)

// State - состояние шлюза доступа.
type State string

const (
	StateFirstTime State = "first_time"
	StateGated     State = "gated"
)
