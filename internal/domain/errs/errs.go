// Package errs содержит общую таксономию ошибок домена.
package errs

import "errors"

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("storage unavailable")
)

// DomainError - ошибка домена с кодом для клиента.
// Unwrap возвращает одну из базовых ошибок пакета.
type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// ValidationError описывает незаполненное или неверное поле.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Required возвращает ошибку обязательного поля.
func Required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}
