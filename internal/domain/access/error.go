package access

import (
	"errors"

	"passkeeper/internal/domain/errs"
)

var (
	ErrEmptyPassphrase = &errs.DomainError{
		Err:     errs.ErrValidation,
		Code:    "empty_passphrase",
		Message: "passphrase must not be blank",
	}
	ErrEmptyNewPassphrase = &errs.DomainError{
		Err:     errs.ErrValidation,
		Code:    "empty_new_passphrase",
		Message: "new passphrase must not be blank",
	}
	ErrMismatch = &errs.DomainError{
		Err:     errs.ErrValidation,
		Code:    "mismatch",
		Message: "passphrase confirmation does not match",
	}
	ErrAlreadyInitialized = &errs.DomainError{
		Err:     errs.ErrValidation,
		Code:    "already_initialized",
		Message: "passphrase is already set",
	}

	ErrWrongPassphrase    = errors.New("wrong passphrase")
	ErrWrongOldPassphrase = &errs.DomainError{
		Err:     ErrWrongPassphrase,
		Code:    "wrong_old_passphrase",
		Message: "current passphrase is wrong",
	}
)
