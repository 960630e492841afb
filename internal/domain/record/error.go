package record

import (
	"passkeeper/internal/domain/errs"
)

var (
	ErrNotFound         = errs.ErrNotFound
	ErrNameRequired     = errs.Required("name")
	ErrUsernameRequired = errs.Required("username")
	ErrPasswordRequired = errs.Required("password")
)
