// Package apierr переводит ошибки домена в ответы API.
package apierr

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/errs"
	"passkeeper/internal/domain/transfer"
)

func From(err error) error {
	if err == nil {
		return nil
	}

	var importErr *transfer.ImportError
	switch {
	case errors.As(err, &importErr):
		details := make([]error, 0, len(importErr.Lines))
		for _, line := range importErr.Lines {
			details = append(details, &huma.ErrorDetail{Message: line})
		}
		return huma.Error422UnprocessableEntity("import rejected", details...)
	case errors.Is(err, access.ErrWrongPassphrase):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, errs.ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, errs.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return huma.Error503ServiceUnavailable(errs.ErrUnavailable.Error())
	}
	return huma.Error500InternalServerError("internal error")
}
