package credential

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "credential-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/credentials",
		Summary:     "Список учетных записей",
		Description: "Возвращает записи по порядку создания. Параметр q фильтрует по имени.",
		Tags:        []string{"credentials"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "credential-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/credentials",
		Summary:       "Добавить учетную запись",
		Tags:          []string{"credentials"},
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "credential-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/credentials/{id}",
		Summary:     "Получить учетную запись",
		Tags:        []string{"credentials"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "credential-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/credentials/{id}",
		Summary:     "Обновить учетную запись",
		Tags:        []string{"credentials"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "credential-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/credentials/{id}",
		Summary:     "Удалить учетную запись",
		Tags:        []string{"credentials"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
