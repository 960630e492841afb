package access

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) stateOp() huma.Operation {
	return huma.Operation{
		OperationID: "access-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/access",
		Summary:     "Состояние шлюза доступа",
		Tags:        []string{"access"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) setupOp() huma.Operation {
	return huma.Operation{
		OperationID:   "access-setup",
		Method:        http.MethodPost,
		Path:          "/api/v1/access/setup",
		Summary:       "Задать первый пароль доступа",
		Description:   "Доступно только при первом запуске. Возвращает токен сессии.",
		Tags:          []string{"access"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) unlockOp() huma.Operation {
	return huma.Operation{
		OperationID: "access-unlock",
		Method:      http.MethodPost,
		Path:        "/api/v1/access/unlock",
		Summary:     "Разблокировать по паролю доступа",
		Tags:        []string{"access"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) changeOp() huma.Operation {
	return huma.Operation{
		OperationID: "access-change",
		Method:      http.MethodPost,
		Path:        "/api/v1/access/change",
		Summary:     "Сменить пароль доступа",
		Tags:        []string{"access"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authMiddleware,
	}
}
