package transfer

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) exportOp() huma.Operation {
	return huma.Operation{
		OperationID: "transfer-export",
		Method:      http.MethodGet,
		Path:        "/api/v1/export",
		Summary:     "Выгрузить записи в CSV",
		Description: "Требует повторного ввода пароля доступа в заголовке " + PassphraseHeader + ".",
		Tags:        []string{"transfer"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
		Responses: map[string]*huma.Response{
			"200": {
				Description: "CSV file",
				Content: map[string]*huma.MediaType{
					"text/csv": {},
				},
			},
		},
	}
}

func (h *Handler) importOp() huma.Operation {
	return huma.Operation{
		OperationID:   "transfer-import",
		Method:        http.MethodPost,
		Path:          "/api/v1/import",
		Summary:       "Загрузить записи из CSV",
		Description:   "Файл принимается целиком или отклоняется целиком.",
		Tags:          []string{"transfer"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
