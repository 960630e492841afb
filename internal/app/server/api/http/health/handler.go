package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const storageFailed = "failed"

type Handler struct {
	log          *slog.Logger
	middleware   huma.Middlewares
	storageState func() string
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares, storageState func() string) *Handler {
	return &Handler{
		log:          log,
		middleware:   middleware,
		storageState: storageState,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	state := h.storageState()
	if state == storageFailed {
		return nil, huma.Error503ServiceUnavailable("storage unavailable")
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: state,
		},
	}, nil
}
