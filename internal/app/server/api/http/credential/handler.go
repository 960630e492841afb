package credential

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passkeeper/internal/app/server/api/http/apierr"
	"passkeeper/internal/domain/record"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "credential_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	var (
		creds []record.Credential
		err   error
	)
	if input.Query != "" {
		creds, err = h.service.Search(ctx, input.Query)
	} else {
		creds, err = h.service.List(ctx)
	}
	if err != nil {
		h.log.Error("failed to list credentials", "error", err)
		return nil, apierr.From(err)
	}
	if creds == nil {
		creds = []record.Credential{}
	}

	return &listOutput{Body: listResponse{Credentials: creds, Count: len(creds)}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	id, err := h.service.Add(ctx, input.Body)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &createOutput{Body: createResponse{ID: id, Status: "Ok"}}, nil
}

func (h *Handler) get(ctx context.Context, input *idInput) (*getOutput, error) {
	cred, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &getOutput{Body: *cred}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*statusOutput, error) {
	if err := h.service.Update(ctx, input.ID, input.Body); err != nil {
		return nil, apierr.From(err)
	}
	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*statusOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(err)
	}
	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}
