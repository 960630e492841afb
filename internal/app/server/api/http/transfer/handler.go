package transfer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passkeeper/internal/app/server/api/http/apierr"
	"passkeeper/internal/domain/transfer"
)

type Handler struct {
	service    transfer.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	now        func() time.Time
}

func NewHandler(service transfer.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "transfer_handler"),
		middleware: middleware,
		now:        time.Now,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.exportOp(), h.export)
	huma.Register(api, h.importOp(), h.importCSV)
}

func (h *Handler) export(ctx context.Context, input *exportInput) (*exportOutput, error) {
	var buf bytes.Buffer
	count, err := h.service.Export(ctx, &buf, input.Passphrase)
	if err != nil {
		return nil, apierr.From(err)
	}

	name := transfer.FileName(input.Label, h.now())
	h.log.Info("credentials exported", "count", count, "file", name)

	return &exportOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", name),
		Count:              count,
		Body:               buf.Bytes(),
	}, nil
}

func (h *Handler) importCSV(ctx context.Context, input *importInput) (*importOutput, error) {
	ids, err := h.service.Import(ctx, bytes.NewReader(input.RawBody))
	if err != nil {
		h.log.Info("import rejected", "error", err)
		return nil, apierr.From(err)
	}

	return &importOutput{Body: importResponse{IDs: ids, Count: len(ids), Status: "Ok"}}, nil
}
