package access

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passkeeper/internal/app/server/api/http/apierr"
	"passkeeper/internal/app/server/api/http/middleware/auth"
	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/session"
)

type Handler struct {
	gate           access.Servicer
	session        session.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

// NewHandler принимает два набора middleware: публичный и для операций,
// требующих сессию.
func NewHandler(gate access.Servicer, session session.Servicer, log *slog.Logger, public, authed huma.Middlewares) *Handler {
	return &Handler{
		gate:           gate,
		session:        session,
		log:            log.With("component", "access_handler"),
		middleware:     public,
		authMiddleware: authed,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.stateOp(), h.state)
	huma.Register(api, h.setupOp(), h.setup)
	huma.Register(api, h.unlockOp(), h.unlock)
	huma.Register(api, h.changeOp(), h.change)
}

func (h *Handler) state(ctx context.Context, _ *struct{}) (*stateOutput, error) {
	st, err := h.gate.State(ctx)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &stateOutput{Body: stateResponse{State: st}}, nil
}

func (h *Handler) setup(ctx context.Context, input *setupInput) (*tokenOutput, error) {
	if input.Body.Passphrase != input.Body.Confirm {
		return nil, apierr.From(access.ErrMismatch)
	}
	if err := h.gate.SetInitial(ctx, input.Body.Passphrase); err != nil {
		return nil, apierr.From(err)
	}
	return h.issue(ctx)
}

func (h *Handler) unlock(ctx context.Context, input *unlockInput) (*tokenOutput, error) {
	ok, err := h.gate.Verify(ctx, input.Body.Passphrase)
	if err != nil {
		return nil, apierr.From(err)
	}
	if !ok {
		h.log.Info("unlock rejected")
		return nil, apierr.From(access.ErrWrongPassphrase)
	}
	return h.issue(ctx)
}

func (h *Handler) change(ctx context.Context, input *changeInput) (*statusOutput, error) {
	// Обработчик делит группу с публичными операциями
	if !auth.IsAuthenticated(ctx) {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}
	if err := h.gate.Change(ctx, input.Body.Old, input.Body.New, input.Body.Confirm); err != nil {
		return nil, apierr.From(err)
	}
	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) issue(ctx context.Context) (*tokenOutput, error) {
	token, err := h.session.Create(ctx)
	if err != nil {
		h.log.Error("failed to create session", "error", err)
		return nil, huma.Error500InternalServerError("create session")
	}
	return &tokenOutput{Body: tokenResponse{Token: token, Status: "Ok"}}, nil
}
