package session

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

type Repository interface {
	Create(ctx context.Context, tokenHash string, expiresAt time.Time) error
	Validate(ctx context.Context, tokenHash string, now time.Time) error
}

// NewRepo возвращает хранилище сессий в памяти процесса.
// Сессии не переживают перезапуск сервера.
func NewRepo(log *slog.Logger) Repository {
	return &repository{
		sessions: make(map[string]time.Time),
		log:      log.With("component", "session_repository"),
	}
}

type repository struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	log      *slog.Logger
}

func (r *repository) Create(_ context.Context, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[tokenHash] = expiresAt
	return nil
}

func (r *repository) Validate(_ context.Context, tokenHash string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purge(now)

	if _, ok := r.sessions[tokenHash]; !ok {
		return ErrInvalidSession
	}
	return nil
}

// purge удаляет истекшие сессии. Вызывается под r.mu.
func (r *repository) purge(now time.Time) {
	for hash, expiresAt := range r.sessions {
		if !expiresAt.After(now) {
			delete(r.sessions, hash)
			r.log.Debug("session expired")
		}
	}
}
