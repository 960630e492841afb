package client

import (
	"context"
	"errors"
)

// SkipGateAnnotation помечает команды, которым не нужен пароль доступа
const SkipGateAnnotation = "passkeeper/skip-gate"

type appKey struct{}

// ErrNoApp - команда запущена без корня композиции в контексте
var ErrNoApp = errors.New("приложение не инициализировано")

func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// FromContext достает App, положенный в контекст корневой командой
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
