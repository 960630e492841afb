package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"passkeeper/internal/config"
	"passkeeper/internal/utils/logger/slogpretty"
)

// New создает логгер для окружения env. Вывод идет в stderr,
// чтобы не смешиваться с выводом команд.
func New(env string) *slog.Logger {
	return newLogger(env, os.Stderr)
}

func newLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlogTo(w)
	}
}

func setupPrettySlog() *slog.Logger {
	return setupPrettySlogTo(os.Stderr)
}

func setupPrettySlogTo(w io.Writer) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewPrettyHandler(w))
}

// Discard - логгер, который ничего не пишет
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
