package access

import "context"

// Repository - key-value хранилище настроек вне таблицы записей.
type Repository interface {
	// Get возвращает errs.ErrNotFound, если ключа нет.
	Get(ctx context.Context, key string) (string, error)
	// Put атомарно записывает все пары.
	Put(ctx context.Context, values map[string]string) error
}
