package record

import (
	"context"
)

// Repository - хранилище учетных записей.
// Все реализации возвращают записи по возрастанию CreatedAt, затем ID.
type Repository interface {
	Create(ctx context.Context, cred *Credential) (int64, error)
	CreateBatch(ctx context.Context, creds []*Credential) ([]int64, error)
	List(ctx context.Context) ([]Credential, error)
	Get(ctx context.Context, id int64) (*Credential, error)
	// Update возвращает ErrNotFound, если записи нет.
	Update(ctx context.Context, id int64, fields NewCredential) error
	// Delete не возвращает ошибку для отсутствующей записи.
	Delete(ctx context.Context, id int64) error
}
