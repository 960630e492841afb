// Package memory - хранилище в памяти процесса, без сохранения на диск.
package memory

import (
	"context"
	"sort"
	"sync"

	"passkeeper/internal/domain/errs"
	"passkeeper/internal/domain/record"
)

// Storage - временное in-memory хранилище
type Storage struct {
	mu       sync.RWMutex
	nextID   int64
	records  map[int64]record.Credential
	settings map[string]string
}

func New() *Storage {
	return &Storage{
		records:  make(map[int64]record.Credential),
		settings: make(map[string]string),
	}
}

func (s *Storage) Records() *RecordRepository {
	return &RecordRepository{s: s}
}

func (s *Storage) Settings() *SettingsRepository {
	return &SettingsRepository{s: s}
}

func (s *Storage) Close() error {
	return nil
}

type RecordRepository struct {
	s *Storage
}

func (r *RecordRepository) Create(_ context.Context, cred *record.Credential) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.insert(cred), nil
}

func (r *RecordRepository) CreateBatch(_ context.Context, creds []*record.Credential) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := make([]int64, 0, len(creds))
	for _, cred := range creds {
		ids = append(ids, r.s.insert(cred))
	}
	return ids, nil
}

// insert вызывается под s.mu.
func (s *Storage) insert(cred *record.Credential) int64 {
	s.nextID++
	cred.ID = s.nextID
	s.records[cred.ID] = *cred
	return cred.ID
}

func (r *RecordRepository) List(_ context.Context) ([]record.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	creds := make([]record.Credential, 0, len(r.s.records))
	for _, c := range r.s.records {
		creds = append(creds, c)
	}
	sort.Slice(creds, func(i, j int) bool {
		if creds[i].CreatedAt.Equal(creds[j].CreatedAt) {
			return creds[i].ID < creds[j].ID
		}
		return creds[i].CreatedAt.Before(creds[j].CreatedAt)
	})
	return creds, nil
}

func (r *RecordRepository) Get(_ context.Context, id int64) (*record.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.records[id]
	if !ok {
		return nil, record.ErrNotFound
	}
	return &c, nil
}

func (r *RecordRepository) Update(_ context.Context, id int64, fields record.NewCredential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.records[id]
	if !ok {
		return record.ErrNotFound
	}
	c.Name = fields.Name
	c.Username = fields.Username
	c.Password = fields.Password
	c.Email = fields.Email
	c.Note = fields.Note
	r.s.records[id] = c
	return nil
}

func (r *RecordRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.records, id)
	return nil
}

type SettingsRepository struct {
	s *Storage
}

func (r *SettingsRepository) Get(_ context.Context, key string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.settings[key]
	if !ok {
		return "", errs.ErrNotFound
	}
	return v, nil
}

func (r *SettingsRepository) Put(_ context.Context, values map[string]string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for k, v := range values {
		r.s.settings[k] = v
	}
	return nil
}
