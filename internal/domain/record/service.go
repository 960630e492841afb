package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Add(ctx context.Context, fields NewCredential) (int64, error)
	AddBatch(ctx context.Context, items []NewCredential) ([]int64, error)
	List(ctx context.Context) ([]Credential, error)
	Search(ctx context.Context, query string) ([]Credential, error)
	Get(ctx context.Context, id int64) (*Credential, error)
	Update(ctx context.Context, id int64, fields NewCredential) error
	Delete(ctx context.Context, id int64) error
}

// Service - бизнес-логика работы с учетными записями
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

type Option func(*Service)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		log:  log.With("component", "record_service"),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) stamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Add creates a credential and returns its id
func (s *Service) Add(ctx context.Context, fields NewCredential) (int64, error) {
	if err := fields.Validate(); err != nil {
		return 0, err
	}

	cred := &Credential{
		Name:      fields.Name,
		Username:  fields.Username,
		Password:  fields.Password,
		Email:     fields.Email,
		Note:      fields.Note,
		CreatedAt: s.stamp(),
	}

	id, err := s.repo.Create(ctx, cred)
	if err != nil {
		s.log.Error("failed to create credential", "error", err)
		return 0, fmt.Errorf("create credential: %w", err)
	}

	s.log.Debug("credential created", "id", id)
	return id, nil
}

// AddBatch validates every item first, then stores all of them atomically
func (s *Service) AddBatch(ctx context.Context, items []NewCredential) ([]int64, error) {
	creds := make([]*Credential, 0, len(items))
	createdAt := s.stamp()

	for i, fields := range items {
		if err := fields.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		creds = append(creds, &Credential{
			Name:      fields.Name,
			Username:  fields.Username,
			Password:  fields.Password,
			Email:     fields.Email,
			Note:      fields.Note,
			CreatedAt: createdAt,
		})
	}

	if len(creds) == 0 {
		return []int64{}, nil
	}

	ids, err := s.repo.CreateBatch(ctx, creds)
	if err != nil {
		s.log.Error("failed to create credentials batch", "count", len(creds), "error", err)
		return nil, fmt.Errorf("create credentials batch: %w", err)
	}

	s.log.Info("credentials batch created", "count", len(ids))
	return ids, nil
}

// List returns all credentials ordered by creation time
func (s *Service) List(ctx context.Context) ([]Credential, error) {
	creds, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list credentials", "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	if creds == nil {
		creds = []Credential{}
	}
	return creds, nil
}

// Search returns credentials whose name contains query, ignoring case
func (s *Service) Search(ctx context.Context, query string) ([]Credential, error) {
	creds, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]Credential, 0, len(creds))
	for _, c := range creds {
		if MatchName(c.Name, query) {
			found = append(found, c)
		}
	}
	return found, nil
}

// Get returns a credential by id
func (s *Service) Get(ctx context.Context, id int64) (*Credential, error) {
	cred, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get credential", "id", id, "error", err)
		return nil, fmt.Errorf("get credential: %w", err)
	}
	return cred, nil
}

// Update overwrites every mutable field of a credential
func (s *Service) Update(ctx context.Context, id int64, fields NewCredential) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to update credential", "id", id, "error", err)
		return fmt.Errorf("update credential: %w", err)
	}

	s.log.Debug("credential updated", "id", id)
	return nil
}

// Delete removes a credential; a missing id is not an error
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete credential", "id", id, "error", err)
		return fmt.Errorf("delete credential: %w", err)
	}

	s.log.Debug("credential deleted", "id", id)
	return nil
}
