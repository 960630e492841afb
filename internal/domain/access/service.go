package access

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"passkeeper/internal/domain/errs"
)

type Servicer interface {
	State(ctx context.Context) (State, error)
	IsFirstTime(ctx context.Context) (bool, error)
	StoredScheme(ctx context.Context) (string, error)
	SetInitial(ctx context.Context, value string) error
	Verify(ctx context.Context, attempt string) (bool, error)
	Change(ctx context.Context, oldAttempt, newValue, confirm string) error
}

type Service struct {
	repo   Repository
	scheme Scheme
	log    *slog.Logger
}

// NewService создает шлюз доступа. scheme задает способ хранения новых
// паролей; nil означает Plain.
func NewService(repo Repository, scheme Scheme, log *slog.Logger) *Service {
	if scheme == nil {
		scheme = Plain{}
	}
	return &Service{
		repo:   repo,
		scheme: scheme,
		log:    log.With("component", "access_service"),
	}
}

type stored struct {
	value  string
	scheme Scheme
}

// load возвращает nil, если пароль еще не задан.
func (s *Service) load(ctx context.Context) (*stored, error) {
	value, err := s.repo.Get(ctx, KeyPassphrase)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load passphrase: %w", err)
	}

	name, err := s.repo.Get(ctx, KeyScheme)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("load passphrase scheme: %w", err)
	}

	scheme, err := schemeByName(name)
	if err != nil {
		return nil, err
	}

	return &stored{value: value, scheme: scheme}, nil
}

func (s *Service) save(ctx context.Context, value string) error {
	sealed, err := s.scheme.Seal(value)
	if err != nil {
		return err
	}

	return s.repo.Put(ctx, map[string]string{
		KeyPassphrase: sealed,
		KeyScheme:     s.scheme.Name(),
	})
}

func (s *Service) State(ctx context.Context) (State, error) {
	first, err := s.IsFirstTime(ctx)
	if err != nil {
		return "", err
	}
	if first {
		return StateFirstTime, nil
	}
	return StateGated, nil
}

// IsFirstTime сообщает, что пароль доступа еще ни разу не сохранялся
func (s *Service) IsFirstTime(ctx context.Context) (bool, error) {
	st, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return st == nil, nil
}

// StoredScheme возвращает схему, которой закрыт сохраненный пароль.
// До первой установки это схема, которой он будет сохранен.
func (s *Service) StoredScheme(ctx context.Context) (string, error) {
	st, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	if st == nil {
		return s.scheme.Name(), nil
	}
	return st.scheme.Name(), nil
}

// SetInitial сохраняет первый пароль доступа
func (s *Service) SetInitial(ctx context.Context, value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyPassphrase
	}

	st, err := s.load(ctx)
	if err != nil {
		return err
	}
	if st != nil {
		return ErrAlreadyInitialized
	}

	if err := s.save(ctx, value); err != nil {
		s.log.Error("failed to save initial passphrase", "error", err)
		return fmt.Errorf("save passphrase: %w", err)
	}

	s.log.Info("access passphrase initialized", "scheme", s.scheme.Name())
	return nil
}

// Verify сравнивает попытку с сохраненным паролем, а при его отсутствии -
// с FallbackPassphrase. Состояние не меняется, число попыток не ограничено.
func (s *Service) Verify(ctx context.Context, attempt string) (bool, error) {
	st, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if st == nil {
		return attempt == FallbackPassphrase, nil
	}

	ok := st.scheme.Match(st.value, attempt)
	if !ok {
		s.log.Debug("passphrase verification failed")
	}
	return ok, nil
}

// Change заменяет пароль доступа. При любой ошибке сохраненный пароль не меняется.
func (s *Service) Change(ctx context.Context, oldAttempt, newValue, confirm string) error {
	ok, err := s.Verify(ctx, oldAttempt)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongOldPassphrase
	}
	if strings.TrimSpace(newValue) == "" {
		return ErrEmptyNewPassphrase
	}
	if newValue != confirm {
		return ErrMismatch
	}

	if err := s.save(ctx, newValue); err != nil {
		s.log.Error("failed to save new passphrase", "error", err)
		return fmt.Errorf("save passphrase: %w", err)
	}

	s.log.Info("access passphrase changed", "scheme", s.scheme.Name())
	return nil
}
