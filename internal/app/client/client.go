package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"passkeeper/internal/app/client/clipboard"
	"passkeeper/internal/app/client/config"
	common "passkeeper/internal/config"
	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/record"
	"passkeeper/internal/domain/transfer"
	"passkeeper/internal/infrastructure/storage"
)

// ErrLocked возвращается операциями над записями до ввода пароля доступа
var ErrLocked = errors.New("приложение заблокировано: требуется пароль доступа")

// App - корень композиции клиента. Создается один раз на процесс
// и передается всем командам.
type App struct {
	config    *config.Config
	log       *slog.Logger
	storage   *storage.Storage
	records   record.Servicer
	gate      access.Servicer
	transfer  transfer.Servicer
	clipboard *clipboard.Manager
	prompter  Prompter

	mu       sync.RWMutex
	unlocked bool
}

// AppState - сводка состояния для команды статуса
type AppState struct {
	Gate         access.State `json:"gate"`
	Storage      string       `json:"storage"`
	Driver       string       `json:"driver"`
	DataPath     string       `json:"data_path,omitempty"`
	Scheme       string       `json:"scheme"`
	RecordsCount int          `json:"records_count"`
	Unlocked     bool         `json:"unlocked"`
}

func New(cfg *config.Config, log *slog.Logger) *App {
	st := storage.Open(cfg.Storage, log)

	var scheme access.Scheme = access.Plain{}
	if cfg.Gate.HashPassphrase {
		scheme = access.Bcrypt{Cost: bcrypt.DefaultCost}
	}

	records := record.NewService(st.Records(), log)
	gate := access.NewService(st.Settings(), scheme, log)

	return &App{
		config:    cfg,
		log:       log.With("component", "client_app"),
		storage:   st,
		records:   records,
		gate:      gate,
		transfer:  transfer.NewService(records, gate, log),
		clipboard: clipboard.NewManager(log),
	}
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Gate() access.Servicer {
	return a.gate
}

func (a *App) Clipboard() *clipboard.Manager {
	return a.clipboard
}

// Prompter возвращает общий на процесс источник секретов. Все команды
// читают через него: второй буферизованный reader поверх того же stdin
// потерял бы строки, уже прочитанные первым.
func (a *App) Prompter() Prompter {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.prompter == nil {
		a.prompter = NewTermPrompter(os.Stdin, os.Stderr)
	}
	return a.prompter
}

func (a *App) SetPrompter(p Prompter) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prompter = p
}

// Records возвращает сервис записей, если приложение разблокировано
func (a *App) Records() (record.Servicer, error) {
	if !a.IsUnlocked() {
		return nil, ErrLocked
	}
	return a.records, nil
}

// Transfer возвращает сервис импорта и экспорта, если приложение разблокировано
func (a *App) Transfer() (transfer.Servicer, error) {
	if !a.IsUnlocked() {
		return nil, ErrLocked
	}
	return a.transfer, nil
}

// Setup сохраняет первый пароль доступа и разблокирует приложение
func (a *App) Setup(ctx context.Context, value, confirm string) error {
	if value != confirm {
		return access.ErrMismatch
	}
	if err := a.gate.SetInitial(ctx, value); err != nil {
		return err
	}
	a.setUnlocked(true)
	return nil
}

// Unlock проверяет пароль доступа. Число попыток не ограничено.
func (a *App) Unlock(ctx context.Context, attempt string) (bool, error) {
	ok, err := a.gate.Verify(ctx, attempt)
	if err != nil {
		return false, err
	}
	if ok {
		a.setUnlocked(true)
		a.log.Debug("application unlocked")
	}
	return ok, nil
}

func (a *App) IsUnlocked() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.unlocked
}

func (a *App) setUnlocked(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.unlocked = v
}

// State собирает сводку о хранилище и шлюзе доступа
func (a *App) State(ctx context.Context) (*AppState, error) {
	gateState, err := a.gate.State(ctx)
	if err != nil {
		return nil, fmt.Errorf("состояние шлюза: %w", err)
	}
	scheme, err := a.gate.StoredScheme(ctx)
	if err != nil {
		return nil, fmt.Errorf("схема пароля доступа: %w", err)
	}

	state := &AppState{
		Gate:     gateState,
		Storage:  a.storage.State().String(),
		Driver:   a.config.Storage.Driver,
		Scheme:   scheme,
		Unlocked: a.IsUnlocked(),
	}
	if a.config.Storage.Driver != common.DriverPostgres && a.config.Storage.Driver != common.DriverMemory {
		state.DataPath = a.config.Storage.DataPath
	}
	if state.Unlocked {
		creds, err := a.records.List(ctx)
		if err != nil {
			return nil, err
		}
		state.RecordsCount = len(creds)
	}

	return state, nil
}

// Shutdown освобождает хранилище и таймер буфера обмена
func (a *App) Shutdown() {
	a.clipboard.Close()
	if err := a.storage.Close(); err != nil {
		a.log.Error("failed to close storage", "error", err)
	}
}
