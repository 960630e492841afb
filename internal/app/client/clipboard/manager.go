// Package clipboard копирует секреты в буфер обмена с автоочисткой.
package clipboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"golang.org/x/exp/slog"
)

// Board - системный буфер обмена
type Board interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBoard struct{}

func (systemBoard) ReadAll() (string, error) { return clipboard.ReadAll() }

func (systemBoard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Supported сообщает, есть ли в системе утилита для работы с буфером.
func Supported() bool {
	return !clipboard.Unsupported
}

// Manager копирует текст и очищает буфер по таймеру.
// Один таймер на менеджер, новое копирование отменяет прежнюю очистку.
type Manager struct {
	board Board
	log   *slog.Logger

	mu     sync.Mutex
	timer  *time.Timer
	copied string
	done   chan struct{}
}

func NewManager(log *slog.Logger) *Manager {
	return NewManagerWithBoard(systemBoard{}, log)
}

func NewManagerWithBoard(board Board, log *slog.Logger) *Manager {
	return &Manager{
		board: board,
		log:   log.With("component", "clipboard"),
	}
}

// Copy помещает text в буфер. При timeout > 0 буфер очищается по истечении
// времени, если в нем все еще лежит этот текст.
func (m *Manager) Copy(text string, timeout time.Duration) (<-chan struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()

	if err := m.board.WriteAll(text); err != nil {
		return nil, fmt.Errorf("write clipboard: %w", err)
	}

	m.copied = text
	m.done = make(chan struct{})
	done := m.done

	if timeout > 0 {
		m.timer = time.AfterFunc(timeout, func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.done != done {
				return
			}
			if err := m.clearLocked(); err != nil {
				m.log.Warn("failed to clear clipboard", "error", err)
			}
		})
	}

	return done, nil
}

// ClearNow очищает буфер и отменяет отложенную очистку.
func (m *Manager) ClearNow() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	return m.clearLocked()
}

// Close отменяет таймер, не трогая буфер.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()
}

func (m *Manager) stopLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.done != nil {
		close(m.done)
		m.done = nil
	}
	m.copied = ""
}

func (m *Manager) clearLocked() error {
	if m.done == nil {
		return nil
	}
	defer m.stopLocked()

	current, err := m.board.ReadAll()
	if err == nil && current != m.copied {
		// Пользователь уже скопировал что-то другое
		return nil
	}
	if err := m.board.WriteAll(""); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	return nil
}
