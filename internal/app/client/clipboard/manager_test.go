package clipboard

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakeBoard struct {
	mu       sync.Mutex
	text     string
	writeErr error
}

func (b *fakeBoard) ReadAll() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text, nil
}

func (b *fakeBoard) WriteAll(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return b.writeErr
	}
	b.text = text
	return nil
}

func (b *fakeBoard) get() string {
	text, _ := b.ReadAll()
	return text
}

func TestManager_CopyAutoClear(t *testing.T) {
	board := &fakeBoard{}
	m := NewManagerWithBoard(board, slog.Default())
	defer m.Close()

	done, err := m.Copy("secret", 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "secret", board.get())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("clipboard was not cleared")
	}
	assert.Empty(t, board.get())
}

func TestManager_KeepsForeignContent(t *testing.T) {
	board := &fakeBoard{}
	m := NewManagerWithBoard(board, slog.Default())
	defer m.Close()

	done, err := m.Copy("secret", 20*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, board.WriteAll("something else"))
	<-done

	assert.Equal(t, "something else", board.get())
}

func TestManager_ClearNow(t *testing.T) {
	board := &fakeBoard{}
	m := NewManagerWithBoard(board, slog.Default())
	defer m.Close()

	done, err := m.Copy("secret", time.Minute)
	require.NoError(t, err)

	require.NoError(t, m.ClearNow())
	assert.Empty(t, board.get())

	_, open := <-done
	assert.False(t, open)
}

func TestManager_MultipleCopies(t *testing.T) {
	board := &fakeBoard{}
	m := NewManagerWithBoard(board, slog.Default())
	defer m.Close()

	var first <-chan struct{}
	for i := 0; i < 10; i++ {
		done, err := m.Copy("secret", time.Minute)
		require.NoError(t, err)
		if first == nil {
			first = done
		}
	}

	// Прежнее ожидание завершается при новом копировании
	_, open := <-first
	assert.False(t, open)
	assert.Equal(t, "secret", board.get())
}

func TestManager_WriteError(t *testing.T) {
	board := &fakeBoard{writeErr: errors.New("no display")}
	m := NewManagerWithBoard(board, slog.Default())

	_, err := m.Copy("secret", time.Minute)
	assert.ErrorContains(t, err, "no display")
}
