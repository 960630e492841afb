package access

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"passkeeper/internal/app/server/api/http/middleware/auth"
	"passkeeper/internal/domain/access"
)

type MockGate struct {
	mock.Mock
}

func (m *MockGate) State(ctx context.Context) (access.State, error) {
	args := m.Called(ctx)
	return args.Get(0).(access.State), args.Error(1)
}

func (m *MockGate) IsFirstTime(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockGate) StoredScheme(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGate) SetInitial(ctx context.Context, value string) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

func (m *MockGate) Verify(ctx context.Context, attempt string) (bool, error) {
	args := m.Called(ctx, attempt)
	return args.Bool(0), args.Error(1)
}

func (m *MockGate) Change(ctx context.Context, oldAttempt, newValue, confirm string) error {
	args := m.Called(ctx, oldAttempt, newValue, confirm)
	return args.Error(0)
}

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Create(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSessions) Validate(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newTestHandler(gate *MockGate, sessions *MockSessions) *Handler {
	return NewHandler(gate, sessions, slog.Default(), huma.Middlewares{}, huma.Middlewares{})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_state(t *testing.T) {
	gate := new(MockGate)
	gate.On("State", mock.Anything).Return(access.StateFirstTime, nil)

	out, err := newTestHandler(gate, nil).state(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, access.StateFirstTime, out.Body.State)
}

func TestHandler_setup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gate := new(MockGate)
		sessions := new(MockSessions)
		gate.On("SetInitial", mock.Anything, "s3cret").Return(nil)
		sessions.On("Create", mock.Anything).Return("token-1", nil)

		input := &setupInput{}
		input.Body.Passphrase = "s3cret"
		input.Body.Confirm = "s3cret"

		out, err := newTestHandler(gate, sessions).setup(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "token-1", out.Body.Token)
		gate.AssertExpectations(t)
	})

	t.Run("Mismatch", func(t *testing.T) {
		gate := new(MockGate)
		input := &setupInput{}
		input.Body.Passphrase = "one"
		input.Body.Confirm = "two"

		_, err := newTestHandler(gate, nil).setup(context.Background(), input)

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
		gate.AssertNotCalled(t, "SetInitial", mock.Anything, mock.Anything)
	})

	t.Run("AlreadyInitialized", func(t *testing.T) {
		gate := new(MockGate)
		gate.On("SetInitial", mock.Anything, "x").Return(access.ErrAlreadyInitialized)
		input := &setupInput{}
		input.Body.Passphrase = "x"
		input.Body.Confirm = "x"

		_, err := newTestHandler(gate, nil).setup(context.Background(), input)

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
	})
}

func TestHandler_unlock(t *testing.T) {
	tests := []struct {
		name       string
		ok         bool
		verifyErr  error
		wantStatus int
	}{
		{name: "Correct", ok: true},
		{name: "Wrong", ok: false, wantStatus: http.StatusUnauthorized},
		{name: "StorageDown", verifyErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := new(MockGate)
			sessions := new(MockSessions)
			gate.On("Verify", mock.Anything, "admin").Return(tt.ok, tt.verifyErr)
			sessions.On("Create", mock.Anything).Return("token-2", nil)

			input := &unlockInput{}
			input.Body.Passphrase = "admin"

			out, err := newTestHandler(gate, sessions).unlock(context.Background(), input)

			if tt.wantStatus != 0 {
				assert.Nil(t, out)
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
				sessions.AssertNotCalled(t, "Create", mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-2", out.Body.Token)
		})
	}
}

func TestHandler_unlock_SessionFailure(t *testing.T) {
	gate := new(MockGate)
	sessions := new(MockSessions)
	gate.On("Verify", mock.Anything, "admin").Return(true, nil)
	sessions.On("Create", mock.Anything).Return("", errors.New("no entropy"))

	input := &unlockInput{}
	input.Body.Passphrase = "admin"

	_, err := newTestHandler(gate, sessions).unlock(context.Background(), input)

	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}

func TestHandler_change(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gate := new(MockGate)
		gate.On("Change", mock.Anything, "old", "new", "new").Return(nil)
		input := &changeInput{}
		input.Body.Old = "old"
		input.Body.New = "new"
		input.Body.Confirm = "new"

		out, err := newTestHandler(gate, nil).change(auth.WithSession(context.Background()), input)

		require.NoError(t, err)
		assert.Equal(t, "Ok", out.Body.Status)
	})

	t.Run("WrongOld", func(t *testing.T) {
		gate := new(MockGate)
		gate.On("Change", mock.Anything, "bad", "new", "new").Return(access.ErrWrongOldPassphrase)
		input := &changeInput{}
		input.Body.Old = "bad"
		input.Body.New = "new"
		input.Body.Confirm = "new"

		_, err := newTestHandler(gate, nil).change(auth.WithSession(context.Background()), input)

		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("NoSession", func(t *testing.T) {
		gate := new(MockGate)
		input := &changeInput{}
		input.Body.Old = "old"
		input.Body.New = "new"
		input.Body.Confirm = "new"

		_, err := newTestHandler(gate, nil).change(context.Background(), input)

		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
		gate.AssertNotCalled(t, "Change", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
