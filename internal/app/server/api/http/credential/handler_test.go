package credential

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"passkeeper/internal/domain/errs"
	"passkeeper/internal/domain/record"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Add(ctx context.Context, fields record.NewCredential) (int64, error) {
	args := m.Called(ctx, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) AddBatch(ctx context.Context, items []record.NewCredential) ([]int64, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]record.Credential, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Credential), args.Error(1)
}

func (m *MockService) Search(ctx context.Context, query string) ([]record.Credential, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Credential), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int64) (*record.Credential, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Credential), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int64, fields record.NewCredential) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func sample(id int64, name string) record.Credential {
	return record.Credential{
		ID:        id,
		Name:      name,
		Username:  "alice",
		Password:  "pw",
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestHandler_list(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return([]record.Credential{sample(1, "GitHub"), sample(2, "Mail")}, nil)

		out, err := NewHandler(svc, slog.Default(), nil).list(context.Background(), &listInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, out.Body.Count)
		svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("Query", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Search", mock.Anything, "git").Return([]record.Credential{sample(1, "GitHub")}, nil)

		out, err := NewHandler(svc, slog.Default(), nil).list(context.Background(), &listInput{Query: "git"})

		require.NoError(t, err)
		assert.Equal(t, 1, out.Body.Count)
		assert.Equal(t, "GitHub", out.Body.Credentials[0].Name)
	})

	t.Run("EmptyIsNotNull", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return(nil, nil)

		out, err := NewHandler(svc, slog.Default(), nil).list(context.Background(), &listInput{})

		require.NoError(t, err)
		assert.NotNil(t, out.Body.Credentials)
		assert.Zero(t, out.Body.Count)
	})

	t.Run("Unavailable", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return(nil, fmt.Errorf("list: %w", errs.ErrUnavailable))

		_, err := NewHandler(svc, slog.Default(), nil).list(context.Background(), &listInput{})

		assert.Equal(t, http.StatusServiceUnavailable, statusOf(t, err))
	})
}

func TestHandler_create(t *testing.T) {
	fields := record.NewCredential{Name: "GitHub", Username: "alice", Password: "pw"}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Add", mock.Anything, fields).Return(int64(7), nil)

		out, err := NewHandler(svc, slog.Default(), nil).create(context.Background(), &createInput{Body: fields})

		require.NoError(t, err)
		assert.Equal(t, int64(7), out.Body.ID)
		assert.Equal(t, "Ok", out.Body.Status)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Add", mock.Anything, record.NewCredential{}).Return(int64(0), record.ErrNameRequired)

		_, err := NewHandler(svc, slog.Default(), nil).create(context.Background(), &createInput{})

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
	})
}

func TestHandler_get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := new(MockService)
		cred := sample(3, "Bank")
		svc.On("Get", mock.Anything, int64(3)).Return(&cred, nil)

		out, err := NewHandler(svc, slog.Default(), nil).get(context.Background(), &idInput{ID: 3})

		require.NoError(t, err)
		assert.Equal(t, cred, out.Body)
	})

	t.Run("Missing", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Get", mock.Anything, int64(9)).Return(nil, fmt.Errorf("get 9: %w", record.ErrNotFound))

		_, err := NewHandler(svc, slog.Default(), nil).get(context.Background(), &idInput{ID: 9})

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestHandler_update(t *testing.T) {
	fields := record.NewCredential{Name: "Bank", Username: "bob", Password: "new"}

	svc := new(MockService)
	svc.On("Update", mock.Anything, int64(3), fields).Return(nil)
	svc.On("Update", mock.Anything, int64(4), fields).Return(record.ErrNotFound)

	h := NewHandler(svc, slog.Default(), nil)

	out, err := h.update(context.Background(), &updateInput{ID: 3, Body: fields})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)

	_, err = h.update(context.Background(), &updateInput{ID: 4, Body: fields})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestHandler_delete(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, int64(5)).Return(nil)
	svc.On("Delete", mock.Anything, int64(6)).Return(errors.New("disk on fire"))

	h := NewHandler(svc, slog.Default(), nil)

	_, err := h.delete(context.Background(), &idInput{ID: 5})
	require.NoError(t, err)

	_, err = h.delete(context.Background(), &idInput{ID: 6})
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}
