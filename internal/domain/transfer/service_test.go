package transfer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/errs"
	"passkeeper/internal/domain/record"
)

type MockRecords struct {
	mock.Mock
}

func (m *MockRecords) Add(ctx context.Context, fields record.NewCredential) (int64, error) {
	args := m.Called(ctx, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecords) AddBatch(ctx context.Context, items []record.NewCredential) ([]int64, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRecords) List(ctx context.Context) ([]record.Credential, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Credential), args.Error(1)
}

func (m *MockRecords) Search(ctx context.Context, query string) ([]record.Credential, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]record.Credential), args.Error(1)
}

func (m *MockRecords) Get(ctx context.Context, id int64) (*record.Credential, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Credential), args.Error(1)
}

func (m *MockRecords) Update(ctx context.Context, id int64, fields record.NewCredential) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockRecords) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

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
	return m.Called(ctx, value).Error(0)
}

func (m *MockGate) Verify(ctx context.Context, attempt string) (bool, error) {
	args := m.Called(ctx, attempt)
	return args.Bool(0), args.Error(1)
}

func (m *MockGate) Change(ctx context.Context, oldAttempt, newValue, confirm string) error {
	return m.Called(ctx, oldAttempt, newValue, confirm).Error(0)
}

func TestService_Export(t *testing.T) {
	records := new(MockRecords)
	gate := new(MockGate)
	service := NewService(records, gate, slog.Default())

	gate.On("Verify", mock.Anything, "1234").Return(true, nil)
	records.On("List", mock.Anything).Return([]record.Credential{
		{ID: 1, Name: "Bank", Username: "alice", Password: "secret"},
	}, nil)

	var buf bytes.Buffer
	n, err := service.Export(context.Background(), &buf, "1234")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), `"Bank","alice","secret","",""`)

	gate.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestService_Export_WrongPassphrase(t *testing.T) {
	records := new(MockRecords)
	gate := new(MockGate)
	service := NewService(records, gate, slog.Default())

	gate.On("Verify", mock.Anything, "nope").Return(false, nil)

	var buf bytes.Buffer
	_, err := service.Export(context.Background(), &buf, "nope")
	assert.ErrorIs(t, err, access.ErrWrongPassphrase)
	assert.Empty(t, buf.String())
	records.AssertNotCalled(t, "List", mock.Anything)
}

func TestService_ExportFile(t *testing.T) {
	records := new(MockRecords)
	gate := new(MockGate)
	service := NewService(records, gate, slog.Default())
	service.now = func() time.Time { return time.UnixMilli(1700000000000) }

	gate.On("Verify", mock.Anything, "admin").Return(true, nil)
	records.On("List", mock.Anything).Return([]record.Credential{}, nil)

	dir := filepath.Join(t.TempDir(), "exports")
	path, n, err := service.ExportFile(context.Background(), dir, "backup", "admin")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, filepath.Join(dir, "backup_1700000000000.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,username,password,email,note\n", string(data))
}

func TestService_Import(t *testing.T) {
	records := new(MockRecords)
	service := NewService(records, new(MockGate), slog.Default())

	input := "title,username,password\nBank,alice,secret\nMail,bob,x\n"
	records.On("AddBatch", mock.Anything, []record.NewCredential{
		{Name: "Bank", Username: "alice", Password: "secret"},
		{Name: "Mail", Username: "bob", Password: "x"},
	}).Return([]int64{1, 2}, nil)

	ids, err := service.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
	records.AssertExpectations(t)
}

func TestService_Import_InvalidFileStoresNothing(t *testing.T) {
	records := new(MockRecords)
	service := NewService(records, new(MockGate), slog.Default())

	_, err := service.Import(context.Background(), strings.NewReader("title,username,password\nBank,,secret\n"))

	var importErr *ImportError
	assert.ErrorAs(t, err, &importErr)
	records.AssertNotCalled(t, "AddBatch", mock.Anything, mock.Anything)
}

func TestService_Import_StorageError(t *testing.T) {
	records := new(MockRecords)
	service := NewService(records, new(MockGate), slog.Default())

	records.On("AddBatch", mock.Anything, mock.Anything).
		Return(nil, errors.Join(errs.ErrUnavailable, errors.New("locked")))

	_, err := service.Import(context.Background(), strings.NewReader("title,username,password\nBank,alice,secret\n"))
	assert.ErrorIs(t, err, errs.ErrUnavailable)
}
