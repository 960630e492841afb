package transfer

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/transfer"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Export(ctx context.Context, w io.Writer, passphrase string) (int, error) {
	args := m.Called(ctx, w, passphrase)
	if s, ok := args.Get(2).(string); ok {
		_, _ = io.WriteString(w, s)
	}
	return args.Int(0), args.Error(1)
}

func (m *MockService) ExportFile(ctx context.Context, dir, label, passphrase string) (string, int, error) {
	args := m.Called(ctx, dir, label, passphrase)
	return args.String(0), args.Int(1), args.Error(2)
}

func (m *MockService) Import(ctx context.Context, r io.Reader) ([]int64, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, string(data))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_export(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		csv := "name,username,password,email,note\n\"a\",\"b\",\"c\",\"\",\"\"\n"
		svc.On("Export", mock.Anything, mock.Anything, "admin").Return(1, nil, csv)

		h := NewHandler(svc, slog.Default(), nil)
		h.now = func() time.Time { return time.UnixMilli(1700000000000) }

		out, err := h.export(context.Background(), &exportInput{Passphrase: "admin"})

		require.NoError(t, err)
		assert.Equal(t, csv, string(out.Body))
		assert.Equal(t, 1, out.Count)
		assert.Equal(t, `attachment; filename="passwords_backup_1700000000000.csv"`, out.ContentDisposition)
		assert.Contains(t, out.ContentType, "text/csv")
	})

	t.Run("WrongPassphrase", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Export", mock.Anything, mock.Anything, "nope").Return(0, access.ErrWrongPassphrase, nil)

		out, err := NewHandler(svc, slog.Default(), nil).export(context.Background(), &exportInput{Passphrase: "nope"})

		assert.Nil(t, out)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}

func TestHandler_importCSV(t *testing.T) {
	body := "title,username,password\nGitHub,alice,pw\n"

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Import", mock.Anything, body).Return([]int64{4}, nil)

		out, err := NewHandler(svc, slog.Default(), nil).importCSV(context.Background(), &importInput{RawBody: []byte(body)})

		require.NoError(t, err)
		assert.Equal(t, []int64{4}, out.Body.IDs)
		assert.Equal(t, 1, out.Body.Count)
	})

	t.Run("Rejected", func(t *testing.T) {
		svc := new(MockService)
		rejected := &transfer.ImportError{Lines: []string{"row 1: username is required"}}
		svc.On("Import", mock.Anything, body).Return(nil, rejected)

		_, err := NewHandler(svc, slog.Default(), nil).importCSV(context.Background(), &importInput{RawBody: []byte(body)})

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
		var model *huma.ErrorModel
		require.ErrorAs(t, err, &model)
		require.Len(t, model.Errors, 1)
		assert.Equal(t, "row 1: username is required", model.Errors[0].Message)
	})
}
