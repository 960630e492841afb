package auth

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"passkeeper/internal/app/client"
	"passkeeper/internal/app/client/config"
	common "passkeeper/internal/config"
)

var registerOnce sync.Once

// linePrompter отдает заранее заданные ответы по порядку
type linePrompter struct {
	answers []string
}

func (p *linePrompter) Secret(string) (string, error) {
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func newApp(t *testing.T) *client.App {
	t.Helper()

	cfg := &config.Config{
		Common: common.Common{
			Env:     common.EnvLocal,
			Storage: common.Storage{Driver: common.DriverMemory},
		},
		ExportDir:   t.TempDir(),
		ExportLabel: "passwords_backup",
	}
	app := client.New(cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	t.Cleanup(app.Shutdown)
	return app
}

func execute(t *testing.T, app *client.App, args ...string) (string, error) {
	t.Helper()

	registerOnce.Do(func() {
		color.NoColor = true
		AuthCmd.SilenceUsage = true
		AuthCmd.SilenceErrors = true
		AuthCmd.AddCommand(StatusCmd, ChangePasswordCmd)
	})

	var buf bytes.Buffer
	AuthCmd.SetOut(&buf)
	AuthCmd.SetErr(&buf)
	AuthCmd.SetArgs(args)

	err := AuthCmd.ExecuteContext(client.WithApp(context.Background(), app))
	return buf.String(), err
}

func TestStatus_SkipsGate(t *testing.T) {
	assert.Equal(t, "true", StatusCmd.Annotations[client.SkipGateAnnotation])
}

func TestStatus_FirstRun(t *testing.T) {
	app := newApp(t)

	out, err := execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "первый запуск")
	assert.Contains(t, out, "plain")
	assert.Contains(t, out, "заблокированы")
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	app := newApp(t)
	require.NoError(t, app.Setup(ctx, "1234", "1234"))

	app.SetPrompter(&linePrompter{answers: []string{"wrong", "5678", "5678"}})
	_, err := execute(t, app, "change-password")
	assert.ErrorContains(t, err, "текущий пароль неверен")

	app.SetPrompter(&linePrompter{answers: []string{"1234", "5678", "5678"}})
	out, err := execute(t, app, "change-password")
	require.NoError(t, err)
	assert.Contains(t, out, "Пароль доступа изменен")

	ok, err := app.Gate().Verify(ctx, "5678")
	require.NoError(t, err)
	assert.True(t, ok)

	out, err = execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "пароль задан")
	assert.Contains(t, out, "Записей:")
}
