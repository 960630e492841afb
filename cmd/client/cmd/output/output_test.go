package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passkeeper/internal/domain/record"
)

func init() {
	color.NoColor = true
}

func sample() []record.Credential {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []record.Credential{
		{ID: 1, Name: "GitHub", Username: "alice", Password: "pw1", Email: "a@x.io", CreatedAt: created},
		{ID: 2, Name: "Bank", Username: "bob", Password: "pw2", CreatedAt: created},
	}
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		contains []string
		excludes []string
	}{
		{
			name:     "Simple",
			format:   FormatSimple,
			contains: []string{"Найдено записей: 2", "1. GitHub (alice)", "ID: 2"},
			excludes: []string{"pw1"},
		},
		{
			name:     "Table",
			format:   FormatTable,
			contains: []string{"Название", "GitHub", "a@x.io", "Всего записей: 2"},
			excludes: []string{"pw2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, Credentials(&buf, tt.format, sample()))

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestCredentials_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Credentials(&buf, FormatJSON, sample()))

	var got []record.Credential
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, 2)

	buf.Reset()
	require.NoError(t, Credentials(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestCredentials_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Credentials(&buf, FormatTable, nil))

	assert.Equal(t, "Записи не найдены\n", buf.String())
}

func TestCredential_MasksPassword(t *testing.T) {
	c := sample()[0]

	var buf bytes.Buffer
	require.NoError(t, Credential(&buf, FormatSimple, &c, false))
	assert.NotContains(t, buf.String(), "pw1")
	assert.Contains(t, buf.String(), mask)

	buf.Reset()
	require.NoError(t, Credential(&buf, FormatSimple, &c, true))
	assert.Contains(t, buf.String(), "pw1")

	buf.Reset()
	require.NoError(t, Credential(&buf, FormatJSON, &c, false))
	assert.Contains(t, buf.String(), `"password": "********"`)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Пароль...", truncate("Пароль от почты", 9))
}
