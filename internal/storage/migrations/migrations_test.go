package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_AreEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(Migrations, ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	contents, err := fs.ReadFile(Migrations, "00001_create_sessions.sql")
	require.NoError(t, err)

	sql := string(contents)
	assert.True(t, strings.Contains(sql, "-- +goose Up"))
	assert.True(t, strings.Contains(sql, "-- +goose Down"))
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS sessions")
}
