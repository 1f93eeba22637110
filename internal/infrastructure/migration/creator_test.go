package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"add clients table", "add_clients_table"},
		{"Add-Clients-Table", "add_clients_table"},
		{"add__line__items", "add_line_items"},
		{"Invoices v2", "invoices_v2"},
		{"  padded  ", "padded"},
		{"weird!@#chars", "weird_chars"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.input))
		})
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()

	pair, err := Create(dir, "add clients table")
	require.NoError(t, err)

	assert.Len(t, pair.Version, 14)
	assert.True(t, strings.HasSuffix(pair.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(pair.DownPath, ".down.sql"))

	upBase := strings.TrimSuffix(filepath.Base(pair.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(pair.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)

	up, err := os.ReadFile(pair.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "add clients table")

	down, err := os.ReadFile(pair.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "revert")
}

func TestCreateMakesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := Create(dir, "init")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestList(t *testing.T) {
	t.Run("returns up migrations sorted by version", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"000002_add_invoices.up.sql",
			"000002_add_invoices.down.sql",
			"000001_add_users.up.sql",
			"000001_add_users.down.sql",
			"README.md",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0o644))
		}

		names, err := List(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"000001_add_users", "000002_add_invoices"}, names)
	})

	t.Run("treats a missing directory as empty", func(t *testing.T) {
		names, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("skips directories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_init.up.sql"), []byte("-- sql"), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.up.sql"), 0o755))

		names, err := List(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"000001_init"}, names)
	})
}
