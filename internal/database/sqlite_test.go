package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "omnichat.db")

	db, err := InitDB(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	_, err = db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", "installed_at", "2026-01-01T00:00:00Z")
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow("SELECT value FROM settings WHERE key = ?", "installed_at").Scan(&value))
	assert.Equal(t, "2026-01-01T00:00:00Z", value)
}

func TestInitDB_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omnichat.db")

	first, err := InitDB(path)
	require.NoError(t, err)
	_, err = first.Exec("INSERT INTO settings (key, value) VALUES ('license_status', 'active')")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Migrating an up-to-date database must be a no-op and keep the data.
	second, err := InitDB(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, second.Close()) }()

	var status string
	require.NoError(t, second.QueryRow("SELECT value FROM settings WHERE key = 'license_status'").Scan(&status))
	assert.Equal(t, "active", status)
}
