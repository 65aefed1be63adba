package database

import (
	"io"
	"log"
	"testing"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T) *MigrationRunner {
	t.Helper()
	r, err := NewMigrationRunner(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func tableExists(t *testing.T, r *MigrationRunner, name string) bool {
	t.Helper()
	var n int
	require.NoError(t, r.DB().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n))
	return n == 1
}

func TestMigrationRunner_UpAndDown(t *testing.T) {
	r := newRunner(t)

	status, err := r.Version()
	require.NoError(t, err)
	assert.False(t, status.Applied)

	require.NoError(t, r.Up())
	assert.True(t, tableExists(t, r, "orders"))

	status, err = r.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), status.Version)
	assert.False(t, status.Dirty)

	// second run is a no-op
	require.NoError(t, r.Up())

	require.NoError(t, r.Steps(-1))
	status, err = r.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), status.Version)

	require.NoError(t, r.Down())
	assert.False(t, tableExists(t, r, "orders"))
}

func TestMigrationRunner_InsertAfterUp(t *testing.T) {
	r := newRunner(t)
	require.NoError(t, r.Up())

	_, err := r.DB().Exec(`INSERT INTO orders (id, email, business_name) VALUES ('o-1', 'a@b.test', 'Acme')`)
	require.NoError(t, err)

	var status string
	require.NoError(t, r.DB().QueryRow(`SELECT status FROM orders WHERE id = 'o-1'`).Scan(&status))
	assert.Equal(t, "BUILDING", status)
}

func TestMigrationRunner_Force(t *testing.T) {
	r := newRunner(t)
	require.NoError(t, r.Force(1))

	status, err := r.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), status.Version)
}

func TestNewMigrationRunner_Errors(t *testing.T) {
	_, err := NewMigrationRunner(config.DatabaseConfig{}, nil)
	assert.Error(t, err)

	_, err = NewMigrationRunner(config.DatabaseConfig{Driver: "mysql"}, nil)
	assert.Error(t, err)
}
