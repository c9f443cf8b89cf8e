package config

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpenDB_SQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trips.db")

	db, err := OpenDB(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"trips", "admins", "goose_db_version"} {
		assert.True(t, tableExists(t, db, table), "table %s missing", table)
	}

	_, err = db.Exec(`INSERT INTO trips (name, phone, start_date, end_date, destination, created_at, status) VALUES ('a','b','c','d','e',0,'lost')`)
	assert.Error(t, err, "status check constraint should reject unknown values")
}

func TestOpenDB_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trips.db")

	db, err := OpenDB(ctx, DriverSQLite, path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO admins (username, password_hash) VALUES ('admin', 'x')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenDB(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpenDB_UnknownDriver(t *testing.T) {
	_, err := OpenDB(context.Background(), "oracle", "x")
	assert.Error(t, err)
}
