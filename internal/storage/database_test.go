package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_InitializesSchema(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"appointments", "availability_blocks"} {
		var name string
		err := db.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestNewDatabase_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(path)
	require.NoError(t, err)

	_, err = db.DB().Exec(
		`INSERT INTO appointments (id, day, patient_name, reason, start_time, end_time)
		 VALUES ('a1', '2026-03-16', 'Test Patient', '', '2026-03-16T09:00:00Z', '2026-03-16T09:30:00Z')`,
	)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Schema-on-open must not clobber existing rows.
	db, err = NewDatabase(path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.DB().QueryRow("SELECT COUNT(*) FROM appointments").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestBeginTx(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	tx, err := db.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
}
