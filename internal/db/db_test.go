package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesParentDirAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pulsr.db")

	conn, err := OpenDB(path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)

	var name string
	err = conn.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'profiles'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "profiles", name)
}

func TestOpenDB_AppliesConnectionPragmas(t *testing.T) {
	conn, err := OpenDB(filepath.Join(t.TempDir(), "pulsr.db"))
	require.NoError(t, err)
	defer conn.Close()

	var journalMode string
	require.NoError(t, conn.QueryRow(`PRAGMA journal_mode`).Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var fk int
	require.NoError(t, conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)

	var busy int
	require.NoError(t, conn.QueryRow(`PRAGMA busy_timeout`).Scan(&busy))
	assert.Equal(t, 5000, busy)
}
