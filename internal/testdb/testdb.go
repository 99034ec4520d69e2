// Package testdb opens a throwaway sqlite database with the service schema, wrapped
// in the same connection type the repositories use against postgres.
package testdb

import (
	_ "embed"
	"fmt"
	"marquee/infras/postgres"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

//go:embed schema.sql
var schema string

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// New returns a connection to a fresh database file under t.TempDir. Read and Write
// share one pool, closed when the test ends.
func New(t testing.TB) *postgres.Connection {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_time_format=sqlite",
		filepath.Join(t.TempDir(), "marquee.db"),
	)

	db, err := sqlx.Open(driverName, dsn)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	_, err = db.Exec(schema)
	require.NoError(t, err)

	return &postgres.Connection{Read: db, Write: db}
}
