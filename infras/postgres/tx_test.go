package postgres_test

import (
	"context"
	"errors"
	"marquee/infras/postgres"
	"marquee/internal/testdb"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func countCategories(t *testing.T, db *postgres.Connection) int {
	t.Helper()

	var count int
	require.NoError(t, db.Read.Get(&count, "SELECT COUNT(*) FROM categories"))

	return count
}

func insertCategory(tx *sqlx.Tx, kind string) error {
	_, err := tx.Exec("INSERT INTO categories (type) VALUES (?)", kind)

	return err
}

func TestTransactor_Run(t *testing.T) {
	errRejected := errors.New("rejected")

	tests := []struct {
		name       string
		fn         func(tx *sqlx.Tx) error
		wantStatus postgres.TxStatus
		wantErr    error
		wantRows   int
	}{
		{
			name: "every write is committed",
			fn: func(tx *sqlx.Tx) error {
				if err := insertCategory(tx, "Science"); err != nil {
					return err
				}

				return insertCategory(tx, "Art")
			},
			wantStatus: postgres.TxCommitted,
			wantRows:   2,
		},
		{
			name: "an error rolls back earlier writes",
			fn: func(tx *sqlx.Tx) error {
				if err := insertCategory(tx, "Science"); err != nil {
					return err
				}

				return errRejected
			},
			wantStatus: postgres.TxRolledBack,
			wantErr:    errRejected,
			wantRows:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testdb.New(t)

			result := postgres.NewTransactor(db).Run(context.Background(), tt.fn)

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantStatus == postgres.TxCommitted, result.Committed())

			if tt.wantErr != nil {
				assert.ErrorIs(t, result.Err, tt.wantErr)
			} else {
				assert.NoError(t, result.Err)
			}

			assert.Equal(t, tt.wantRows, countCategories(t, db))
		})
	}
}

func TestTransactor_RunPanicRollsBack(t *testing.T) {
	db := testdb.New(t)

	assert.PanicsWithValue(t, "boom", func() {
		postgres.NewTransactor(db).Run(context.Background(), func(tx *sqlx.Tx) error {
			if err := insertCategory(tx, "Science"); err != nil {
				return err
			}

			panic("boom")
		})
	})

	assert.Equal(t, 0, countCategories(t, db))
}

func TestTxStatus_String(t *testing.T) {
	assert.Equal(t, "committed", postgres.TxCommitted.String())
	assert.Equal(t, "rolled_back", postgres.TxRolledBack.String())
	assert.Equal(t, "unknown", postgres.TxStatus(0).String())
}

func TestConnection_CloseSharedPool(t *testing.T) {
	db, err := sqlx.Open("sqlite", "file:"+t.TempDir()+"/close.db")
	require.NoError(t, err)

	conn := &postgres.Connection{Read: db, Write: db}

	assert.NoError(t, conn.Close())
}
