package database_test

import (
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/storefront/database"
)

func TestMain(m *testing.M) {
	if err := database.ConnectAndMigrate(); err != nil {
		panic(err)
	}
	code := m.Run()
	_ = database.ShutdownDatabase()
	os.Exit(code)
}

func TestTxCommitsOnSuccess(t *testing.T) {
	orderID := uuid.New().String()
	err := database.Tx(func(tx *sqlx.Tx) error {
		_, execErr := tx.Exec(`
			INSERT INTO orders (id, user_id, branch_id, status, total)
			VALUES ($1, $2, $3, $4, $5)`,
			orderID, uuid.New().String(), uuid.New().String(), "pending", 150.0)
		return execErr
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.Storefront.Get(&count, `SELECT COUNT(*) FROM orders WHERE id = $1`, orderID))
	assert.Equal(t, 1, count)
}

func TestTxReturnsFnErrorAndRollsBack(t *testing.T) {
	errOrderRejected := errors.New("order rejected")

	orderID := uuid.New().String()
	err := database.Tx(func(tx *sqlx.Tx) error {
		_, execErr := tx.Exec(`
			INSERT INTO orders (id, user_id, branch_id, status, total)
			VALUES ($1, $2, $3, $4, $5)`,
			orderID, uuid.New().String(), uuid.New().String(), "pending", 99.0)
		require.NoError(t, execErr)
		return errOrderRejected
	})
	require.ErrorIs(t, err, errOrderRejected)

	var count int
	require.NoError(t, database.Storefront.Get(&count, `SELECT COUNT(*) FROM orders WHERE id = $1`, orderID))
	assert.Equal(t, 0, count, "rolled-back insert must not be visible")
}
