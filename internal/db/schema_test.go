package db

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectExec("CREATE TABLE IF NOT EXISTS feedback").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mockPool.ExpectExec("CREATE INDEX IF NOT EXISTS feedback_created_at_idx").
		WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))

	require.NoError(t, EnsureSchema(context.Background(), mockPool))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestEnsureSchema_StopsOnError(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectExec("CREATE TABLE IF NOT EXISTS feedback").
		WillReturnError(errors.New("permission denied for schema public"))

	err = EnsureSchema(context.Background(), mockPool)
	assert.ErrorContains(t, err, "permission denied")
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestNew_InvalidAddr(t *testing.T) {
	_, err := New("postgres://%zz", 10, 0)
	assert.Error(t, err)
}
