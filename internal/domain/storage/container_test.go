package storage

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Ping(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectPing()
	mockPool.ExpectPing().WillReturnError(errors.New("connection reset"))

	c := NewContainer(mockPool)
	require.NotNil(t, c.Feedback)

	assert.NoError(t, c.Ping(context.Background()))
	assert.Error(t, c.Ping(context.Background()))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestContainer_PingWithoutDB(t *testing.T) {
	c := &Container{}
	assert.Error(t, c.Ping(context.Background()))
}
