package storage

import (
	"context"
	"errors"

	"coursefeedback/internal/domain/feedback"
)

// DB is satisfied by *pgxpool.Pool.
type DB interface {
	feedback.Querier
	Ping(ctx context.Context) error
}

type Container struct {
	db       DB
	Feedback feedback.Store
}

func NewContainer(db DB) *Container {
	return &Container{
		db:       db,
		Feedback: feedback.NewRepository(db),
	}
}

// Ping checks that the backing store is reachable.
func (c *Container) Ping(ctx context.Context) error {
	if c.db == nil {
		return errors.New("storage container db is nil (did you build it with NewContainer?)")
	}
	return c.db.Ping(ctx)
}
