package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const createFeedbackTable = `
    CREATE TABLE IF NOT EXISTS feedback (
        id           BIGSERIAL PRIMARY KEY,
        student_name VARCHAR(255) NOT NULL,
        course_code  VARCHAR(50)  NOT NULL,
        comments     TEXT         NOT NULL,
        rating       INTEGER      NOT NULL CONSTRAINT feedback_rating_check CHECK (rating >= 1 AND rating <= 5),
        created_at   TIMESTAMPTZ  NOT NULL DEFAULT now()
    )
`

const createFeedbackCreatedAtIndex = `
    CREATE INDEX IF NOT EXISTS feedback_created_at_idx ON feedback (created_at DESC, id DESC)
`

type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EnsureSchema creates the feedback table and its listing index when they
// do not exist yet. It is safe to run on every boot.
func EnsureSchema(ctx context.Context, db Execer) error {
	for _, stmt := range []string{createFeedbackTable, createFeedbackCreatedAtIndex} {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
