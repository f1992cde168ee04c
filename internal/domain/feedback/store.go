package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE check_violation
const checkViolation = "23514"

// Querier is the subset of *pgxpool.Pool the repository needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db Querier
}

func NewRepository(db Querier) Store {
	return &Repository{db: db}
}

// Create inserts a feedback row and returns the id assigned by the database.
func (r *Repository) Create(ctx context.Context, in *NewFeedback) (int64, error) {
	query := `
        INSERT INTO feedback (student_name, course_code, comments, rating)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	var f Feedback
	err := r.db.QueryRow(ctx, query,
		in.StudentName,
		in.CourseCode,
		in.Comments,
		in.Rating,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == checkViolation {
			return 0, fmt.Errorf("insert feedback: %w", ErrRatingOutOfRange)
		}
		return 0, fmt.Errorf("insert feedback: %w", err)
	}
	return f.ID, nil
}

// ListAll returns every feedback row, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]Feedback, error) {
	query := `
        SELECT id, student_name, course_code, comments, rating, created_at
        FROM feedback
        ORDER BY created_at DESC, id DESC
    `
	var list []Feedback
	if err := pgxscan.Select(ctx, r.db, &list, query); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	if list == nil {
		list = []Feedback{}
	}
	return list, nil
}

// DeleteByID removes one row and reports how many rows matched.
func (r *Repository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete feedback %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) AggregateStats(ctx context.Context) (*Stats, error) {
	query := `
        SELECT
            COUNT(*),
            COALESCE(ROUND(AVG(rating), 2), 0)::float8,
            COALESCE(MAX(rating), 0),
            COALESCE(MIN(rating), 0)
        FROM feedback
    `
	var (
		total   int64
		average float64
		high    int
		low     int
		stats   Stats
	)
	if err := r.db.QueryRow(ctx, query).Scan(&total, &average, &high, &low); err != nil {
		return nil, fmt.Errorf("aggregate feedback stats: %w", err)
	}

	stats.TotalFeedback = total
	if total > 0 {
		stats.AverageRating = &average
		stats.HighestRating = &high
		stats.LowestRating = &low
	}
	return &stats, nil
}

// CourseBreakdown groups ratings by course, best average first.
func (r *Repository) CourseBreakdown(ctx context.Context) ([]CourseStats, error) {
	query := `
        SELECT
            course_code,
            COUNT(*) AS count,
            ROUND(AVG(rating), 2)::float8 AS average_rating,
            MAX(rating) AS highest_rating,
            MIN(rating) AS lowest_rating
        FROM feedback
        GROUP BY course_code
        ORDER BY average_rating DESC, course_code
    `
	var courses []CourseStats
	if err := pgxscan.Select(ctx, r.db, &courses, query); err != nil {
		return nil, fmt.Errorf("course breakdown: %w", err)
	}
	if courses == nil {
		courses = []CourseStats{}
	}
	return courses, nil
}
