package feedback

import (
	"context"
	"errors"
	"time"
)

var ErrRatingOutOfRange = errors.New("Rating must be between 1 and 5")

const (
	MinRating = 1
	MaxRating = 5
)

type Feedback struct {
	ID          int64     `json:"id" db:"id"`
	StudentName string    `json:"studentName" db:"student_name"`
	CourseCode  string    `json:"courseCode" db:"course_code"`
	Comments    string    `json:"comments" db:"comments"`
	Rating      int       `json:"rating" db:"rating"` // 1-5
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// NewFeedback is a record before the store assigns its id and timestamp.
type NewFeedback struct {
	StudentName string
	CourseCode  string
	Comments    string
	Rating      int
}

// Stats is the store-wide aggregate. Average, highest and lowest are nil
// when there is no feedback.
type Stats struct {
	TotalFeedback int64    `json:"totalFeedback"`
	AverageRating *float64 `json:"averageRating"`
	HighestRating *int     `json:"highestRating"`
	LowestRating  *int     `json:"lowestRating"`
}

type CourseStats struct {
	CourseCode    string  `json:"courseCode" db:"course_code"`
	Count         int64   `json:"count" db:"count"`
	AverageRating float64 `json:"averageRating" db:"average_rating"`
	HighestRating int     `json:"highestRating" db:"highest_rating"`
	LowestRating  int     `json:"lowestRating" db:"lowest_rating"`
}

//go:generate mockgen -source=types.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	Create(ctx context.Context, in *NewFeedback) (int64, error)
	ListAll(ctx context.Context) ([]Feedback, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	AggregateStats(ctx context.Context) (*Stats, error)
	CourseBreakdown(ctx context.Context) ([]CourseStats, error)
}
