package main

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"coursefeedback/internal/config"
	"coursefeedback/internal/domain/feedback"
	"coursefeedback/internal/domain/storage"
	"coursefeedback/internal/ratelimiter"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T, store feedback.Store) (*application, pgxmock.PgxPoolIface) {
	t.Helper()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	container := storage.NewContainer(mockPool)
	container.Feedback = store

	return &application{
		config: config.Config{
			Env:            "test",
			AllowedOrigins: []string{"*"},
		},
		store:       container,
		logger:      zap.NewNop().Sugar(),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(200, 5*time.Second),
	}, mockPool
}

func executeRequest(app *application, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}

// memStore is an in-memory feedback.Store with the same contract as the
// postgres repository, including the rating CHECK.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	rows   []feedback.Feedback
}

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) Create(_ context.Context, in *feedback.NewFeedback) (int64, error) {
	if in.Rating < feedback.MinRating || in.Rating > feedback.MaxRating {
		return 0, feedback.ErrRatingOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.rows = append(s.rows, feedback.Feedback{
		ID:          s.nextID,
		StudentName: in.StudentName,
		CourseCode:  in.CourseCode,
		Comments:    in.Comments,
		Rating:      in.Rating,
		CreatedAt:   time.Now(),
	})
	return s.nextID, nil
}

func (s *memStore) ListAll(context.Context) ([]feedback.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]feedback.Feedback, len(s.rows))
	copy(out, s.rows)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memStore) DeleteByID(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.rows {
		if f.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memStore) AggregateStats(context.Context) (*feedback.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &feedback.Stats{TotalFeedback: int64(len(s.rows))}
	if len(s.rows) == 0 {
		return stats, nil
	}

	high, low, sum := s.rows[0].Rating, s.rows[0].Rating, 0
	for _, f := range s.rows {
		sum += f.Rating
		high = max(high, f.Rating)
		low = min(low, f.Rating)
	}
	avg := round2(float64(sum) / float64(len(s.rows)))
	stats.AverageRating = &avg
	stats.HighestRating = &high
	stats.LowestRating = &low
	return stats, nil
}

func (s *memStore) CourseBreakdown(context.Context) ([]feedback.CourseStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byCourse := map[string]*feedback.CourseStats{}
	sums := map[string]int{}
	for _, f := range s.rows {
		c, ok := byCourse[f.CourseCode]
		if !ok {
			c = &feedback.CourseStats{CourseCode: f.CourseCode, HighestRating: f.Rating, LowestRating: f.Rating}
			byCourse[f.CourseCode] = c
		}
		c.Count++
		sums[f.CourseCode] += f.Rating
		c.HighestRating = max(c.HighestRating, f.Rating)
		c.LowestRating = min(c.LowestRating, f.Rating)
	}

	out := make([]feedback.CourseStats, 0, len(byCourse))
	for code, c := range byCourse {
		c.AverageRating = round2(float64(sums[code]) / float64(c.Count))
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageRating != out[j].AverageRating {
			return out[i].AverageRating > out[j].AverageRating
		}
		return out[i].CourseCode < out[j].CourseCode
	})
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
