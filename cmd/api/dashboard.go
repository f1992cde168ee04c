package main

import (
	"net/http"

	"coursefeedback/internal/domain/feedback"
)

type CourseBreakdownResponse struct {
	CoursesReviewed int                    `json:"coursesReviewed"`
	Courses         []feedback.CourseStats `json:"courses"`
}

// dashboardStatsHandler godoc
//
//	@Summary		Feedback statistics
//	@Description	Total count plus average, highest and lowest rating over all feedback. Rating fields are null when there is no feedback.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	feedback.Stats
//	@Failure		500	{object}	errorEnvelope
//	@Router			/dashboard [get]
func (app *application) dashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.store.Feedback.AggregateStats(r.Context())
	if err != nil {
		app.internalServerError(w, r, "Failed to retrieve statistics", err)
		return
	}

	app.jsonResponse(w, http.StatusOK, stats)
}

// courseBreakdownHandler godoc
//
//	@Summary		Per-course statistics
//	@Description	Response count and rating range per course, ranked by average rating.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	CourseBreakdownResponse
//	@Failure		500	{object}	errorEnvelope
//	@Router			/dashboard/courses [get]
func (app *application) courseBreakdownHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := app.store.Feedback.CourseBreakdown(r.Context())
	if err != nil {
		app.internalServerError(w, r, "Failed to retrieve statistics", err)
		return
	}
	if courses == nil {
		courses = []feedback.CourseStats{}
	}

	app.jsonResponse(w, http.StatusOK, CourseBreakdownResponse{
		CoursesReviewed: len(courses),
		Courses:         courses,
	})
}
