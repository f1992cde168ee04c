package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"coursefeedback/internal/domain/feedback"

	"github.com/go-chi/chi/v5"
)

type CreateFeedbackPayload struct {
	StudentName string `json:"studentName" validate:"required,max=255"`
	CourseCode  string `json:"courseCode" validate:"required,max=50"`
	Comments    string `json:"comments" validate:"required,min=10"`
	Rating      *int   `json:"rating" validate:"required,min=1,max=5" swaggertype:"integer" minimum:"1" maximum:"5"`
}

func (p *CreateFeedbackPayload) normalize() {
	p.StudentName = strings.TrimSpace(p.StudentName)
	p.CourseCode = strings.TrimSpace(p.CourseCode)
	p.Comments = strings.TrimSpace(p.Comments)
}

type CreateFeedbackResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// createFeedbackHandler godoc
//
//	@Summary		Submit feedback
//	@Description	Stores one student's rating and comments for a course.
//	@Tags			Feedback
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateFeedbackPayload	true	"Feedback payload"
//	@Success		201		{object}	CreateFeedbackResponse
//	@Failure		400		{object}	errorEnvelope
//	@Failure		500		{object}	errorEnvelope
//	@Router			/feedback [post]
func (app *application) createFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateFeedbackPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, &validationError{Message: "invalid request body", Details: err.Error()})
		return
	}

	payload.normalize()
	if err := validatePayload(&payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	id, err := app.store.Feedback.Create(r.Context(), &feedback.NewFeedback{
		StudentName: payload.StudentName,
		CourseCode:  payload.CourseCode,
		Comments:    payload.Comments,
		Rating:      *payload.Rating,
	})
	if err != nil {
		// the table CHECK is the last line of defence behind validatePayload
		if errors.Is(err, feedback.ErrRatingOutOfRange) {
			app.badRequestResponse(w, r, feedback.ErrRatingOutOfRange)
			return
		}
		app.internalServerError(w, r, "Failed to add feedback", err)
		return
	}

	app.logger.Infow("feedback created", "id", id, "course_code", payload.CourseCode, "rating", *payload.Rating)

	app.jsonResponse(w, http.StatusCreated, CreateFeedbackResponse{
		Message: "Feedback added successfully",
		ID:      id,
	})
}

// listFeedbackHandler godoc
//
//	@Summary		List feedback
//	@Description	Returns every feedback record, newest first.
//	@Tags			Feedback
//	@Produce		json
//	@Success		200	{array}		feedback.Feedback
//	@Failure		500	{object}	errorEnvelope
//	@Router			/feedback [get]
func (app *application) listFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Feedback.ListAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, "Failed to retrieve feedback", err)
		return
	}
	if list == nil {
		list = []feedback.Feedback{}
	}

	app.jsonResponse(w, http.StatusOK, list)
}

// deleteFeedbackHandler godoc
//
//	@Summary		Delete feedback
//	@Description	Permanently removes one feedback record.
//	@Tags			Feedback
//	@Produce		json
//	@Param			feedbackID	path		int	true	"Feedback ID"
//	@Success		200			{object}	MessageResponse
//	@Failure		400			{object}	errorEnvelope
//	@Failure		404			{object}	errorEnvelope
//	@Failure		500			{object}	errorEnvelope
//	@Router			/feedback/{feedbackID} [delete]
func (app *application) deleteFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "feedbackID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid feedback ID"))
		return
	}

	n, err := app.store.Feedback.DeleteByID(r.Context(), id)
	if err != nil {
		app.internalServerError(w, r, "Failed to delete feedback", err)
		return
	}
	if n == 0 {
		app.notFoundResponse(w, r, "Feedback not found")
		return
	}

	app.logger.Infow("feedback deleted", "id", id)

	app.jsonResponse(w, http.StatusOK, MessageResponse{Message: "Feedback deleted successfully"})
}
