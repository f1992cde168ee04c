package main

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, message string, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, message, err.Error())
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	var ve *validationError
	if errors.As(err, &ve) {
		writeJSONError(w, http.StatusBadRequest, ve.Message, ve.Details)
		return
	}
	writeJSONError(w, http.StatusBadRequest, err.Error(), "")
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path)

	writeJSONError(w, http.StatusNotFound, message, "")
}

func (app *application) routeNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.notFoundResponse(w, r, "route not found")
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("method not allowed", "method", r.Method, "path", r.URL.Path)

	writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed", "")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path, "retry_after", retryAfter.String())

	w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter.String(), "")
}

func (app *application) gatewayTimeoutResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("request timed out", "method", r.Method, "path", r.URL.Path)

	writeJSONError(w, http.StatusGatewayTimeout, "request timed out", "")
}
