package main

import (
	"context"
	"net/http"
	"time"
)

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports service status and whether the store answers a ping.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	data := map[string]string{
		"status":  "ok",
		"env":     app.config.Env,
		"version": version,
	}

	if err := app.store.Ping(ctx); err != nil {
		app.logger.Warnw("store ping failed", "error", err.Error())
		data["status"] = "unavailable"
		app.jsonResponse(w, http.StatusServiceUnavailable, data)
		return
	}

	app.jsonResponse(w, http.StatusOK, data)
}
