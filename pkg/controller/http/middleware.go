package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"

	"github.com/groupbuy/core/pkg/domain/model"
)

// LoggingMiddleware returns a middleware that logs HTTP requests
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := ctxlog.From(ctx)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("HTTP request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// respondJSON writes a JSON response with the given status
func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// respondError maps domain errors to the API's error shapes: 404 uses
// {"detail": "Not found."}, everything else {"error": <message>}.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respondJSON(w, r, http.StatusNotFound, map[string]string{"detail": "Not found."})
	case errors.Is(err, model.ErrNotActive):
		respondJSON(w, r, http.StatusBadRequest, map[string]string{"error": "Procurement is not active"})
	case errors.Is(err, model.ErrAlreadyJoined):
		respondJSON(w, r, http.StatusBadRequest, map[string]string{"error": "Already joined this procurement"})
	case errors.Is(err, model.ErrValidation):
		respondJSON(w, r, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		ctxlog.From(r.Context()).Error("Request failed", "error", err, "path", r.URL.Path)
		respondJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
