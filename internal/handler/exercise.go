package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/service"
)

// LogHandler handles HTTP requests for exercise logging and retrieval.
type LogHandler struct {
	svc    *service.LogService
	logger *slog.Logger
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(svc *service.LogService, logger *slog.Logger) *LogHandler {
	return &LogHandler{
		svc:    svc,
		logger: logger,
	}
}

// CreateExercise handles POST /api/users/{id}/exercises.
// Accepts JSON or form-encoded bodies; duration may arrive quoted or not.
func (h *LogHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	req, err := decodeCreateExercise(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.AddExerciseInput{
		UserID:      userID,
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        req.Date,
	}

	exercise, err := h.svc.AddExercise(r.Context(), input)
	if err != nil {
		h.handleLogError(w, err)
		return
	}

	h.logger.Info("exercise_created",
		"exercise_id", exercise.ID,
		"user_id", exercise.UserID,
		"duration", exercise.Duration,
	)

	writeJSON(w, http.StatusCreated, dto.ToExerciseResponse(exercise))
}

// GetLog handles GET /api/users/{id}/logs.
// Query params: from, to (YYYY-MM-DD, inclusive) and limit. Unparseable
// bounds are treated as absent; an invalid limit falls back to the default.
func (h *LogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	input := service.GetLogInput{
		UserID: chi.URLParam(r, "id"),
	}

	if from := query.Get("from"); from != "" {
		if t, err := time.Parse(service.DateParamFormat, from); err == nil {
			input.From = &t
		}
	}
	if to := query.Get("to"); to != "" {
		if t, err := time.Parse(service.DateParamFormat, to); err == nil {
			input.To = &t
		}
	}
	if limit := query.Get("limit"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil && parsed > 0 {
			input.Limit = parsed
		}
	}

	log, err := h.svc.GetLog(r.Context(), input)
	if err != nil {
		h.handleLogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLogResponse(log))
}

// handleLogError maps log service errors to HTTP responses. Validation
// failures each carry their own message.
func (h *LogHandler) handleLogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "No user exists with that ID")
	case errors.Is(err, service.ErrDescriptionAndDurationRequired):
		writeError(w, http.StatusBadRequest, "Description and duration are required")
	case errors.Is(err, service.ErrDescriptionRequired):
		writeError(w, http.StatusBadRequest, "Description is required")
	case errors.Is(err, service.ErrDurationRequired):
		writeError(w, http.StatusBadRequest, "Duration is required")
	case errors.Is(err, service.ErrDurationNotNumeric):
		writeError(w, http.StatusBadRequest, "Please use a valid number for duration")
	case errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "Please use a date in YYYY-MM-DD format")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}

// decodeCreateExercise reads a create-exercise body in either supported
// encoding.
func decodeCreateExercise(r *http.Request) (dto.CreateExerciseRequest, error) {
	var req dto.CreateExerciseRequest

	if isJSONRequest(r) {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Description = r.PostFormValue("description")
	req.Duration = dto.StringOrNumber(r.PostFormValue("duration"))
	req.Date = r.PostFormValue("date")
	return req, nil
}
