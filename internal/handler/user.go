package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("list_users_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// Create handles POST /api/users. Accepts JSON or form-encoded bodies.
//
// A duplicate username answers 409 with the existing user's representation;
// repeated creates are safe but report the conflict.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateUser(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.svc.Create(r.Context(), req.Username)
	switch {
	case errors.Is(err, service.ErrUsernameRequired):
		writeError(w, http.StatusBadRequest, "Username is required")
		return
	case errors.Is(err, service.ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, dto.ToUserResponse(user))
		return
	case err != nil:
		h.logger.Error("create_user_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	h.logger.Info("user_created", "user_id", user.ID, "username", user.Username)

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// decodeCreateUser reads a create-user body in either supported encoding.
func decodeCreateUser(r *http.Request) (dto.CreateUserRequest, error) {
	var req dto.CreateUserRequest

	if isJSONRequest(r) {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Username = r.PostFormValue("username")
	return req, nil
}

// isJSONRequest reports whether the request body should be decoded as JSON.
func isJSONRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/json")
}
