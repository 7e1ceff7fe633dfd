package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlog/fitlog/internal/handler/dto"
)

func TestUserHandler_Create(t *testing.T) {
	router, _ := newTestRouter(t)

	var created dto.UserResponse
	rec := doJSON(t, router, http.MethodPost, "/api/users", `{"username":"alice"}`, &created)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", created.Username)
	assert.NotEmpty(t, created.ID)

	var users []dto.UserResponse
	rec = doJSON(t, router, http.MethodGet, "/api/users", "", &users)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, users, 1)
	assert.Equal(t, created.ID, users[0].ID)
}

func TestUserHandler_Create_FormEncoded(t *testing.T) {
	router, _ := newTestRouter(t)

	var created dto.UserResponse
	rec := doForm(t, router, "/api/users", "username=alice", &created)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", created.Username)
}

func TestUserHandler_Create_EmptyUsername(t *testing.T) {
	router, _ := newTestRouter(t)

	var errResp dto.ErrorResponse
	rec := doJSON(t, router, http.MethodPost, "/api/users", `{"username":""}`, &errResp)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username is required", errResp.Message)

	var users []dto.UserResponse
	doJSON(t, router, http.MethodGet, "/api/users", "", &users)
	assert.Empty(t, users, "rejected user must not appear in the list")
}

func TestUserHandler_Create_Conflict(t *testing.T) {
	router, _ := newTestRouter(t)

	var first dto.UserResponse
	rec := doJSON(t, router, http.MethodPost, "/api/users", `{"username":"alice"}`, &first)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The conflict response carries the existing user's representation.
	var second dto.UserResponse
	rec = doJSON(t, router, http.MethodPost, "/api/users", `{"username":"alice"}`, &second)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "alice", second.Username)

	var users []dto.UserResponse
	doJSON(t, router, http.MethodGet, "/api/users", "", &users)
	assert.Len(t, users, 1)
}

func TestUserHandler_Create_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	var errResp dto.ErrorResponse
	rec := doJSON(t, router, http.MethodPost, "/api/users", `{"username"`, &errResp)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", errResp.Message)
}

func TestUserHandler_List_Empty(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String(), "empty list encodes as a JSON array")
}
