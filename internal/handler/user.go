package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"karigar-api/internal/model"
	"karigar-api/internal/store"
	"karigar-api/pkg/apierror"
	"karigar-api/pkg/response"
	"karigar-api/pkg/uid"
)

// UserHandler handles profile-related HTTP requests.
type UserHandler struct {
	store *store.Store
}

// NewUserHandler creates a new user handler.
func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// SetUser handles POST /api/v1/user. The profile is overwritten wholesale;
// field contents are not validated beyond being valid JSON.
func (h *UserHandler) SetUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}
	if user.ID == "" {
		user.ID = uid.New()
	}
	if user.CreatedAt == "" {
		user.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}

	if err := h.store.SetUser(r.Context(), user); err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, user)
}

// GetUser handles GET /api/v1/user. Data is null when no profile is stored.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, user)
}

// Logout handles DELETE /api/v1/user.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Logout(r.Context()); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}
