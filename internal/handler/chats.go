package handler

import (
	"encoding/json"
	"net/http"

	"karigar-api/internal/store"
	"karigar-api/pkg/apierror"
	"karigar-api/pkg/response"
)

// ChatHandler handles chat-history HTTP requests. The advisor chat endpoint
// records exchanges too; Create exists for callers that already have both
// sides of an exchange, such as a client restoring history.
type ChatHandler struct {
	store *store.Store
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(s *store.Store) *ChatHandler {
	return &ChatHandler{store: s}
}

// Create handles POST /api/v1/chats with body {"message","response"}.
func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message  string `json:"message"`
		Response string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}
	if body.Message == "" {
		response.Error(w, apierror.ValidationError("message is required",
			apierror.FieldError{Field: "message", Message: "must not be empty"}))
		return
	}

	chat, err := h.store.SaveChatMessage(r.Context(), body.Message, body.Response)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, chat)
}

// List handles GET /api/v1/chats
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	chats, err := h.store.GetChats(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, chats)
}

// Clear handles DELETE /api/v1/chats. Analytics totals are not rolled back.
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearChats(r.Context()); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}
