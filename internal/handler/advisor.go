package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"karigar-api/internal/advisor"
	"karigar-api/internal/model"
	"karigar-api/internal/store"
	"karigar-api/pkg/apierror"
	"karigar-api/pkg/response"
)

// AdvisorHandler exposes the generative advisory operations. The client is
// nil when no API key was configured; every operation then fails with a
// configuration error.
type AdvisorHandler struct {
	advisor *advisor.Client
	store   *store.Store
}

// NewAdvisorHandler creates a new advisor handler. advisorClient may be nil.
func NewAdvisorHandler(advisorClient *advisor.Client, s *store.Store) *AdvisorHandler {
	return &AdvisorHandler{advisor: advisorClient, store: s}
}

func (h *AdvisorHandler) configured(w http.ResponseWriter) bool {
	if h.advisor == nil {
		response.Error(w, apierror.NotConfigured("Gemini API key not configured"))
		return false
	}
	return true
}

// advisorError maps advisory failures to API errors.
func advisorError(w http.ResponseWriter, err error) {
	var genErr *advisor.GenerationError
	if errors.As(err, &genErr) {
		response.Error(w, apierror.GenerationFailed(genErr.Message))
		return
	}
	if errors.Is(err, advisor.ErrNotConfigured) {
		response.Error(w, apierror.NotConfigured("Gemini API key not configured"))
		return
	}
	response.Error(w, err)
}

// Listing handles POST /api/v1/advisor/listing
func (h *AdvisorHandler) Listing(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Price       string `json:"price"`
		Category    string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	listing, err := h.advisor.GenerateProductListing(r.Context(), body.Title, body.Description, body.Price, body.Category)
	if err != nil {
		advisorError(w, err)
		return
	}
	response.OK(w, listing)
}

// Tips handles POST /api/v1/advisor/tips
func (h *AdvisorHandler) Tips(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}

	var body struct {
		Category string   `json:"category"`
		Goals    []string `json:"goals"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	tips, err := h.advisor.GenerateBusinessTips(r.Context(), body.Category, body.Goals)
	if err != nil {
		advisorError(w, err)
		return
	}
	response.OK(w, tips)
}

// Replies handles POST /api/v1/advisor/replies
func (h *AdvisorHandler) Replies(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}

	var body struct {
		ProductType string   `json:"productType"`
		Questions   []string `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	replies, err := h.advisor.GenerateCustomerReplies(r.Context(), body.ProductType, body.Questions)
	if err != nil {
		advisorError(w, err)
		return
	}
	response.OK(w, replies)
}

// Chat handles POST /api/v1/advisor/chat. The store provides the context
// re-embedded in the prompt, and the completed exchange is persisted to the
// chat collection.
func (h *AdvisorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}
	if body.Message == "" {
		response.Error(w, apierror.BadRequest("message is required"))
		return
	}

	products, err := h.store.GetProducts(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	chats, err := h.store.GetChats(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	previous := make([]string, 0, len(chats))
	for _, c := range chats {
		previous = append(previous, c.Message)
	}

	reply, err := h.advisor.Chat(r.Context(), body.Message, model.ChatContext{
		Products:         products,
		PreviousMessages: previous,
	})
	if err != nil {
		advisorError(w, err)
		return
	}

	chat, err := h.store.SaveChatMessage(r.Context(), body.Message, reply)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, chat)
}
