package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"karigar-api/internal/store"
	"karigar-api/pkg/apierror"
	"karigar-api/pkg/response"
)

// SettingsHandler handles preference HTTP requests.
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// Get handles GET /api/v1/settings. The currency symbol derived from the
// region is included for display.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	symbol, err := h.store.CurrencySymbol(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"settings":       settings,
		"currencySymbol": symbol,
	})
}

// Set handles PUT /api/v1/settings/{key} with body {"value": "..."}.
func (h *SettingsHandler) Set(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	settings, err := h.store.SetSetting(r.Context(), key, body.Value)
	if err != nil {
		if errors.Is(err, store.ErrInvalidSetting) {
			response.Error(w, apierror.ValidationError("unknown setting key or value",
				apierror.FieldError{Field: key, Message: "not a recognized option"}))
			return
		}
		response.Error(w, err)
		return
	}
	response.OK(w, settings)
}
