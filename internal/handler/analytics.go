package handler

import (
	"net/http"

	"karigar-api/internal/store"
	"karigar-api/pkg/response"
)

// AnalyticsHandler serves the derived analytics snapshot.
type AnalyticsHandler struct {
	store *store.Store
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(s *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: s}
}

// Get handles GET /api/v1/analytics
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.store.GetAnalytics(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, analytics)
}
