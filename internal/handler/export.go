package handler

import (
	"io"
	"net/http"

	"karigar-api/internal/store"
	"karigar-api/pkg/apierror"
	"karigar-api/pkg/response"
)

// ExportHandler handles snapshot export and import.
type ExportHandler struct {
	store *store.Store
}

// NewExportHandler creates a new export handler.
func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// Export handles GET /api/v1/export and serves the snapshot as a download.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.ExportData(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="karigar-export.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import handles POST /api/v1/import. Only products, chats and analytics are
// applied; the profile is never overwritten by an import.
func (h *ExportHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.Error(w, apierror.BadRequest("failed to read request body"))
		return
	}
	defer r.Body.Close()

	if err := h.store.ImportData(r.Context(), body); err != nil {
		response.Error(w, apierror.BadRequest("invalid import payload"))
		return
	}

	response.OK(w, map[string]interface{}{
		"status": "imported",
	})
}
