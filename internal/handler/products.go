package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"karigar-api/internal/images"
	"karigar-api/internal/model"
	"karigar-api/internal/store"
	"karigar-api/pkg/apierror"
	"karigar-api/pkg/response"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	store      *store.Store
	compressor *images.Compressor
}

// NewProductHandler creates a new product handler.
func NewProductHandler(s *store.Store, c *images.Compressor) *ProductHandler {
	return &ProductHandler{store: s, compressor: c}
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields model.ProductFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}
	if fields.Title == "" {
		response.Error(w, apierror.ValidationError("title is required",
			apierror.FieldError{Field: "title", Message: "must not be empty"}))
		return
	}

	product, err := h.store.SaveProduct(r.Context(), fields)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, product)
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.GetProducts(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, products)
}

// Update handles PATCH /api/v1/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch model.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	product, err := h.store.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		response.Error(w, err)
		return
	}
	if product == nil {
		response.Error(w, apierror.NotFound("product not found"))
		return
	}
	response.OK(w, product)
}

// Delete handles DELETE /api/v1/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.store.DeleteProduct(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	if !removed {
		response.Error(w, apierror.NotFound("product not found"))
		return
	}
	response.NoContent(w)
}

// IncrementViews handles POST /api/v1/products/{id}/views. Unknown ids are a
// silent no-op, matching the store contract.
func (h *ProductHandler) IncrementViews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.IncrementProductViews(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

// UploadImage handles POST /api/v1/products/image. It accepts a multipart
// "image" file, rejects sources above the byte ceiling before compression,
// and returns the compressed data URL for the caller to attach to a product.
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, images.MaxUploadBytes)
	if err := r.ParseMultipartForm(images.MaxUploadBytes); err != nil {
		response.Error(w, apierror.PayloadTooLarge("image exceeds the 5 MB limit"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, apierror.BadRequest("image file is required"))
		return
	}
	defer file.Close()

	if header.Size > images.MaxUploadBytes {
		response.Error(w, apierror.PayloadTooLarge("image exceeds the 5 MB limit"))
		return
	}

	dataURL, err := h.compressor.Compress(file)
	if err != nil {
		response.Error(w, apierror.BadRequest("could not process image"))
		return
	}

	response.OK(w, map[string]interface{}{
		"image": dataURL,
		"size":  len(dataURL),
	})
}
