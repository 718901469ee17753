package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karigar-api/internal/handler"
	"karigar-api/internal/images"
	"karigar-api/internal/model"
	"karigar-api/internal/repository"
	"karigar-api/internal/router"
	"karigar-api/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s := store.New(repository.NewMemoryKVRepository())
	require.NotNil(t, s)
	compressor, err := images.NewCompressor(800, 0.8)
	require.NoError(t, err)

	r := router.New(router.Config{
		Handler:          handler.New("test"),
		UserHandler:      handler.NewUserHandler(s),
		ProductHandler:   handler.NewProductHandler(s, compressor),
		ChatHandler:      handler.NewChatHandler(s),
		AnalyticsHandler: handler.NewAnalyticsHandler(s),
		SettingsHandler:  handler.NewSettingsHandler(s),
		ExportHandler:    handler.NewExportHandler(s),
		AdvisorHandler:   handler.NewAdvisorHandler(nil, s),
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func dataOf(t *testing.T, raw []byte) json.RawMessage {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	require.True(t, env.Success, "expected success envelope, got %s", raw)
	return env.Data
}

func TestProductEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp, raw := do(t, http.MethodPost, server.URL+"/api/v1/products", model.ProductFields{
		Title:    "Brass Diya",
		Price:    "450",
		Category: "Metalwork",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var product model.Product
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &product))
	require.NotEmpty(t, product.ID)

	resp, _ = do(t, http.MethodPost, fmt.Sprintf("%s/api/v1/products/%s/views", server.URL, product.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = do(t, http.MethodPatch, server.URL+"/api/v1/products/"+product.ID,
		map[string]string{"price": "500"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Product
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &updated))
	assert.Equal(t, "500", updated.Price)
	assert.Equal(t, 1, updated.Views)

	resp, raw = do(t, http.MethodGet, server.URL+"/api/v1/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products []model.Product
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &products))
	assert.Len(t, products, 1)

	resp, _ = do(t, http.MethodDelete, server.URL+"/api/v1/products/"+product.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, http.MethodDelete, server.URL+"/api/v1/products/"+product.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProductRequiresTitle(t *testing.T) {
	server := newTestServer(t)

	resp, _ := do(t, http.MethodPost, server.URL+"/api/v1/products", model.ProductFields{Price: "10"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp, raw := do(t, http.MethodGet, server.URL+"/api/v1/user", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := dataOf(t, raw)
	assert.True(t, len(data) == 0 || string(data) == "null", "expected no profile, got %s", data)

	resp, raw = do(t, http.MethodPost, server.URL+"/api/v1/user",
		map[string]string{"username": "asha", "email": "asha@example.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user model.User
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &user))
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.CreatedAt)

	resp, _ = do(t, http.MethodDelete, server.URL+"/api/v1/user", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSettingsEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp, raw := do(t, http.MethodPut, server.URL+"/api/v1/settings/theme",
		map[string]string{"value": "dark"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var settings model.Settings
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &settings))
	assert.Equal(t, "dark", settings.Theme)

	resp, _ = do(t, http.MethodPut, server.URL+"/api/v1/settings/theme",
		map[string]string{"value": "sepia"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, server.URL+"/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Settings       model.Settings `json:"settings"`
		CurrencySymbol string         `json:"currencySymbol"`
	}
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &body))
	assert.Equal(t, "dark", body.Settings.Theme)
	assert.Equal(t, "₹", body.CurrencySymbol)
}

func TestExportImportEndpoints(t *testing.T) {
	server := newTestServer(t)

	_, _ = do(t, http.MethodPost, server.URL+"/api/v1/products", model.ProductFields{Title: "Shawl"})

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/export", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "karigar-export.json")

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	var snapshot store.Export
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snapshot))
	assert.Len(t, snapshot.Products, 1)

	importReq, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/import", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	importReq.Header.Set("Content-Type", "application/json")
	importResp, err := http.DefaultClient.Do(importReq)
	require.NoError(t, err)
	importResp.Body.Close()
	assert.Equal(t, http.StatusOK, importResp.StatusCode)

	req, err = http.NewRequest(http.MethodPost, server.URL+"/api/v1/import", strings.NewReader("{broken"))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp, raw := do(t, http.MethodPost, server.URL+"/api/v1/chats",
		map[string]string{"message": "How do I price?", "response": "Start from material cost."})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var chat model.ChatMessage
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &chat))
	assert.NotEmpty(t, chat.ID)

	resp, _ = do(t, http.MethodPost, server.URL+"/api/v1/chats",
		map[string]string{"response": "orphan"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, server.URL+"/api/v1/chats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var chats []model.ChatMessage
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &chats))
	assert.Len(t, chats, 1)

	resp, _ = do(t, http.MethodDelete, server.URL+"/api/v1/chats", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, server.URL+"/api/v1/analytics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var analytics model.Analytics
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &analytics))
	assert.Equal(t, 1, analytics.TotalChats)
}

func TestAdvisorUnconfigured(t *testing.T) {
	server := newTestServer(t)

	resp, _ := do(t, http.MethodPost, server.URL+"/api/v1/advisor/chat",
		map[string]string{"message": "hello"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestImageUpload(t *testing.T) {
	server := newTestServer(t)

	img := image.NewRGBA(image.Rect(0, 0, 1200, 900))
	var imgBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&imgBuf, img, nil))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write(imgBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/products/image", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	var result struct {
		Image string `json:"image"`
		Size  int    `json:"size"`
	}
	require.NoError(t, json.Unmarshal(dataOf(t, buf.Bytes()), &result))
	assert.True(t, strings.HasPrefix(result.Image, "data:image/jpeg;base64,"))
	assert.Equal(t, len(result.Image), result.Size)
}

func TestStatusEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, raw := do(t, http.MethodGet, server.URL+"/api/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status struct {
		Service string `json:"service"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(dataOf(t, raw), &status))
	assert.Equal(t, "karigar-api", status.Service)
	assert.Equal(t, "ok", status.Status)
}
