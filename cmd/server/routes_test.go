package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/vakit/internal/config"
	"github.com/Nixie-Tech-LLC/vakit/internal/db"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/vakit/internal/model"
	"github.com/Nixie-Tech-LLC/vakit/internal/redis"
	"github.com/Nixie-Tech-LLC/vakit/internal/storage"
)

type memoryCodes map[string]string

func (m memoryCodes) Register(_ context.Context, code, deviceID string) error {
	m[code] = deviceID
	return nil
}

func (m memoryCodes) Redeem(_ context.Context, code string) (string, error) {
	id, ok := m[code]
	if !ok {
		return "", redis.ErrUnknownCode
	}
	delete(m, code)
	return id, nil
}

type nopPublisher struct{}

func (nopPublisher) PublishScreen(model.Screen) error { return nil }

func testRouter(t *testing.T, svc Services) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := LoadTemplates("../../integrations/templates/*.html")
	require.NoError(t, err)

	hash, err := middleware.HashPassword("hunter22")
	require.NoError(t, err)
	cfg := &config.Config{JWTSecret: "secret", AdminEmail: "ops@example.com", AdminPasswordHash: hash}
	return NewRouter(cfg, svc, tmpl)
}

func request(r *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicRoutesWithoutDatabase(t *testing.T) {
	r := testRouter(t, Services{})

	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/", "", nil).Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/api/timesForGPS?lat=41&lng=29&date=2025-02-11&timezoneOffset=-180", "", nil).Code)

	w := request(r, http.MethodGet, "/api/tv/integrations/athan?lat=41&lon=29&date=2025-02-11&tz=180&city=Istanbul", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ISTANBUL")
	assert.Contains(t, w.Body.String(), "06:32")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = request(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "vakit_http_requests_total")

	assert.Equal(t, http.StatusNotFound, request(r, http.MethodPost, "/api/admin/auth/login", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, request(r, http.MethodPost, "/api/tv/register", "", nil).Code)
}

func TestPairingFlow(t *testing.T) {
	store := db.NewMemoryStore()
	exports := storage.NewLocalStorage(t.TempDir())
	r := testRouter(t, Services{Store: store, Pairing: memoryCodes{}, Publisher: nopPublisher{}, Exports: exports})

	// The screen announces its code.
	w := request(r, http.MethodPost, "/api/tv/register", "", gin.H{"code": "K7Q2", "device_id": "tv-lobby"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The operator logs in, creates a screen and redeems the code.
	w = request(r, http.MethodPost, "/api/admin/auth/login", "", gin.H{"email": "ops@example.com", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = request(r, http.MethodPost, "/api/admin/screens", login.Token, gin.H{"name": "Lobby", "latitude": 41, "longitude": 29, "utc_offset_minutes": 180})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var screen struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &screen))

	w = request(r, http.MethodPost, "/api/admin/screens/pair", login.Token, gin.H{"code": "K7Q2", "screen_id": screen.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The device can now pull its times and may not register again.
	w = request(r, http.MethodGet, "/api/tv/times?device_id=tv-lobby", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"imsak"`)

	w = request(r, http.MethodPost, "/api/tv/register", "", gin.H{"code": "ZZ99", "device_id": "tv-lobby"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// A month exported to local storage is served back under /exports.
	w = request(r, http.MethodPost, fmt.Sprintf("/api/admin/screens/%d/calendar", screen.ID), login.Token, gin.H{"year": 2025, "month": 2, "format": "csv"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var export struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	w = request(r, http.MethodGet, export.URL, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "date,imsak,gunes,ogle,ikindi,aksam,yatsi")
}

func TestLoadTemplatesMissing(t *testing.T) {
	_, err := LoadTemplates("does/not/exist/*.html")
	assert.Error(t, err)
}
