package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"floorplan-server/internal/generate"
	appconfig "floorplan-server/internal/shared/config"
	"floorplan-server/internal/shared/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	appconfig.GlobalConfig = &appconfig.Config{
		Layout: appconfig.LayoutConfig{
			DefaultWidth:  12.0,
			DefaultDepth:  10.0,
			DefaultFloors: 1,
			CacheTTL:      time.Minute,
			HistoryLimit:  50,
		},
	}
	t.Cleanup(func() { appconfig.GlobalConfig = nil })
}

func newTestHandler() *GenerateHandler {
	service := generate.NewService(nil, generate.NewCache(nil, time.Minute), slog.Default())
	return NewGenerateHandler(service)
}

func postGenerate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)
	return rec
}

func TestGenerateHandler_AppliesDefaults(t *testing.T) {
	setTestConfig(t)

	rec := postGenerate(t, `{"prompt": ""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result generate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 12.0, result.Footprint.Width)
	assert.Equal(t, 10.0, result.Footprint.Depth)
	assert.Equal(t, 3.0, result.Footprint.Height)
	// Default program: 3 bedrooms + 2 bathrooms + Living/Kitchen/Dining.
	assert.Len(t, result.Rooms, 8)
	assert.Equal(t, generate.LayoutNote, result.Meta.Note)
}

func TestGenerateHandler_ExplicitDimensionsOverrideDefaults(t *testing.T) {
	setTestConfig(t)

	rec := postGenerate(t, `{"prompt": "2 bed 1 bath", "width": 14, "depth": 9}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result generate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 14.0, result.Footprint.Width)
	assert.Equal(t, 9.0, result.Footprint.Depth)
	assert.Equal(t, 2, result.Meta.Program.Bedrooms)
	assert.Equal(t, 1, result.Meta.Program.Bathrooms)
}

func TestGenerateHandler_RejectsOutOfRangeInput(t *testing.T) {
	setTestConfig(t)

	testCases := []struct {
		name string
		body string
	}{
		{"width too small", `{"prompt": "x", "width": 3}`},
		{"width too large", `{"prompt": "x", "width": 400}`},
		{"depth at bound", `{"prompt": "x", "depth": 4}`},
		{"floors too large", `{"prompt": "x", "floors": 5}`},
		{"floors zero", `{"prompt": "x", "floors": 0}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postGenerate(t, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, "validation", errResp.Error)
		})
	}
}

func TestGenerateHandler_RejectsMalformedJSON(t *testing.T) {
	setTestConfig(t)

	rec := postGenerate(t, `{"prompt": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateHandler_RejectsNonPost(t *testing.T) {
	setTestConfig(t)

	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHistoryHandler_UnavailableWithoutDatabase(t *testing.T) {
	setTestConfig(t)

	service := generate.NewService(nil, generate.NewCache(nil, time.Minute), slog.Default())
	handler := NewHistoryHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/generations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHistoryHandler_RejectsBadLimit(t *testing.T) {
	setTestConfig(t)

	service := generate.NewService(nil, generate.NewCache(nil, time.Minute), slog.Default())
	handler := NewHistoryHandler(service)

	for _, limit := range []string{"abc", "0", "9999"} {
		req := httptest.NewRequest(http.MethodGet, "/api/generations?limit="+limit, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}
