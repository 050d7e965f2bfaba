package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewHealthHandler("aipage-backend", "1.0.0", "development", "memory", true)
	handler.RegisterRoutes(router)

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "aipage-backend", resp.Service)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "development", resp.Environment)
	assert.Equal(t, "memory", resp.Store)
	assert.True(t, resp.MockStore)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestHealthzAlias(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHealthHandler("aipage-backend", "1.0.0", "production", "firestore", false).RegisterRoutes(router)

	req, err := http.NewRequest(http.MethodGet, "/healthz", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
