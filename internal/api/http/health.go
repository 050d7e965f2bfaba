package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Store       string    `json:"store"`
	MockStore   bool      `json:"mock_store"`
}

type HealthHandler struct {
	serviceName string
	version     string
	environment string
	store       string
	mockStore   bool
}

func NewHealthHandler(serviceName, version, environment, store string, mockStore bool) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		environment: environment,
		store:       store,
		mockStore:   mockStore,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Service:     h.serviceName,
		Version:     h.version,
		Environment: h.environment,
		Store:       h.store,
		MockStore:   h.mockStore,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
