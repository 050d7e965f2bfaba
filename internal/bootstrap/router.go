package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aipage-top/aipage-backend/config"
	httpapi "github.com/aipage-top/aipage-backend/internal/api/http"
	"github.com/aipage-top/aipage-backend/internal/api/http/middleware"
	projecthttp "github.com/aipage-top/aipage-backend/internal/projects/http"
	"github.com/aipage-top/aipage-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Service     *service.ProjectService
	Backend     string
	Fallback    bool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())
	if dep.Fallback {
		r.Use(mockStoreHeader())
	}

	healthHandler := httpapi.NewHealthHandler(
		dep.ServiceName,
		dep.Config.App.Version,
		dep.Config.App.Environment,
		dep.Backend,
		dep.Fallback,
	)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.WriteRateLimitMiddleware(dep.Config.Server.WriteRPS, dep.Config.Server.WriteBurst))

	projectsGroup := api.Group("/projects")
	projecthttp.New(dep.Service).Register(projectsGroup)

	return r
}

// mockStoreHeader flags every response when the in-memory fallback answers,
// so clients can warn that data will not persist across restarts.
func mockStoreHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Mock-Store", "true")
		c.Next()
	}
}
