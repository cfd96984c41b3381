package v1

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"lead-relay-backend/config"
	"lead-relay-backend/internal/delivery/http/middleware"
	"lead-relay-backend/internal/domain"
	"lead-relay-backend/internal/usecase"
	"lead-relay-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	LeadUC   domain.LeadUsecase
	HealthUC usecase.HealthUsecase
	// RateLimiter guards /submit; nil disables rate limiting
	RateLimiter gin.HandlerFunc
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Collect())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	healthUC := deps.HealthUC
	if healthUC == nil {
		healthUC = usecase.NewHealthUsecase(nil)
	}
	r.GET("/health", healthHandler(healthUC))

	submitGuards := []gin.HandlerFunc{middleware.BodyLimit(deps.Config.MaxBodyBytes)}
	if deps.RateLimiter != nil {
		submitGuards = append([]gin.HandlerFunc{deps.RateLimiter}, submitGuards...)
	}
	NewLeadHandler(r, deps.LeadUC, submitGuards...)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The landing page form lives next to the API
	r.NoRoute(staticOrNotFound(deps.Config.StaticDir))

	return r
}

// staticOrNotFound serves GET/HEAD requests from dir when the file exists
func staticOrNotFound(dir string) gin.HandlerFunc {
	notFound := middleware.NotFound()
	if dir == "" {
		return notFound
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return notFound
	}

	fileServer := http.FileServer(gin.Dir(dir, false))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			notFound(c)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")))
		info, err := os.Stat(name)
		if err != nil {
			notFound(c)
			return
		}
		if info.IsDir() {
			if _, err := os.Stat(filepath.Join(name, "index.html")); err != nil {
				notFound(c)
				return
			}
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
