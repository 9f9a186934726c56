package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adventureworks/enterprise-api/internal/config"
	"github.com/adventureworks/enterprise-api/internal/handler"
	"github.com/adventureworks/enterprise-api/internal/middleware"
	"github.com/adventureworks/enterprise-api/pkg/logger"
	"github.com/adventureworks/enterprise-api/pkg/metrics"
)

// Handlers groups the route registrars the router wires up.
type Handlers struct {
	Employee *handler.EmployeeHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Report   *handler.ReportHandler
}

// New builds the engine with the full middleware chain. Health and metrics
// sit outside the API key gate; everything under /api/v1 requires the key.
func New(cfg *config.Config, db *sqlx.DB, h Handlers, m *metrics.Metrics, log *logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(m))

	handler.NewHealthHandler(db).RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(middleware.APIKeyAuth(cfg.Auth.APIKey))
	api.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	h.Employee.RegisterRoutes(api)
	h.Product.RegisterRoutes(api)
	h.Order.RegisterRoutes(api)
	h.Report.RegisterRoutes(api, middleware.CacheControl(cfg.Reports.CacheTTLSeconds))

	return r
}
