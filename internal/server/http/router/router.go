package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/semagency/orderbot/internal/config"
	"github.com/semagency/orderbot/internal/server/http/handlers"
	"github.com/semagency/orderbot/internal/server/http/middleware"

	pkgAuth "github.com/semagency/orderbot/internal/pkg/auth"
)

// Setup configures the gin router for the ops API.
func Setup(
	facade handlers.OpsFacade,
	checker handlers.HealthChecker,
	verifier pkgAuth.TokenVerifier,
	cfg *config.Config,
	logger *slog.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	healthHandler := handlers.NewHealthHandler(checker)
	orderHandler := handlers.NewOrderHandler(facade, cfg.AdminID)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	ops := api.Group("")
	ops.Use(middleware.TokenRequired(verifier, cfg.OpsTokenHash))
	ops.GET("/orders/pending", orderHandler.Pending)
	ops.GET("/orders/:id", orderHandler.Get)
	ops.GET("/users/:id/orders", orderHandler.ListByUser)

	return engine
}
