package handlers

import (
	"fmt"

	"github.com/SscSPs/ledger_core/cmd/docs"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/SscSPs/ledger_core/internal/utils/format"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	pinger Pinger,
) error {
	dto.RegisterValidators()

	// Add health check routes
	registerHealthRoutes(r, pinger)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	lim, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to build rate limiter: %w", err)
	}

	// Every ledger resource lives under a workplace
	v1 := r.Group("/api/v1", middleware.RateLimit(lim), middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	workplace := v1.Group("/workplaces/:workplace_id")

	formatter := format.New(cfg.DisplayDecimalPlaces, cfg.DisplayDateFormat)

	RegisterAccountRoutes(workplace, service.Chart)
	RegisterJournalRoutes(workplace, service.Journal)
	RegisterLedgerRoutes(workplace, service.Ledger, formatter)
	RegisterReconciliationRoutes(workplace, service.Reconciliation, formatter)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
