package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/handler"
	"github.com/goldbach8/DespachoComex/internal/middleware"
	"github.com/goldbach8/DespachoComex/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	logFormat string,
	authH *handler.AuthHandler,
	despachoH *handler.DespachoHandler,
	reportH *handler.ReportHandler,
	bkH *handler.BKHandler,
	supplierH *handler.SupplierHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logFormat))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Despacho ingestion and review
	despachos := protected.Group("/despachos")
	despachos.POST("", despachoH.Ingest)
	despachos.GET("", despachoH.List)
	despachos.GET("/:id", despachoH.GetByID)
	despachos.PATCH("/:id/items/:itemID", despachoH.CorrectItem)
	despachos.GET("/:id/report", reportH.Grouped)

	// BK code list - replacing the list is admin only
	bkCodes := protected.Group("/bk-codes")
	bkCodes.GET("", bkH.List)
	bkCodes.PUT("", middleware.RequireRole(domain.RoleAdmin), bkH.Update)

	// Supplier catalog
	suppliers := protected.Group("/suppliers")
	suppliers.POST("", supplierH.Create)
	suppliers.GET("", supplierH.List)

	return r
}
