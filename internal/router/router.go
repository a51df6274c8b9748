package router

import (
	"time"

	"catalog/internal/config"
	"catalog/internal/handler"
	"catalog/internal/middleware"
	"catalog/internal/repository"
	"catalog/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()...))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))
	r.Use(middleware.Notifications())

	// ── Store ────────────────────────────────────────────────────────────────
	store := repository.NewStore(db)

	// ── Services ─────────────────────────────────────────────────────────────
	supplierSvc := service.NewSupplierService(store)
	productSvc := service.NewProductService(store)

	// ── Handlers ─────────────────────────────────────────────────────────────
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	productsH := handler.NewProductsHandler(productSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")

	// Reads are public
	v1.GET("/suppliers", suppliersH.List)
	v1.GET("/suppliers/:id", suppliersH.Get)
	v1.GET("/suppliers/:id/full", suppliersH.GetFull)
	v1.GET("/suppliers/:id/products", productsH.ListBySupplier)
	v1.GET("/products", productsH.List)
	v1.GET("/products/:id", productsH.Get)

	// Writes need a token granting the action on the resource
	auth := v1.Group("", middleware.JWTAuth(cfg.JWTSecret))
	{
		auth.POST("/suppliers", middleware.RequireClaim("Supplier", "Add"), suppliersH.Create)
		auth.PUT("/suppliers/:id", middleware.RequireClaim("Supplier", "Edit"), suppliersH.Update)
		auth.PUT("/suppliers/:id/address", middleware.RequireClaim("Supplier", "Edit"), suppliersH.UpdateAddress)
		auth.DELETE("/suppliers/:id", middleware.RequireClaim("Supplier", "Remove"), suppliersH.Delete)

		auth.POST("/products", middleware.RequireClaim("Product", "Add"), productsH.Create)
		auth.PUT("/products/:id", middleware.RequireClaim("Product", "Edit"), productsH.Update)
		auth.DELETE("/products/:id", middleware.RequireClaim("Product", "Remove"), productsH.Delete)
	}

	return r
}
