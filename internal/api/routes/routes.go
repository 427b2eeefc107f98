package routes

import (
	"rental-inventory-backend/internal/api/handlers"
	"rental-inventory-backend/internal/api/middleware"
	"rental-inventory-backend/internal/auth"
	"rental-inventory-backend/internal/config"
	"rental-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigin))

	limits := handlers.PageLimits{Default: cfg.PageLimitDefault, Max: cfg.PageLimitMax}

	// Initialize services
	userService := service.NewUserService(db)
	registrationService := service.NewRegistrationService(db, cfg.TrialDays)
	billingService, err := service.NewBillingService(db, cfg.PlansFile, cfg.WebhookSecret)
	if err != nil {
		return nil, err
	}

	authService := auth.NewService(cfg.JWTSecret, cfg.TokenExpiry, userService)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := auth.NewHandler(authService, registrationService)
	organizationHandler := handlers.NewOrganizationHandler(db)
	userHandler := handlers.NewUserHandler(userService, limits)
	billingHandler := handlers.NewBillingHandler(billingService)
	rentalHandler := handlers.NewRentalHandler(db, limits)

	brands := handlers.NewBrandResource(db, limits)
	modelResources := handlers.NewModelResource(db, limits)
	kits := handlers.NewKitResource(db, limits)
	categories := handlers.NewCategoryResource(db, limits)
	customFields := handlers.NewCustomFieldResource(db, limits)
	items := handlers.NewItemResource(db, limits)
	externalRenters := handlers.NewExternalRenterResource(db, limits)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Payment provider webhook, authenticated by shared secret
	router.POST("/webhooks/billing", billingHandler.Webhook)

	// API routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Tenant self-service, reachable on any subscription state
		v1.GET("/organization", organizationHandler.Get)
		v1.PUT("/organization", organizationHandler.Update)
		v1.GET("/subscription", billingHandler.GetSubscription)
		v1.GET("/plans", billingHandler.ListPlans)

		// User management
		v1.GET("/users", userHandler.List)
		v1.GET("/users/:id", userHandler.Get)
		v1.PUT("/users", authMiddleware.RequireAdmin(), userHandler.Create)
		v1.PUT("/users/:id", authMiddleware.RequireAdmin(), userHandler.Update)
		v1.DELETE("/users/:id", authMiddleware.RequireAdmin(), userHandler.Archive)

		// Catalog and rentals, gated on a live subscription
		gated := v1.Group("")
		gated.Use(middleware.SubscriptionGate(billingService))
		{
			registerResource(gated, "/brands", "id", brands)
			registerResource(gated, "/models", "id", modelResources)
			registerResource(gated, "/kits", "id", kits)
			registerResource(gated, "/categories", "id", categories)
			registerResource(gated, "/custom-fields", "id", customFields)
			registerResource(gated, "/items", "barcode", items)
			registerResource(gated, "/external-renters", "id", externalRenters)

			gated.GET("/rentals", rentalHandler.List)
			gated.GET("/rentals/:id", rentalHandler.Get)
			gated.PUT("/rentals", rentalHandler.Create)
			gated.PUT("/rentals/:id", rentalHandler.Update)
			gated.PUT("/rentals/:id/return", rentalHandler.Return)
			gated.DELETE("/rentals/:id", rentalHandler.Delete)
		}
	}

	return router, nil
}

// resourceHandlers is the handler set the generic endpoint factory
// produces for every resource.
type resourceHandlers interface {
	List(*gin.Context)
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

// registerResource wires the five generic routes of a resource under the
// given path, with the keyed routes using the resource's key parameter.
func registerResource(group *gin.RouterGroup, path, key string, h resourceHandlers) {
	group.GET(path, h.List)
	group.GET(path+"/:"+key, h.Get)
	group.PUT(path, h.Create)
	group.PUT(path+"/:"+key, h.Update)
	group.DELETE(path+"/:"+key, h.Delete)
}
