package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/homectl/homeyctl/pkg/api/handlers"
	"github.com/homectl/homeyctl/pkg/homey"
	"github.com/homectl/homeyctl/pkg/homey/schema"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine    *gin.Engine
	client    homey.Client
	validator *schema.Validator
}

// NewRouter creates a new API router
func NewRouter(client homey.Client, validator *schema.Validator) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:    engine,
		client:    client,
		validator: validator,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.client)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		// Devices
		devicesHandler := handlers.NewDevicesHandler(r.client)
		capabilityHandler := handlers.NewCapabilityHandler(r.client, r.validator)
		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.GET("/:id", devicesHandler.GetDevice)

			// Capability read/write
			devices.GET("/:id/capabilities/:capability", capabilityHandler.GetCapability)
			devices.PUT("/:id/capabilities/:capability", capabilityHandler.SetCapability)
		}

		// Flows
		flowsHandler := handlers.NewFlowsHandler(r.client)
		v1.GET("/flows", flowsHandler.ListFlows)
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Handler exposes the underlying engine (used in tests).
func (r *Router) Handler() *gin.Engine {
	return r.engine
}
