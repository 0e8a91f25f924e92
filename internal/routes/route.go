package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wastenot/internal/container"
	"github.com/joshua-takyi/wastenot/internal/handlers"
	"github.com/joshua-takyi/wastenot/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	cfg := container.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	secureCookies := cfg.IsProduction()

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "wastenot-api",
			})
		})

		v1.POST("/signup", handlers.SignUp(container.AuthService))
		v1.POST("/login", handlers.Login(container.AuthService, secureCookies))
		v1.POST("/logout", handlers.Logout(container.AuthService, secureCookies, container.Logger))
	}

	// Anonymous callers pass through; a rejected session is answered with 401.
	app := v1.Group("")
	app.Use(middleware.Authenticate(container.Tokens, container.AuthService, secureCookies, container.Logger))

	inventoryRoutes := app.Group("/inventory")
	{
		inventoryRoutes.GET("", handlers.ListInventory(container.InventoryService))
		inventoryRoutes.GET("/categories", handlers.ListCategories())
		inventoryRoutes.GET("/:id", handlers.GetInventoryItem(container.InventoryService))
		inventoryRoutes.POST("", handlers.CreateInventoryItem(container.InventoryService, container.ProfileService))
		inventoryRoutes.PUT("/:id", handlers.UpdateInventoryItem(container.InventoryService, container.ProfileService))
	}

	profileRoutes := app.Group("/profile")
	{
		profileRoutes.GET("", handlers.GetProfile(container.ProfileService))
		profileRoutes.PUT("", handlers.SaveProfile(container.ProfileService))
		profileRoutes.POST("/avatar", handlers.UploadAvatar(container.ProfileService))
		profileRoutes.POST("/location", handlers.ResolveLocation(container.ProfileService))
	}

	return r
}
