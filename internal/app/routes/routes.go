package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "hearttune-http-service/docs"
	"hearttune-http-service/internal/app/controllers"
	"hearttune-http-service/internal/app/middleware"
	"hearttune-http-service/internal/domain/services/container"
	"hearttune-http-service/internal/infrastructure/config"
)

// SetupRouter initialises and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitAuthMiddleware(cfg, db)
	return NewRouter(serviceContainer)
}

// NewRouter builds the engine around an existing service container.
// Split out from SetupRouter so tests can wire their own container.
func NewRouter(serviceContainer *container.ServiceContainer) *gin.Engine {
	r := gin.Default()

	// CORS: the mobile client is served from arbitrary origins
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// The live heartbeat slot sits at the root, outside /api, where
	// the wearable bridge reports it
	r.POST("/heartbeat", controllers.HandleHeartbeatFunc(container, "setLive"))
	r.GET("/heartbeat",
		middleware.Cache(middleware.CacheConfig{Expiration: 2 * time.Second}),
		controllers.HandleHeartbeatFunc(container, "getLive"))

	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers the routes reachable without a token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 10 requests per second per IP, bursts of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))

	api.POST("/register", controllers.HandleAuthFunc(container, "register"))
	api.POST("/login", controllers.HandleAuthFunc(container, "login"))
	api.POST("/forgot-password", controllers.HandleAuthFunc(container, "forgotPassword"))

	heartbeatGroup := api.Group("/heartbeat")
	heartbeatGroup.POST("/add", controllers.HandleHeartbeatFunc(container, "addSample"))
	heartbeatGroup.GET("/:childName/:familyCode", controllers.HandleHeartbeatFunc(container, "getLatest"))
}

// registerAuthenticatedRoutes registers the routes behind the bearer
// token check
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())
	auth.Use(middleware.IPRateLimiter(30, 50))

	settingsGroup := auth.Group("/settings")
	settingsGroup.POST("/update-account", controllers.HandleSettingsFunc(container, "updateAccount"))
	settingsGroup.POST("/change-password", controllers.HandleSettingsFunc(container, "changePassword"))
	settingsGroup.POST("/delete-account", controllers.HandleSettingsFunc(container, "deleteAccount"))

	playlistGroup := auth.Group("/playlist")
	playlistGroup.POST("/add", controllers.HandlePlaylistFunc(container, "addSong"))
	playlistGroup.GET("/user/:userId", controllers.HandlePlaylistFunc(container, "getPlaylist"))
	playlistGroup.DELETE("/delete/:songId/:userId", controllers.HandlePlaylistFunc(container, "deleteSong"))
	playlistGroup.PUT("/song/:songId/:userId", controllers.HandlePlaylistFunc(container, "renameSong"))
	playlistGroup.PUT("/toggle-favorite/:songId/:userId", controllers.HandlePlaylistFunc(container, "toggleFavorite"))
	playlistGroup.GET("/favorites/:userId", controllers.HandlePlaylistFunc(container, "getFavorites"))
}
