package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub-backend/internal/config"
	"github.com/campushub/campushub-backend/internal/handler"
	"github.com/campushub/campushub-backend/internal/middleware"
	"github.com/campushub/campushub-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Schedule     *handler.ScheduleHandler
	Contact      *handler.ContactHandler
	Faculty      *handler.FacultyHandler
	Announcement *handler.AnnouncementHandler
	Media        *handler.MediaHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Stored attachments, served with aggressive caching (1 year) since
	// generated names never change content.
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.GET("/:filename", handlers.Media.ServeUpload)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/media/upload", handlers.Media.UploadMedia)

		schedules := api.Group("/schedules")
		{
			schedules.GET("", handlers.Schedule.List)
			schedules.POST("", handlers.Schedule.Create)
			schedules.GET("/:id", handlers.Schedule.Get)
			schedules.PUT("/:id", handlers.Schedule.Update)
			schedules.DELETE("/:id", handlers.Schedule.Delete)
		}

		contacts := api.Group("/contacts")
		{
			contacts.GET("", handlers.Contact.List)
			contacts.POST("", handlers.Contact.Create)
			contacts.GET("/:id", handlers.Contact.Get)
			contacts.PUT("/:id", handlers.Contact.Update)
			contacts.DELETE("/:id", handlers.Contact.Delete)
		}

		faculties := api.Group("/faculties")
		{
			faculties.GET("", handlers.Faculty.List)
			faculties.POST("", handlers.Faculty.Create)
			faculties.GET("/:id", handlers.Faculty.Get)
			faculties.PUT("/:id", handlers.Faculty.Update)
			faculties.DELETE("/:id", handlers.Faculty.Delete)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", handlers.Announcement.List)
			announcements.POST("", handlers.Announcement.Create)
			announcements.GET("/:id", handlers.Announcement.Get)
			announcements.PUT("/:id", handlers.Announcement.Update)
			announcements.DELETE("/:id", handlers.Announcement.Delete)
		}
	}

	return router
}
