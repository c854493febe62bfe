package routes

import (
	exhibitionsapi "portfolio-backend/internal/api/exhibitions"
	mediaapi "portfolio-backend/internal/api/media"
	newsletterapi "portfolio-backend/internal/api/newsletter"
	pressapi "portfolio-backend/internal/api/press"
	siteapi "portfolio-backend/internal/api/site"
	worksapi "portfolio-backend/internal/api/works"
	"portfolio-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the whole surface. Reads are public; every mutating
// route, newsletter subscribe included, lives in the admin group behind the
// shared-secret token, with JSON input sanitization applied on top.
func RegisterRoutes(r *gin.Engine) {
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Not found"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public reads
	r.GET("/api/artworks", worksapi.ListArtworks)
	r.GET("/api/artworks/:id", worksapi.GetArtwork)
	r.GET("/api/sections", worksapi.ListSections)
	r.GET("/api/sections/:id", worksapi.GetSection)
	r.GET("/api/sections/:id/artworks", worksapi.ListSectionArtworks)
	r.GET("/api/collections", worksapi.ListCollections)
	r.GET("/api/collections/:idOrSlug", worksapi.GetCollection)
	r.GET("/api/exhibitions", exhibitionsapi.ListExhibitions)
	r.GET("/api/exhibitions/:idOrSlug", exhibitionsapi.GetExhibition)
	r.GET("/api/critics", pressapi.ListCritics)
	r.GET("/api/critics/:id", pressapi.GetCritic)
	r.GET("/api/content", siteapi.ListContentBlocks)
	r.GET("/api/content/:key", siteapi.GetContentBlock)
	r.GET("/api/newsletter", newsletterapi.ListSubscribers)

	r.GET("/api/media", mediaapi.ListMedia)
	r.GET("/api/storage/stats", mediaapi.StorageStats)
	r.GET("/api/regenerate-thumbnails", mediaapi.MissingThumbnails)
	r.GET("/api/images/:filename/usage", mediaapi.ImageUsage)
	r.GET("/images/:filename", mediaapi.ServeImage)

	// Admin writes
	admin := r.Group("/")
	admin.Use(middleware.RequireAdminToken(), middleware.SanitizeAndCleanInputMiddleware())

	admin.POST("/api/artworks", worksapi.CreateArtwork)
	admin.PUT("/api/artworks/:id", worksapi.UpdateArtwork)
	admin.DELETE("/api/artworks/:id", worksapi.DeleteArtwork)

	admin.POST("/api/sections", worksapi.CreateSection)
	admin.PUT("/api/sections/:id", worksapi.UpdateSection)
	admin.DELETE("/api/sections/:id", worksapi.DeleteSection)

	admin.POST("/api/collections", worksapi.CreateCollection)
	admin.PUT("/api/collections/:idOrSlug", worksapi.UpdateCollection)
	admin.DELETE("/api/collections/:idOrSlug", worksapi.DeleteCollection)

	admin.POST("/api/exhibitions", exhibitionsapi.CreateExhibition)
	admin.PUT("/api/exhibitions/:idOrSlug", exhibitionsapi.UpdateExhibition)
	admin.DELETE("/api/exhibitions/:idOrSlug", exhibitionsapi.DeleteExhibition)

	admin.POST("/api/critics", pressapi.CreateCritic)
	admin.PUT("/api/critics/:id", pressapi.UpdateCritic)
	admin.DELETE("/api/critics/:id", pressapi.DeleteCritic)

	admin.PUT("/api/content/:key", siteapi.UpsertContentBlock)

	admin.POST("/api/upload", mediaapi.Upload)
	admin.DELETE("/api/images/:filename", mediaapi.DeleteImage)

	admin.POST("/api/newsletter", newsletterapi.Subscribe)
	admin.DELETE("/api/newsletter/:id", newsletterapi.DeleteSubscriber)
}
