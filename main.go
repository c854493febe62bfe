package main

import (
	"fmt"

	"portfolio-backend/config"
	"portfolio-backend/database"
	routes "portfolio-backend/internal/app/http"
	"portfolio-backend/internal/app/http/middleware"
	"portfolio-backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	initLogger()
	database.InitDB()
	initStorage()

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(500, gin.H{"error": "Internal server error", "message": fmt.Sprint(recovered)})
	}))
	r.Use(middleware.RequestLog())

	// CORS before routes: every response carries the permissive headers.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "Cache-Control", "Pragma"},
	}))

	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.PORT); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

func initLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(config.LOG_LEVEL)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initStorage connects the optional object store. Without it the media
// routes answer 503 but the rest of the API stays up.
func initStorage() {
	if config.MINIO_ENDPOINT == "" {
		logrus.Warn("MINIO_ENDPOINT not set, media routes disabled")
		return
	}

	store, err := storage.NewMinioStore(
		config.MINIO_ENDPOINT,
		config.MINIO_ACCESS_KEY,
		config.MINIO_SECRET_KEY,
		config.MINIO_BUCKET,
		config.MINIO_USE_SSL,
	)
	if err != nil {
		logrus.Fatalf("Failed to connect to object storage: %v", err)
	}

	storage.Store = store
	logrus.WithField("bucket", config.MINIO_BUCKET).Info("Object storage connected")
}
