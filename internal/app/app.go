package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogHTTP "filmoteka/internal/controller/http"
	"filmoteka/internal/repo/persistent"
	"filmoteka/internal/usecase"
	"filmoteka/pkg/config"
	"filmoteka/pkg/jwt"
	"filmoteka/pkg/logger"
	"filmoteka/pkg/middleware"
	"filmoteka/pkg/queue"
	"filmoteka/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "filmoteka/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, storageClient *storage.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	movieRepo := persistent.NewMovieRepository(db)
	reviewRepo := persistent.NewReviewRepository(db)
	userRepo := persistent.NewUserRepository(db)
	activityRepo := persistent.NewActivityRepository(db)

	// Initialize use cases
	catalogUseCase := usecase.NewCatalogUseCase(movieRepo, log)
	interactionUseCase := usecase.NewInteractionUseCase(movieRepo, activityRepo, redisClient, queueClient, log)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, movieRepo, activityRepo, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, storageClient, log)

	// Initialize HTTP handlers
	movieHandler := catalogHTTP.NewMovieHandler(catalogUseCase, log)
	favoriteHandler := catalogHTTP.NewFavoriteHandler(interactionUseCase, log)
	reviewHandler := catalogHTTP.NewReviewHandler(reviewUseCase, log)
	historyHandler := catalogHTTP.NewHistoryHandler(interactionUseCase, log)
	authHandler := catalogHTTP.NewAuthHandler(authUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Public endpoints
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Catalog reads work with or without a token; a token fills in
	// the viewer's is_favorite flags.
	catalog := api.Group("")
	catalog.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		catalog.GET("/movies", movieHandler.ListMovies)
		catalog.GET("/movies/search", movieHandler.SearchMovies)
		catalog.GET("/movies/top", movieHandler.TopMovies)
		catalog.GET("/movies/:id", movieHandler.GetMovie)
		catalog.GET("/movies/:id/favorites/count", favoriteHandler.FavoriteCount)
		catalog.GET("/reviews", reviewHandler.ListReviews)
		catalog.GET("/tags", movieHandler.ListTags)
	}

	// Authenticated endpoints
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	authed.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		authed.POST("/favorites/:movie_id", favoriteHandler.ToggleFavorite)
		authed.DELETE("/favorites/:movie_id", favoriteHandler.RemoveFavorite)
		authed.GET("/favorites", favoriteHandler.ListFavorites)

		authed.POST("/movies/:id/reviews", reviewHandler.CreateReview)
		authed.PUT("/reviews/:id", reviewHandler.UpdateReview)
		authed.DELETE("/reviews/:id", reviewHandler.DeleteReview)

		authed.POST("/movies/:id/view", historyHandler.RecordView)
		authed.GET("/history", historyHandler.GetHistory)

		authed.GET("/me", authHandler.Me)
		authed.PUT("/profile", authHandler.UpdateProfile)
		authed.POST("/profile/avatar", authHandler.UploadAvatar)
		authed.GET("/preferences", authHandler.GetPreferences)
		authed.PUT("/preferences", authHandler.UpdatePreferences)
	}

	// Admin endpoints
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.RequireRoles("admin"))
	{
		admin.POST("/movies", movieHandler.CreateMovie)
		admin.PUT("/movies/:id", movieHandler.UpdateMovie)
		admin.DELETE("/movies/:id", movieHandler.DeleteMovie)
		admin.POST("/directors", movieHandler.CreateDirector)
		admin.DELETE("/directors/:id", movieHandler.DeleteDirector)
		admin.POST("/actors", movieHandler.CreateActor)
		admin.POST("/tags", movieHandler.CreateTag)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Filmoteka API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Filmoteka API exited")
}
