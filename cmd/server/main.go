package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PS-gitpro/myblog/internal/auth"
	"github.com/PS-gitpro/myblog/internal/config"
	"github.com/PS-gitpro/myblog/internal/handler"
	"github.com/PS-gitpro/myblog/internal/infrastructure/database"
	"github.com/PS-gitpro/myblog/internal/logger"
	"github.com/PS-gitpro/myblog/internal/mailer"
	"github.com/PS-gitpro/myblog/internal/metrics"
	"github.com/PS-gitpro/myblog/internal/middleware"
	"github.com/PS-gitpro/myblog/internal/repository"
	"github.com/PS-gitpro/myblog/internal/service"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// sessionSweepInterval is how often expired sessions get purged.
const sessionSweepInterval = time.Hour

func main() {
	// A .env file is optional; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	profileRepo := repository.NewPostgresProfileRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	postRepo := repository.NewPostgresPostRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	likeRepo := repository.NewPostgresLikeRepository(pool)
	sessionRepo := repository.NewPostgresSessionRepository(pool)

	// Sessions and mail
	sessions := auth.NewSessions(sessionRepo, cfg.SessionTTL)

	var mail mailer.Mailer
	if cfg.MailEnabled() {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
		logger.Info("Mail dispatch enabled", slog.String("smtp_host", cfg.SMTPHost))
	} else {
		mail = mailer.NewNoopMailer()
		logger.Info("Mail dispatch disabled")
	}

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	postService := service.NewPostService(postRepo, categoryRepo, commentRepo, v)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, mail, v)
	likeService := service.NewLikeService(likeRepo, postRepo)
	accountService := service.NewAccountService(userRepo, profileRepo, mail, v, cfg.SiteName)
	categoryService := service.NewCategoryService(categoryRepo, v)

	// Initialize handlers
	site := handler.Site{
		Name:        cfg.SiteName,
		Description: cfg.SiteDescription,
		Author:      cfg.SiteAuthor,
	}
	postHandler := handler.NewPostHandler(postService, site)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	accountHandler := handler.NewAccountHandler(accountService, sessions)
	adminHandler := handler.NewAdminHandler(commentService, categoryService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(middleware.CurrentUser(sessions, userRepo))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	router.GET("/", postHandler.Home)
	router.GET("/about/", postHandler.About)
	router.GET("/posts/", postHandler.List)
	router.GET("/posts/:id/", postHandler.Detail)
	router.GET("/category/:id/", postHandler.ByCategory)
	router.GET("/search/", postHandler.Search)
	router.GET("/register/", accountHandler.RegisterForm)
	router.POST("/register/", accountHandler.Register)
	router.GET("/login/", accountHandler.LoginForm)
	router.POST("/login/", accountHandler.Login)

	// Routes requiring a logged-in user
	authed := router.Group("/", middleware.RequireUser())
	{
		authed.POST("/logout/", accountHandler.Logout)
		authed.GET("/create/", postHandler.CreateForm)
		authed.POST("/create/", postHandler.Create)
		authed.GET("/my-posts/", postHandler.MyPosts)
		authed.POST("/posts/:id/comment/", commentHandler.Add)
		authed.POST("/posts/:id/like/", likeHandler.Toggle)
		authed.GET("/profile/", accountHandler.Profile)
		authed.POST("/profile/", accountHandler.UpdateProfile)
	}

	// Admin routes
	admin := router.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/comments/", adminHandler.PendingComments)
		admin.POST("/comments/approve/", adminHandler.ApproveComments)
		admin.POST("/categories/", adminHandler.CreateCategory)
		admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
	}

	// Purge expired sessions in the background
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepSessions(sweepCtx, sessionRepo)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// sweepSessions periodically deletes expired sessions so the table does
// not grow without bound.
func sweepSessions(ctx context.Context, sessions repository.SessionRepository) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if deleted, err := sessions.DeleteExpired(ctx); err != nil {
				logger.Error("Session sweep failed",
					slog.String("error", err.Error()))
			} else if deleted > 0 {
				logger.Info("Purged expired sessions",
					slog.Int("deleted", int(deleted)))
			}
		}
	}
}
