package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wavely/wavely-backend/internal/config"
	"github.com/wavely/wavely-backend/internal/domain"
	"github.com/wavely/wavely-backend/internal/handler"
	"github.com/wavely/wavely-backend/internal/middleware"
	"github.com/wavely/wavely-backend/internal/repository"
	"github.com/wavely/wavely-backend/internal/routes"
	"github.com/wavely/wavely-backend/internal/service"
	pkgjwt "github.com/wavely/wavely-backend/pkg/jwt"
	pkglogger "github.com/wavely/wavely-backend/pkg/logger"
	"github.com/wavely/wavely-backend/pkg/session"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.Get().Info().
		Str("env", env).
		Strs("dotenv", dotenvFiles).
		Msg("starting")

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Get().Info().Str("host", cfg.Database.Host).Msg("connected to postgres")

	// Redis backs token revocation only; the API stays usable without it
	sessions, err := session.NewStore(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		pkglogger.Get().Warn().Err(err).Msg("redis unavailable, logout revocation disabled")
		sessions = nil
	}

	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL.Std(), cfg.JWT.RefreshTTL.Std())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	chatRepo := repository.NewChatRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, followRepo, jwtManager, sessions)
	feedService := service.NewFeedService(postRepo)
	postService := service.NewPostService(postRepo, likeRepo, commentRepo, notifRepo)
	chatService := service.NewChatService(chatRepo, messageRepo, userRepo, notifRepo)
	notificationService := service.NewNotificationService(notifRepo, userRepo)
	adminService := service.NewAdminService(userRepo, postRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(feedService, postService)
	messageHandler := handler.NewMessageHandler(chatService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	adminHandler := handler.NewAdminHandler(adminService)

	if env != "development" && env != "dev" && env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout.Std()))

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-User-Id"},
		MaxAge:       24 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Setup(router, authHandler, postHandler, messageHandler, notificationHandler, adminHandler, jwtManager, sessions)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Get().Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDB opens the Postgres connection and keeps the schema current.
// TranslateError lets unique-constraint conflicts surface as
// gorm.ErrDuplicatedKey, which the like and chat creation paths rely on.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.App.Env == "local" || cfg.App.Env == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.PostLike{},
		&domain.Comment{},
		&domain.Chat{},
		&domain.ChatParticipant{},
		&domain.Message{},
		&domain.Notification{},
		&domain.Follow{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
