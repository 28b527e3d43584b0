package app

import (
	"fmt"

	"devconnect_backend/internal/config"
	"devconnect_backend/internal/github"
	"devconnect_backend/internal/handlers"
	"devconnect_backend/internal/logger"
	"devconnect_backend/internal/middleware"
	"devconnect_backend/internal/models"
	"devconnect_backend/internal/repositories"
	"devconnect_backend/internal/routes"
	"devconnect_backend/internal/services"
	"devconnect_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	)
}

// SetupRouter assembles services, handlers and middleware into a gin engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	postRepo := repositories.NewPostRepository()

	githubClient := github.NewClient(cfg.Github.APIBase, cfg.Github.Token)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, profileRepo, postRepo)
	profileService := services.NewProfileService(profileRepo, userRepo)
	postService := services.NewPostService(postRepo, userRepo)
	githubService := services.NewGithubService(githubClient)

	return &services.ServiceContainer{
		AuthService:    authService,
		UserService:    userService,
		ProfileService: profileService,
		PostService:    postService,
		GithubService:  githubService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, services.ProfileService, services.UserService, services.GithubService),
		PostHandler:    handlers.NewPostHandler(baseHandler, services.PostService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
