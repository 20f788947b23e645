// cmd/portfolio-rest-api/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/portfolio-api/internal/api/rest/v1"
	"github.com/MGTheTrain/portfolio-api/internal/app"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/auth"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/ratelimit"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/storage"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @title Portfolio API
// @version 1.0
// @description Content of a personal portfolio site, with uploads and an admin login.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML configuration file")
	flag.Parse()
	if *configPath == "" {
		*configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx := context.Background()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.limiter.Close(); err != nil {
			log.Warn("Failed to close rate limiter: ", err)
		}
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	services  v1.Services
	limiter   ratelimit.Limiter
	uploadDir string
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	store, err := storage.NewLocalFileStore(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	services, err := initializeApplicationServices(db, store, cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.Auth.AdminEmail != "" {
		if err := services.Auth.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return nil, fmt.Errorf("failed to bootstrap admin account: %w", err)
		}
	}

	limiter, err := ratelimit.New(ctx, cfg.RateLimit, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	return &appDependencies{
		db:        db,
		services:  services,
		limiter:   limiter,
		uploadDir: store.Dir(),
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.MaxMultipartMemory = cfg.Storage.MaxFileSize
	r.Use(v1.RequestID(), v1.RequestLogger(log), v1.Recovery(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", v1.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, v1.RouteOptions{
		UploadPrefix: cfg.Storage.PublicPrefix,
		UploadDir:    deps.uploadDir,
		Limiter:      deps.limiter,
		Ping:         dbPinger(deps.db),
		Logger:       log,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

func dbPinger(db *gorm.DB) v1.Pinger {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// initializeApplicationServices sets up all repositories and application services
func initializeApplicationServices(db *gorm.DB, store *storage.LocalFileStore, authSettings config.AuthSettings, log logger.Logger) (v1.Services, error) {
	var services v1.Services

	bioRepo, err := persistence.NewGormBioRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create bio repository: %w", err)
	}
	educationRepo, err := persistence.NewGormEducationRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create education repository: %w", err)
	}
	experienceRepo, err := persistence.NewGormExperienceRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create experience repository: %w", err)
	}
	skillRepo, err := persistence.NewGormSkillRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create skill repository: %w", err)
	}
	skillCategoryRepo, err := persistence.NewGormSkillCategoryRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create skill category repository: %w", err)
	}
	projectRepo, err := persistence.NewGormProjectRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create project repository: %w", err)
	}
	projectCategoryRepo, err := persistence.NewGormProjectCategoryRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create project category repository: %w", err)
	}
	contactRepo, err := persistence.NewGormContactRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create contact repository: %w", err)
	}
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create user repository: %w", err)
	}

	hasher, err := auth.NewBcryptHasher(0)
	if err != nil {
		return services, fmt.Errorf("failed to create password hasher: %w", err)
	}
	tokens, err := auth.NewJWTManager(authSettings.JWTSecret, authSettings.TokenTTL)
	if err != nil {
		return services, fmt.Errorf("failed to create token manager: %w", err)
	}

	if services.Bio, err = app.NewBioService(bioRepo, store, log); err != nil {
		return services, fmt.Errorf("failed to create bio service: %w", err)
	}
	if services.Education, err = app.NewEducationService(educationRepo, store, log); err != nil {
		return services, fmt.Errorf("failed to create education service: %w", err)
	}
	if services.Experience, err = app.NewExperienceService(experienceRepo, store, log); err != nil {
		return services, fmt.Errorf("failed to create experience service: %w", err)
	}
	if services.Skill, err = app.NewSkillService(skillRepo, skillCategoryRepo, store, log); err != nil {
		return services, fmt.Errorf("failed to create skill service: %w", err)
	}
	if services.SkillCategory, err = app.NewSkillCategoryService(skillCategoryRepo, skillRepo, log); err != nil {
		return services, fmt.Errorf("failed to create skill category service: %w", err)
	}
	if services.Project, err = app.NewProjectService(projectRepo, projectCategoryRepo, store, log); err != nil {
		return services, fmt.Errorf("failed to create project service: %w", err)
	}
	if services.ProjectCategory, err = app.NewProjectCategoryService(projectCategoryRepo, projectRepo, log); err != nil {
		return services, fmt.Errorf("failed to create project category service: %w", err)
	}
	if services.Contact, err = app.NewContactService(contactRepo, log); err != nil {
		return services, fmt.Errorf("failed to create contact service: %w", err)
	}
	if services.Auth, err = app.NewAuthService(userRepo, hasher, tokens, log); err != nil {
		return services, fmt.Errorf("failed to create auth service: %w", err)
	}
	if services.Upload, err = app.NewUploadService(store, log); err != nil {
		return services, fmt.Errorf("failed to create upload service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return services, nil
}
