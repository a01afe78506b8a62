package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edupanel/campuscore/docs" // generated swagger docs
	appControllers "github.com/edupanel/campuscore/internal/app/controllers"
	appMigrations "github.com/edupanel/campuscore/internal/app/migrations"
	appRepos "github.com/edupanel/campuscore/internal/app/repositories"
	appRoutes "github.com/edupanel/campuscore/internal/app/routes"
	appServices "github.com/edupanel/campuscore/internal/app/services"
	"github.com/edupanel/campuscore/internal/config"
	"github.com/edupanel/campuscore/internal/db"
	appMiddleware "github.com/edupanel/campuscore/internal/middleware"
	pkgAuth "github.com/edupanel/campuscore/internal/pkg/auth"
	"github.com/edupanel/campuscore/internal/pkg/cache"
	"github.com/edupanel/campuscore/internal/pkg/logger"
	"github.com/edupanel/campuscore/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	DepartmentService    appServices.DepartmentService
	SchoolService        appServices.SchoolService
	SessionService       appServices.SessionService
	CourseService        appServices.CourseService
	AuthController       *appControllers.AuthController
	DepartmentController *appControllers.DepartmentController
	SchoolController     *appControllers.SchoolController
	SessionController    *appControllers.SessionController
	CourseController     *appControllers.CourseController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	ListCache            *cache.RedisCache
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding problems should not take the server down
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	if cfg.Redis.URL != "" {
		listCache, err := cache.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			// Caching is an optimization, run without it when Redis is down
			lgr.Warn().Err(err).Msg("Redis unavailable, list caching disabled")
		} else {
			deps.ListCache = listCache
			lgr.Info().Msg("Redis list cache enabled")
		}
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenExp(),
		RefreshTokenExp: cfg.RefreshTokenExp(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository, deps.ListCache)
	deps.SchoolService = appServices.NewSchoolService(deps.Repos.SchoolRepository, deps.ListCache)
	deps.SessionService = appServices.NewSessionService(deps.Repos.SessionRepository, deps.ListCache)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.SchoolRepository,
		deps.Repos.SessionRepository,
		deps.ListCache,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.SchoolController = appControllers.NewSchoolController(deps.SchoolService)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", appMiddleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DepartmentController,
		deps.SchoolController,
		deps.SessionController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
