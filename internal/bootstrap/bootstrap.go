package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/nkurunziza/erinda/internal/app/controllers"
	appMigrations "github.com/nkurunziza/erinda/internal/app/migrations"
	appRepos "github.com/nkurunziza/erinda/internal/app/repositories"
	appRoutes "github.com/nkurunziza/erinda/internal/app/routes"
	appServices "github.com/nkurunziza/erinda/internal/app/services"
	"github.com/nkurunziza/erinda/internal/config"
	"github.com/nkurunziza/erinda/internal/db"
	"github.com/nkurunziza/erinda/internal/metrics"
	appMiddleware "github.com/nkurunziza/erinda/internal/middleware"
	pkgAuth "github.com/nkurunziza/erinda/internal/pkg/auth"
	"github.com/nkurunziza/erinda/internal/pkg/helpers"
	"github.com/nkurunziza/erinda/internal/pkg/logger"
	"github.com/nkurunziza/erinda/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	AttendanceService    appServices.AttendanceService
	ReportService        appServices.ReportService
	DashboardService     appServices.DashboardService
	AuthController       *appControllers.AuthController
	AttendanceController *appControllers.AttendanceController
	ReportController     *appControllers.ReportController
	DashboardController  *appControllers.DashboardController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	RateLimiter          *appMiddleware.RateLimiter
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	RedisClient          *redis.Client
	DBPool               *pgxpool.Pool
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

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

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

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, DBPool: dbPool}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.UserRepository, deps.Repos.ReportRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	if cfg.Redis.Enabled {
		deps.RedisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		deps.RateLimiter = appMiddleware.NewRateLimiter(deps.RedisClient, cfg.RateLimit.PerMinute, lgr)
		lgr.Info().Str("addr", cfg.Redis.Addr).Int("perMinute", cfg.RateLimit.PerMinute).Msg("Rate limiting enabled")
	}

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService, lgr)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)

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

	router := gin.Default()
	router.Use(metrics.GinMiddleware())

	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.GinMiddleware())
	}

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AttendanceController,
		deps.ReportController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := deps.DBPool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
			return
		}
		if deps.RedisClient != nil {
			if err := deps.RedisClient.Ping(ctx).Err(); err != nil {
				// Rate limiting fails open, so a redis outage degrades
				// rather than kills the service
				c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
