package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/edunexus/schoolrecords/internal/app/controllers"
	appMigrations "github.com/edunexus/schoolrecords/internal/app/migrations"
	appRepos "github.com/edunexus/schoolrecords/internal/app/repositories"
	appRoutes "github.com/edunexus/schoolrecords/internal/app/routes"
	appServices "github.com/edunexus/schoolrecords/internal/app/services"
	"github.com/edunexus/schoolrecords/internal/config"
	"github.com/edunexus/schoolrecords/internal/db"
	appMiddleware "github.com/edunexus/schoolrecords/internal/middleware"
	pkgAuth "github.com/edunexus/schoolrecords/internal/pkg/auth"
	"github.com/edunexus/schoolrecords/internal/pkg/avatar"
	"github.com/edunexus/schoolrecords/internal/pkg/filestorage"
	"github.com/edunexus/schoolrecords/internal/pkg/helpers"
	"github.com/edunexus/schoolrecords/internal/pkg/logger"
	"github.com/edunexus/schoolrecords/internal/pkg/tokenstore"
	"github.com/edunexus/schoolrecords/internal/pkg/validation"
)

// DefaultConfigPath is used when CONFIG_PATH is not set
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	TokenLimiter   *appMiddleware.IPRateLimiter
	JWTService     *pkgAuth.JWTService
	FileStorage    filestorage.FileStorage
	Blacklist      appServices.TokenBlacklist
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads .env, the YAML config and the environment, then configures the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Warn().Err(err).Msg("Ignoring unreadable .env file")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
	})
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

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool, logger.Component("migrations"))
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// NewJWTService builds the token service from the JWT section
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 60*time.Minute),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 24*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})
}

// NewFileStorage picks the avatar storage backend named by storage.driver
func NewFileStorage(cfg *config.Config) (filestorage.FileStorage, error) {
	if cfg.Storage.Driver == config.StorageDriverOSS {
		oss := cfg.Storage.OSS
		return filestorage.NewOSSStorage(filestorage.OSSConfig{
			Endpoint:        oss.Endpoint,
			Bucket:          oss.Bucket,
			AccessKeyID:     oss.AccessKeyID,
			AccessKeySecret: oss.AccessKeySecret,
			PublicURL:       oss.PublicURL,
		})
	}
	return filestorage.NewLocalStorage(cfg.Server.MediaPath, cfg.MediaURL())
}

// NewBlacklist connects to Redis when an address is configured. Without Redis the
// database revocation alone guards refresh tokens.
func NewBlacklist(cfg *config.Config, lgr zerolog.Logger) appServices.TokenBlacklist {
	if cfg.Redis.Addr == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rdb, err := tokenstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, token blacklist disabled")
		return nil
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis token blacklist enabled")
	return tokenstore.NewRedisBlacklist(rdb)
}

// BuildDependencies initializes repositories on the pool, then everything above them.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	storage, err := NewFileStorage(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	return NewDependencies(cfg, appRepos.NewRepositories(dbPool), storage, NewBlacklist(cfg, lgr), lgr), nil
}

// NewDependencies wires services, middleware and controllers on top of repos
func NewDependencies(
	cfg *config.Config,
	repos *appRepos.Repositories,
	storage filestorage.FileStorage,
	blacklist appServices.TokenBlacklist,
	lgr zerolog.Logger,
) *Dependencies {
	deps := &Dependencies{
		Repos:       repos,
		JWTService:  NewJWTService(cfg),
		FileStorage: storage,
		Blacklist:   blacklist,
		Logger:      lgr,
	}

	deps.Services = appServices.NewServices(repos, appServices.Dependencies{
		JWTService: deps.JWTService,
		Blacklist:  blacklist,
		Storage:    storage,
		Avatar:     avatar.NewProcessor(avatar.DefaultMaxBytes, avatar.DefaultMaxDimension),
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.TokenLimiter = appMiddleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.Services.AuthService, logger.Component("auth")),
		Profile:    appControllers.NewProfileController(deps.Services.ProfileService),
		Department: appControllers.NewDepartmentController(deps.Services.DepartmentService),
		Instructor: appControllers.NewInstructorController(deps.Services.InstructorService),
		Student:    appControllers.NewStudentController(deps.Services.StudentService),
		Course:     appControllers.NewCourseController(deps.Services.CourseService),
		Enrollment: appControllers.NewEnrollmentController(deps.Services.EnrollmentService),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validation.RegisterGinValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(logger.Component("http")))
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.TokenLimiter)

	if cfg.Storage.Driver == config.StorageDriverLocal {
		router.Static("/media", cfg.Server.MediaPath)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
