package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appCatalog "github.com/beastconsultancy/pathway/internal/app/catalog"
	appControllers "github.com/beastconsultancy/pathway/internal/app/controllers"
	appRoutes "github.com/beastconsultancy/pathway/internal/app/routes"
	appServices "github.com/beastconsultancy/pathway/internal/app/services"
	"github.com/beastconsultancy/pathway/internal/config"
	appMiddleware "github.com/beastconsultancy/pathway/internal/middleware"
	"github.com/beastconsultancy/pathway/internal/pkg/logger"
	"github.com/beastconsultancy/pathway/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Catalog                  *appCatalog.Catalog
	RecommendationService    appServices.RecommendationService // Interface type
	CatalogService           appServices.CatalogService        // Interface type
	RecommendationController *appControllers.RecommendationController
	CatalogController        *appControllers.CatalogController
	Logger                   zerolog.Logger
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupCatalog seeds a starter catalog when none exists and loads the
// configured data files into the immutable in-memory index. A catalog
// with zero countries is a fatal configuration error.
func SetupCatalog(cfg *config.Config, lgr zerolog.Logger) (*appCatalog.Catalog, error) {
	if err := seed.CreateDefaultCatalog(cfg.Catalog.DataDir, cfg.Catalog.Files, lgr); err != nil {
		// Seeding is best-effort; loading decides whether startup can proceed.
		lgr.Error().Err(err).Msg("Failed to write starter catalog, proceeding anyway...")
	}

	lgr.Info().Str("dir", cfg.Catalog.DataDir).Strs("files", cfg.Catalog.Files).Msg("Loading catalog...")
	cat, err := appCatalog.Load(cfg.Catalog.DataDir, cfg.Catalog.Files, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load catalog")
		return nil, err
	}
	return cat, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, cat *appCatalog.Catalog, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Catalog: cat, Logger: lgr}

	deps.RecommendationService = appServices.NewRecommendationService(cat,
		cfg.Recommendation.DefaultCount, cfg.Recommendation.MaxCount)
	deps.CatalogService = appServices.NewCatalogService(cat)

	deps.RecommendationController = appControllers.NewRecommendationController(deps.RecommendationService)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)

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
	router.Use(appMiddleware.RequestLogger(lgr))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.RecommendationController,
		deps.CatalogController,
	)

	return router
}
