// Package app assembles the application: configuration, logging, metrics,
// artifact storage, the model provider, the generation services, and the
// HTTP router.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	imagehttp "github.com/contentforge/server/internal/adapter/inbound/http/image"
	storyhttp "github.com/contentforge/server/internal/adapter/inbound/http/story"
	ttshttp "github.com/contentforge/server/internal/adapter/inbound/http/tts"
	videohttp "github.com/contentforge/server/internal/adapter/inbound/http/video"
	"github.com/contentforge/server/internal/adapter/outbound/provider"
	"github.com/contentforge/server/internal/artifact"
	"github.com/contentforge/server/internal/artifact/local"
	"github.com/contentforge/server/internal/artifact/s3"
	"github.com/contentforge/server/internal/module/image"
	"github.com/contentforge/server/internal/module/speech"
	"github.com/contentforge/server/internal/module/story"
	"github.com/contentforge/server/internal/module/video"
	"github.com/contentforge/server/internal/shared/config"
	"github.com/contentforge/server/internal/shared/logger"
	"github.com/contentforge/server/internal/shared/metrics"
	"github.com/contentforge/server/internal/shared/middleware"
)

// App represents the assembled application.
type App struct {
	config  *config.Config
	router  *gin.Engine
	logger  *logger.Logger
	metrics *metrics.Metrics

	storyService  *story.Service
	imageService  *image.Service
	speechService *speech.Service
	videoService  *video.Service
}

// New creates a fully wired application instance.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New("contentforge", registry)

	store, err := newStore(ctx, cfg, m)
	if err != nil {
		return nil, fmt.Errorf("init artifact store: %w", err)
	}

	client := provider.New(cfg.OpenAI, m)

	app := &App{
		config:        cfg,
		logger:        log,
		metrics:       m,
		storyService:  story.NewService(client, log),
		imageService:  image.NewService(client, log),
		speechService: speech.NewService(client, store, log),
		videoService:  video.NewService(store, video.NewMockYouTubePublisher(log), log),
	}

	app.router = app.setupRouter(registry)
	app.registerRoutes()

	return app, nil
}

// newStore builds the artifact store selected by configuration.
func newStore(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (artifact.Store, error) {
	var store artifact.Store
	switch cfg.Storage.Backend {
	case "", "local":
		store = local.New(cfg.Storage.UploadDir)
	case "s3":
		s3Store, err := s3.New(ctx, s3.Config{
			Region:          cfg.Storage.Region,
			Bucket:          cfg.Storage.Bucket,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		store = s3Store
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return artifact.Instrumented(store, m), nil
}

// setupRouter creates and configures the Gin router.
func (a *App) setupRouter(registry *prometheus.Registry) *gin.Engine {
	if a.config.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(a.logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(a.logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(a.config.CORS.AllowOrigins)))
	r.Use(middleware.Metrics(a.metrics))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AI Content Generator API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

// registerRoutes registers all HTTP routes.
func (a *App) registerRoutes() {
	api := a.router.Group("/api")

	storyhttp.NewHandler(a.storyService).RegisterRoutes(api)
	imagehttp.NewHandler(a.imageService).RegisterRoutes(api)
	ttshttp.NewHandler(a.speechService).RegisterRoutes(api)
	videohttp.NewHandler(a.videoService).RegisterRoutes(api)
}

// Router returns the HTTP router.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Logger returns the application logger.
func (a *App) Logger() *logger.Logger {
	return a.logger
}
