package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"pawlearn_backend/internal/config"
	"pawlearn_backend/internal/controller"
	"pawlearn_backend/internal/middleware"
	"pawlearn_backend/internal/repository"
	"pawlearn_backend/internal/service"
	"pawlearn_backend/pkg/database"
	"pawlearn_backend/pkg/logger"
	"pawlearn_backend/pkg/monitoring"
	"pawlearn_backend/pkg/security"
	"pawlearn_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	mu sync.Mutex
}

type repositories struct {
	animal   *repository.AnimalRepository
	course   *repository.CourseRepository
	lesson   *repository.LessonRepository
	progress *repository.ProgressRepository
	quiz     *repository.QuizRepository
	badge    *repository.BadgeRepository
}

type services struct {
	animal    *service.AnimalService
	content   *service.ContentService
	progress  *service.ProgressService
	quiz      *service.QuizService
	dashboard *service.DashboardService
}

type controllers struct {
	animal    *controller.AnimalController
	content   *controller.ContentController
	quiz      *controller.QuizController
	progress  *controller.ProgressController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		animal:   repository.NewAnimalRepository(db),
		course:   repository.NewCourseRepository(db),
		lesson:   repository.NewLessonRepository(db),
		progress: repository.NewProgressRepository(db),
		quiz:     repository.NewQuizRepository(db),
		badge:    repository.NewBadgeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, db *gorm.DB, rdb *redis.Client) *services {
	return &services{
		animal:    service.NewAnimalService(repos.animal),
		content:   service.NewContentService(repos.course, repos.lesson, rdb),
		progress:  service.NewProgressService(repos.progress),
		quiz:      service.NewQuizService(repos.quiz, db),
		dashboard: service.NewDashboardService(repos.progress, repos.quiz, repos.badge),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		animal:    controller.NewAnimalController(s.animal),
		content:   controller.NewContentController(s.content),
		quiz:      controller.NewQuizController(s.quiz),
		progress:  controller.NewProgressController(s.progress),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimitWindow()))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// OnConfigReload swaps the active config. Listen address and middleware
// chains are fixed at startup; reloads cover the tunables read at request
// time.
func (a *App) OnConfigReload(cfg *config.Config) {
	a.mu.Lock()
	a.Config = cfg
	a.mu.Unlock()

	logger.Log.Info("configuration reloaded")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("pawlearn-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
