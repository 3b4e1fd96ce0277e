package app

import (
	"career_advisor_backend/internal/config"
	"career_advisor_backend/internal/controller"
	"career_advisor_backend/internal/middleware"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/service"
	"career_advisor_backend/pkg/configwatcher"
	"career_advisor_backend/pkg/logger"
	"career_advisor_backend/pkg/monitoring"
	"career_advisor_backend/pkg/security"
	"career_advisor_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *repository.MemoryDB

	services        *services
	tracer          *sdktrace.TracerProvider
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	account      *repository.AccountRepository
	careerGoal   *repository.CareerGoalRepository
	learningPath *repository.LearningPathRepository
	advice       *repository.AdviceRepository
}

type services struct {
	account      *service.AccountService
	careerGoal   *service.CareerGoalService
	learningPath *service.LearningPathService
	advice       *service.AdviceService
	careerPlan   *service.CareerPlanService
	generator    *service.AdviceGenerator
}

type controllers struct {
	careerGoal   *controller.CareerGoalController
	learningPath *controller.LearningPathController
	aiAdvice     *controller.AIAdviceController
	careerPlan   *controller.CareerPlanController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *repository.MemoryDB) *repositories {
	return &repositories{
		account:      repository.NewAccountRepository(db),
		careerGoal:   repository.NewCareerGoalRepository(db),
		learningPath: repository.NewLearningPathRepository(db),
		advice:       repository.NewAdviceRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, client service.CompletionClient) *services {
	s := &services{}

	s.generator = service.NewAdviceGenerator(client, cfg.AI.Model, cfg.AI.MaxTokens)
	s.account = service.NewAccountService(repos.account)
	s.careerGoal = service.NewCareerGoalService(repos.careerGoal)
	s.learningPath = service.NewLearningPathService(repos.learningPath)
	s.advice = service.NewAdviceService(repos.careerGoal, repos.advice, s.generator)
	s.careerPlan = service.NewCareerPlanService(s.careerGoal, s.learningPath, s.advice)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		careerGoal:   controller.NewCareerGoalController(s.careerGoal),
		learningPath: controller.NewLearningPathController(s.learningPath),
		aiAdvice:     controller.NewAIAdviceController(s.advice),
		careerPlan:   controller.NewCareerPlanController(s.careerPlan),
		health:       controller.NewHealthController(s.generator),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.AccessLog())
}

// seedAccounts 预置默认账号，前端默认以 userId=1 提交
func (a *App) seedAccounts(s *services, cfg *config.Config) {
	if cfg.Accounts.DefaultUsername == "" {
		return
	}

	account, err := s.account.EnsureAccount(cfg.Accounts.DefaultUsername, cfg.Accounts.DefaultPassword)
	if err != nil {
		logger.Log.Error("Failed to provision default account", zap.Error(err))
		return
	}
	logger.Log.Info("Default account ready",
		zap.Uint("id", account.ID), zap.String("username", account.Username))
}

// reloadCompletionClient 配置变更后重建补全客户端，可在不重启的情况下加入或移除凭证
func (a *App) reloadCompletionClient(cfg *config.Config) {
	client, err := service.NewCompletionClient(context.Background(), cfg.AI)
	if err != nil {
		logger.Log.Error("Failed to rebuild completion client, keeping previous one", zap.Error(err))
		return
	}
	a.services.generator.SetClient(client, cfg.AI.Model, cfg.AI.MaxTokens)
	logger.Log.Info("Completion client reloaded",
		zap.String("provider", cfg.AI.Provider), zap.Bool("live", client != nil))
}

// NewAppWithClient 组装仓储、服务、控制器与路由，补全客户端由调用方提供（nil 表示只用模板建议）
func NewAppWithClient(cfg *config.Config, client service.CompletionClient, opts ...repository.Option) *App {
	db := repository.NewMemoryDB(opts...)

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg, client)
	controllers := app.initControllers(app.services)

	app.seedAccounts(app.services, cfg)

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(app.reloadCompletionClient)

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	// 监控初始化
	monitoring.Init()

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		var err error
		tp, err = tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	client, err := service.NewCompletionClient(context.Background(), cfg.AI)
	if err != nil {
		logger.Log.Error("Failed to initialize completion client, using fallback advice only", zap.Error(err))
		client = nil
	}
	if client == nil {
		logger.Log.Info("No completion credential provided, advice will use fallback templates")
	}

	app := NewAppWithClient(cfg, client)
	app.tracer = tp
	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()

	configFile := filepath.Join(a.Config.Path, "config.yaml")
	if err := configwatcher.WatchConfig(ctx, configFile, a.applyConfig); err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
