package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	deleteDraftHandler "github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/delete_draft"
	deletePricingRulesHandler "github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/delete_pricing_rules"
	estimatePriceHandler "github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/estimate_price"
	getDraftHandler "github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/get_draft"
	getPricingRulesHandler "github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/get_pricing_rules"
	listPricingRulesHandler "github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/list_pricing_rules"
	previewPriceHandler "github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/preview_price"
	saveDraftHandler "github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/save_draft"
	updatePricingRulesHandler "github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/update_pricing_rules"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/middleware"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/config"
	draftStore "github.com/manuelContrerasDev/enap-reservas-sub001/internal/infra/storage/draft"
	rulesRepo "github.com/manuelContrerasDev/enap-reservas-sub001/internal/infra/storage/rules"
	catalogServiceClient "github.com/manuelContrerasDev/enap-reservas-sub001/internal/integrations/catalogservice"
	draftsService "github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts"
	rulesService "github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules"
	estimatePriceUC "github.com/manuelContrerasDev/enap-reservas-sub001/internal/usecase/estimate_price"
	previewPriceUC "github.com/manuelContrerasDev/enap-reservas-sub001/internal/usecase/preview_price"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/dbmetrics"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/logger"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/metrics"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/tracing"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ENAP pricing service...")
	log.Info("Configuration loaded from config.toml")

	ctx := context.Background()

	// Трейсинг (если задан адрес коллектора)
	shutdownTracing := tracing.ShutdownFunc(func(context.Context) error { return nil })
	if cfg.Tracing.Enabled() {
		shutdownTracing, err = tracing.Setup(ctx, cfg.Tracing.OTLPAddr, cfg.Tracing.ServiceName)
		if err != nil {
			log.Fatal("Failed to initialize tracing: %v", err)
		}
		log.Info("Tracing enabled (collector=%s)", cfg.Tracing.OTLPAddr)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// С метриками запросы идут через обёртку, без - напрямую в *sql.DB
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	rulesRepository := rulesRepo.NewRepository(executor)
	txMgr := txmanager.NewTransactionManager(executor)

	// Хранилище черновиков
	drafts, err := draftStore.Open(ctx, cfg.Drafts.URL, cfg.Drafts.Password, cfg.Drafts.TTL())
	if err != nil {
		log.Fatal("Failed to open draft store: %v", err)
	}
	log.Info("Draft store opened (url=%s, ttl=%s)", cfg.Drafts.URL, cfg.Drafts.TTL())

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем сервисы
	rulesSvc := rulesService.NewService(
		rulesRepository,
		catalogClient,
		cfg.Pricing,
		txMgr,
		log,
	)
	draftsSvc := draftsService.NewService(drafts, log)

	// Инициализируем use cases
	estimatePriceUseCase := estimatePriceUC.NewUseCase(
		catalogClient,
		rulesSvc,
		metricsCollector,
		log,
	)
	previewPriceUseCase := previewPriceUC.NewUseCase(
		rulesSvc,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	estimatePrice := estimatePriceHandler.NewHandler(estimatePriceUseCase, log)
	previewPrice := previewPriceHandler.NewHandler(previewPriceUseCase, log)
	getPricingRules := getPricingRulesHandler.NewHandler(rulesSvc, log)
	listPricingRules := listPricingRulesHandler.NewHandler(rulesSvc, log)
	updatePricingRules := updatePricingRulesHandler.NewHandler(rulesSvc, log)
	deletePricingRules := deletePricingRulesHandler.NewHandler(rulesSvc, log)
	saveDraft := saveDraftHandler.NewHandler(draftsSvc, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)
	deleteDraft := deleteDraftHandler.NewHandler(draftsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (X-User-ID необязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalUser)

	// Расчет стоимости для формы резерва
	public.HandleFunc("/spaces/{spaceId}/quote", estimatePrice.Handle).Methods(http.MethodPost)

	// Действующие правила для пространства (минимальный срок, квота piscina)
	public.HandleFunc("/spaces/{spaceId}/pricing-rules", getPricingRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Черновики формы ---
	protected.HandleFunc("/drafts/{spaceId}", saveDraft.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/drafts/{spaceId}", getDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{spaceId}", deleteDraft.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: ADMIN)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	// Расчет по тарифам, введенным в форме espacio до сохранения
	admin.HandleFunc("/quotes/preview", previewPrice.Handle).Methods(http.MethodPost)

	// --- Правила расчета ---
	admin.HandleFunc("/pricing-rules", listPricingRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/pricing-rules", updatePricingRules.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/pricing-rules/{rulesId}", deletePricingRules.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := drafts.Close(); err != nil {
		log.Error("Failed to close draft store: %v", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
