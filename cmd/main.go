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

	applyOperationHandler "github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers/apply_operation"
	createDraftHandler "github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers/create_draft"
	deleteDraftHandler "github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers/delete_draft"
	getCatalogHandler "github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers/get_catalog"
	getDraftHandler "github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers/get_draft"
	submitDraftHandler "github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers/submit_draft"
	undoOperationHandler "github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers/undo_operation"
	validateDraftHandler "github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers/validate_draft"
	"github.com/m04kA/SMC-OrderIntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderIntakeService/internal/config"
	draftRepo "github.com/m04kA/SMC-OrderIntakeService/internal/infra/storage/draft"
	catalogServiceClient "github.com/m04kA/SMC-OrderIntakeService/internal/integrations/catalogservice"
	orderServiceClient "github.com/m04kA/SMC-OrderIntakeService/internal/integrations/orderservice"
	draftsService "github.com/m04kA/SMC-OrderIntakeService/internal/service/drafts"
	applyOperationUC "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/apply_operation"
	createDraftUC "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/create_draft"
	submitOrderUC "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/submit_order"
	"github.com/m04kA/SMC-OrderIntakeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-OrderIntakeService/pkg/logger"
	"github.com/m04kA/SMC-OrderIntakeService/pkg/metrics"
	"github.com/m04kA/SMC-OrderIntakeService/pkg/txmanager"
)

// metricsRecorder доменные счетчики для use cases
type metricsRecorder interface {
	IncOperation(kind string, outcome string)
	AddValidationErrors(n int)
	IncOrderSubmitted(outcome string)
}

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

	log.Info("Starting SMC-OrderIntakeService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var recorder metricsRecorder = metrics.Noop{}
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обертка БД: метрики запросов пишутся только при включенных метриках
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем интеграционных клиентов
	// Каталог берется из файла, если он указан, иначе из CatalogService
	var catalog createDraftUC.CatalogSource
	if cfg.CatalogService.File != "" {
		catalog = catalogServiceClient.NewFileSource(cfg.CatalogService.File, log)
		log.Info("Catalog is read from file %s", cfg.CatalogService.File)
	} else {
		catalog = catalogServiceClient.NewClient(
			cfg.CatalogService.URL,
			time.Duration(cfg.CatalogService.Timeout)*time.Second,
			log,
		)
	}
	orderClient := orderServiceClient.NewClient(
		cfg.OrderService.URL,
		time.Duration(cfg.OrderService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds, OrderService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout, cfg.OrderService.URL, cfg.OrderService.Timeout)

	// Инициализируем репозитории и transaction manager
	draftRepository := draftRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	draftsSvc := draftsService.NewService(draftRepository, txMgr, log)

	// Инициализируем use cases
	createDraftUseCase := createDraftUC.NewUseCase(draftRepository, catalog, log)
	applyOperationUseCase := applyOperationUC.NewUseCase(draftRepository, txMgr, recorder, log)
	submitOrderUseCase := submitOrderUC.NewUseCase(draftRepository, txMgr, orderClient, recorder, log)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalog, log)
	createDraft := createDraftHandler.NewHandler(createDraftUseCase, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)
	applyOperation := applyOperationHandler.NewHandler(applyOperationUseCase, log)
	undoOperation := undoOperationHandler.NewHandler(draftsSvc, log)
	validateDraft := validateDraftHandler.NewHandler(draftsSvc, log)
	submitDraft := submitDraftHandler.NewHandler(submitOrderUseCase, log)
	deleteDraft := deleteDraftHandler.NewHandler(draftsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Черновики заказов ---
	protected.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{draftId}", deleteDraft.Handle).Methods(http.MethodDelete)

	// Изменение выбора и отмена последнего изменения
	protected.HandleFunc("/drafts/{draftId}/operations", applyOperation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/undo", undoOperation.Handle).Methods(http.MethodPost)

	// Проверка и отправка заказа
	protected.HandleFunc("/drafts/{draftId}/validation", validateDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)

	// Очистка устаревших черновиков
	purgeCtx, stopPurge := context.WithCancel(context.Background())
	defer stopPurge()
	if cfg.Drafts.PurgeIntervalMinutes > 0 {
		go draftsSvc.RunPurge(purgeCtx,
			time.Duration(cfg.Drafts.TTLHours)*time.Hour,
			time.Duration(cfg.Drafts.PurgeIntervalMinutes)*time.Minute,
		)
		log.Info("Stale drafts purge started (ttl=%dh, every %dm)", cfg.Drafts.TTLHours, cfg.Drafts.PurgeIntervalMinutes)
	}

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

	stopPurge()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
