package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getTablePageHandler "github.com/jtricerolph/newbook-twin-optomiser-table/internal/api/handlers/get_table_page"
	refreshTableHandler "github.com/jtricerolph/newbook-twin-optomiser-table/internal/api/handlers/refresh_table"
	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/api/middleware"
	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/config"
	storageRepo "github.com/jtricerolph/newbook-twin-optomiser-table/internal/infra/storage/newbook"
	newbookClient "github.com/jtricerolph/newbook-twin-optomiser-table/internal/integrations/newbook"
	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/render"
	buildGridUC "github.com/jtricerolph/newbook-twin-optomiser-table/internal/usecase/build_grid"
	"github.com/jtricerolph/newbook-twin-optomiser-table/pkg/dbmetrics"
	"github.com/jtricerolph/newbook-twin-optomiser-table/pkg/logger"
	"github.com/jtricerolph/newbook-twin-optomiser-table/pkg/metrics"
	"github.com/jtricerolph/newbook-twin-optomiser-table/web"
)

const refreshRoute = "/api/v1/table/refresh"

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

	log.Info("Starting twin-optomiser-table service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем источник данных о бронированиях
	var source buildGridUC.BookingSource

	switch cfg.Source.Type {
	case config.SourceDatabase:
		// Зеркало выгрузки Newbook в локальном PostgreSQL
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")
			source = storageRepo.NewRepository(wrappedDB)
		} else {
			source = storageRepo.NewRepository(db)
		}

	case config.SourceAPI:
		source = newbookClient.NewClient(
			cfg.Newbook.URL,
			cfg.Newbook.APIKey,
			time.Duration(cfg.Newbook.Timeout)*time.Second,
			log,
		)
		log.Info("Booking Match API client initialized (url=%s, timeout=%ds)",
			cfg.Newbook.URL, cfg.Newbook.Timeout)

	default:
		log.Fatal("Unknown source type: %s", cfg.Source.Type)
	}

	// Инициализируем use case и рендерер
	buildGridUseCase := buildGridUC.NewUseCase(source, log)

	renderer, err := render.NewRenderer(cfg.Grid.Title, log)
	if err != nil {
		log.Fatal("Failed to initialize renderer: %v", err)
	}

	// Инициализируем handlers
	getTablePage := getTablePageHandler.NewHandler(buildGridUseCase, renderer, cfg.Grid.DefaultDays, refreshRoute, log)
	refreshTable := refreshTableHandler.NewHandler(buildGridUseCase, renderer, cfg.Grid.DefaultDays, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Статические ресурсы (JS/CSS, встроены в бинарник)
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		log.Fatal("Failed to mount static assets: %v", err)
	}
	r.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.FS(staticFS)))).Methods(http.MethodGet)

	// Обновление сетки без полной перезагрузки страницы
	r.HandleFunc(refreshRoute, refreshTable.Handle).Methods(http.MethodGet)

	// Полная страница с сеткой
	r.HandleFunc("/", getTablePage.Handle).Methods(http.MethodGet)

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
