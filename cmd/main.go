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
	"github.com/redis/go-redis/v9"

	getAvailableDatesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getEligibleStaffHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_eligible_staff"
	prepareBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/prepare_booking"
	reconcileSelectionHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/reconcile_selection"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	businessCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/business"
	blockedPeriodRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/blocked_period"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	businessService "github.com/m04kA/SMC-AvailabilityService/internal/service/business"
	getAvailableDatesUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	getEligibleStaffUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_eligible_staff"
	prepareBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/prepare_booking"
	reconcileSelectionUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reconcile_selection"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Engine.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Engine.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	// Опциональные зависимости объявлены интерфейсами: nil указатель в интерфейсе не равен nil
	var (
		metricsCollector *metrics.Metrics
		slotMetrics      getAvailableSlotsUC.SlotMetrics
		cacheMetrics     businessService.CacheMetrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		slotMetrics = metricsCollector
		cacheMetrics = metricsCollector
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

	// Репозитории работают через обертку с метриками или напрямую с *sql.DB
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	blockedPeriodRepository := blockedPeriodRepo.NewRepository(executor)

	// Подключаем кэш карточек бизнеса (если включен)
	var (
		cache       businessService.BusinessCache
		redisClient *redis.Client
	)
	if cfg.Cache.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш не обязателен: сервис работает и без него
			log.Warn("Redis is unavailable at %s, cache disabled: %v", cfg.Cache.Addr, err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			cache = businessCache.NewCache(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
			log.Info("Business cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
		}
		cancelPing()
	}

	// Инициализируем интеграционного клиента и сервис карточек бизнеса
	businessClient := businessservice.NewClient(
		cfg.BusinessService.URL,
		time.Duration(cfg.BusinessService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (BusinessService=%s timeout=%ds)",
		cfg.BusinessService.URL, cfg.BusinessService.Timeout)

	businessSvc := businessService.NewService(businessClient, cache, cacheMetrics, log)

	// Инициализируем калькулятор
	calculator := availability.NewCalculator(availability.Options{
		GridStepMinutes: cfg.Engine.GridStepMinutes,
		MinLeadMinutes:  cfg.Engine.MinLeadMinutes,
	})
	timeProvider := &getAvailableSlotsUC.RealTimeProvider{Location: location}
	log.Info("Availability engine configured (step=%dm, lead=%dm, max_days=%d, tz=%s)",
		calculator.GridStep(), cfg.Engine.MinLeadMinutes, cfg.Engine.MaxDatesDays, location)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		businessSvc,
		bookingRepository,
		blockedPeriodRepository,
		calculator,
		slotMetrics,
		timeProvider,
		log,
	)
	getEligibleStaffUseCase := getEligibleStaffUC.NewUseCase(businessSvc, log)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(businessSvc, cfg.Engine.MaxDatesDays, timeProvider, log)
	reconcileSelectionUseCase := reconcileSelectionUC.NewUseCase(businessSvc, log)
	prepareBookingUseCase := prepareBookingUC.NewUseCase(
		businessSvc,
		bookingRepository,
		blockedPeriodRepository,
		calculator,
		cfg.Engine.MaxDatesDays,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getEligibleStaff := getEligibleStaffHandler.NewHandler(getEligibleStaffUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	reconcileSelection := reconcileSelectionHandler.NewHandler(reconcileSelectionUseCase, log)
	prepareBooking := prepareBookingHandler.NewHandler(prepareBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступные времена начала на дату
	api.HandleFunc("/businesses/{businessId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Сотрудники, выполняющие выбранные услуги
	api.HandleFunc("/businesses/{businessId}/eligible-staff", getEligibleStaff.Handle).Methods(http.MethodGet)

	// Календарь доступных дат
	api.HandleFunc("/businesses/{businessId}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Согласование выбора услуг и сотрудника
	api.HandleFunc("/businesses/{businessId}/selection", reconcileSelection.Handle).Methods(http.MethodPost)

	// Повторная проверка времени и данные для создания бронирования
	api.HandleFunc("/businesses/{businessId}/booking-draft", prepareBooking.Handle).Methods(http.MethodPost)

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
