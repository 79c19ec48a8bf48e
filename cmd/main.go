package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	cancelBookingHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/get_booking"
	getBookingByDateHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/get_booking_by_date"
	getDatesHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/get_dates"
	getStatsHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/get_stats"
	listBookingsHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/SMC-BookingAvailability/internal/api/handlers/list_services"
	"github.com/m04kA/SMC-BookingAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-BookingAvailability/internal/config"
	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/events"
	bookingRepo "github.com/m04kA/SMC-BookingAvailability/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BookingAvailability/internal/infra/storage/jsonfile"
	redisRepo "github.com/m04kA/SMC-BookingAvailability/internal/infra/storage/redis"
	"github.com/m04kA/SMC-BookingAvailability/internal/integrations/whatsapp"
	bookingsService "github.com/m04kA/SMC-BookingAvailability/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-BookingAvailability/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-BookingAvailability/internal/usecase/get_availability"
	"github.com/m04kA/SMC-BookingAvailability/pkg/logger"
	"github.com/m04kA/SMC-BookingAvailability/pkg/metrics"
	"github.com/m04kA/SMC-BookingAvailability/pkg/mq"
)

func main() {
	// .env опционален, переменные BOOKING_* переопределяют config.toml
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
	}

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

	log.Info("Starting SMC-BookingAvailability...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище снимков бронирований
	repository, closeStorage, err := newRepository(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer closeStorage()

	catalog := domain.NewCatalog(cfg.Services())

	// Диспетчер доменных событий
	dispatcher := events.NewDispatcher(events.DefaultQueueSize, log)

	bookingStore := bookingsService.NewStore(repository, dispatcher, log)
	loaded := bookingStore.Load(context.Background())
	log.Info("Booking store ready with %d bookings", loaded)

	// Уведомления в WhatsApp
	var sender whatsapp.Sender
	if cfg.WhatsApp.GatewayURL != "" {
		sender = whatsapp.NewClient(
			cfg.WhatsApp.GatewayURL,
			cfg.WhatsApp.Token,
			time.Duration(cfg.WhatsApp.Timeout)*time.Second,
			log,
		)
		log.Info("WhatsApp gateway client initialized (url=%s, timeout=%ds)", cfg.WhatsApp.GatewayURL, cfg.WhatsApp.Timeout)
	} else {
		log.Info("WhatsApp gateway not configured, notifications are logged as wa.me links")
	}

	var recorder whatsapp.Recorder
	if metricsCollector != nil {
		recorder = metricsCollector
	}
	dispatcher.Subscribe("whatsapp", whatsapp.NewNotifier(sender, cfg.WhatsApp.Destination, catalog, recorder, log))

	// Публикация событий в RabbitMQ (если настроен брокер)
	if cfg.Broker.URL != "" {
		publisher, err := mq.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error("Failed to close broker publisher: %v", err)
			}
		}()
		dispatcher.Subscribe("broker", events.NewBrokerHandler(publisher))
		log.Info("Booking events are published to exchange %s", cfg.Broker.Exchange)
	}

	if metricsCollector != nil {
		stats := bookingStore.Stats()
		metricsCollector.SetBookingCounts(stats.Pending, stats.Confirmed, stats.Cancelled)
		dispatcher.Subscribe("metrics", events.NewMetricsHandler(metricsCollector, bookingStore))
	}

	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()
	dispatcher.Start(dispatchCtx)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingStore, catalog, cfg.WhatsApp.Destination, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingStore, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalog, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingStore, log)
	listBookings := listBookingsHandler.NewHandler(bookingStore, log)
	getBookingByDate := getBookingByDateHandler.NewHandler(bookingStore, log)
	getStats := getStatsHandler.NewHandler(bookingStore, log)
	getConfirmedDates := getDatesHandler.NewHandler(bookingStore, getDatesHandler.KindConfirmed, log)
	getPendingDates := getDatesHandler.NewHandler(bookingStore, getDatesHandler.KindPending, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingStore, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг и календарь доступности
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.HandleMonth).Methods(http.MethodGet)
	api.HandleFunc("/availability/{date}", getAvailability.HandleDate).Methods(http.MethodGet)

	// Создание заявки (с ограничением частоты по IP)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustForwarded, log)
	api.Handle("/bookings", limiter.Middleware(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminToken(cfg.Admin.Token, log))
	if cfg.Admin.Token == "" {
		log.Warn("Admin token is not configured, admin routes are disabled")
	}

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/stats", getStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/by-date/{date}", getBookingByDate.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/dates/confirmed", getConfirmedDates.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/dates/pending", getPendingDates.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Получение заявки по ID (публичный, после admin-маршрутов со статическими путями)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся доставки уже опубликованных событий
	dispatcher.Close()
	log.Info("Event dispatcher stopped")

	log.Info("Server stopped gracefully")
}

// newRepository выбирает хранилище снимков по storage.driver
func newRepository(cfg *config.Config, log *logger.Logger) (bookingsService.SnapshotRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		log.Info("Successfully connected to redis (addr=%s, key=%s)", cfg.Redis.Addr, cfg.Redis.Key)

		return redisRepo.NewRepository(client, cfg.Redis.Key), func() { _ = client.Close() }, nil

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		return bookingRepo.NewRepository(db), func() { _ = db.Close() }, nil

	default:
		log.Info("Using JSON snapshot file %s", cfg.Storage.File)
		return jsonfile.NewRepository(cfg.Storage.File), func() {}, nil
	}
}
