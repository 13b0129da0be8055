package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/cancel_booking"
	clearSelectionHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/clear_selection"
	closeRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/close_room"
	createBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_booking"
	getDateHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_date"
	getMyBookingsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_my_bookings"
	getNoticeHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_notice"
	getRoomSlotsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_room_slots"
	getSelectionHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_selection"
	getTowersHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_towers"
	openRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/open_room"
	prefetchRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/prefetch_room"
	setDateHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/set_date"
	tapSlotHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/tap_slot"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBooking/internal/service/selection"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
	getRoomSlotsUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_slots"
	submitBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
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

	log.Info("Starting SMC-RoomBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// nil *metrics.Metrics безопасно передавать потребителям: методы ничего не делают.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент Booking API
	apiClient := bookingapi.NewClient(
		cfg.BookingAPI.URL,
		cfg.BookingAPI.Token,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
		bookingapi.WithRateLimit(cfg.BookingAPI.RequestsPerSecond, cfg.BookingAPI.Burst),
		bookingapi.WithMetrics(metricsCollector),
	)
	log.Info("Booking API client initialized (url=%s timeout=%ds rps=%.1f)",
		cfg.BookingAPI.URL, cfg.BookingAPI.Timeout, cfg.BookingAPI.RequestsPerSecond)

	// Инициализируем сервисы
	cache := availability.NewCache(apiClient, metricsCollector, log)
	selector := selection.NewSelector(log)
	bookingSvc := bookingsService.NewService(apiClient, log)
	notices := session.NewNotices()

	// Инициализируем use cases
	getRoomSlotsUseCase := getRoomSlotsUC.NewUseCase(cache, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		apiClient,
		cache,
		selector,
		bookingSvc,
		notices,
		metricsCollector,
		log,
	)

	sess := session.NewSession(
		apiClient,
		cache,
		getRoomSlotsUseCase,
		submitBookingUseCase,
		selector,
		bookingSvc,
		notices,
		log,
	).WithFetchTimeout(time.Duration(cfg.Session.FetchTimeout) * time.Second)

	// Первичная загрузка комнат и бронирований; ошибки видны в UI флагами
	warmupCtx, warmupCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Session.WarmupTimeout)*time.Second,
	)
	if err := sess.Warmup(warmupCtx); err != nil {
		log.Warn("Warmup finished with errors: %v", err)
	}
	warmupCancel()

	// Инициализируем handlers
	getTowers := getTowersHandler.NewHandler(sess, log)
	getDate := getDateHandler.NewHandler(sess)
	setDate := setDateHandler.NewHandler(sess, log)
	openRoom := openRoomHandler.NewHandler(sess, log)
	closeRoom := closeRoomHandler.NewHandler(sess, log)
	prefetchRoom := prefetchRoomHandler.NewHandler(sess, log)
	getRoomSlots := getRoomSlotsHandler.NewHandler(sess, log)
	tapSlot := tapSlotHandler.NewHandler(sess, log)
	getSelection := getSelectionHandler.NewHandler(sess, log)
	clearSelection := clearSelectionHandler.NewHandler(sess, log)
	createBooking := createBookingHandler.NewHandler(sess, log)
	getMyBookings := getMyBookingsHandler.NewHandler(sess, log)
	getBooking := getBookingHandler.NewHandler(sess, log)
	cancelBooking := cancelBookingHandler.NewHandler(sess, log)
	getNotice := getNoticeHandler.NewHandler(sess, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware())
		log.Info("Rate limit enabled: %d req/min, burst %d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// --- Комнаты и дата ---
	api.HandleFunc("/towers", getTowers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/date", getDate.Handle).Methods(http.MethodGet)
	api.HandleFunc("/date", setDate.Handle).Methods(http.MethodPut)

	// --- Экран комнаты ---
	api.HandleFunc("/rooms/{roomId}/open", openRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}/open", closeRoom.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/rooms/{roomId}/prefetch", prefetchRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}/slots", getRoomSlots.Handle).Methods(http.MethodGet)

	// --- Выбор слотов ---
	api.HandleFunc("/selection", getSelection.Handle).Methods(http.MethodGet)
	api.HandleFunc("/selection", clearSelection.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/selection/tap", tapSlot.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/my-bookings", getMyBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/my-bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/my-bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Уведомления ---
	api.HandleFunc("/notice", getNotice.Handle).Methods(http.MethodGet)

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

	// дожидаемся фоновых загрузок сеток
	sess.Wait()

	log.Info("Server stopped gracefully")
}
