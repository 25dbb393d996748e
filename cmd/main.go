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

	aiEditImageHandler "github.com/glameo/glameo-backend/internal/api/handlers/ai_edit_image"
	aiSearchHandler "github.com/glameo/glameo-backend/internal/api/handlers/ai_search"
	cancelBookingHandler "github.com/glameo/glameo-backend/internal/api/handlers/cancel_booking"
	cancellationQuoteHandler "github.com/glameo/glameo-backend/internal/api/handlers/cancellation_quote"
	createBookingHandler "github.com/glameo/glameo-backend/internal/api/handlers/create_booking"
	getBookingHandler "github.com/glameo/glameo-backend/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/glameo/glameo-backend/internal/api/handlers/get_client_bookings"
	getConversationHandler "github.com/glameo/glameo-backend/internal/api/handlers/get_conversation"
	getReceiptHandler "github.com/glameo/glameo-backend/internal/api/handlers/get_receipt"
	getSalonHandler "github.com/glameo/glameo-backend/internal/api/handlers/get_salon"
	getSalonBookingsHandler "github.com/glameo/glameo-backend/internal/api/handlers/get_salon_bookings"
	listConversationsHandler "github.com/glameo/glameo-backend/internal/api/handlers/list_conversations"
	listSalonsHandler "github.com/glameo/glameo-backend/internal/api/handlers/list_salons"
	loginHandler "github.com/glameo/glameo-backend/internal/api/handlers/login"
	logoutHandler "github.com/glameo/glameo-backend/internal/api/handlers/logout"
	sendMessageHandler "github.com/glameo/glameo-backend/internal/api/handlers/send_message"
	submitReviewHandler "github.com/glameo/glameo-backend/internal/api/handlers/submit_review"
	updateBookingStatusHandler "github.com/glameo/glameo-backend/internal/api/handlers/update_booking_status"
	updateSalonSettingsHandler "github.com/glameo/glameo-backend/internal/api/handlers/update_salon_settings"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	"github.com/glameo/glameo-backend/internal/config"
	bookingRepo "github.com/glameo/glameo-backend/internal/infra/storage/booking"
	messageRepo "github.com/glameo/glameo-backend/internal/infra/storage/message"
	reviewRepo "github.com/glameo/glameo-backend/internal/infra/storage/review"
	salonRepo "github.com/glameo/glameo-backend/internal/infra/storage/salon"
	"github.com/glameo/glameo-backend/internal/infra/storage/schema"
	sessionRepo "github.com/glameo/glameo-backend/internal/infra/storage/session"
	aiServiceClient "github.com/glameo/glameo-backend/internal/integrations/aiservice"
	paymentsClient "github.com/glameo/glameo-backend/internal/integrations/payments"
	"github.com/glameo/glameo-backend/internal/integrations/smsnotifier"
	bookingsService "github.com/glameo/glameo-backend/internal/service/bookings"
	catalogService "github.com/glameo/glameo-backend/internal/service/catalog"
	messagingService "github.com/glameo/glameo-backend/internal/service/messaging"
	receiptsService "github.com/glameo/glameo-backend/internal/service/receipts"
	remindersService "github.com/glameo/glameo-backend/internal/service/reminders"
	reviewsService "github.com/glameo/glameo-backend/internal/service/reviews"
	sessionsService "github.com/glameo/glameo-backend/internal/service/sessions"
	aiSearchUC "github.com/glameo/glameo-backend/internal/usecase/ai_search"
	confirmBookingUC "github.com/glameo/glameo-backend/internal/usecase/confirm_booking"
	"github.com/glameo/glameo-backend/pkg/dbmetrics"
	"github.com/glameo/glameo-backend/pkg/logger"
	"github.com/glameo/glameo-backend/pkg/metrics"
	"github.com/glameo/glameo-backend/pkg/txmanager"
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

	log.Info("Starting glameo-backend...")
	log.Info("Configuration loaded from config.toml")

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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обертка с метриками запросов: при выключенных метриках collector == nil
	// и обертка работает прозрачно
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Применяем схему
	if err := schema.Apply(context.Background(), wrappedDB); err != nil {
		log.Fatal("Failed to apply database schema: %v", err)
	}
	log.Info("Database schema ready")

	// Инициализируем репозитории
	salonRepository := salonRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	messageRepository := messageRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)
	sessionRepository := sessionRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем интеграционных клиентов
	aiClient := aiServiceClient.NewClient(
		cfg.AIService.URL,
		cfg.AIService.APIKey,
		cfg.AIService.TextModel,
		cfg.AIService.ImageModel,
		time.Duration(cfg.AIService.Timeout)*time.Second,
		log,
	)
	payClient := paymentsClient.NewClient(
		time.Duration(cfg.Payments.AuthorizeDelayMS)*time.Millisecond,
		log,
	)

	timeProvider := &confirmBookingUC.RealTimeProvider{}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(salonRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		salonRepository,
		txMgr,
		timeProvider,
		log,
	)
	messagingSvc := messagingService.NewService(messageRepository, cfg.Messaging.PollIntervalSeconds, log)
	sessionSvc := sessionsService.NewService(
		sessionRepository,
		time.Duration(cfg.Sessions.TTLHours)*time.Hour,
		timeProvider,
		log,
	)
	reviewSvc := reviewsService.NewService(
		reviewRepository,
		bookingRepository,
		salonRepository,
		txMgr,
		log,
	)
	receiptSvc := receiptsService.NewService(bookingRepository, salonRepository, log)

	// Заполняем каталог стартовыми салонами (идемпотентно)
	if err := catalogSvc.Initialize(context.Background()); err != nil {
		log.Fatal("Failed to seed catalog: %v", err)
	}

	// SMS-напоминания о завтрашних записях (если включены)
	var reminderSvc *remindersService.Service
	if cfg.Reminders.Enabled {
		notifier := smsnotifier.New(
			cfg.Reminders.TwilioAccountSID,
			cfg.Reminders.TwilioAuthToken,
			cfg.Reminders.FromNumber,
			log,
		)
		reminderSvc = remindersService.NewService(
			bookingRepository,
			salonRepository,
			notifier,
			cfg.Reminders.NotifyNumber,
			timeProvider,
			log,
		)
		if err := reminderSvc.Start(cfg.Reminders.CronSpec); err != nil {
			log.Fatal("Failed to start reminders scheduler: %v", err)
		}
		log.Info("Reminders scheduler started (cron=%q)", cfg.Reminders.CronSpec)
	}

	// Инициализируем use cases
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		salonRepository,
		payClient,
		log,
	)
	aiSearchUseCase := aiSearchUC.NewUseCase(bookingRepository, aiClient, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(sessionSvc, log)
	logout := logoutHandler.NewHandler(sessionSvc, log)
	listSalons := listSalonsHandler.NewHandler(catalogSvc, log)
	getSalon := getSalonHandler.NewHandler(catalogSvc, reviewSvc, log)
	updateSalonSettings := updateSalonSettingsHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(confirmBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancellationQuote := cancellationQuoteHandler.NewHandler(bookingSvc, log)
	sendMessage := sendMessageHandler.NewHandler(messagingSvc, log)
	getConversation := getConversationHandler.NewHandler(messagingSvc, log)
	listConversations := listConversationsHandler.NewHandler(messagingSvc, log)
	submitReview := submitReviewHandler.NewHandler(reviewSvc, log)
	aiSearch := aiSearchHandler.NewHandler(aiSearchUseCase, log)
	aiEditImage := aiEditImageHandler.NewHandler(aiSearchUseCase, log)
	getReceipt := getReceiptHandler.NewHandler(receiptSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход (демо-аутентификация, доверяет заявленной роли)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Каталог салонов
	api.HandleFunc("/salons", listSalons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}", getSalon.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionSvc))

	// Выход
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Подтверждение и оплата записи
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Предварительный расчет платы за отмену
	protected.HandleFunc("/bookings/{bookingId}/cancellation-quote", cancellationQuote.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса (для владельца салона)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отзыв на завершенную запись
	protected.HandleFunc("/bookings/{bookingId}/review", submitReview.Handle).Methods(http.MethodPost)

	// Квитанция об оплате (PDF)
	protected.HandleFunc("/bookings/{bookingId}/receipt", getReceipt.Handle).Methods(http.MethodGet)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для владельцев) ---
	// Список бронирований салона
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)

	// Обновление настроек салона
	protected.HandleFunc("/salons/{salonId}/settings", updateSalonSettings.Handle).Methods(http.MethodPut)

	// --- Переписка ---
	protected.HandleFunc("/messages", sendMessage.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/conversations", listConversations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/conversations/{partnerId}", getConversation.Handle).Methods(http.MethodGet)

	// --- AI-эксперт ---
	protected.HandleFunc("/ai/search", aiSearch.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/ai/edit-image", aiEditImage.Handle).Methods(http.MethodPost)

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

	// Останавливаем планировщик напоминаний
	if reminderSvc != nil {
		reminderSvc.Stop()
		log.Info("Reminders scheduler stopped")
	}

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
