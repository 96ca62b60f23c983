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

	cancelBookingHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/cancel_booking"
	changePasswordHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/change_password"
	checkoutGuestHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/checkout_guest"
	checkoutProviderHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/checkout_provider"
	collectParcelHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/collect_parcel"
	createBookingHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/create_booking"
	createUnitHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/create_unit"
	createUserHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/create_user"
	createVehicleHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/create_vehicle"
	deleteUnitHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/delete_unit"
	deleteVehicleHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/delete_vehicle"
	exportAuditHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/export_audit"
	getAvailabilityHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/get_availability"
	getDashboardHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/get_dashboard"
	getPhotoHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/get_photo"
	getProfileHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/get_profile"
	getSettingsHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/get_settings"
	getUnitHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/get_unit"
	listAuditHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/list_audit"
	listBookingsHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/list_bookings"
	listGuestsHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/list_guests"
	listParcelsHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/list_parcels"
	listProvidersHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/list_providers"
	listUnitsHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/list_units"
	listUsersHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/list_users"
	listVehiclesHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/list_vehicles"
	loginHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/login"
	registerGuestHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/register_guest"
	registerParcelHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/register_parcel"
	registerProviderHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/register_provider"
	updateSettingsHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/update_settings"
	updateUnitHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/update_unit"
	updateUserRoleHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/update_user_role"
	updateVehicleHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/update_vehicle"
	uploadPhotoHandler "github.com/m04kA/SMC-CondoService/internal/api/handlers/upload_photo"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/config"
	"github.com/m04kA/SMC-CondoService/internal/infra/filestore"
	auditRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/auditlog"
	bookingRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/booking"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
	guestRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/guest"
	parcelRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/parcel"
	providerRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-CondoService/internal/infra/storage/schema"
	unitRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/unit"
	userRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/user"
	vehicleRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/vehicle"
	accessService "github.com/m04kA/SMC-CondoService/internal/service/access"
	auditRecorder "github.com/m04kA/SMC-CondoService/internal/service/audit"
	auditlogService "github.com/m04kA/SMC-CondoService/internal/service/auditlog"
	bookingsService "github.com/m04kA/SMC-CondoService/internal/service/bookings"
	dashboardService "github.com/m04kA/SMC-CondoService/internal/service/dashboard"
	parcelsService "github.com/m04kA/SMC-CondoService/internal/service/parcels"
	settingsService "github.com/m04kA/SMC-CondoService/internal/service/settings"
	unitsService "github.com/m04kA/SMC-CondoService/internal/service/units"
	usersService "github.com/m04kA/SMC-CondoService/internal/service/users"
	vehiclesService "github.com/m04kA/SMC-CondoService/internal/service/vehicles"
	createBookingUC "github.com/m04kA/SMC-CondoService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-CondoService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-CondoService/pkg/authtoken"
	"github.com/m04kA/SMC-CondoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CondoService/pkg/logger"
	"github.com/m04kA/SMC-CondoService/pkg/metrics"
	"github.com/m04kA/SMC-CondoService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CondoService/pkg/txmanager"
)

// systemClock реальное время для сервисов
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

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

	log.Info("Starting SMC-CondoService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	ctx := context.Background()

	// Применяем схему БД
	if err := schema.Apply(ctx, db); err != nil {
		log.Fatal("Failed to apply database schema: %v", err)
	}
	log.Info("Database schema applied")

	// Файловое хранилище фотографий
	files, err := filestore.New(ctx, cfg.Filestore.Enabled, cfg.Filestore.Bucket, cfg.Filestore.Endpoint, cfg.Filestore.Region)
	if err != nil {
		log.Fatal("Failed to initialize filestore: %v", err)
	}
	if cfg.Filestore.Enabled {
		log.Info("Filestore enabled (bucket=%s)", cfg.Filestore.Bucket)
	} else {
		log.Info("Filestore disabled, photo uploads unavailable")
	}

	// Менеджер токенов сессий
	tokens := authtoken.NewManager(cfg.Auth.TokenSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		condoRepository    *condoRepo.Repository
		unitRepository     *unitRepo.Repository
		vehicleRepository  *vehicleRepo.Repository
		parcelRepository   *parcelRepo.Repository
		providerRepository *providerRepo.Repository
		guestRepository    *guestRepo.Repository
		userRepository     *userRepo.Repository
		auditRepository    *auditRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		condoRepository = condoRepo.NewRepository(wrappedDB)
		unitRepository = unitRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		parcelRepository = parcelRepo.NewRepository(wrappedDB)
		providerRepository = providerRepo.NewRepository(wrappedDB)
		guestRepository = guestRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		condoRepository = condoRepo.NewRepository(db)
		unitRepository = unitRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		parcelRepository = parcelRepo.NewRepository(db)
		providerRepository = providerRepo.NewRepository(db)
		guestRepository = guestRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := systemClock{}

	// Журнал активности пишется best-effort из всех сервисов
	recorder := auditRecorder.NewRecorder(auditRepository, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, condoRepository, recorder, log)
	unitSvc := unitsService.NewService(unitRepository, recorder, log)
	vehicleSvc := vehiclesService.NewService(vehicleRepository, unitRepository, recorder, log)
	parcelSvc := parcelsService.NewService(parcelRepository, unitRepository, recorder, log, clock)
	accessSvc := accessService.NewService(providerRepository, guestRepository, unitRepository, recorder, log, clock)
	userSvc := usersService.NewService(userRepository, tokens, recorder, log)
	settingsSvc := settingsService.NewService(condoRepository, recorder, log)
	auditSvc := auditlogService.NewService(auditRepository, log)
	dashboardSvc := dashboardService.NewService(
		unitRepository,
		vehicleRepository,
		parcelRepository,
		providerRepository,
		guestRepository,
		bookingRepository,
		auditRepository,
		condoRepository,
		log,
		clock,
	)

	// Первый администратор на пустой базе
	if err := userSvc.EnsureBootstrapAdmin(ctx); err != nil {
		log.Fatal("Failed to ensure bootstrap admin: %v", err)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		unitRepository,
		condoRepository,
		txMgr,
		recorder,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, condoRepository, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(userSvc, log)
	getProfile := getProfileHandler.NewHandler(userSvc, log)
	changePassword := changePasswordHandler.NewHandler(userSvc, log)
	createUser := createUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	updateUserRole := updateUserRoleHandler.NewHandler(userSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	createUnit := createUnitHandler.NewHandler(unitSvc, log)
	getUnit := getUnitHandler.NewHandler(unitSvc, log)
	listUnits := listUnitsHandler.NewHandler(unitSvc, log)
	updateUnit := updateUnitHandler.NewHandler(unitSvc, log)
	deleteUnit := deleteUnitHandler.NewHandler(unitSvc, log)

	createVehicle := createVehicleHandler.NewHandler(vehicleSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehicleSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(vehicleSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehicleSvc, log)

	registerParcel := registerParcelHandler.NewHandler(parcelSvc, log)
	listParcels := listParcelsHandler.NewHandler(parcelSvc, log)
	collectParcel := collectParcelHandler.NewHandler(parcelSvc, log)

	registerProvider := registerProviderHandler.NewHandler(accessSvc, log)
	checkoutProvider := checkoutProviderHandler.NewHandler(accessSvc, log)
	listProviders := listProvidersHandler.NewHandler(accessSvc, log)
	registerGuest := registerGuestHandler.NewHandler(accessSvc, log)
	checkoutGuest := checkoutGuestHandler.NewHandler(accessSvc, log)
	listGuests := listGuestsHandler.NewHandler(accessSvc, log)

	uploadPhoto := uploadPhotoHandler.NewHandler(files, log)
	getPhoto := getPhotoHandler.NewHandler(files, log)

	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listAudit := listAuditHandler.NewHandler(auditSvc, log)
	exportAudit := exportAuditHandler.NewHandler(auditSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

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

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, userRepository, log))

	// --- Профиль ---
	protected.HandleFunc("/users/me", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/password", changePassword.Handle).Methods(http.MethodPost)

	// --- Бронирования зала ---
	// Календарь доступности регистрируется раньше маршрута с {bookingId}
	protected.HandleFunc("/bookings/availability", getAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Квартиры ---
	protected.HandleFunc("/units", createUnit.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/units", listUnits.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/units/{unitId}", getUnit.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/units/{unitId}", updateUnit.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/units/{unitId}", deleteUnit.Handle).Methods(http.MethodDelete)

	// --- Транспорт ---
	protected.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

	// --- Посылки ---
	protected.HandleFunc("/parcels", registerParcel.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/parcels", listParcels.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/parcels/{parcelId}/collect", collectParcel.Handle).Methods(http.MethodPost)

	// --- Контроль доступа ---
	protected.HandleFunc("/access/providers", registerProvider.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/access/providers", listProviders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/access/providers/{entryId}/checkout", checkoutProvider.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/access/guests", registerGuest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/access/guests", listGuests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/access/guests/{entryId}/checkout", checkoutGuest.Handle).Methods(http.MethodPost)

	// --- Фотографии ---
	protected.HandleFunc("/photos", uploadPhoto.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/photos/{photoKey}", getPhoto.Handle).Methods(http.MethodGet)

	// --- Настройки и сводка ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (роль проверяется и в middleware, и в сервисах)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}/role", updateUserRole.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/audit", listAudit.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/audit/export", exportAudit.Handle).Methods(http.MethodGet)

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
