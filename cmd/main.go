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

	cancelTimetableDateHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/cancel_timetable_date"
	createLessonTimeHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/create_lesson_time"
	createTimetableHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/create_timetable"
	deleteTimetableHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/delete_timetable"
	getLessonTimesHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/get_lesson_times"
	getTimetableHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/get_timetable"
	getTimetablesByDateHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/get_timetables_by_date"
	getTimetablesByRangeHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/get_timetables_by_range"
	getWeekRangeHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/get_week_range"
	updateTimetableHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/update_timetable"
	updateTimetableStatusHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/update_timetable_status"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	"github.com/m04kA/SMC-TimetableService/internal/config"
	"github.com/m04kA/SMC-TimetableService/internal/infra/lock"
	lessonTimeRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/lessontime"
	timetableRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/timetable"
	facilityServiceClient "github.com/m04kA/SMC-TimetableService/internal/integrations/facilityservice"
	lessonTimesService "github.com/m04kA/SMC-TimetableService/internal/service/lessontimes"
	timetablesService "github.com/m04kA/SMC-TimetableService/internal/service/timetables"
	cancelDateUC "github.com/m04kA/SMC-TimetableService/internal/usecase/cancel_date"
	createTimetableUC "github.com/m04kA/SMC-TimetableService/internal/usecase/create_timetable"
	getWeekRangeUC "github.com/m04kA/SMC-TimetableService/internal/usecase/get_week_range"
	updateTimetableUC "github.com/m04kA/SMC-TimetableService/internal/usecase/update_timetable"
	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimetableService/pkg/logger"
	"github.com/m04kA/SMC-TimetableService/pkg/metrics"
	"github.com/m04kA/SMC-TimetableService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TimetableService/pkg/txmanager"
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

	log.Info("Starting SMC-TimetableService...")
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

	// Подключаемся к Redis для распределенных блокировок
	locker, err := lock.NewRedisLock(cfg.Redis.Addr)
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer locker.Close()
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	// Инициализируем интеграционного клиента
	facilityClient := facilityServiceClient.NewClient(
		cfg.FacilityService.URL,
		time.Duration(cfg.FacilityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (FacilityService=%s timeout=%ds)",
		cfg.FacilityService.URL, cfg.FacilityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		timetableRepository  *timetableRepo.Repository
		lessonTimeRepository *lessonTimeRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		timetableRepository = timetableRepo.NewRepository(wrappedDB)
		lessonTimeRepository = lessonTimeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.New(wrappedDB)
	} else {
		timetableRepository = timetableRepo.NewRepository(db)
		lessonTimeRepository = lessonTimeRepo.NewRepository(db)
		txMgr = simpletxmanager.New(db)
	}

	// Инициализируем сервисы
	timetableSvc := timetablesService.NewService(timetableRepository, log)
	lessonTimeSvc := lessonTimesService.NewService(lessonTimeRepository, log)

	// Инициализируем use cases
	createTimetableUseCase := createTimetableUC.NewUseCase(
		timetableRepository,
		lessonTimeRepository,
		facilityClient,
		txMgr,
		locker,
		log,
	)
	updateTimetableUseCase := updateTimetableUC.NewUseCase(
		timetableRepository,
		lessonTimeRepository,
		facilityClient,
		txMgr,
		locker,
		log,
	)
	cancelDateUseCase := cancelDateUC.NewUseCase(timetableRepository, log)
	getWeekRangeUseCase := getWeekRangeUC.NewUseCase(timetableRepository, log)

	// Инициализируем handlers
	createTimetable := createTimetableHandler.NewHandler(createTimetableUseCase, log)
	updateTimetable := updateTimetableHandler.NewHandler(updateTimetableUseCase, log)
	cancelTimetableDate := cancelTimetableDateHandler.NewHandler(cancelDateUseCase, log)
	getWeekRange := getWeekRangeHandler.NewHandler(getWeekRangeUseCase, log)
	getTimetable := getTimetableHandler.NewHandler(timetableSvc, log)
	getTimetablesByDate := getTimetablesByDateHandler.NewHandler(timetableSvc, log)
	getTimetablesByRange := getTimetablesByRangeHandler.NewHandler(timetableSvc, log)
	updateTimetableStatus := updateTimetableStatusHandler.NewHandler(timetableSvc, log)
	deleteTimetable := deleteTimetableHandler.NewHandler(timetableSvc, log)
	getLessonTimes := getLessonTimesHandler.NewHandler(lessonTimeSvc, log)
	createLessonTime := createLessonTimeHandler.NewHandler(lessonTimeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Логируем все запросы
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписания ---
	// Выборки по календарному окну и границы недель регистрируются раньше
	// маршрута с {timetableId}, иначе mux сматчит "range" как ID
	api.HandleFunc("/timetables/range", getTimetablesByRange.Handle).Methods(http.MethodGet)
	api.HandleFunc("/timetables/weeks", getWeekRange.Handle).Methods(http.MethodGet)

	// Создание расписания с проверкой конфликтов
	api.HandleFunc("/timetables", createTimetable.Handle).Methods(http.MethodPost)

	// Расписания, активные на дату
	api.HandleFunc("/timetables", getTimetablesByDate.Handle).Methods(http.MethodGet)

	// Получение расписания по ID
	api.HandleFunc("/timetables/{timetableId}", getTimetable.Handle).Methods(http.MethodGet)

	// Обновление расписания с повторной проверкой конфликтов
	api.HandleFunc("/timetables/{timetableId}", updateTimetable.Handle).Methods(http.MethodPut)

	// Отмена занятия на дату
	api.HandleFunc("/timetables/{timetableId}/cancellations", cancelTimetableDate.Handle).Methods(http.MethodPost)

	// Согласование или отклонение расписания
	api.HandleFunc("/timetables/{timetableId}/status", updateTimetableStatus.Handle).Methods(http.MethodPatch)

	// Удаление расписания
	api.HandleFunc("/timetables/{timetableId}", deleteTimetable.Handle).Methods(http.MethodDelete)

	// --- Справочник пар ---
	api.HandleFunc("/lesson-times", getLessonTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lesson-times", createLessonTime.Handle).Methods(http.MethodPost)

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
