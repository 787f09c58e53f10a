package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/config"
	appHTTP "github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/cron"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/jwt"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/lock"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/observability"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/repository/postgresql"
	absenceService "github.com/AtidYarokMx/Suhuevo-sub000/internal/service/absence"
	attendanceService "github.com/AtidYarokMx/Suhuevo-sub000/internal/service/attendance"
	bonusService "github.com/AtidYarokMx/Suhuevo-sub000/internal/service/bonus"
	employeeService "github.com/AtidYarokMx/Suhuevo-sub000/internal/service/employee"
	farmService "github.com/AtidYarokMx/Suhuevo-sub000/internal/service/farm"
	overtimeService "github.com/AtidYarokMx/Suhuevo-sub000/internal/service/overtime"
	payrollService "github.com/AtidYarokMx/Suhuevo-sub000/internal/service/payroll"
	shedService "github.com/AtidYarokMx/Suhuevo-sub000/internal/service/shed"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(context.Background()); err != nil {
			slog.Error("Error applying migrations", "error", err)
			os.Exit(1)
		}
	}

	var locker lock.Locker
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{cfg.Redis.Addr}})
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient)
	} else {
		slog.Warn("REDIS_ADDR not set, payroll runs are locked per process")
		locker = lock.NewLocalLocker()
	}

	loc := cfg.Location()
	txm := postgresql.NewTxManager(db)
	metrics := observability.NewMetrics()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	catalogBonusRepo := postgresql.NewCatalogBonusRepository(db)
	personalBonusRepo := postgresql.NewPersonalBonusRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	sequenceRepo := postgresql.NewSequenceRepository(db)
	farmRepo := postgresql.NewFarmRepository(db)
	shedRepo := postgresql.NewShedRepository(db)
	shedHistoryRepo := postgresql.NewShedHistoryRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, absenceRepo, loc)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, employeeRepo, attendanceRepo, loc)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, employeeRepo, loc)
	bonusSvc := bonusService.NewBonusService(bonusRepo, catalogBonusRepo, personalBonusRepo, employeeRepo)
	farmSvc := farmService.NewFarmService(farmRepo)
	shedSvc := shedService.NewShedService(shedRepo, shedHistoryRepo, farmRepo, metrics)
	aggregator := payrollService.NewAggregator(attendanceRepo, absenceRepo, overtimeRepo, bonusRepo, personalBonusRepo)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		sequenceRepo,
		employeeRepo,
		aggregator,
		locker,
		metrics,
		payrollService.NewHolidays(cfg.Payroll.Holidays),
		loc,
		timeutil.SystemClock,
	)

	routerConfig := appHTTP.RouterConfig{
		Env:                cfg.App.Env,
		LogLevel:           cfg.SlogLevel(),
		AllowedOrigins:     cfg.App.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.App.RateLimitPerMinute,
		Metrics:            metrics,
	}
	if cfg.JWT.Secret != "" {
		routerConfig.JWTService = jwt.NewJWTService(cfg.JWT.Secret)
	} else {
		slog.Warn("JWT_SECRET_KEY not set, API is unauthenticated")
	}

	router := appHTTP.NewRouter(routerConfig, appHTTP.Handlers{
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc, txm),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, txm),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, txm),
		Absence:    appHTTP.NewAbsenceHandler(absenceSvc, txm),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc, txm),
		Bonus:      appHTTP.NewBonusHandler(bonusSvc, txm),
		Farm:       appHTTP.NewFarmHandler(farmSvc, txm),
		Shed:       appHTTP.NewShedHandler(shedSvc, txm),
	})

	scheduler := cron.NewScheduler(metrics)
	if cfg.Payroll.AutoClose {
		cron.NewPayrollJobs(payrollSvc, txm, cfg.Payroll.AutoCloseInterval).RegisterJobs(scheduler)
	}
	scheduler.Start()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
}
