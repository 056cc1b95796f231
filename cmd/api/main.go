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

	"github.com/cmlabs-hris/hris-payroll-go/internal/config"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	appHTTP "github.com/cmlabs-hris/hris-payroll-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/kafka"
	"github.com/cmlabs-hris/hris-payroll-go/internal/repository/postgresql"
	redisRepo "github.com/cmlabs-hris/hris-payroll-go/internal/repository/redis"
	attendanceService "github.com/cmlabs-hris/hris-payroll-go/internal/service/attendance"
	deficitService "github.com/cmlabs-hris/hris-payroll-go/internal/service/deficit"
	employeeService "github.com/cmlabs-hris/hris-payroll-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-payroll-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/hris-payroll-go/internal/service/payroll"
	salaryLawService "github.com/cmlabs-hris/hris-payroll-go/internal/service/salarylaw"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	entitlementRepo := postgresql.NewLeaveEntitlementRepository(db)
	deficitRepo := postgresql.NewDeficitRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	var salaryLawRepo salarylaw.SalaryLawRepository = postgresql.NewSalaryLawRepository(db)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("Redis unreachable, salary law cache will fall back to the database", "error", err)
		}
		salaryLawRepo = redisRepo.NewSalaryLawCache(salaryLawRepo, rdb, cfg.Redis.SalaryLawTTL)
	}

	var publisher payroll.EventPublisher = payrollService.NewNoopEventPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		writer := kafka.NewWriter(kafka.WriterConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.PayrollTopic})
		defer writer.Close()
		publisher = payrollService.NewKafkaEventPublisher(writer)
	}

	accrualPolicy, err := leaveService.NewPolicy(cfg.Leave.AccrualFormula)
	if err != nil {
		return fmt.Errorf("invalid LEAVE_ACCRUAL_FORMULA: %w", err)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, time.Now)
	salaryLawSvc := salaryLawService.NewSalaryLawService(salaryLawRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, salaryLawRepo, cfg.Payroll.DefaultLunchDuration)
	leaveSvc := leaveService.NewLeaveService(entitlementRepo, attendanceRepo, employeeRepo, leaveService.NewEngine(accrualPolicy), cfg.Leave.DefaultAnnualEntitlement)
	deficitSvc := deficitService.NewDeficitService(deficitRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		salaryLawRepo,
		attendanceRepo,
		deficitRepo,
		payrollRepo,
		publisher,
		payrollService.Config{
			StandardDaysInMonth:  cfg.Payroll.StandardDaysInMonth,
			DefaultLunchDuration: cfg.Payroll.DefaultLunchDuration,
			BatchConcurrency:     cfg.Payroll.BatchConcurrency,
			CompanyName:          cfg.App.CompanyName,
		},
		time.Now,
	)

	scheduler := cron.NewScheduler()
	if err := cron.NewSalaryLawJobs(salaryLawRepo, time.Now).RegisterJobs(scheduler, cfg.Cron.SalaryLawCheckInterval); err != nil {
		return err
	}
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        "hris-payroll",
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			LogLevel:       cfg.SlogLevel(),
		},
		appHTTP.Handlers{
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			SalaryLaw:  appHTTP.NewSalaryLawHandler(salaryLawSvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc),
			Deficit:    appHTTP.NewDeficitHandler(deficitSvc),
			Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
