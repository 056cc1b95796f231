package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	AppName        string
	Env            string
	AllowedOrigins []string
	LogLevel       slog.Level
}

type Handlers struct {
	Employee   EmployeeHandler
	SalaryLaw  SalaryLawHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Deficit    DeficitHandler
	Payroll    PayrollHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/{id}", h.Employee.Get)
		})

		r.Route("/salary-laws", func(r chi.Router) {
			r.Get("/", h.SalaryLaw.List)
			r.Get("/{year}", h.SalaryLaw.Get)
			r.Put("/{year}", h.SalaryLaw.Upsert)
		})

		r.Route("/attendance/{employeeId}/{year}/{month}", func(r chi.Router) {
			r.Get("/", h.Attendance.GetMonth)
			r.Put("/{day}", h.Attendance.UpsertDay)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Get("/accrual/{year}", h.Leave.GetAccrualTotals)
			r.Get("/accrual/{employeeId}/{year}", h.Leave.GetAccrual)
			r.Put("/entitlements/{employeeId}/{year}", h.Leave.UpsertEntitlement)
		})

		r.Route("/deficits", func(r chi.Router) {
			r.Get("/", h.Deficit.List)
			r.Post("/", h.Deficit.Create)
			r.Delete("/{id}", h.Deficit.Delete)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/compute", h.Payroll.ComputeBatch)
			r.Get("/compute/{employeeId}", h.Payroll.Compute)
			r.Post("/approve", h.Payroll.Approve)
			r.Get("/summary", h.Payroll.GetSummary)

			r.Route("/records", func(r chi.Router) {
				r.Get("/", h.Payroll.ListRecords)
				r.Get("/{id}", h.Payroll.GetRecord)
				r.Get("/{id}/payslip.pdf", h.Payroll.GetPayslip)
			})
		})
	})
	return r
}
