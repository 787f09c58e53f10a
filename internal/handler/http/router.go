package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/middleware"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/jwt"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/observability"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/unrolled/secure"
)

// RouterConfig carries the transport settings of the API.
type RouterConfig struct {
	Env                string
	LogLevel           slog.Level
	AllowedOrigins     []string
	RateLimitPerMinute int
	// JWTService protects /api/v1 when set.
	JWTService jwt.Service
	Metrics    *observability.Metrics
}

type Handlers struct {
	Payroll    PayrollHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Absence    AbsenceHandler
	Overtime   OvertimeHandler
	Bonus      BonusHandler
	Farm       FarmHandler
	Shed       ShedHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "suhuevo"),
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

	r.Use(secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      cfg.Env != "production",
	}).Handler)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(cfg.Metrics.Middleware)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.HandleError(w, apperror.ErrNotFound)
	})

	r.Handle("/metrics", cfg.Metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))

		if cfg.JWTService != nil {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))
		}

		r.Route("/payrolls", func(r chi.Router) {
			r.Post("/execute", h.Payroll.Execute)
			r.Get("/export", h.Payroll.Export)
			r.Get("/", h.Payroll.ListPayrolls)
			r.Get("/{id}", h.Payroll.GetPayroll)
			r.Delete("/{id}", h.Payroll.DeletePayroll)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", h.Employee.CreateEmployee)
			r.Get("/", h.Employee.ListEmployees)
			r.Get("/{id}", h.Employee.GetEmployee)
			r.Put("/{id}", h.Employee.UpdateEmployee)
			r.Delete("/{id}", h.Employee.DeleteEmployee)
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Post("/", h.Attendance.CreateAttendance)
			r.Get("/", h.Attendance.ListAttendances)
			r.Delete("/{id}", h.Attendance.DeleteAttendance)
		})

		r.Route("/absences", func(r chi.Router) {
			r.Post("/", h.Absence.CreateAbsence)
			r.Get("/", h.Absence.ListAbsences)
			r.Delete("/{id}", h.Absence.DeleteAbsence)
		})

		r.Route("/overtimes", func(r chi.Router) {
			r.Post("/", h.Overtime.CreateOvertime)
			r.Get("/", h.Overtime.ListOvertimes)
			r.Delete("/{id}", h.Overtime.DeleteOvertime)
		})

		r.Route("/bonuses", func(r chi.Router) {
			r.Post("/", h.Bonus.CreateBonus)
			r.Get("/", h.Bonus.ListBonuses)
			r.Put("/{id}", h.Bonus.UpdateBonus)
			r.Delete("/{id}", h.Bonus.DeleteBonus)
		})

		r.Route("/catalog-bonuses", func(r chi.Router) {
			r.Post("/", h.Bonus.CreateCatalogBonus)
			r.Get("/", h.Bonus.ListCatalogBonuses)
		})

		r.Route("/personal-bonuses", func(r chi.Router) {
			r.Post("/", h.Bonus.CreatePersonalBonus)
			r.Get("/", h.Bonus.ListPersonalBonuses)
			r.Put("/{id}", h.Bonus.UpdatePersonalBonus)
			r.Delete("/{id}", h.Bonus.DeletePersonalBonus)
		})

		r.Route("/farms", func(r chi.Router) {
			r.Post("/", h.Farm.CreateFarm)
			r.Get("/", h.Farm.ListFarms)
			r.Get("/{id}", h.Farm.GetFarm)
		})

		r.Route("/sheds", func(r chi.Router) {
			r.Post("/", h.Shed.CreateShed)
			r.Get("/", h.Shed.ListSheds)
			r.Get("/{id}", h.Shed.GetShed)
			r.Put("/{id}", h.Shed.UpdateShed)
			r.Post("/{id}/initialize", h.Shed.InitializeShed)
			r.Post("/{id}/status", h.Shed.ChangeStatus)
			r.Get("/{id}/history", h.Shed.GetHistory)
		})
	})

	return r
}
