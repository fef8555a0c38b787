package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stafftrack/stafftrack-go/internal/handler/http/middleware"
	"github.com/stafftrack/stafftrack-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Punishment PunishmentHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	Activity   ActivityHandler
	Settings   SettingsHandler
}

func NewRouter(jwtService jwt.Service, frontendURL, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "stafftrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/dashboard", h.Dashboard.Overview)
			r.Get("/activity", h.Activity.ListActivity)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Get("/by-department", h.Employee.ByDepartment)
				r.Get("/export", h.Employee.ExportEmployees)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/import", h.Employee.ImportEmployees)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Put("/", h.Employee.UpdateEmployee)
					r.Delete("/", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListAttendance)
				r.Post("/", h.Attendance.RecordAttendance)
				r.Post("/mark", h.Attendance.MarkDate)
				r.Get("/statistics", h.Attendance.DateStatistics)
				r.Get("/overview", h.Attendance.Overview)
				r.Get("/summary/{employeeId}", h.Attendance.EmployeeSummary)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Attendance.GetAttendance)
					r.Put("/", h.Attendance.UpdateAttendance)
					r.Delete("/", h.Attendance.DeleteAttendance)
				})
			})

			r.Route("/punishments", func(r chi.Router) {
				r.Get("/", h.Punishment.ListPunishments)
				r.Post("/", h.Punishment.CreatePunishment)
				r.Get("/statistics", h.Punishment.Statistics)
				r.Get("/chart-data", h.Punishment.ChartData)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Punishment.GetPunishment)
					r.Put("/", h.Punishment.UpdatePunishment)
					r.Delete("/", h.Punishment.DeletePunishment)
					r.Post("/complete", h.Punishment.CompletePunishment)
				})
			})

			r.Post("/reports", h.Report.GenerateReport)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.GetSettings)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Settings.UpdateSettings)
				})
			})
		})
	})
	return r
}
