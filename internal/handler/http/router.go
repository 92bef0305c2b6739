package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftbase-io/timecard-backend-go/internal/config"
	"github.com/shiftbase-io/timecard-backend-go/internal/handler/http/middleware"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/jwt"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/ratelimit"
)

type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Employee     EmployeeHandler
	User         UserHandler
	Report       ReportHandler
	DailyReport  DailyReportHandler
	Notification NotificationHandler
	Tag          TagHandler
	Health       HealthHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, limiter ratelimit.Store, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timecard-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(
				limiter, "login", cfg.RateLimit.LoginMaxRequests, cfg.RateLimit.LoginWindow,
			)).Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", h.Auth.Me)
				r.Put("/password", h.Auth.ChangePassword)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Post("/break/start", h.Attendance.StartBreak)
				r.Post("/break/end", h.Attendance.EndBreak)
				r.Get("/today", h.Attendance.Today)
				r.Get("/recent", h.Attendance.Recent)
				r.Get("/monthly", h.Attendance.Monthly)
				r.Post("/photo", h.Attendance.UploadPhoto)
				r.Get("/photo", h.Attendance.GetPhoto)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/", h.DailyReport.Submit)
				r.Get("/mine", h.DailyReport.Mine)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.Latest)
				r.Put("/{notificationID}/read", h.Notification.MarkRead)
				r.Put("/read-all", h.Notification.MarkAllRead)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", h.Tag.List)
				r.Post("/work-time", h.Tag.RecordWorkTime)
				r.Get("/work-time", h.Tag.MyWorkTimes)
			})

			r.Get("/my-stats", h.Report.MyStats)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.Employee.Profile)
				r.Put("/", h.Employee.UpdateProfile)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/admin", func(r chi.Router) {
					r.Get("/status", h.Report.Counters)
					r.Get("/summary", h.Report.DailySummary)
					r.Get("/export", h.Report.ExportCSV)
					r.Post("/attendance/force-close", h.Report.ForceClose)
					r.Get("/reports", h.DailyReport.ForDate)
					r.Post("/tags/sync", h.Tag.Sync)
					r.Get("/tags/summary", h.Tag.Summary)

					r.Route("/employees", func(r chi.Router) {
						r.Get("/", h.Employee.List)
						r.Post("/", h.Employee.Create)
						r.Get("/departments", h.Employee.Departments)
						r.Get("/{employeeID}", h.Employee.Get)
						r.Put("/{employeeID}", h.Employee.Update)
						r.Delete("/{employeeID}", h.Employee.Delete)
					})

					r.Route("/users", func(r chi.Router) {
						r.Get("/", h.User.List)
						r.Post("/", h.User.Create)
						r.Put("/{userID}", h.User.Update)
						r.Delete("/{userID}", h.User.Delete)
					})
				})
			})
		})
	})

	return r
}
