package http

import (
	"log/slog"
	"os"

	"github.com/cineworks/roster-backend-go/internal/handler/http/middleware"
	"github.com/cineworks/roster-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	rosterHandler RosterHandler,
	scheduleHandler ScheduleHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "roster-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/auth/register", authHandler.Register)
			})

			r.Route("/roster", func(r chi.Router) {
				r.Route("/staff", func(r chi.Router) {
					r.Get("/", rosterHandler.ListStaff)
					r.Post("/", rosterHandler.CreateStaff)
					r.Get("/{id}", rosterHandler.GetStaff)
					r.Put("/{id}", rosterHandler.UpdateStaff)
					r.Delete("/{id}", rosterHandler.DeleteStaff)
				})

				r.Route("/cinemas", func(r chi.Router) {
					r.Get("/", rosterHandler.ListCinemas)
					r.Put("/{id}", rosterHandler.RenameCinema)
				})
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", scheduleHandler.GetMonth)
				r.Post("/generate", scheduleHandler.Generate)

				r.Post("/clear/automatic", scheduleHandler.ClearAutomatic)
				r.Post("/clear/manual", scheduleHandler.ClearManual)
				r.Post("/clear/week/automatic", scheduleHandler.ClearWeekAutomatic)
				r.Post("/clear/week/manual", scheduleHandler.ClearWeekManual)

				r.Put("/manual", scheduleHandler.SaveManual)
				r.Delete("/manual", scheduleHandler.DeleteManual)

				r.Get("/stats", scheduleHandler.GetStats)
				r.Get("/shortages", scheduleHandler.GetShortages)

				r.Route("/shift-kinds", func(r chi.Router) {
					r.Get("/", scheduleHandler.ListShiftKinds)
					r.Post("/", scheduleHandler.AddShiftKind)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/", leaveHandler.Create)
				r.Delete("/{id}", leaveHandler.Delete)

				r.Get("/balance/{staffID}", leaveHandler.Balance)
				r.Put("/allowance", leaveHandler.SetAllowance)
			})
		})
	})

	return r
}
