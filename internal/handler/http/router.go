package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Bookmark  BookmarkHandler
	Analytics AnalyticsHandler
	Event     EventHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	LogLevel       slog.Level
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
		Skip: func(req *http.Request, respStatus int) bool {
			return req.URL.Path == "/"
		},
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
			})
		})

		// The stream authenticates with a short-lived query token
		r.Get("/events", h.Event.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))

			r.Route("/roster", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/filtered", h.Employee.Filtered)
				r.Get("/state", h.Employee.State)
				r.Post("/load", h.Employee.Load)
				r.Post("/load-more", h.Employee.LoadMore)
				r.Post("/show-more", h.Employee.ShowMore)
				r.Put("/query", h.Employee.UpdateQuery)
				r.Delete("/query", h.Employee.ClearQuery)
				r.Put("/page", h.Employee.SetPage)
				r.Post("/reset-pagination", h.Employee.ResetPagination)
			})

			r.Route("/bookmarks", func(r chi.Router) {
				r.Get("/", h.Bookmark.List)
				r.Post("/{id}/toggle", h.Bookmark.Toggle)
			})

			r.Get("/employees/{id}", h.Employee.GetEmployee)
			r.Get("/departments", h.Employee.ListDepartments)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/", h.Analytics.GetAnalytics)
				r.Get("/departments", h.Analytics.GetDepartmentStats)
			})

			r.Post("/events/token", h.Event.GetSSEToken)
		})
	})
	return r
}
