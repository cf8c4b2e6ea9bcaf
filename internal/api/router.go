package api

import (
	"net/http"

	"github.com/dreed/habit-tracker/internal/api/handlers"
	"github.com/dreed/habit-tracker/internal/api/middleware"
	"github.com/dreed/habit-tracker/internal/service"
	"github.com/dreed/habit-tracker/internal/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, sessions session.Store, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, logger)
	userHandler := handlers.NewUserHandler(services.User, logger)
	habitHandler := handlers.NewHabitHandler(services.Habit, logger)
	todoHandler := handlers.NewTodoHandler(services.Todo, logger)

	// Public routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(sessions, logger))

		r.Post("/logout", authHandler.Logout)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/habits", func(r chi.Router) {
			r.Get("/", habitHandler.List)
			r.Post("/", habitHandler.Create)
			r.Get("/{id}", habitHandler.Get)
			r.Put("/{id}", habitHandler.Update)
			r.Delete("/{id}", habitHandler.Delete)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", todoHandler.List)
			r.Post("/", todoHandler.Create)
			r.Get("/{id}", todoHandler.Get)
			r.Put("/{id}", todoHandler.Update)
			r.Patch("/{id}/toggle", todoHandler.Toggle)
			r.Delete("/{id}", todoHandler.Delete)
		})
	})

	return r
}
