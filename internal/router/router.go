package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/freddykhant/northstar/internal/auth"
	"github.com/freddykhant/northstar/internal/completion"
	"github.com/freddykhant/northstar/internal/dashboard"
	"github.com/freddykhant/northstar/internal/habit"
	"github.com/freddykhant/northstar/internal/middlewares"
	"github.com/freddykhant/northstar/internal/user"
)

type RouterConfig struct {
	UserHandler       *user.Handler
	HabitHandler      *habit.Handler
	CompletionHandler *completion.Handler
	DashboardHandler  *dashboard.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/habits", habit.Routes(cfg.HabitHandler))
		r.Mount("/completions", completion.Routes(cfg.CompletionHandler))
		r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
	})

	return r
}
