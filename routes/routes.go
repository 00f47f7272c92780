package routes

import (
	"log/slog"
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/handlers"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/middleware"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes wires every screen. The login screen is public; every other
// screen requires a session, user administration additionally requires the
// admin role.
func SetupRoutes(
	router *chi.Mux,
	logger *slog.Logger,
	sessions *session.Store,
	authHandler *handlers.AuthHandler,
	homeHandler *handlers.HomeHandler,
	tournamentHandler *handlers.TournamentHandler,
	teamHandler *handlers.TeamHandler,
	matchHandler *handlers.MatchHandler,
	playerHandler *handlers.PlayerHandler,
	eventHandler *handlers.EventHandler,
	userHandler *handlers.UserHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}))

	router.Get("/login", authHandler.LoginForm)
	router.Post("/login", authHandler.Login)
	router.Post("/logout", authHandler.Logout)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions))

		r.Get("/", homeHandler.Home)

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", tournamentHandler.List)
			r.Get("/new", tournamentHandler.NewForm)
			r.Post("/", tournamentHandler.Create)
			r.Get("/{id}", tournamentHandler.Detail)
			r.Get("/{id}/edit", tournamentHandler.EditForm)
			r.Post("/{id}", tournamentHandler.Update)
			r.Post("/{id}/delete", tournamentHandler.Delete)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.List)
			r.Get("/new", teamHandler.NewForm)
			r.Post("/", teamHandler.Create)
			r.Get("/{id}", teamHandler.Detail)
			r.Get("/{id}/edit", teamHandler.EditForm)
			r.Post("/{id}", teamHandler.Update)
			r.Post("/{id}/delete", teamHandler.Delete)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", matchHandler.List)
			r.Get("/new", matchHandler.NewForm)
			r.Post("/", matchHandler.Create)
			r.Get("/{id}", matchHandler.Detail)
			r.Get("/{id}/edit", matchHandler.EditForm)
			r.Post("/{id}", matchHandler.Update)
			r.Post("/{id}/delete", matchHandler.Delete)

			// Event entry hangs off its match on the create path.
			r.Get("/{id}/events/new", eventHandler.NewForm)
			r.Post("/{id}/events", eventHandler.Create)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.List)
			r.Get("/new", playerHandler.NewForm)
			r.Post("/", playerHandler.Create)
			r.Get("/{id}/edit", playerHandler.EditForm)
			r.Post("/{id}", playerHandler.Update)
			r.Post("/{id}/delete", playerHandler.Delete)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.List)
			r.Get("/{id}/edit", eventHandler.EditForm)
			r.Post("/{id}", eventHandler.Update)
			r.Post("/{id}/delete", eventHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireRole(sessions, models.RoleAdmin))
			r.Get("/", userHandler.List)
			r.Get("/new", userHandler.NewForm)
			r.Post("/", userHandler.Create)
			r.Get("/{id}/edit", userHandler.EditForm)
			r.Post("/{id}", userHandler.Update)
			r.Get("/{id}/password", userHandler.PasswordForm)
			r.Post("/{id}/password", userHandler.ChangePassword)
			r.Post("/{id}/delete", userHandler.Delete)
		})
	})
}
