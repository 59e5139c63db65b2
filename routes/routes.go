package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/handlers"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/middleware"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

// SetupRoutes собирает всё дерево маршрутов. Чтение событий и турниров
// публично, любые мутации доступны только организатору.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	allowedOrigins []string,
	authHandler *handlers.AuthHandler,
	eventHandler *handlers.EventHandler,
	playerHandler *handlers.PlayerHandler,
	tournamentHandler *handlers.TournamentHandler,
	matchHandler *handlers.MatchHandler,
	bracketHandler *handlers.BracketHandler,
	slotHandler *handlers.SlotHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))
	organizerOnly := middleware.Authorize(models.RoleOrganizer, models.RoleAdmin)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	router.Get("/ws/events/{eventID}", webSocketHandler.ServeWs)

	router.Route("/events", func(r chi.Router) {
		// Публичный просмотр
		r.Get("/{eventID}", eventHandler.Get)
		r.Get("/{eventID}/overview", eventHandler.GetOverview)
		r.Get("/{eventID}/players", playerHandler.List)
		r.Get("/{eventID}/tournaments", tournamentHandler.List)
		r.Get("/{eventID}/slots", slotHandler.List)

		// Мутации только для организаторов
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(organizerOnly)

			r.Get("/", eventHandler.List)
			r.Post("/", eventHandler.Create)
			r.Put("/{eventID}", eventHandler.Update)
			r.Delete("/{eventID}", eventHandler.Delete)

			r.Post("/{eventID}/players", playerHandler.Create)
			r.Post("/{eventID}/tournaments", tournamentHandler.Create)
			r.Post("/{eventID}/slots", slotHandler.Create)
		})
	})

	router.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/", playerHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(organizerOnly)

			r.Put("/", playerHandler.Update)
			r.Post("/confirm", playerHandler.Confirm)
			r.Post("/avatar", playerHandler.UploadAvatar)
			r.Delete("/", playerHandler.Delete)
		})
	})

	router.Route("/tournaments/{tournamentID}", func(r chi.Router) {
		r.Get("/", tournamentHandler.Get)
		r.Get("/groups/{groupID}/standings", tournamentHandler.GetStandings)
		r.Get("/qualifiers", tournamentHandler.GetQualifiers)
		r.Get("/brackets/{kind}", bracketHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(organizerOnly)

			r.Put("/", tournamentHandler.Rename)
			r.Put("/settings", tournamentHandler.UpdateSettings)
			r.Delete("/", tournamentHandler.Delete)

			r.Post("/groups", tournamentHandler.AddGroup)
			r.Put("/groups/{groupID}", tournamentHandler.UpdateGroup)
			r.Delete("/groups/{groupID}", tournamentHandler.RemoveGroup)

			r.Post("/groups/{groupID}/matches/generate", matchHandler.GenerateMatches)
			r.Put("/groups/{groupID}/matches/{matchID}/result", matchHandler.RecordResult)
			r.Put("/groups/{groupID}/matches/{matchID}/schedule", matchHandler.Schedule)

			r.Post("/brackets/{kind}", bracketHandler.Generate)
			r.Put("/brackets/{kind}/matches/{matchID}/result", bracketHandler.RecordResult)
			r.Delete("/brackets/{kind}", bracketHandler.Reset)
		})
	})

	router.Route("/slots/{slotID}", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(organizerOnly)

			r.Post("/book", slotHandler.Book)
			r.Post("/release", slotHandler.Release)
			r.Delete("/", slotHandler.Delete)
		})
	})
}
