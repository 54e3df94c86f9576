package routes

import (
	"github.com/Dosada05/club-system/handlers"
	"github.com/Dosada05/club-system/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	dashboardHandler *handlers.DashboardHandler,
	matchHandler *handlers.MatchHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/teams/{teamID}", func(r chi.Router) {
		// Публичные read-model'и дашборда.
		r.Get("/dashboard", dashboardHandler.GetSummary)
		r.Get("/stats", dashboardHandler.GetTeamStats)
		r.Get("/leaderboard", dashboardHandler.GetLeaderboard)
		r.Get("/attendance", dashboardHandler.GetAttendanceRate)
		r.Get("/games", matchHandler.GetTeamGames)

		// Запись и архив - только для тренеров и администраторов.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize(middleware.RoleCoach, middleware.RoleAdmin))

			r.Post("/snapshots", dashboardHandler.ArchiveSnapshot)
			r.Delete("/snapshots", dashboardHandler.DeleteSnapshot)
		})
	})

	router.Route("/games/{gameID}", func(r chi.Router) {
		r.Get("/", matchHandler.GetGame)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize(middleware.RoleCoach, middleware.RoleAdmin))

			r.Put("/score", matchHandler.UpdateScore)
			r.Post("/minutes/recalculate", matchHandler.RecalculateMinutes)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.Authorize(middleware.RoleCoach, middleware.RoleAdmin))

		r.Post("/stats/{statID}/substitutions", matchHandler.RecordSubstitution)
	})

	router.Get("/ws/teams/{teamID}", webSocketHandler.ServeWs)
}
