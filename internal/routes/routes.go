package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sabermais/sabermais-backend/internal/handlers"
	"github.com/sabermais/sabermais-backend/internal/middleware"
	"github.com/sabermais/sabermais-backend/internal/session"
)

func Setup(
	app *fiber.App,
	sessions *session.Manager,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	pageHandler *handlers.PageHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Auth — public
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	// Auth — session required
	protected := middleware.RequireSession(sessions)
	api.Get("/auth/me", protected, authHandler.Me)
	api.Post("/auth/password", protected, authHandler.ChangePassword)
	api.Delete("/auth/account", protected, authHandler.DeleteAccount)

	// Profile selection
	api.Post("/profile/select", protected, profileHandler.Select)

	// Pages: unauthenticated visitors are redirected, not rejected
	app.Get("/", pageHandler.Index)
	app.Get("/selecionar-perfil", pageHandler.SelectProfile)
	app.Get("/homeprofessor", pageHandler.TeacherHome)
	app.Get("/turmas", pageHandler.Classes)
	app.Get("/relatorios", pageHandler.Reports)
	app.Get("/meusquizzes", pageHandler.MyQuizzes)
	app.Get("/forum", pageHandler.Forum)
}
