package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sabermais/sabermais-backend/internal/models"
	"github.com/sabermais/sabermais-backend/internal/session"
)

// PageHandler serves the platform pages. Real page rendering lives in
// the frontend; these handlers emit minimal placeholders and enforce the
// redirect rules for unauthenticated visitors.
type PageHandler struct {
	sessions *session.Manager
}

func NewPageHandler(sessions *session.Manager) *PageHandler {
	return &PageHandler{sessions: sessions}
}

// Index is the public landing page with the login/register form.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return h.page(c, "Saber+", "Entre ou cadastre-se para continuar.")
}

// SelectProfile is where a freshly authenticated user picks a profile.
func (h *PageHandler) SelectProfile(c *fiber.Ctx) error {
	if _, ok := h.sessions.Current(c); !ok {
		return c.Redirect("/", fiber.StatusFound)
	}
	return h.page(c, "Selecionar Perfil", "Escolha o seu perfil para continuar.")
}

// TeacherHome is restricted to the TEACHER profile.
func (h *PageHandler) TeacherHome(c *fiber.Ctx) error {
	identity, ok := h.sessions.Current(c)
	if !ok || identity.Role != models.RoleTeacher {
		return c.Redirect("/", fiber.StatusFound)
	}
	return h.page(c, "Home do Professor", "Bem-vindo, "+identity.Name+".")
}

func (h *PageHandler) Classes(c *fiber.Ctx) error {
	return h.protected(c, "Turmas")
}

func (h *PageHandler) Reports(c *fiber.Ctx) error {
	return h.protected(c, "Relatórios")
}

func (h *PageHandler) MyQuizzes(c *fiber.Ctx) error {
	return h.protected(c, "Meus Quizzes")
}

func (h *PageHandler) Forum(c *fiber.Ctx) error {
	return h.protected(c, "Fórum")
}

func (h *PageHandler) protected(c *fiber.Ctx, title string) error {
	identity, ok := h.sessions.Current(c)
	if !ok {
		return c.Redirect("/", fiber.StatusFound)
	}
	return h.page(c, title, "Olá, "+identity.Name+".")
}

func (h *PageHandler) page(c *fiber.Ctx, title, body string) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="pt-BR"><head><title>` + title + ` - Saber+</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}</style>
</head><body>
<h1>` + title + `</h1>
<p>` + body + `</p>
</body></html>`)
}
