package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sabermais/sabermais-backend/internal/dto"
	"github.com/sabermais/sabermais-backend/internal/models"
	"github.com/sabermais/sabermais-backend/internal/services"
	"github.com/sabermais/sabermais-backend/internal/session"
)

const (
	pathProfileSelect = "/selecionar-perfil"
	pathTeacherHome   = "/homeprofessor"
)

type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	user, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: ve.Error(),
			})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Email already registered",
			})
		}
		slog.Error("registration failed", "action", "register", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	if err := h.sessions.SignIn(c, user); err != nil {
		slog.Error("session creation failed", "action", "register", "user_id", user.ID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.AuthResponse{
		Success:  true,
		Message:  "Registration successful",
		Redirect: pathProfileSelect,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	user, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: ve.Error(),
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid email or password",
			})
		}
		slog.Error("login failed", "action", "login", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	if err := h.sessions.SignIn(c, user); err != nil {
		slog.Error("session creation failed", "action", "login", "user_id", user.ID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.AuthResponse{
		Success:  true,
		Message:  "Login successful",
		Redirect: redirectFor(user.Role),
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c); err != nil {
		slog.Error("logout failed", "action", "logout", "error", err.Error())
	}
	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Logout successful",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Not authenticated",
		})
	}
	return c.JSON(dto.MeResponse{
		Success: true,
		ID:      identity.UserID,
		Name:    identity.Name,
		Email:   identity.Email,
		Role:    identity.Role,
	})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	identity, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Not authenticated",
		})
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	if err := h.authService.ChangePassword(c.UserContext(), identity.UserID, &req); err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: ve.Error(),
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Current password is incorrect",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "User not found",
			})
		}
		slog.Error("password change failed", "action", "change_password", "user_id", identity.UserID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	identity, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Not authenticated",
		})
	}

	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	if err := h.authService.DeleteAccount(c.UserContext(), identity.UserID, req.Password); err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: ve.Error(),
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Incorrect password. Please try again.",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "User not found",
			})
		}
		slog.Error("account deletion failed", "action", "delete_account", "user_id", identity.UserID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	if err := h.sessions.SignOut(c); err != nil {
		slog.Error("session teardown failed", "action", "delete_account", "error", err.Error())
	}
	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Account deleted successfully",
	})
}

// redirectFor routes teachers to their own home; everyone else lands on
// profile selection.
func redirectFor(role models.Role) string {
	if role == models.RoleTeacher {
		return pathTeacherHome
	}
	return pathProfileSelect
}
