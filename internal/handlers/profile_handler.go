package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sabermais/sabermais-backend/internal/dto"
	"github.com/sabermais/sabermais-backend/internal/services"
	"github.com/sabermais/sabermais-backend/internal/session"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	sessions       *session.Manager
}

func NewProfileHandler(profileService *services.ProfileService, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, sessions: sessions}
}

func (h *ProfileHandler) Select(c *fiber.Ctx) error {
	identity, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Not authenticated",
		})
	}

	var req dto.SelectProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	role, err := h.profileService.SelectProfile(c.UserContext(), identity.UserID, req.ProfileType)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid profile type",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "User not found",
			})
		}
		slog.Error("profile selection failed", "action", "select_profile", "user_id", identity.UserID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to update profile",
		})
	}

	if err := h.sessions.SetRole(c, role); err != nil {
		slog.Error("session role update failed", "action", "select_profile", "user_id", identity.UserID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.ProfileResponse{
		Success: true,
		Message: "Profile " + role.String() + " selected successfully",
		Profile: role,
	})
}
