package services

import (
	"context"
	"errors"

	"github.com/sabermais/sabermais-backend/internal/models"
	"github.com/sabermais/sabermais-backend/internal/repository"
)

type ProfileService struct {
	users repository.Users
}

func NewProfileService(users repository.Users) *ProfileService {
	return &ProfileService{users: users}
}

// SelectProfile validates the requested profile against the role
// enumeration and persists it. Repeated calls overwrite the previous
// choice.
func (s *ProfileService) SelectProfile(ctx context.Context, userID uint, profileType string) (models.Role, error) {
	role, err := models.ParseRole(profileType)
	if err != nil {
		return "", validationf("invalid profile type")
	}

	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return role, nil
}
