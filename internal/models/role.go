package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of profiles a user can select.
type Role string

const (
	RoleStudent     Role = "STUDENT"
	RoleTeacher     Role = "TEACHER"
	RoleCoordinator Role = "COORDINATOR"
	RolePrincipal   Role = "PRINCIPAL"
	RoleGuardian    Role = "GUARDIAN"
)

// DefaultRole is assigned on registration, before the user picks a profile.
const DefaultRole = RoleStudent

var validRoles = map[Role]struct{}{
	RoleStudent:     {},
	RoleTeacher:     {},
	RoleCoordinator: {},
	RolePrincipal:   {},
	RoleGuardian:    {},
}

// ParseRole normalizes raw input (case-insensitive, surrounding
// whitespace ignored) against the enumeration.
func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := validRoles[role]; !ok {
		return "", fmt.Errorf("invalid profile type: %q", raw)
	}
	return role, nil
}

func (r Role) Valid() bool {
	_, ok := validRoles[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}
