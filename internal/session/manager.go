package session

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/sabermais/sabermais-backend/internal/models"
)

const (
	keyUserID    = "user_id"
	keyUserEmail = "user_email"
	keyUserName  = "user_name"
	keyUserRole  = "user_role"

	localsKey = "identity"
)

// Identity is the logged-in user as cached in the session.
type Identity struct {
	UserID uint
	Email  string
	Name   string
	Role   models.Role
}

// Manager owns the server-side session state keyed by an opaque cookie.
type Manager struct {
	store *session.Store
}

func NewManager(cookieName string, expiry time.Duration) *Manager {
	store := session.New(session.Config{
		Expiration:     expiry,
		KeyLookup:      "cookie:" + cookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})
	return &Manager{store: store}
}

// SignIn binds the request's session to the given user. The session id
// is regenerated so a pre-login cookie cannot be replayed.
func (m *Manager) SignIn(c *fiber.Ctx, user *models.User) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("regenerate session: %w", err)
	}
	sess.Set(keyUserID, user.ID)
	sess.Set(keyUserEmail, user.Email)
	sess.Set(keyUserName, user.Name)
	sess.Set(keyUserRole, string(user.Role))
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Current resolves the authenticated identity, if any.
func (m *Manager) Current(c *fiber.Ctx) (Identity, bool) {
	sess, err := m.store.Get(c)
	if err != nil {
		return Identity{}, false
	}
	userID, ok := sess.Get(keyUserID).(uint)
	if !ok {
		return Identity{}, false
	}

	identity := Identity{UserID: userID}
	if email, ok := sess.Get(keyUserEmail).(string); ok {
		identity.Email = email
	}
	if name, ok := sess.Get(keyUserName).(string); ok {
		identity.Name = name
	}
	if role, ok := sess.Get(keyUserRole).(string); ok {
		identity.Role = models.Role(role)
	}
	return identity, true
}

// SetRole rewrites the cached role after a profile selection.
func (m *Manager) SetRole(c *fiber.Ctx, role models.Role) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	sess.Set(keyUserRole, string(role))
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SignOut destroys the session. Destroying an absent session is not an
// error.
func (m *Manager) SignOut(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return nil
	}
	return sess.Destroy()
}

// ToCtx stashes the resolved identity in the request locals so handlers
// behind the auth middleware don't hit the session store again.
func ToCtx(c *fiber.Ctx, identity Identity) {
	c.Locals(localsKey, identity)
}

// FromCtx returns the identity placed in the request locals by the auth
// middleware.
func FromCtx(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(localsKey).(Identity)
	return identity, ok
}
