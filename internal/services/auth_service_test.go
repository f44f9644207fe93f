package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sabermais/sabermais-backend/internal/dto"
	"github.com/sabermais/sabermais-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := newFakeUsers()
		svc := NewAuthService(users)

		user, err := svc.Register(ctx, &dto.RegisterRequest{
			Name: "Ana", Email: "ana@x.com", Password: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, "ana@x.com", user.Email)
		assert.Equal(t, models.RoleStudent, user.Role)
	})

	t.Run("stored credential is never the plaintext", func(t *testing.T) {
		users := newFakeUsers()
		svc := NewAuthService(users)

		user, err := svc.Register(ctx, &dto.RegisterRequest{
			Name: "Ana", Email: "ana@x.com", Password: "secret1",
		})
		require.NoError(t, err)

		stored, err := users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
	})

	t.Run("email is stored lower-cased", func(t *testing.T) {
		users := newFakeUsers()
		svc := NewAuthService(users)

		user, err := svc.Register(ctx, &dto.RegisterRequest{
			Name: "Ana", Email: "  Ana@X.Com ", Password: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, "ana@x.com", user.Email)
	})

	t.Run("duplicate email conflicts and keeps a single row", func(t *testing.T) {
		users := newFakeUsers()
		svc := NewAuthService(users)

		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Name: "Ana", Email: "ana@x.com", Password: "secret1",
		})
		require.NoError(t, err)

		_, err = svc.Register(ctx, &dto.RegisterRequest{
			Name: "Other Ana", Email: "ANA@x.com", Password: "different1",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Equal(t, 1, users.count())
	})

	t.Run("validation failures", func(t *testing.T) {
		users := newFakeUsers()
		svc := NewAuthService(users)

		tests := []struct {
			name string
			req  dto.RegisterRequest
		}{
			{name: "missing name", req: dto.RegisterRequest{Email: "a@x.com", Password: "secret1"}},
			{name: "missing email", req: dto.RegisterRequest{Name: "Ana", Password: "secret1"}},
			{name: "missing password", req: dto.RegisterRequest{Name: "Ana", Email: "a@x.com"}},
			{name: "short password", req: dto.RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "12345"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Register(ctx, &tt.req)
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
			})
		}
		assert.Equal(t, 0, users.count())
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T) (*AuthService, *models.User) {
		t.Helper()
		users := newFakeUsers()
		svc := NewAuthService(users)
		user, err := svc.Register(ctx, &dto.RegisterRequest{
			Name: "Ana", Email: "ana@x.com", Password: "secret1",
		})
		require.NoError(t, err)
		return svc, user
	}

	t.Run("registered credentials log in with the same id", func(t *testing.T) {
		svc, registered := register(t)

		user, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@x.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("email lookup ignores case", func(t *testing.T) {
		svc, _ := register(t)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "Ana@X.com", Password: "secret1"})
		assert.NoError(t, err)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		svc, _ := register(t)

		_, wrongPassword := svc.Login(ctx, &dto.LoginRequest{Email: "ana@x.com", Password: "wrong99"})
		_, unknownEmail := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@x.com", Password: "secret1"})

		assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := register(t)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "", Password: "secret1"})
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)

		_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@x.com", Password: ""})
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("store failure surfaces as plain error", func(t *testing.T) {
		users := newFakeUsers()
		users.failWith = errors.New("connection refused")
		svc := NewAuthService(users)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@x.com", Password: "secret1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	svc := NewAuthService(users)

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Ana", Email: "ana@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{
			CurrentPassword: "wrong99", NewPassword: "newsecret",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("short new password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{
			CurrentPassword: "secret1", NewPassword: "123",
		})
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("success rotates the credential", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{
			CurrentPassword: "secret1", NewPassword: "newsecret",
		})
		require.NoError(t, err)

		_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@x.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@x.com", Password: "newsecret"})
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.ChangePassword(ctx, 999, &dto.ChangePasswordRequest{
			CurrentPassword: "secret1", NewPassword: "newsecret",
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	svc := NewAuthService(users)

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Ana", Email: "ana@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		err := svc.DeleteAccount(ctx, user.ID, "wrong99")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, 1, users.count())
	})

	t.Run("missing password", func(t *testing.T) {
		var ve *ValidationError
		assert.ErrorAs(t, svc.DeleteAccount(ctx, user.ID, ""), &ve)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.DeleteAccount(ctx, user.ID, "secret1"))
		assert.Equal(t, 0, users.count())
	})

	t.Run("already deleted", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteAccount(ctx, user.ID, "secret1"), ErrUserNotFound)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@x.com", NormalizeEmail(" Ana@X.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
