package auth_test

import (
	"context"
	"testing"

	"go-erp/internal/auth"
	autherrors "go-erp/internal/auth/errors"
	"go-erp/internal/seed"
	"go-erp/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (auth.Service, auth.Repository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	channel := storage.NewMemoryChannel()
	repo := auth.NewRepository(channel, nil, seed.Users, nil)
	return auth.NewService(repo), repo
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("default credentials", func(t *testing.T) {
		svc, repo := setupService(t)

		resp, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "mudar@123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin", resp.User.Username)
		assert.Equal(t, auth.RoleAdmin, resp.User.Role)
		require.NotNil(t, resp.User.LastLogin)

		token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "admin", claims["user_id"])
		assert.Equal(t, auth.RoleAdmin, claims["role"])

		// The session marker is persisted.
		session, found, err := repo.Session(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "admin", session.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "errada"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Login(ctx, auth.LoginRequest{Username: "ghost", Password: "mudar@123"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, _ := setupService(t)

		created, err := svc.CreateUser(ctx, auth.CreateUserRequest{
			Username: "maria", Password: "segredo1",
		})
		require.NoError(t, err)
		_, err = svc.ToggleActive(ctx, created.Username, false)
		require.NoError(t, err)

		_, err = svc.Login(ctx, auth.LoginRequest{Username: "maria", Password: "segredo1"})
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "mudar@123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, found, err := repo.Session(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	// Logging out twice is harmless.
	assert.NoError(t, svc.Logout(ctx))
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("requires the current password", func(t *testing.T) {
		svc, _ := setupService(t)

		err := svc.ChangePassword(ctx, "admin", auth.ChangePasswordRequest{
			CurrentPassword: "errada",
			NewPassword:     "novasenha",
		})
		assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		svc, _ := setupService(t)

		err := svc.ChangePassword(ctx, "admin", auth.ChangePasswordRequest{
			CurrentPassword: "mudar@123",
			NewPassword:     "curta",
		})
		assert.ErrorIs(t, err, autherrors.ErrPasswordTooShort)
	})

	t.Run("new password takes effect", func(t *testing.T) {
		svc, _ := setupService(t)

		err := svc.ChangePassword(ctx, "admin", auth.ChangePasswordRequest{
			CurrentPassword: "mudar@123",
			NewPassword:     "novasenha",
		})
		require.NoError(t, err)

		_, err = svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "mudar@123"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

		_, err = svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "novasenha"})
		assert.NoError(t, err)
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the user role", func(t *testing.T) {
		svc, _ := setupService(t)

		resp, err := svc.CreateUser(ctx, auth.CreateUserRequest{
			Username: "joao", Password: "segredo1",
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleUser, resp.Role)
		assert.True(t, resp.Active)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.CreateUser(ctx, auth.CreateUserRequest{
			Username: "admin", Password: "segredo1",
		})
		assert.ErrorIs(t, err, autherrors.ErrUserAlreadyExists)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.CreateUser(ctx, auth.CreateUserRequest{
			Username: "joao", Password: "segredo1", Role: "superuser",
		})
		assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
	})
}

func TestAuthService_UserManagement(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	t.Run("toggle unknown user", func(t *testing.T) {
		_, err := svc.ToggleActive(ctx, "ghost", false)
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("reset password validates length", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "admin", "abc")
		assert.ErrorIs(t, err, autherrors.ErrPasswordTooShort)
	})

	t.Run("list never exposes hashes", func(t *testing.T) {
		users, err := svc.ListUsers(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, users)
		assert.Equal(t, "admin", users[0].Username)
	})
}

func TestEnforcerPolicies(t *testing.T) {
	e, err := auth.NewEnforcer()
	require.NoError(t, err)

	cases := []struct {
		sub, obj, act string
		allowed       bool
	}{
		{auth.RoleAdmin, "user", "manage", true},
		{auth.RoleAdmin, "backup", "import", true},
		{auth.RoleUser, "employee", "write", true},
		{auth.RoleUser, "dashboard", "read", true},
		{auth.RoleUser, "backup", "export", true},
		{auth.RoleUser, "backup", "import", false},
		{auth.RoleUser, "backup", "reset", false},
		{auth.RoleUser, "user", "manage", false},
	}
	for _, tc := range cases {
		ok, err := e.Enforce(tc.sub, tc.obj, tc.act)
		require.NoError(t, err)
		assert.Equalf(t, tc.allowed, ok, "%s %s:%s", tc.sub, tc.obj, tc.act)
	}
}
