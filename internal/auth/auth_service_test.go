package auth_test

import (
	"context"
	"testing"

	"hr-dashboard/internal/auth"
	autherrors "hr-dashboard/internal/auth/errors"
	"hr-dashboard/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	CreateFn         func(ctx context.Context, u *user.User) error
	FindByIDFn       func(ctx context.Context, id int64) (*user.User, error)
	FindByUsernameFn func(ctx context.Context, username string) (*user.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	return f.CreateFn(ctx, u)
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return f.FindByUsernameFn(ctx, username)
}

func adminUser(t *testing.T) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	return &user.User{
		ID:       1,
		FullName: "Administrator",
		Username: "admin",
		Password: string(hash),
		RoleID:   1,
		IsActive: true,
		Role:     &user.Role{ID: 1, Name: "admin"},
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("admin with correct password", func(t *testing.T) {
		admin := adminUser(t)
		repo := &fakeUserRepo{
			FindByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
				assert.Equal(t, "admin", username)
				return admin, nil
			},
		}
		svc := auth.NewService(repo)

		data, err := svc.Login(ctx, "admin", "password")

		require.NoError(t, err)
		assert.NotEmpty(t, data.AccessToken)
		assert.NotEmpty(t, data.RefreshToken)
		assert.Equal(t, int64(1), data.User.ID)
		assert.Equal(t, "admin", data.User.Username)
		assert.Equal(t, "admin", data.User.Role.Name)
	})

	t.Run("token carries user_id as string claim", func(t *testing.T) {
		admin := adminUser(t)
		repo := &fakeUserRepo{
			FindByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
				return admin, nil
			},
		}
		svc := auth.NewService(repo)

		data, err := svc.Login(ctx, "admin", "password")
		require.NoError(t, err)

		token, err := jwt.Parse(data.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)

		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, "1", claims["user_id"])
		assert.Equal(t, "admin", claims["username"])
		assert.Equal(t, "admin", claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		admin := adminUser(t)
		repo := &fakeUserRepo{
			FindByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
				return admin, nil
			},
		}
		svc := auth.NewService(repo)

		_, err := svc.Login(ctx, "admin", "wrong")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown username yields same error as wrong password", func(t *testing.T) {
		repo := &fakeUserRepo{
			FindByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
				return nil, assert.AnError
			},
		}
		svc := auth.NewService(repo)

		_, err := svc.Login(ctx, "nobody", "password")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		admin := adminUser(t)
		admin.IsActive = false
		repo := &fakeUserRepo{
			FindByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
				return admin, nil
			},
		}
		svc := auth.NewService(repo)

		_, err := svc.Login(ctx, "admin", "password")

		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("valid refresh token", func(t *testing.T) {
		admin := adminUser(t)
		repo := &fakeUserRepo{
			FindByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
				return admin, nil
			},
			FindByIDFn: func(ctx context.Context, id int64) (*user.User, error) {
				assert.Equal(t, int64(1), id)
				return admin, nil
			},
		}
		svc := auth.NewService(repo)

		login, err := svc.Login(ctx, "admin", "password")
		require.NoError(t, err)

		refreshed, err := svc.Refresh(ctx, login.RefreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.Equal(t, int64(1), refreshed.User.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepo{})

		_, err := svc.Refresh(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}
