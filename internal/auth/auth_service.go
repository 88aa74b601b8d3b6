package auth

import (
	"context"
	"os"
	"strconv"
	"time"

	autherrors "hr-dashboard/internal/auth/errors"
	"hr-dashboard/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginData, error)
	Refresh(ctx context.Context, refreshToken string) (LoginData, error)
}

type service struct {
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{userRepo: userRepo, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginData, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// Username tidak dikenal dan password salah menghasilkan pesan yang
		// sama agar tidak membocorkan user mana yang ada.
		return LoginData{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return LoginData{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return LoginData{}, autherrors.ErrUserInactive
	}

	return s.buildLoginData(u)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (LoginData, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return LoginData{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return LoginData{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return LoginData{}, autherrors.ErrInvalidToken
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID < 1 {
		return LoginData{}, autherrors.ErrInvalidToken
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return LoginData{}, autherrors.ErrUserNotFound
	}

	return s.buildLoginData(u)
}

func (s *service) buildLoginData(u *user.User) (LoginData, error) {
	roleName := ""
	if u.Role != nil {
		roleName = u.Role.Name
	}

	accessToken, err := generateToken(u.ID, u.Username, roleName, accessTokenTTL)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return LoginData{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := generateToken(u.ID, u.Username, roleName, refreshTokenTTL)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return LoginData{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginData{
		User: LoginUser{
			ID:       u.ID,
			FullName: u.FullName,
			Username: u.Username,
			RoleID:   u.RoleID,
			Role:     LoginRole{Name: roleName},
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// user_id dikirim sebagai string agar tidak kena float64 truncation saat
// MapClaims di-decode kembali.
func generateToken(userID int64, username, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  strconv.FormatInt(userID, 10),
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
