package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-erp/internal/auth/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	dateLayout  = "2006-01-02"
	tokenExpiry = 8 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context, username string) (UserResponse, error)
	ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error

	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	ToggleActive(ctx context.Context, username string, active bool) (UserResponse, error)
	ResetPassword(ctx context.Context, username, newPassword string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	user, found, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return LoginResponse{}, err
	}
	if !found {
		s.logger.Warn("login failed, unknown user",
			zap.String("request_id", rid),
			zap.String("username", req.Username),
		)
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !user.Active {
		s.logger.Warn("login refused, account deactivated", zap.String("username", req.Username))
		return LoginResponse{}, autherrors.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("login failed, wrong password", zap.String("username", req.Username))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	now := time.Now()
	lastLogin := now.Format(time.RFC3339)
	user.LastLogin = &lastLogin
	if err := s.repo.Replace(ctx, user); err != nil {
		return LoginResponse{}, err
	}

	if err := s.repo.SetSession(ctx, Session{
		Username:  user.Username,
		Role:      user.Role,
		LoginTime: lastLogin,
	}); err != nil {
		return LoginResponse{}, err
	}

	token, err := generateToken(user.Username, user.Role, tokenExpiry)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login succeeded",
		zap.String("request_id", rid),
		zap.String("username", user.Username),
		zap.String("role", user.Role),
	)
	return LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *service) Logout(ctx context.Context) error {
	s.logger.Info("logout", zap.String("request_id", contextutil.GetRequestID(ctx)))
	return s.repo.ClearSession(ctx)
}

func (s *service) Me(ctx context.Context, username string) (UserResponse, error) {
	user, found, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return UserResponse{}, err
	}
	if !found {
		return UserResponse{}, autherrors.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (s *service) ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error {
	user, found, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !found {
		return autherrors.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}
	if len(req.NewPassword) < 6 {
		return autherrors.ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	if err := s.repo.Replace(ctx, user); err != nil {
		return err
	}
	s.logger.Info("password changed", zap.String("username", username))
	return nil
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	role := req.Role
	if role == "" {
		role = RoleUser
	}
	if role != RoleAdmin && role != RoleUser {
		return UserResponse{}, autherrors.ErrInvalidRole
	}

	_, exists, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return UserResponse{}, err
	}
	if exists {
		return UserResponse{}, autherrors.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	user := User{
		Username:    req.Username,
		Password:    string(hashed),
		Role:        role,
		Active:      true,
		CreatedDate: time.Now().Format(dateLayout),
	}
	if err := s.repo.Append(ctx, user); err != nil {
		return UserResponse{}, err
	}
	s.logger.Info("user created", zap.String("username", user.Username), zap.String("role", user.Role))
	return toUserResponse(user), nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func (s *service) ToggleActive(ctx context.Context, username string, active bool) (UserResponse, error) {
	user, found, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return UserResponse{}, err
	}
	if !found {
		return UserResponse{}, autherrors.ErrUserNotFound
	}

	user.Active = active
	if err := s.repo.Replace(ctx, user); err != nil {
		if err == store.ErrRecordNotFound {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	s.logger.Info("user active flag changed",
		zap.String("username", username),
		zap.Bool("active", active),
	)
	return toUserResponse(user), nil
}

func (s *service) ResetPassword(ctx context.Context, username, newPassword string) error {
	if len(newPassword) < 6 {
		return autherrors.ErrPasswordTooShort
	}

	user, found, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !found {
		return autherrors.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	if err := s.repo.Replace(ctx, user); err != nil {
		return err
	}
	s.logger.Info("password reset", zap.String("username", username))
	return nil
}

func toUserResponse(u User) UserResponse {
	return UserResponse{
		Username:    u.Username,
		Role:        u.Role,
		Active:      u.Active,
		CreatedDate: u.CreatedDate,
		LastLogin:   u.LastLogin,
	}
}

func generateToken(username, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": username,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
