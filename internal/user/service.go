package user

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/auth"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Service interface {
	Register(ctx context.Context, fullname, email, password string, role Role) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	AdminLogin(ctx context.Context, email, password string) (string, *User, error)
	List(ctx context.Context, filter Filter) ([]*User, error)
	ResetPassword(ctx context.Context, userID uint, password string) error
	ToggleActive(ctx context.Context, userID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, fullname, email, password string, role Role) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("email", email),
	)

	fullname = strings.TrimSpace(fullname)
	email = strings.TrimSpace(email)
	if fullname == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, fullname, email, hashed, role)
	if err != nil {
		log.Warn("failed to create user", zap.Error(err))
		return nil, err
	}

	log.Info("user registered", zap.Uint("user_id", u.ID), zap.String("role", string(role)))
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	return s.login(ctx, email, password, false)
}

// AdminLogin additionally requires the admin role; a customer with correct
// credentials still gets invalid-credentials back.
func (s *service) AdminLogin(ctx context.Context, email, password string) (string, *User, error) {
	return s.login(ctx, email, password, true)
}

func (s *service) login(ctx context.Context, email, password string, adminOnly bool) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("email", email),
		zap.Bool("admin_only", adminOnly),
	)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warn("email not found")
			return "", nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user", zap.Error(err))
		return "", nil, err
	}

	if adminOnly && u.Role != RoleAdmin {
		log.Warn("non-admin attempted admin login")
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("password mismatch")
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, string(u.Role))
	if err != nil {
		log.Error("failed to generate jwt", zap.Error(err))
		return "", nil, err
	}

	log.Info("login succeeded", zap.Uint("user_id", u.ID))
	return token, u, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, error) {
	return s.repo.GetUsers(ctx, filter)
}

func (s *service) ResetPassword(ctx context.Context, userID uint, password string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ResetPassword"),
		zap.Uint("user_id", userID),
	)

	if password == "" {
		return ErrEmptyPassword
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, hashed); err != nil {
		log.Warn("failed to reset password", zap.Error(err))
		return err
	}

	log.Info("password reset")
	return nil
}

func (s *service) ToggleActive(ctx context.Context, userID uint) error {
	return s.repo.ToggleActive(ctx, userID)
}
