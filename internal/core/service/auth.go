package service

import (
	"context"
	"fmt"
	"log/slog"

	"crudapp/internal/core/domain"
	"crudapp/internal/core/model/request"
	"crudapp/internal/core/port"
	"crudapp/internal/core/util"
)

// AuthService layers credential handling over the user engine. It never
// stores or logs a plaintext password.
type AuthService struct {
	users port.UserService
}

func NewAuthService(users port.UserService) *AuthService {
	return &AuthService{users}
}

func (as *AuthService) Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error) {
	exists, err := as.users.ExistsByEmail(ctx, req.Email)

	if err != nil {
		return nil, err
	}

	if exists {
		return nil, fmt.Errorf("user with email %s: %w", req.Email, domain.ErrConflict)
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return nil, fmt.Errorf("error creating encrypted password: %w", err)
	}

	user := domain.User{
		Name:              req.Name,
		Email:             req.Email,
		EncryptedPassword: encrypted,
		Age:               req.Age,
		Active:            true,
	}

	saved, err := as.users.Create(ctx, user)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Authenticate fails with the same generic error for an unknown email and
// a wrong password, so the response never reveals which emails are
// registered.
func (as *AuthService) Authenticate(ctx context.Context, req *request.LoginRequest) (*domain.User, error) {
	user, err := as.users.GetByEmail(ctx, req.Email)

	if err != nil {
		slog.Error("Auth#Authenticate", "get_by_email", err)
		return nil, domain.ErrUnauthorized
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		slog.Error("Auth#Authenticate", "compare_password", err)
		return nil, domain.ErrUnauthorized
	}

	return &user, nil
}
